//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-pricing/internal/domain/pricing"
	"hotel-pricing/internal/infra"
	"hotel-pricing/internal/pkg/clock"
	"hotel-pricing/internal/pkg/errs"
	"hotel-pricing/internal/usecase/queries"
	queriesmock "hotel-pricing/tests/mock/queries"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type pricingDeps struct {
	rooms     *queriesmock.MockRoomReadStore
	history   *queriesmock.MockPriceHistoryReadStore
	predictor *queriesmock.MockPricePredictor
	clock     *clock.MockClock
}

func newPricingQueries(t *testing.T, now time.Time) (queries.PricingQueries, pricingDeps) {
	ctrl := gomock.NewController(t)
	deps := pricingDeps{
		rooms:     queriesmock.NewMockRoomReadStore(ctrl),
		history:   queriesmock.NewMockPriceHistoryReadStore(ctrl),
		predictor: queriesmock.NewMockPricePredictor(ctrl),
		clock:     clock.NewMockClock(now),
	}
	q := queries.NewPricingQueries(deps.rooms, deps.history, deps.predictor, deps.clock)
	return q, deps
}

func standardRoom() *queries.RoomView {
	return &queries.RoomView{
		ID:        1,
		HotelID:   7,
		HotelName: "Playa Azul",
		Number:    "101",
		BasePrice: decimal.NewFromInt(1000),
		Capacity:  2,
	}
}

func histEntry(d time.Time, price string, occ int) pricing.HistoryEntry {
	return pricing.HistoryEntry{
		RoomID:           1,
		Date:             d,
		Price:            decimal.RequireFromString(price),
		OccupancyPercent: occ,
	}
}

func TestSuggest_HeuristicWithRoomHistory(t *testing.T) {
	now := time.Date(2027, time.July, 8, 12, 0, 0, 0, time.UTC)
	q, deps := newPricingQueries(t, now)

	target := time.Date(2027, time.July, 10, 0, 0, 0, 0, time.UTC) // Saturday
	since := pricing.RecentWindow(now.UTC())

	roomHistory := []pricing.HistoryEntry{
		histEntry(now.AddDate(0, 0, -1), "980", 40),
		histEntry(now.AddDate(0, 0, -2), "1020", 60),
	}

	deps.rooms.EXPECT().FindByID(gomock.Any(), int64(1)).Return(standardRoom(), nil)
	deps.history.EXPECT().RecentByRoom(gomock.Any(), int64(1), since).Return(roomHistory, nil)
	deps.history.EXPECT().RecentByHotel(gomock.Any(), int64(7), since).Return(nil, nil)
	deps.predictor.EXPECT().Enabled().Return(false)

	view, err := q.Suggest(context.Background(), 1, &target)
	require.NoError(t, err)

	// base 1000, avg occupancy 50 (neutral tier), saturday 1.20, july 1.25
	require.True(t, decimal.RequireFromString("1500.00").Equal(view.SuggestedPrice), "got %s", view.SuggestedPrice)
	require.Equal(t, string(pricing.SourceBasePrice), view.PriceSource)
	require.True(t, decimal.NewFromInt(1000).Equal(view.BasePriceUsed))
	require.Equal(t, 50.0, view.AvgOccupancy)
	require.True(t, view.HadHistory)
	require.Equal(t, "MXN", view.Currency)
	require.True(t, target.Equal(view.TargetDate))
	require.Nil(t, view.ModelVersion)
}

func TestSuggest_DefaultsToTomorrowUTC(t *testing.T) {
	now := time.Date(2026, time.October, 11, 23, 30, 0, 0, time.UTC)
	q, deps := newPricingQueries(t, now)

	since := pricing.RecentWindow(now)
	deps.rooms.EXPECT().FindByID(gomock.Any(), int64(1)).Return(standardRoom(), nil)
	deps.history.EXPECT().RecentByRoom(gomock.Any(), int64(1), since).Return(nil, nil)
	deps.history.EXPECT().RecentByHotel(gomock.Any(), int64(7), since).Return(nil, nil)
	deps.predictor.EXPECT().Enabled().Return(false)

	view, err := q.Suggest(context.Background(), 1, nil)
	require.NoError(t, err)

	wantDate := time.Date(2026, time.October, 12, 0, 0, 0, 0, time.UTC)
	require.True(t, wantDate.Equal(view.TargetDate), "got %s", view.TargetDate)
}

func TestSuggest_NoHistoryFallsBackToDefaults(t *testing.T) {
	now := time.Date(2026, time.October, 11, 8, 0, 0, 0, time.UTC)
	q, deps := newPricingQueries(t, now)

	room := standardRoom()
	room.BasePrice = decimal.Zero

	since := pricing.RecentWindow(now)
	deps.rooms.EXPECT().FindByID(gomock.Any(), int64(1)).Return(room, nil)
	deps.history.EXPECT().RecentByRoom(gomock.Any(), int64(1), since).Return(nil, nil)
	deps.history.EXPECT().RecentByHotel(gomock.Any(), int64(7), since).Return(nil, nil)
	deps.predictor.EXPECT().Enabled().Return(false)

	view, err := q.Suggest(context.Background(), 1, nil)
	require.NoError(t, err)

	require.Equal(t, string(pricing.SourceDefault), view.PriceSource)
	require.True(t, pricing.DefaultBasePrice.Equal(view.BasePriceUsed))
	require.Equal(t, pricing.DefaultOccupancy, view.AvgOccupancy)
	require.False(t, view.HadHistory)
	// 500 base, occupancy 60 is neutral, monday in october, cold start inert
	require.True(t, decimal.RequireFromString("500.00").Equal(view.SuggestedPrice), "got %s", view.SuggestedPrice)
}

func TestSuggest_RoomNotFound(t *testing.T) {
	now := time.Date(2026, time.October, 11, 8, 0, 0, 0, time.UTC)
	q, deps := newPricingQueries(t, now)

	deps.rooms.EXPECT().FindByID(gomock.Any(), int64(99)).
		Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound))

	_, err := q.Suggest(context.Background(), 99, nil)
	require.True(t, errs.Is(err, queries.ErrRoomNotFound), "got %v", err)
}

func TestSuggest_PredictorOverridesHeuristic(t *testing.T) {
	now := time.Date(2027, time.July, 8, 12, 0, 0, 0, time.UTC)
	q, deps := newPricingQueries(t, now)

	target := time.Date(2027, time.July, 10, 0, 0, 0, 0, time.UTC)
	since := pricing.RecentWindow(now)

	deps.rooms.EXPECT().FindByID(gomock.Any(), int64(1)).Return(standardRoom(), nil)
	deps.history.EXPECT().RecentByRoom(gomock.Any(), int64(1), since).Return(nil, nil)
	deps.history.EXPECT().RecentByHotel(gomock.Any(), int64(7), since).Return(nil, nil)
	deps.predictor.EXPECT().Enabled().Return(true)
	deps.predictor.EXPECT().Predict(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, features queries.PredictionFeatures) (*queries.Prediction, bool) {
			require.Equal(t, int64(1), features.RoomID)
			require.Equal(t, int(time.Saturday), features.DayOfWeek)
			require.Equal(t, 7, features.Month)
			require.True(t, features.IsWeekend)
			return &queries.Prediction{
				PredictedPrice: decimal.RequireFromString("1234.567"),
				ModelVersion:   "v3",
			}, true
		})

	view, err := q.Suggest(context.Background(), 1, &target)
	require.NoError(t, err)

	require.True(t, decimal.RequireFromString("1234.57").Equal(view.SuggestedPrice), "got %s", view.SuggestedPrice)
	require.Equal(t, string(pricing.SourceMLModel), view.PriceSource)
	require.NotNil(t, view.ModelVersion)
	require.Equal(t, "v3", *view.ModelVersion)
}

func TestSuggest_PredictorFailureKeepsHeuristic(t *testing.T) {
	now := time.Date(2027, time.July, 8, 12, 0, 0, 0, time.UTC)
	q, deps := newPricingQueries(t, now)

	target := time.Date(2027, time.July, 10, 0, 0, 0, 0, time.UTC)
	since := pricing.RecentWindow(now)

	deps.rooms.EXPECT().FindByID(gomock.Any(), int64(1)).Return(standardRoom(), nil)
	deps.history.EXPECT().RecentByRoom(gomock.Any(), int64(1), since).Return(nil, nil)
	deps.history.EXPECT().RecentByHotel(gomock.Any(), int64(7), since).Return(nil, nil)
	deps.predictor.EXPECT().Enabled().Return(true)
	deps.predictor.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(nil, false)

	view, err := q.Suggest(context.Background(), 1, &target)
	require.NoError(t, err)

	// no usable history: base 1000, default occupancy 60 is neutral, saturday, july
	require.Equal(t, string(pricing.SourceBasePrice), view.PriceSource)
	require.True(t, decimal.RequireFromString("1500.00").Equal(view.SuggestedPrice), "got %s", view.SuggestedPrice)
	require.Nil(t, view.ModelVersion)
}
