package queries

import (
	"context"
	"time"

	"hotel-pricing/internal/domain/pricing"
	"hotel-pricing/internal/infra"
	"hotel-pricing/internal/pkg/clock"
	"hotel-pricing/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrRoomNotFound = errs.New("room not found")

const suggestionCurrency = "MXN"

type PricingQueries interface {
	// Suggest computes a nightly price suggestion for the room. A nil
	// targetDate means tomorrow (UTC).
	Suggest(ctx context.Context, roomID int64, targetDate *time.Time) (*SuggestionView, error)
}

type PriceHistoryReadStore interface {
	RecentByRoom(ctx context.Context, roomID int64, since time.Time) ([]pricing.HistoryEntry, error)
	RecentByHotel(ctx context.Context, hotelID int64, since time.Time) ([]pricing.HistoryEntry, error)
}

type PredictionFeatures struct {
	RoomID         int64
	BasePrice      decimal.Decimal
	HotelOccupancy float64
	DayOfWeek      int
	Month          int
	IsWeekend      bool
	Capacity       int
	HasSeaView     bool
}

type Prediction struct {
	PredictedPrice decimal.Decimal
	ModelVersion   string
}

// PricePredictor is the optional ML sidecar. Predict reports ok=false on any
// failure, and the caller keeps the heuristic result; a flaky model service
// must never take the suggestion endpoint down with it.
type PricePredictor interface {
	Enabled() bool
	Predict(ctx context.Context, features PredictionFeatures) (*Prediction, bool)
}

type pricingQueriesImpl struct {
	rooms     RoomReadStore
	history   PriceHistoryReadStore
	predictor PricePredictor
	clock     clock.Clock
}

func NewPricingQueries(
	rooms RoomReadStore,
	history PriceHistoryReadStore,
	predictor PricePredictor,
	clk clock.Clock,
) PricingQueries {
	return &pricingQueriesImpl{
		rooms:     rooms,
		history:   history,
		predictor: predictor,
		clock:     clk,
	}
}

func (q *pricingQueriesImpl) Suggest(ctx context.Context, roomID int64, targetDate *time.Time) (*SuggestionView, error) {
	room, err := q.rooms.FindByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, err
	}

	now := q.clock.Now().UTC()
	date := tomorrowOf(now)
	if targetDate != nil && !targetDate.IsZero() {
		date = targetDate.UTC()
	}

	since := pricing.RecentWindow(now)
	roomHistory, err := q.history.RecentByRoom(ctx, roomID, since)
	if err != nil {
		return nil, err
	}
	hotelHistory, err := q.history.RecentByHotel(ctx, room.HotelID, since)
	if err != nil {
		return nil, err
	}

	facts := pricing.RoomFacts{
		ID:         room.ID,
		BasePrice:  room.BasePrice,
		Capacity:   room.Capacity,
		HasSeaView: room.HasSeaView,
		HasBalcony: room.HasBalcony,
	}
	res := pricing.Resolve(facts, pricing.FilterRecent(roomHistory, now), pricing.FilterRecent(hotelHistory, now))
	price := pricing.Apply(res.BasePrice, res.AvgOccupancy, date, facts, res.HadHistory)

	view := &SuggestionView{
		RoomID:         roomID,
		TargetDate:     date,
		SuggestedPrice: price,
		Currency:       suggestionCurrency,
		BasePriceUsed:  res.BasePrice,
		AvgOccupancy:   res.AvgOccupancy,
		HadHistory:     res.HadHistory,
		PriceSource:    string(res.Source),
	}

	if q.predictor != nil && q.predictor.Enabled() {
		if p, ok := q.predictor.Predict(ctx, featuresFor(roomID, res, date, room)); ok {
			view.SuggestedPrice = pricing.RoundPrice(p.PredictedPrice)
			view.PriceSource = string(pricing.SourceMLModel)
			view.ModelVersion = &p.ModelVersion
		}
	}

	return view, nil
}

func featuresFor(roomID int64, res pricing.Resolution, date time.Time, room *RoomView) PredictionFeatures {
	weekday := date.Weekday()
	return PredictionFeatures{
		RoomID:         roomID,
		BasePrice:      res.BasePrice,
		HotelOccupancy: res.AvgOccupancy,
		DayOfWeek:      int(weekday),
		Month:          int(date.Month()),
		IsWeekend:      weekday == time.Friday || weekday == time.Saturday,
		Capacity:       room.Capacity,
		HasSeaView:     room.HasSeaView,
	}
}

func tomorrowOf(now time.Time) time.Time {
	d := now.AddDate(0, 0, 1)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
