//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-pricing/internal/domain/hotel"
	"hotel-pricing/internal/domain/room"
	reqdto "hotel-pricing/internal/handler/dto/request"
	"hotel-pricing/internal/infra"
	"hotel-pricing/internal/infra/db"
	"hotel-pricing/internal/pkg/errs"
	"hotel-pricing/internal/usecase/commands"
	"hotel-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// fakeUoW runs the transactional closure inline and records what the
// repositories were asked to do, in order.
type fakeUoW struct {
	tx         *fakeTx
	withinErr  error
	withinRuns int
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.withinRuns++
	if u.withinErr != nil {
		return u.withinErr
	}
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

type fakeTx struct {
	rooms   *fakeRoomRepo
	history *fakeHistoryRepo
	users   shared.UserRepository
}

func (t *fakeTx) Rooms() shared.RoomRepository           { return t.rooms }
func (t *fakeTx) Hotels() shared.HotelRepository         { return fakeHotelRepo{} }
func (t *fakeTx) History() shared.PriceHistoryRepository { return t.history }
func (t *fakeTx) DB() db.DBTX                            { return nil }

func (t *fakeTx) Users() shared.UserRepository {
	if t.users != nil {
		return t.users
	}
	return fakeUserRepo{}
}

type fakeRoomRepo struct {
	calls        *[]string
	updateErr    error
	updatedID    int64
	updatedPrice decimal.Decimal
}

func (r *fakeRoomRepo) Create(ctx context.Context, _ *room.Room) (int64, error) { return 0, nil }
func (r *fakeRoomRepo) Update(ctx context.Context, _ int64, _ shared.RoomUpdate) error {
	return nil
}
func (r *fakeRoomRepo) SoftDelete(ctx context.Context, _ int64) error { return nil }
func (r *fakeRoomRepo) UpdateBasePrice(ctx context.Context, id int64, price decimal.Decimal) error {
	*r.calls = append(*r.calls, "UpdateBasePrice")
	r.updatedID = id
	r.updatedPrice = price
	return r.updateErr
}

type fakeHistoryRepo struct {
	calls     *[]string
	appendID  int64
	appendErr error
	entry     shared.NewHistoryEntry
}

func (h *fakeHistoryRepo) Append(ctx context.Context, entry shared.NewHistoryEntry) (int64, error) {
	*h.calls = append(*h.calls, "Append")
	h.entry = entry
	return h.appendID, h.appendErr
}

type fakeHotelRepo struct{}

func (fakeHotelRepo) Create(ctx context.Context, _ *hotel.Hotel) (int64, error) { return 0, nil }

type fakeUserRepo struct{}

func (fakeUserRepo) Create(ctx context.Context, _ shared.NewUser) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func newFakeUoW() (*fakeUoW, *[]string) {
	calls := &[]string{}
	tx := &fakeTx{
		rooms:   &fakeRoomRepo{calls: calls},
		history: &fakeHistoryRepo{calls: calls, appendID: 42},
	}
	return &fakeUoW{tx: tx}, calls
}

func validApplyRequest() reqdto.ApplyPriceRequest {
	return reqdto.ApplyPriceRequest{
		RoomID:   1,
		NewPrice: decimal.RequireFromString("1500.00"),
		Date:     "2027-07-10",
	}
}

func TestApplyPrice_AppendsHistoryThenUpdatesReference(t *testing.T) {
	uow, calls := newFakeUoW()
	cmd := commands.NewPricingCommands(uow)

	res, err := cmd.ApplyPrice(context.Background(), validApplyRequest())
	require.NoError(t, err)

	require.Equal(t, []string{"Append", "UpdateBasePrice"}, *calls)
	require.Equal(t, int64(42), res.HistoryID)
	require.Equal(t, int64(1), res.RoomID)
	require.True(t, decimal.RequireFromString("1500.00").Equal(res.NewPrice))
	require.Equal(t, time.Date(2027, time.July, 10, 0, 0, 0, 0, time.UTC), res.Date)

	entry := uow.tx.history.entry
	require.Equal(t, int64(1), entry.RoomID)
	require.Equal(t, 0, entry.OccupancyPercent, "occupancy is unknown until bookings reconcile it")
	require.NotNil(t, entry.PredictedPrice)
	require.True(t, entry.PredictedPrice.Equal(entry.Price))

	require.Equal(t, int64(1), uow.tx.rooms.updatedID)
	require.True(t, uow.tx.rooms.updatedPrice.Equal(entry.Price))
}

func TestApplyPrice_InvalidInputSkipsTransaction(t *testing.T) {
	uow, _ := newFakeUoW()
	cmd := commands.NewPricingCommands(uow)

	tests := []struct {
		name string
		req  reqdto.ApplyPriceRequest
	}{
		{"bad date", reqdto.ApplyPriceRequest{RoomID: 1, NewPrice: decimal.NewFromInt(100), Date: "10/07/2027"}},
		{"zero price", reqdto.ApplyPriceRequest{RoomID: 1, NewPrice: decimal.Zero, Date: "2027-07-10"}},
		{"negative price", reqdto.ApplyPriceRequest{RoomID: 1, NewPrice: decimal.NewFromInt(-5), Date: "2027-07-10"}},
		{"missing room", reqdto.ApplyPriceRequest{RoomID: 0, NewPrice: decimal.NewFromInt(100), Date: "2027-07-10"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cmd.ApplyPrice(context.Background(), tt.req)
			require.True(t, errs.Is(err, commands.ErrInvalidCommitInput), "got %v", err)
		})
	}
	require.Zero(t, uow.withinRuns, "validation failures must not open a transaction")
}

func TestApplyPrice_UnknownRoom(t *testing.T) {
	uow, _ := newFakeUoW()
	uow.tx.rooms.updateErr = infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	cmd := commands.NewPricingCommands(uow)

	_, err := cmd.ApplyPrice(context.Background(), validApplyRequest())
	require.True(t, errs.Is(err, commands.ErrRoomNotFound), "got %v", err)
}

func TestApplyPrice_ForeignKeyViolationMapsToNotFound(t *testing.T) {
	uow, _ := newFakeUoW()
	uow.tx.history.appendErr = infra.WrapRepoErr("append failed", nil, infra.KindForeignKeyViolated)
	cmd := commands.NewPricingCommands(uow)

	_, err := cmd.ApplyPrice(context.Background(), validApplyRequest())
	require.True(t, errs.Is(err, commands.ErrRoomNotFound), "got %v", err)
}

func TestApplyPrice_OtherFailuresMapToCommitFailed(t *testing.T) {
	uow, _ := newFakeUoW()
	uow.tx.history.appendErr = infra.WrapRepoErr("connection lost", nil)
	cmd := commands.NewPricingCommands(uow)

	_, err := cmd.ApplyPrice(context.Background(), validApplyRequest())
	require.True(t, errs.Is(err, commands.ErrCommitFailed), "got %v", err)
}
