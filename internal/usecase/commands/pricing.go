package commands

import (
	"context"
	"time"

	reqdto "hotel-pricing/internal/handler/dto/request"
	"hotel-pricing/internal/infra"
	"hotel-pricing/internal/pkg/errs"
	"hotel-pricing/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

var (
	ErrRoomNotFound       = errs.New("room not found")
	ErrInvalidCommitInput = errs.New("invalid price commit input")
	ErrCommitFailed       = errs.New("price commit failed")
)

type ApplyPriceResult struct {
	HistoryID int64
	RoomID    int64
	NewPrice  decimal.Decimal
	Date      time.Time
}

type PricingCommands interface {
	// ApplyPrice makes the given price the room's new reference price and
	// records it in the history ledger, atomically. The appended row carries
	// occupancy 0 until bookings reconcile it.
	ApplyPrice(ctx context.Context, req reqdto.ApplyPriceRequest) (*ApplyPriceResult, error)
}

type pricingCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewPricingCommands(uow shared.UnitOfWork) PricingCommands {
	return &pricingCommandsImpl{uow: uow}
}

func (c *pricingCommandsImpl) ApplyPrice(ctx context.Context, req reqdto.ApplyPriceRequest) (*ApplyPriceResult, error) {
	commit, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCommitInput)
	}

	price := commit.Price()
	var historyID int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, appendErr := tx.History().Append(ctx, shared.NewHistoryEntry{
			RoomID:           commit.RoomID(),
			Date:             commit.Date(),
			Price:            price,
			OccupancyPercent: 0,
			PredictedPrice:   &price,
		})
		if appendErr != nil {
			return appendErr
		}
		historyID = id
		return tx.Rooms().UpdateBasePrice(ctx, commit.RoomID(), price)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) || infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Mark(err, ErrCommitFailed)
	}

	return &ApplyPriceResult{
		HistoryID: historyID,
		RoomID:    commit.RoomID(),
		NewPrice:  price,
		Date:      commit.Date(),
	}, nil
}
