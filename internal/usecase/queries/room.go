package queries

import (
	"context"

	"hotel-pricing/internal/infra"
	"hotel-pricing/internal/pkg/errs"
)

type RoomQueries interface {
	GetByID(ctx context.Context, id int64) (*RoomView, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]*RoomView, error)
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id int64) (*RoomView, error)
	FindByHotelID(ctx context.Context, hotelID int64) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	readStore RoomReadStore
}

func NewRoomQueries(readStore RoomReadStore) RoomQueries {
	return &roomQueriesImpl{readStore: readStore}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id int64) (*RoomView, error) {
	room, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, err
	}
	return room, nil
}

func (q *roomQueriesImpl) ListByHotel(ctx context.Context, hotelID int64) ([]*RoomView, error) {
	return q.readStore.FindByHotelID(ctx, hotelID)
}
