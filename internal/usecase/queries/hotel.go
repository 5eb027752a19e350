package queries

import (
	"context"

	"hotel-pricing/internal/infra"
	"hotel-pricing/internal/pkg/errs"
)

var ErrHotelNotFound = errs.New("hotel not found")

type HotelQueries interface {
	GetByID(ctx context.Context, id int64) (*HotelView, error)
	List(ctx context.Context) ([]*HotelView, error)
}

type HotelReadStore interface {
	FindByID(ctx context.Context, id int64) (*HotelView, error)
	FindAll(ctx context.Context) ([]*HotelView, error)
}

type hotelQueriesImpl struct {
	readStore HotelReadStore
}

func NewHotelQueries(readStore HotelReadStore) HotelQueries {
	return &hotelQueriesImpl{readStore: readStore}
}

func (q *hotelQueriesImpl) GetByID(ctx context.Context, id int64) (*HotelView, error) {
	h, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrHotelNotFound)
		}
		return nil, err
	}
	return h, nil
}

func (q *hotelQueriesImpl) List(ctx context.Context) ([]*HotelView, error) {
	return q.readStore.FindAll(ctx)
}
