package commands

import (
	"context"

	reqdto "hotel-pricing/internal/handler/dto/request"
	"hotel-pricing/internal/pkg/errs"
	"hotel-pricing/internal/usecase/shared"
)

type HotelCommands interface {
	Create(ctx context.Context, req reqdto.CreateHotelRequest) (int64, error)
}

type hotelCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewHotelCommands(uow shared.UnitOfWork) HotelCommands {
	return &hotelCommandsImpl{uow: uow}
}

func (c *hotelCommandsImpl) Create(ctx context.Context, req reqdto.CreateHotelRequest) (int64, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return 0, errs.Mark(err, ErrDomainValidation)
	}

	var id int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, createErr := tx.Hotels().Create(ctx, entity)
		if createErr != nil {
			return createErr
		}
		id = created
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
