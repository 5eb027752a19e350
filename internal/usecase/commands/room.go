package commands

import (
	"context"

	reqdto "hotel-pricing/internal/handler/dto/request"
	"hotel-pricing/internal/infra"
	"hotel-pricing/internal/pkg/errs"
	"hotel-pricing/internal/usecase/shared"
)

var (
	ErrHotelNotFound    = errs.New("hotel not found")
	ErrDuplicateRoom    = errs.New("room number already exists in hotel")
	ErrDomainValidation = errs.New("domain validation error")
)

type RoomCommands interface {
	Create(ctx context.Context, req reqdto.CreateRoomRequest) (int64, error)
	Update(ctx context.Context, id int64, req reqdto.UpdateRoomRequest) error
	Delete(ctx context.Context, id int64) error
}

type roomCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRoomCommands(uow shared.UnitOfWork) RoomCommands {
	return &roomCommandsImpl{uow: uow}
}

func (c *roomCommandsImpl) Create(ctx context.Context, req reqdto.CreateRoomRequest) (int64, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return 0, errs.Mark(err, ErrDomainValidation)
	}

	var id int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, createErr := tx.Rooms().Create(ctx, entity)
		if createErr != nil {
			return createErr
		}
		id = created
		return nil
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return 0, errs.Mark(err, ErrHotelNotFound)
		case infra.IsKind(err, infra.KindDuplicateKey):
			return 0, errs.Mark(err, ErrDuplicateRoom)
		}
		return 0, err
	}
	return id, nil
}

func (c *roomCommandsImpl) Update(ctx context.Context, id int64, req reqdto.UpdateRoomRequest) error {
	if req.Capacity <= 0 || req.BasePrice.IsNegative() {
		return ErrDomainValidation
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Update(ctx, id, shared.RoomUpdate{
			BasePrice:  req.BasePrice,
			Capacity:   req.Capacity,
			HasSeaView: req.HasSeaView,
			HasBalcony: req.HasBalcony,
		})
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrRoomNotFound)
		}
		return err
	}
	return nil
}

func (c *roomCommandsImpl) Delete(ctx context.Context, id int64) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().SoftDelete(ctx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrRoomNotFound)
		}
		return err
	}
	return nil
}
