package repository

import (
	"context"

	"hotel-pricing/internal/domain/room"
	"hotel-pricing/internal/infra"
	"hotel-pricing/internal/infra/db"
	"hotel-pricing/internal/pkg/pgconv"
	"hotel-pricing/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

func (r *RoomRepository) Create(ctx context.Context, entity *room.Room) (int64, error) {
	const q = `
		INSERT INTO rooms (hotel_id, room_number, base_price, capacity, has_sea_view, has_balcony)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, q,
		entity.HotelID(),
		entity.Number(),
		pgconv.DecimalToNumeric(entity.BasePrice()),
		entity.Capacity(),
		entity.HasSeaView(),
		entity.HasBalcony(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create room", err, kindOf(err))
	}

	return id, nil
}

func (r *RoomRepository) Update(ctx context.Context, id int64, up shared.RoomUpdate) error {
	const q = `
		UPDATE rooms
		SET base_price = $2, capacity = $3, has_sea_view = $4, has_balcony = $5
		WHERE id = $1 AND NOT is_deleted`

	tag, err := r.db.Exec(ctx, q,
		id,
		pgconv.DecimalToNumeric(up.BasePrice),
		up.Capacity,
		up.HasSeaView,
		up.HasBalcony,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err, kindOf(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *RoomRepository) SoftDelete(ctx context.Context, id int64) error {
	const q = `UPDATE rooms SET is_deleted = true WHERE id = $1 AND NOT is_deleted`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *RoomRepository) UpdateBasePrice(ctx context.Context, id int64, price decimal.Decimal) error {
	const q = `UPDATE rooms SET base_price = $2 WHERE id = $1 AND NOT is_deleted`

	tag, err := r.db.Exec(ctx, q, id, pgconv.DecimalToNumeric(price))
	if err != nil {
		return infra.WrapRepoErr("failed to update room base price", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}

	return nil
}
