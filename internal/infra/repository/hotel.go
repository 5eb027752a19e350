package repository

import (
	"context"

	"hotel-pricing/internal/domain/hotel"
	"hotel-pricing/internal/infra"
	"hotel-pricing/internal/infra/db"
)

type HotelRepository struct {
	db db.DBTX
}

func NewHotelRepository(dbtx db.DBTX) *HotelRepository {
	return &HotelRepository{db: dbtx}
}

func (r *HotelRepository) Create(ctx context.Context, entity *hotel.Hotel) (int64, error) {
	const q = `
		INSERT INTO hotels (name, city, state, stars)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, q, entity.Name(), entity.City(), entity.State(), entity.Stars()).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create hotel", err, kindOf(err))
	}

	return id, nil
}
