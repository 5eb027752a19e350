package repository

import (
	"context"

	"hotel-pricing/internal/infra"
	"hotel-pricing/internal/infra/db"
	"hotel-pricing/internal/pkg/pgconv"
	"hotel-pricing/internal/usecase/shared"
)

type PriceHistoryRepository struct {
	db db.DBTX
}

func NewPriceHistoryRepository(dbtx db.DBTX) *PriceHistoryRepository {
	return &PriceHistoryRepository{db: dbtx}
}

// Append inserts a new history row. Rows are immutable once written; later
// occupancy reconciliation happens outside this service.
func (r *PriceHistoryRepository) Append(ctx context.Context, entry shared.NewHistoryEntry) (int64, error) {
	const q = `
		INSERT INTO price_history (room_id, date, price, occupancy_percent, predicted_price, predicted_occupancy)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, q,
		entry.RoomID,
		entry.Date,
		pgconv.DecimalToNumeric(entry.Price),
		entry.OccupancyPercent,
		pgconv.NullableDecimalToNumeric(entry.PredictedPrice),
		entry.PredictedOccupancy,
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to append price history", err, kindOf(err))
	}

	return id, nil
}
