package readstore

import (
	"context"
	"time"

	"hotel-pricing/internal/domain/pricing"
	"hotel-pricing/internal/infra"
	"hotel-pricing/internal/infra/db"
	"hotel-pricing/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type PriceHistoryReadStore struct {
	db db.DBTX
}

func NewPriceHistoryReadStore(dbtx db.DBTX) *PriceHistoryReadStore {
	return &PriceHistoryReadStore{db: dbtx}
}

func (s *PriceHistoryReadStore) RecentByRoom(ctx context.Context, roomID int64, since time.Time) ([]pricing.HistoryEntry, error) {
	const q = `
		SELECT room_id, date, price, occupancy_percent
		FROM price_history
		WHERE room_id = $1 AND date >= $2
		ORDER BY date DESC`

	rows, err := s.db.Query(ctx, q, roomID, since)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query room price history", err)
	}
	return scanHistoryEntries(rows)
}

func (s *PriceHistoryReadStore) RecentByHotel(ctx context.Context, hotelID int64, since time.Time) ([]pricing.HistoryEntry, error) {
	const q = `
		SELECT ph.room_id, ph.date, ph.price, ph.occupancy_percent
		FROM price_history ph
		JOIN rooms r ON r.id = ph.room_id
		WHERE r.hotel_id = $1 AND ph.date >= $2
		ORDER BY ph.date DESC`

	rows, err := s.db.Query(ctx, q, hotelID, since)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query hotel price history", err)
	}
	return scanHistoryEntries(rows)
}

func scanHistoryEntries(rows pgx.Rows) ([]pricing.HistoryEntry, error) {
	defer rows.Close()

	var entries []pricing.HistoryEntry
	for rows.Next() {
		var (
			entry pricing.HistoryEntry
			price pgtype.Numeric
		)
		err := rows.Scan(&entry.RoomID, &entry.Date, &price, &entry.OccupancyPercent)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan price history row", err)
		}
		entry.Price, err = pgconv.NumericToDecimal(price)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode history price", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read price history rows", err)
	}
	return entries, nil
}
