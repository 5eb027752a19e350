package readstore

import (
	"context"
	"time"

	"hotel-pricing/internal/infra"
	"hotel-pricing/internal/infra/db"
	"hotel-pricing/internal/pkg/pgconv"
	"hotel-pricing/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgtype"
)

type TrainingReadStore struct {
	db db.DBTX
}

func NewTrainingReadStore(dbtx db.DBTX) *TrainingReadStore {
	return &TrainingReadStore{db: dbtx}
}

// TrainingRows exports observed nights with room attributes for model
// training. Calendar features are derived here rather than stored.
func (s *TrainingReadStore) TrainingRows(ctx context.Context, since time.Time) ([]commands.TrainingRow, error) {
	const q = `
		SELECT ph.room_id, ph.date, ph.price, ph.occupancy_percent,
		       r.capacity, r.has_sea_view, r.has_balcony
		FROM price_history ph
		JOIN rooms r ON r.id = ph.room_id
		WHERE ph.date >= $1 AND ph.price > 0 AND NOT r.is_deleted
		ORDER BY ph.date`

	rows, err := s.db.Query(ctx, q, since)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query training rows", err)
	}
	defer rows.Close()

	var out []commands.TrainingRow
	for rows.Next() {
		var (
			row   commands.TrainingRow
			price pgtype.Numeric
		)
		err := rows.Scan(
			&row.RoomID, &row.Date, &price, &row.OccupancyPercent,
			&row.Capacity, &row.HasSeaView, &row.HasBalcony,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan training row", err)
		}
		row.Price, err = pgconv.NumericToDecimal(price)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode training price", err)
		}

		weekday := row.Date.Weekday()
		row.DayOfWeek = int(weekday)
		row.Month = int(row.Date.Month())
		row.IsWeekend = weekday == time.Friday || weekday == time.Saturday

		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read training rows", err)
	}
	return out, nil
}
