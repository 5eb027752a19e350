package readstore

import (
	"context"

	"hotel-pricing/internal/infra"
	"hotel-pricing/internal/infra/db"
	"hotel-pricing/internal/pkg/pgconv"
	"hotel-pricing/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

const roomViewColumns = `
	r.id, r.hotel_id, h.name, r.room_number, r.base_price, r.capacity,
	r.has_sea_view, r.has_balcony, r.created_at`

func (s *RoomReadStore) FindByID(ctx context.Context, id int64) (*queries.RoomView, error) {
	q := `
		SELECT` + roomViewColumns + `
		FROM rooms r
		JOIN hotels h ON h.id = r.hotel_id
		WHERE r.id = $1 AND NOT r.is_deleted`

	var (
		view      queries.RoomView
		basePrice pgtype.Numeric
	)
	err := s.db.QueryRow(ctx, q, id).Scan(
		&view.ID, &view.HotelID, &view.HotelName, &view.Number, &basePrice,
		&view.Capacity, &view.HasSeaView, &view.HasBalcony, &view.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	view.BasePrice, err = pgconv.NumericToDecimal(basePrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode room base price", err)
	}
	return &view, nil
}

func (s *RoomReadStore) FindByHotelID(ctx context.Context, hotelID int64) ([]*queries.RoomView, error) {
	q := `
		SELECT` + roomViewColumns + `
		FROM rooms r
		JOIN hotels h ON h.id = r.hotel_id
		WHERE r.hotel_id = $1 AND NOT r.is_deleted
		ORDER BY r.room_number`

	rows, err := s.db.Query(ctx, q, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var views []*queries.RoomView
	for rows.Next() {
		var (
			view      queries.RoomView
			basePrice pgtype.Numeric
		)
		err := rows.Scan(
			&view.ID, &view.HotelID, &view.HotelName, &view.Number, &basePrice,
			&view.Capacity, &view.HasSeaView, &view.HasBalcony, &view.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		view.BasePrice, err = pgconv.NumericToDecimal(basePrice)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode room base price", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room rows", err)
	}
	return views, nil
}
