package readstore

import (
	"context"

	"hotel-pricing/internal/infra"
	"hotel-pricing/internal/infra/db"
	"hotel-pricing/internal/pkg/pgconv"
	"hotel-pricing/internal/usecase/queries"
)

type HotelReadStore struct {
	db db.DBTX
}

func NewHotelReadStore(dbtx db.DBTX) *HotelReadStore {
	return &HotelReadStore{db: dbtx}
}

func (s *HotelReadStore) FindByID(ctx context.Context, id int64) (*queries.HotelView, error) {
	const q = `
		SELECT id, name, city, state, stars, created_at
		FROM hotels
		WHERE id = $1`

	var view queries.HotelView
	err := s.db.QueryRow(ctx, q, id).Scan(
		&view.ID, &view.Name, &view.City, &view.State, &view.Stars, &view.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel by ID", err)
	}
	return &view, nil
}

func (s *HotelReadStore) FindAll(ctx context.Context) ([]*queries.HotelView, error) {
	const q = `
		SELECT id, name, city, state, stars, created_at
		FROM hotels
		ORDER BY name`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotels", err)
	}
	defer rows.Close()

	var views []*queries.HotelView
	for rows.Next() {
		var view queries.HotelView
		err := rows.Scan(&view.ID, &view.Name, &view.City, &view.State, &view.Stars, &view.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan hotel row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read hotel rows", err)
	}
	return views, nil
}
