package repository

import (
	"context"

	"hotel-pricing/internal/infra"
	"hotel-pricing/internal/infra/db"
	"hotel-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, params shared.NewUser) (uuid.UUID, error) {
	const q = `
		INSERT INTO users (id, email, password_hash, full_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, true)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		uuid.New(),
		params.Email,
		params.PasswordHash,
		params.FullName,
		params.Role.String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err, kindOf(err))
	}

	return id, nil
}
