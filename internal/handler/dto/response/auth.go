package response

import (
	"hotel-pricing/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken string                      `json:"accessToken"`
	User        *queries.AuthorizedUserView `json:"user"`
}

type RegisterResponse struct {
	ID uuid.UUID `json:"id"`
}
