package request

import (
	"hotel-pricing/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Email, error) {
	return user.NewEmail(r.Email)
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
}

func (r *RegisterRequest) ToDomain() (user.Email, error) {
	return user.NewEmail(r.Email)
}
