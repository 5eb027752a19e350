package user

import (
	"errors"
	"strings"
)

var (
	ErrInvalidRole  = errors.New("invalid role")
	ErrInvalidEmail = errors.New("invalid email")
)

// Role controls what a caller may do with pricing suggestions: staff can
// read them, revenue managers can commit them, admins manage everything.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleRevenueManager Role = "revenue_manager"
	RoleStaff          Role = "staff"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleRevenueManager, RoleStaff:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	trimmed := strings.TrimSpace(strings.ToLower(s))
	at := strings.Index(trimmed, "@")
	if at <= 0 || at == len(trimmed)-1 {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) String() string {
	return e.value
}

// HasDomain reports whether the address belongs to the given mail domain
// (compared case-insensitively, domain includes the leading "@").
func (e Email) HasDomain(domain string) bool {
	return strings.HasSuffix(e.value, strings.ToLower(domain))
}
