package hotel

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName    = errors.New("hotel name is required")
	ErrInvalidStars = errors.New("stars must be between 1 and 5")
)

// Hotel only groups rooms; the pricing engine uses it as the fallback scope
// for history aggregation.
type Hotel struct {
	name  string
	city  string
	state string
	stars int
}

func New(name, city, state string, stars int) (*Hotel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if stars < 1 || stars > 5 {
		return nil, ErrInvalidStars
	}
	return &Hotel{name: name, city: city, state: state, stars: stars}, nil
}

func (h *Hotel) Name() string {
	return h.name
}

func (h *Hotel) City() string {
	return h.city
}

func (h *Hotel) State() string {
	return h.state
}

func (h *Hotel) Stars() int {
	return h.stars
}
