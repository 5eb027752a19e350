package room

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyRoomNumber = errors.New("room number is required")
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrNegativePrice   = errors.New("base price cannot be negative")
)

// Room is the write-side aggregate. The base price may legitimately be zero
// (unset); the pricing engine then falls back through the history chain.
type Room struct {
	hotelID    int64
	number     string
	basePrice  decimal.Decimal
	capacity   int
	hasSeaView bool
	hasBalcony bool
}

func New(hotelID int64, number string, basePrice decimal.Decimal, capacity int, hasSeaView, hasBalcony bool) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptyRoomNumber
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if basePrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	return &Room{
		hotelID:    hotelID,
		number:     number,
		basePrice:  basePrice,
		capacity:   capacity,
		hasSeaView: hasSeaView,
		hasBalcony: hasBalcony,
	}, nil
}

func (r *Room) HotelID() int64 {
	return r.hotelID
}

func (r *Room) Number() string {
	return r.number
}

func (r *Room) BasePrice() decimal.Decimal {
	return r.basePrice
}

func (r *Room) Capacity() int {
	return r.capacity
}

func (r *Room) HasSeaView() bool {
	return r.hasSeaView
}

func (r *Room) HasBalcony() bool {
	return r.hasBalcony
}
