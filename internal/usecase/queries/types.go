package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoomView represents read-optimized room data
type RoomView struct {
	ID         int64           `json:"id"`
	HotelID    int64           `json:"hotel_id"`
	HotelName  string          `json:"hotel_name"`
	Number     string          `json:"room_number"`
	BasePrice  decimal.Decimal `json:"base_price"`
	Capacity   int             `json:"capacity"`
	HasSeaView bool            `json:"has_sea_view"`
	HasBalcony bool            `json:"has_balcony"`
	CreatedAt  time.Time       `json:"created_at"`
}

// HotelView represents read-optimized hotel data
type HotelView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Stars     int       `json:"stars"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// SuggestionView is the full result of a price suggestion, including the
// intermediate values a revenue manager needs to judge the number.
type SuggestionView struct {
	RoomID         int64           `json:"room_id"`
	TargetDate     time.Time       `json:"target_date"`
	SuggestedPrice decimal.Decimal `json:"suggested_price"`
	Currency       string          `json:"currency"`
	BasePriceUsed  decimal.Decimal `json:"base_price_used"`
	AvgOccupancy   float64         `json:"avg_occupancy"`
	HadHistory     bool            `json:"had_history"`
	PriceSource    string          `json:"price_source"`
	ModelVersion   *string         `json:"model_version,omitempty"`
}
