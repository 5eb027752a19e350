package request

import (
	"hotel-pricing/internal/domain/room"

	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	HotelID    int64           `json:"hotel_id" binding:"required"`
	RoomNumber string          `json:"room_number" binding:"required"`
	BasePrice  decimal.Decimal `json:"base_price"`
	Capacity   int             `json:"capacity" binding:"required,min=1"`
	HasSeaView bool            `json:"has_sea_view"`
	HasBalcony bool            `json:"has_balcony"`
}

func (r CreateRoomRequest) ToDomain() (*room.Room, error) {
	return room.New(r.HotelID, r.RoomNumber, r.BasePrice, r.Capacity, r.HasSeaView, r.HasBalcony)
}

type UpdateRoomRequest struct {
	BasePrice  decimal.Decimal `json:"base_price"`
	Capacity   int             `json:"capacity" binding:"required,min=1"`
	HasSeaView bool            `json:"has_sea_view"`
	HasBalcony bool            `json:"has_balcony"`
}
