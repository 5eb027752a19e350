package request

import (
	"hotel-pricing/internal/domain/hotel"
)

type CreateHotelRequest struct {
	Name  string `json:"name" binding:"required"`
	City  string `json:"city"`
	State string `json:"state"`
	Stars int    `json:"stars" binding:"required,min=1,max=5"`
}

func (r CreateHotelRequest) ToDomain() (*hotel.Hotel, error) {
	return hotel.New(r.Name, r.City, r.State, r.Stars)
}
