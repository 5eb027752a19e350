package response

import (
	"time"

	"hotel-pricing/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID         int64     `json:"id"`
	HotelID    int64     `json:"hotelId"`
	HotelName  string    `json:"hotelName"`
	Number     string    `json:"roomNumber"`
	BasePrice  float64   `json:"basePrice"`
	Capacity   int       `json:"capacity"`
	HasSeaView bool      `json:"hasSeaView"`
	HasBalcony bool      `json:"hasBalcony"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromRoomView(v *queries.RoomView) (*RoomResponse, error) {
	var resp RoomResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	// decimal does not map onto float64 by name, convert explicitly
	resp.BasePrice = v.BasePrice.InexactFloat64()
	return &resp, nil
}

func FromRoomViews(vs []*queries.RoomView) ([]*RoomResponse, error) {
	out := make([]*RoomResponse, 0, len(vs))
	for _, v := range vs {
		resp, err := FromRoomView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

type CreateRoomResponse struct {
	ID int64 `json:"id"`
}
