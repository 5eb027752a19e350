package response

import (
	"time"

	"hotel-pricing/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type HotelResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Stars     int       `json:"stars"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromHotelView(v *queries.HotelView) (*HotelResponse, error) {
	var resp HotelResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromHotelViews(vs []*queries.HotelView) ([]*HotelResponse, error) {
	out := make([]*HotelResponse, 0, len(vs))
	for _, v := range vs {
		resp, err := FromHotelView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

type CreateHotelResponse struct {
	ID int64 `json:"id"`
}
