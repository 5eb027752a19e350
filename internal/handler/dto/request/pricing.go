package request

import (
	"time"

	"hotel-pricing/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

const commitDateLayout = "2006-01-02"

type ApplyPriceRequest struct {
	RoomID   int64           `json:"room_id" binding:"required"`
	NewPrice decimal.Decimal `json:"new_price" binding:"required"`
	Date     string          `json:"date" binding:"required"`
}

func (r ApplyPriceRequest) ToDomain() (pricing.Commit, error) {
	date, err := time.ParseInLocation(commitDateLayout, r.Date, time.UTC)
	if err != nil {
		return pricing.Commit{}, err
	}
	return pricing.NewCommit(r.RoomID, r.NewPrice, date)
}
