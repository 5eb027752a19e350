package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceSource tags which data source determined the base price that a
// suggestion was computed from.
type PriceSource string

const (
	SourceRoomHistory  PriceSource = "room_history"
	SourceHotelHistory PriceSource = "hotel_history"
	SourceBasePrice    PriceSource = "base_price"
	SourceDefault      PriceSource = "default"
	SourceMLModel      PriceSource = "ml_model"
)

const (
	// DefaultOccupancy stands in for the average occupancy when neither the
	// room nor its hotel has any usable history.
	DefaultOccupancy = 60.0

	// LookbackDays bounds the history window a suggestion considers,
	// relative to the time of computation.
	LookbackDays = 30

	// TrainingWindowDays bounds the history window exported to the
	// predictor's training endpoint.
	TrainingWindowDays = 180
)

// DefaultBasePrice avoids propagating a zero through the multiplier chain
// when no price signal exists at all.
var DefaultBasePrice = decimal.NewFromInt(500)

// HistoryEntry is the read-side projection of a price history row that the
// engine consumes. OccupancyPercent 0 means "no occupancy signal recorded",
// never an actual empty night.
type HistoryEntry struct {
	RoomID           int64
	Date             time.Time
	Price            decimal.Decimal
	OccupancyPercent int
}

// RoomFacts carries the room attributes the resolver and pipeline care about.
type RoomFacts struct {
	ID         int64
	BasePrice  decimal.Decimal
	Capacity   int
	HasSeaView bool
	HasBalcony bool
}

// RoundPrice applies the canonical final rounding: two fraction digits,
// half-to-even, so repeated runs over the same data are bit-identical.
func RoundPrice(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}
