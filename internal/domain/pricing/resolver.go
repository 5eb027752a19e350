package pricing

import "github.com/shopspring/decimal"

// Resolution is the outcome of the base-value fallback chains.
type Resolution struct {
	BasePrice    decimal.Decimal
	AvgOccupancy float64
	HadHistory   bool
	Source       PriceSource
}

// Resolve applies the fallback chains for average occupancy and base price.
// The two chains are independent: a room can have a real reference price but
// no occupancy history, or the other way around. Source reflects only where
// the base price came from.
func Resolve(room RoomFacts, roomHistory, hotelHistory []HistoryEntry) Resolution {
	var res Resolution

	switch {
	case len(roomHistory) > 0:
		res.AvgOccupancy = meanOccupancy(roomHistory)
		res.HadHistory = true
	case len(hotelHistory) > 0:
		res.AvgOccupancy = meanOccupancy(hotelHistory)
		res.HadHistory = true
	default:
		res.AvgOccupancy = DefaultOccupancy
	}

	if room.BasePrice.IsPositive() {
		res.BasePrice, res.Source = room.BasePrice, SourceBasePrice
	} else if p, ok := meanPositivePrice(roomHistory); ok {
		res.BasePrice, res.Source = p, SourceRoomHistory
	} else if p, ok := meanPositivePrice(hotelHistory); ok {
		res.BasePrice, res.Source = p, SourceHotelHistory
	} else {
		res.BasePrice, res.Source = DefaultBasePrice, SourceDefault
	}

	return res
}

func meanOccupancy(entries []HistoryEntry) float64 {
	sum := 0
	for _, e := range entries {
		sum += e.OccupancyPercent
	}
	return float64(sum) / float64(len(entries))
}

func meanPositivePrice(entries []HistoryEntry) (decimal.Decimal, bool) {
	sum := decimal.Zero
	count := 0
	for _, e := range entries {
		if e.Price.IsPositive() {
			sum = sum.Add(e.Price)
			count++
		}
	}
	if count == 0 {
		return decimal.Zero, false
	}
	return sum.Div(decimal.NewFromInt(int64(count))), true
}
