//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"hotel-pricing/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func entry(day int, price string, occ int) pricing.HistoryEntry {
	return pricing.HistoryEntry{
		Date:             date(2026, time.October, day),
		Price:            dec(price),
		OccupancyPercent: occ,
	}
}

func TestResolve_RoomReferencePriceWins(t *testing.T) {
	room := pricing.RoomFacts{BasePrice: decimal.NewFromInt(800)}

	res := pricing.Resolve(room, nil, nil)

	require.True(t, dec("800").Equal(res.BasePrice))
	require.Equal(t, pricing.SourceBasePrice, res.Source)
	require.Equal(t, pricing.DefaultOccupancy, res.AvgOccupancy)
	require.False(t, res.HadHistory)
}

func TestResolve_FallsBackToRoomHistoryMean(t *testing.T) {
	roomHistory := []pricing.HistoryEntry{
		entry(1, "100", 70),
		entry(2, "200", 80),
	}

	res := pricing.Resolve(pricing.RoomFacts{}, roomHistory, nil)

	require.True(t, dec("150").Equal(res.BasePrice), "got %s", res.BasePrice)
	require.Equal(t, pricing.SourceRoomHistory, res.Source)
	require.Equal(t, 75.0, res.AvgOccupancy)
	require.True(t, res.HadHistory)
}

func TestResolve_FallsBackToHotelHistoryMean(t *testing.T) {
	hotelHistory := []pricing.HistoryEntry{entry(3, "300", 40)}

	res := pricing.Resolve(pricing.RoomFacts{}, nil, hotelHistory)

	require.True(t, dec("300").Equal(res.BasePrice))
	require.Equal(t, pricing.SourceHotelHistory, res.Source)
	require.Equal(t, 40.0, res.AvgOccupancy)
	require.True(t, res.HadHistory)
}

func TestResolve_DefaultsWhenNothingKnown(t *testing.T) {
	res := pricing.Resolve(pricing.RoomFacts{}, nil, nil)

	require.True(t, pricing.DefaultBasePrice.Equal(res.BasePrice))
	require.Equal(t, pricing.SourceDefault, res.Source)
	require.Equal(t, pricing.DefaultOccupancy, res.AvgOccupancy)
	require.False(t, res.HadHistory)
}

func TestResolve_ChainsAreIndependent(t *testing.T) {
	// Room history carries occupancy but no positive price, so occupancy comes
	// from the room while the price falls through to the hotel mean.
	roomHistory := []pricing.HistoryEntry{
		entry(1, "0", 90),
		entry(2, "0", 70),
	}
	hotelHistory := []pricing.HistoryEntry{entry(3, "250", 30)}

	res := pricing.Resolve(pricing.RoomFacts{}, roomHistory, hotelHistory)

	require.Equal(t, 80.0, res.AvgOccupancy)
	require.True(t, dec("250").Equal(res.BasePrice))
	require.Equal(t, pricing.SourceHotelHistory, res.Source)
	require.True(t, res.HadHistory)
}

func TestResolve_ZeroPricesExcludedFromMean(t *testing.T) {
	roomHistory := []pricing.HistoryEntry{
		entry(1, "0", 50),
		entry(2, "120", 50),
		entry(3, "180", 50),
	}

	res := pricing.Resolve(pricing.RoomFacts{}, roomHistory, nil)

	require.True(t, dec("150").Equal(res.BasePrice), "got %s", res.BasePrice)
	require.Equal(t, pricing.SourceRoomHistory, res.Source)
}
