package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// Multipliers are decimals so compounding keeps full precision; rounding
// happens once, at the very end of the pipeline.
var (
	one = decimal.NewFromInt(1)

	occVeryHigh = decimal.RequireFromString("1.35")
	occHigh     = decimal.RequireFromString("1.25")
	occElevated = decimal.RequireFromString("1.12")
	occVeryLow  = decimal.RequireFromString("0.80")
	occLow      = decimal.RequireFromString("0.90")

	weekendFactor = decimal.RequireFromString("1.20")
	sundayFactor  = decimal.RequireFromString("1.10")

	seasonPeak     = decimal.RequireFromString("1.40")
	seasonHigh     = decimal.RequireFromString("1.25")
	seasonShoulder = decimal.RequireFromString("1.15")
	seasonSummer   = decimal.RequireFromString("1.12")
	seasonSpring   = decimal.RequireFromString("1.08")

	seaViewFactor  = decimal.RequireFromString("1.15")
	balconyFactor  = decimal.RequireFromString("1.10")
	familyFactor   = decimal.RequireFromString("1.12")
	familyCapacity = 4

	coldStartBoost  = decimal.RequireFromString("1.08")
	coldStartDampen = decimal.RequireFromString("0.95")
)

// Apply runs the fixed multiplier pipeline over the resolved base price.
// Order matters because the effects compound: occupancy tier, weekday,
// season, room features, then the no-history adjustment. The result is the
// only place prices are rounded.
func Apply(base decimal.Decimal, avgOccupancy float64, targetDate time.Time, room RoomFacts, hadHistory bool) decimal.Decimal {
	price := base
	price = price.Mul(occupancyTier(avgOccupancy))
	price = price.Mul(weekdayFactorOf(targetDate.Weekday()))
	price = price.Mul(seasonFactorOf(targetDate.Month()))
	price = price.Mul(featureFactorOf(room))
	if !hadHistory {
		price = price.Mul(coldStartFactor(avgOccupancy))
	}
	return RoundPrice(price)
}

// Highest qualifying tier wins; the low tiers are only reachable once the
// high ones have been ruled out, so <35 is checked before <50. The band
// from 50 to 65 inclusive is neutral, which keeps the synthetic default
// occupancy of 60 from moving the price on its own.
func occupancyTier(occ float64) decimal.Decimal {
	switch {
	case occ > 85:
		return occVeryHigh
	case occ > 75:
		return occHigh
	case occ > 65:
		return occElevated
	case occ < 35:
		return occVeryLow
	case occ < 50:
		return occLow
	default:
		return one
	}
}

func weekdayFactorOf(day time.Weekday) decimal.Decimal {
	switch day {
	case time.Friday, time.Saturday:
		return weekendFactor
	case time.Sunday:
		return sundayFactor
	default:
		return one
	}
}

// First match wins: July/August outrank the generic June-September band, so
// that band effectively covers June and September only.
func seasonFactorOf(month time.Month) decimal.Decimal {
	switch {
	case month == time.December || month == time.January:
		return seasonPeak
	case month == time.July || month == time.August:
		return seasonHigh
	case month == time.November || month == time.February:
		return seasonShoulder
	case month >= time.June && month <= time.September:
		return seasonSummer
	case month >= time.March && month <= time.May:
		return seasonSpring
	default:
		return one // October
	}
}

// Feature bonuses stack.
func featureFactorOf(room RoomFacts) decimal.Decimal {
	factor := one
	if room.HasSeaView {
		factor = factor.Mul(seaViewFactor)
	}
	if room.HasBalcony {
		factor = factor.Mul(balconyFactor)
	}
	if room.Capacity >= familyCapacity {
		factor = factor.Mul(familyFactor)
	}
	return factor
}

// coldStartFactor lets a room with no observed history still respond, in a
// bounded way, to the hotel-level or default occupancy signal. At the
// synthetic default of 60 neither branch triggers and the factor is inert.
func coldStartFactor(occ float64) decimal.Decimal {
	switch {
	case occ > 75:
		return coldStartBoost
	case occ < 45:
		return coldStartDampen
	default:
		return one
	}
}
