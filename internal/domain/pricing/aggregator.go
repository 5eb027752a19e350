package pricing

import (
	"sort"
	"time"
)

// RecentWindow returns the inclusive cutoff for "recent" history, relative
// to the time of computation (not the target date).
func RecentWindow(now time.Time) time.Time {
	return now.AddDate(0, 0, -LookbackDays)
}

// FilterRecent keeps entries inside the lookback window that carry a real
// occupancy signal, newest first. Emptiness is a normal result; callers
// fall back through the resolver chain instead of failing.
func FilterRecent(entries []HistoryEntry, now time.Time) []HistoryEntry {
	cutoff := RecentWindow(now)
	out := make([]HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if e.OccupancyPercent > 0 && !e.Date.Before(cutoff) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
