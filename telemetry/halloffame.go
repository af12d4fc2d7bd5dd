package telemetry

import (
	"encoding/json"
	"sort"
)

// HallOfFame keeps the best finished lifetimes, ranked by peak radius with
// eats and then survival time as tie-breaks.
type HallOfFame struct {
	entries []LifetimeStats
	maxSize int
}

// NewHallOfFame creates a hall holding at most maxSize entries.
func NewHallOfFame(maxSize int) *HallOfFame {
	if maxSize < 1 {
		maxSize = 1
	}
	return &HallOfFame{
		entries: make([]LifetimeStats, 0, maxSize),
		maxSize: maxSize,
	}
}

// Consider offers a finished lifetime to the hall. Returns true if it was
// admitted.
func (hof *HallOfFame) Consider(stats *LifetimeStats) bool {
	if stats == nil {
		return false
	}

	idx := sort.Search(len(hof.entries), func(i int) bool {
		return ranksAbove(*stats, hof.entries[i])
	})
	if idx >= hof.maxSize {
		return false
	}

	hof.entries = append(hof.entries, LifetimeStats{})
	copy(hof.entries[idx+1:], hof.entries[idx:])
	hof.entries[idx] = *stats
	if len(hof.entries) > hof.maxSize {
		hof.entries = hof.entries[:hof.maxSize]
	}
	return true
}

func ranksAbove(a, b LifetimeStats) bool {
	if a.PeakRadius != b.PeakRadius {
		return a.PeakRadius > b.PeakRadius
	}
	if a.Eats != b.Eats {
		return a.Eats > b.Eats
	}
	return a.SurvivalTimeSec > b.SurvivalTimeSec
}

// Entries returns the hall in rank order.
func (hof *HallOfFame) Entries() []LifetimeStats {
	return hof.entries
}

// Len returns the number of entries.
func (hof *HallOfFame) Len() int {
	return len(hof.entries)
}

// MarshalJSON serializes the hall.
func (hof *HallOfFame) MarshalJSON() ([]byte, error) {
	return json.MarshalIndent(struct {
		Entries []LifetimeStats `json:"entries"`
	}{hof.entries}, "", "  ")
}
