package insights

import (
	"sort"
	"time"
)

const labelLayout = "2006-01-02"

// Aggregates holds the time-series view of the sets in the lookback window.
// Keys are YYYY-MM-DD labels: the Monday of the ISO week for WeeklyVolume,
// and the calendar day for DayTrainCounts.
type Aggregates struct {
	WeeklyVolume   map[string]float64 `json:"weeklyVolume"`
	DayTrainCounts map[string]int     `json:"dayTrainCounts"`
}

// Aggregate buckets every set by the week and the day of its completion
// time (or now, if the set has none), in the given location.
func Aggregate(sets []SetRecord, now time.Time, loc *time.Location) Aggregates {
	agg := Aggregates{
		WeeklyVolume:   make(map[string]float64),
		DayTrainCounts: make(map[string]int),
	}

	for _, s := range sets {
		at := s.at(now)
		agg.WeeklyVolume[weekLabel(at, loc)] += s.Weight * float64(s.Reps)
		agg.DayTrainCounts[dayLabel(at, loc)]++
	}

	return agg
}

// SortedWeeks returns the week labels in chronological order.
func (a Aggregates) SortedWeeks() []string {
	return sortedKeys(a.WeeklyVolume)
}

// SortedDays returns the training day labels in chronological order.
func (a Aggregates) SortedDays() []string {
	return sortedKeys(a.DayTrainCounts)
}

// LongestStreak returns the length of the longest run of consecutive
// calendar days with at least one set logged.
func (a Aggregates) LongestStreak() int {
	days := a.SortedDays()
	if len(days) == 0 {
		return 0
	}

	maxStreak, streak := 1, 1
	prev, _ := time.Parse(labelLayout, days[0])
	for _, label := range days[1:] {
		day, err := time.Parse(labelLayout, label)
		if err != nil {
			// not produced by dayLabel, cannot happen
			continue
		}
		// labels are parsed as UTC midnights, so a day is exactly 24h
		if day.Sub(prev) == 24*time.Hour {
			streak++
		} else {
			streak = 1
		}
		if streak > maxStreak {
			maxStreak = streak
		}
		prev = day
	}

	return maxStreak
}

func weekLabel(t time.Time, loc *time.Location) string {
	t = t.In(loc)
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	// time.Weekday starts on Sunday, ISO weeks on Monday
	offset := (int(midnight.Weekday()) + 6) % 7
	return midnight.AddDate(0, 0, -offset).Format(labelLayout)
}

func dayLabel(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(labelLayout)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// YYYY-MM-DD labels sort lexicographically in chronological order
	sort.Strings(keys)
	return keys
}
