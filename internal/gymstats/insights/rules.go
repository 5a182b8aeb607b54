package insights

import (
	"fmt"
	"time"
)

const (
	volumeJumpFactor  = 1.3
	streakThreshold   = 5
	adherenceMinimum  = 0.6
	loadUpRepsOverTop = 1
	loadUpMinRPE      = 8.0
	loadUpMaxRIR      = 2.0
)

// VolumeJumpRule warns when the last week's volume is more than 30% above
// the week before. Exactly 1.3x does not trigger.
func VolumeJumpRule(agg Aggregates, now time.Time) *Insight {
	weeks := agg.SortedWeeks()
	if len(weeks) < 2 {
		return nil
	}

	prev := agg.WeeklyVolume[weeks[len(weeks)-2]]
	last := agg.WeeklyVolume[weeks[len(weeks)-1]]
	if prev <= 0 || last <= prev*volumeJumpFactor {
		return nil
	}

	return &Insight{
		ID:    IDVolumeJump,
		Type:  TypeRecovery,
		Title: "Volume spike detected",
		Description: fmt.Sprintf(
			"Your weekly volume jumped from %.0f kg to %.0f kg (+%.0f%%). Consider a lighter session to recover.",
			prev, last, (last/prev-1)*100,
		),
		Date:     now,
		Severity: SeverityWarning,
		Icon:     "trending-up",
		Meta: &Meta{
			PrevVolume: float64Ptr(prev),
			LastVolume: float64Ptr(last),
		},
	}
}

// StreakRule warns after 5 or more consecutive training days.
func StreakRule(agg Aggregates, now time.Time) *Insight {
	maxStreak := agg.LongestStreak()
	if maxStreak < streakThreshold {
		return nil
	}

	return &Insight{
		ID:          IDStreak,
		Type:        TypeRecovery,
		Title:       "Time for a rest day",
		Description: fmt.Sprintf("You trained %d days in a row. Muscles grow while resting, plan a recovery day.", maxStreak),
		Date:        now,
		Severity:    SeverityWarning,
		Icon:        "bed",
		Meta: &Meta{
			MaxStreak: intPtr(maxStreak),
		},
	}
}

// AdherenceRule flags a most recent week with mean adherence below 60%.
// Weeks without samples are not considered; no samples at all means no insight.
func AdherenceRule(samples []AdherenceSample, loc *time.Location, now time.Time) *Insight {
	if len(samples) == 0 {
		return nil
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, s := range samples {
		week := weekLabel(s.CreatedAt, loc)
		sums[week] += s.Value
		counts[week]++
	}

	weeks := sortedKeys(counts)
	lastWeek := weeks[len(weeks)-1]
	avg := sums[lastWeek] / float64(counts[lastWeek])
	if avg >= adherenceMinimum {
		return nil
	}

	return &Insight{
		ID:          IDAdherenceLow,
		Type:        TypeAdherence,
		Title:       "Plan adherence is low",
		Description: fmt.Sprintf("You completed %.0f%% of your planned training in your most recent tracked week. Smaller, realistic goals help consistency.", avg*100),
		Date:        now,
		Severity:    SeverityInfo,
		Icon:        "calendar",
		Meta: &Meta{
			AdherenceAvg: float64Ptr(round(avg, 2)),
		},
	}
}

// PersonalRecordRule fires when the best estimated 1RM of the last 7 days
// is at least the best of the whole window. Ties trigger as well.
func PersonalRecordRule(h *ExerciseHistory, now time.Time) *Insight {
	if len(h.RecentEntries()) == 0 {
		return nil
	}

	recentMax := h.RecentMax1RM()
	if recentMax <= 0 || recentMax < h.HistoricMax1RM() {
		return nil
	}

	return &Insight{
		ID:          prIDPrefix + h.ExerciseID,
		Type:        TypeProgress,
		Title:       fmt.Sprintf("New personal record: %s", h.ExerciseName),
		Description: fmt.Sprintf("Your estimated 1RM on %s reached %.1f kg. Great work!", h.ExerciseName, recentMax),
		Date:        now,
		Severity:    SeveritySuccess,
		Icon:        "trophy",
		Meta: &Meta{
			OneRepMax: float64Ptr(recentMax),
		},
	}
}

// LoadIncreaseRule suggests adding load when, in both of the last two
// sessions, the target reps were beaten by at least one rep at a high
// effort (RPE >= 8 or RIR <= 2).
func LoadIncreaseRule(h *ExerciseHistory, now time.Time) *Insight {
	sessions := h.Sessions()
	if len(sessions) < 2 {
		return nil
	}

	for _, s := range sessions[len(sessions)-2:] {
		if !readyForMoreLoad(s) {
			return nil
		}
	}

	return &Insight{
		ID:          loadUpIDPrefix + h.ExerciseID,
		Type:        TypeLoad,
		Title:       fmt.Sprintf("Increase the load: %s", h.ExerciseName),
		Description: fmt.Sprintf("You beat your rep target on %s in the last two sessions at a high effort. Try adding weight next time.", h.ExerciseName),
		Date:        now,
		Severity:    SeverityInfo,
		Icon:        "dumbbell",
	}
}

func readyForMoreLoad(s SessionStats) bool {
	if s.TargetReps <= 0 {
		return false
	}
	if s.RepsAvg < float64(s.TargetReps+loadUpRepsOverTop) {
		return false
	}
	return s.RPEAvg >= loadUpMinRPE || s.RIRAvg <= loadUpMaxRIR
}

// VolumeSummaryRule always reports the latest week's volume, if any.
func VolumeSummaryRule(agg Aggregates, now time.Time) *Insight {
	weeks := agg.SortedWeeks()
	if len(weeks) == 0 {
		return nil
	}

	lastWeek := weeks[len(weeks)-1]
	volume := int(round(agg.WeeklyVolume[lastWeek], 0))
	return &Insight{
		ID:          IDVolumeSummary,
		Type:        TypeVolume,
		Title:       "Weekly volume",
		Description: fmt.Sprintf("You lifted a total of %d kg in the week starting %s.", volume, lastWeek),
		Date:        now,
		Severity:    SeverityInfo,
		Icon:        "bar-chart",
		Meta: &Meta{
			WeeklyVolume: intPtr(volume),
		},
	}
}
