package insights

import (
	"sort"
	"time"
)

const (
	recentWindow = 7 * 24 * time.Hour

	// values blended into the session accumulator when the set has none
	missingRPE = 0.0
	missingRIR = 10.0
)

// Entry is a set record joined with the target reps of its session.
type Entry struct {
	Date       time.Time
	Weight     float64
	Reps       int
	RPE        *float64
	RIR        *int
	WorkoutID  string
	TargetReps int
}

func (e Entry) estimated1RM() float64 {
	return Estimate1RM(e.Weight, e.Reps)
}

// ExerciseHistory holds the chronological entries of a single exercise.
type ExerciseHistory struct {
	ExerciseID   string
	ExerciseName string
	Entries      []Entry

	now time.Time
}

// SessionStats is the blended accumulator of one session's sets.
type SessionStats struct {
	WorkoutID  string
	RepsAvg    float64
	RPEAvg     float64
	RIRAvg     float64
	TargetReps int
}

type targetKey struct {
	workoutID  string
	exerciseID string
}

// BuildHistories groups the sets per exercise. The returned histories are
// sorted by exercise id, and the entries of each by date (stable, so sets
// of the same session keep the order they were fetched in).
func BuildHistories(sets []SetRecord, targets []TargetRecord, now time.Time) []*ExerciseHistory {
	targetReps := make(map[targetKey]int, len(targets))
	for _, t := range targets {
		targetReps[targetKey{workoutID: t.WorkoutID, exerciseID: t.ExerciseID}] = t.TargetReps
	}

	byExercise := make(map[string]*ExerciseHistory)
	for _, s := range sets {
		h, ok := byExercise[s.ExerciseID]
		if !ok {
			h = &ExerciseHistory{
				ExerciseID:   s.ExerciseID,
				ExerciseName: s.ExerciseName,
				now:          now,
			}
			byExercise[s.ExerciseID] = h
		}
		h.Entries = append(h.Entries, Entry{
			Date:       s.at(now),
			Weight:     s.Weight,
			Reps:       s.Reps,
			RPE:        s.RPE,
			RIR:        s.RIR,
			WorkoutID:  s.WorkoutID,
			TargetReps: targetReps[targetKey{workoutID: s.WorkoutID, exerciseID: s.ExerciseID}],
		})
	}

	histories := make([]*ExerciseHistory, 0, len(byExercise))
	for _, h := range byExercise {
		sort.SliceStable(h.Entries, func(i, j int) bool {
			return h.Entries[i].Date.Before(h.Entries[j].Date)
		})
		histories = append(histories, h)
	}
	sort.Slice(histories, func(i, j int) bool {
		return histories[i].ExerciseID < histories[j].ExerciseID
	})

	return histories
}

// HistoricMax1RM is the best estimated 1RM over all entries in the window.
func (h *ExerciseHistory) HistoricMax1RM() float64 {
	return max1RM(h.Entries)
}

// RecentEntries returns the entries of the last 7 days, as of now.
func (h *ExerciseHistory) RecentEntries() []Entry {
	from := h.now.Add(-recentWindow)
	var recent []Entry
	for _, e := range h.Entries {
		if !e.Date.Before(from) {
			recent = append(recent, e)
		}
	}
	return recent
}

// RecentMax1RM is the best estimated 1RM of the last 7 days, 0 if none.
func (h *ExerciseHistory) RecentMax1RM() float64 {
	return max1RM(h.RecentEntries())
}

// Sessions returns one accumulator per workout, in chronological order of
// the workouts' first entries. Each subsequent set of a session is blended
// 50/50 with the accumulator so far, so later sets weigh more than earlier
// ones. Load-increase thresholds are calibrated on this blend.
func (h *ExerciseHistory) Sessions() []SessionStats {
	var order []string
	byWorkout := make(map[string]*SessionStats)

	for _, e := range h.Entries {
		rpe, rir := missingRPE, missingRIR
		if e.RPE != nil {
			rpe = *e.RPE
		}
		if e.RIR != nil {
			rir = float64(*e.RIR)
		}

		acc, ok := byWorkout[e.WorkoutID]
		if !ok {
			byWorkout[e.WorkoutID] = &SessionStats{
				WorkoutID:  e.WorkoutID,
				RepsAvg:    float64(e.Reps),
				RPEAvg:     rpe,
				RIRAvg:     rir,
				TargetReps: e.TargetReps,
			}
			order = append(order, e.WorkoutID)
			continue
		}

		acc.RepsAvg = (acc.RepsAvg + float64(e.Reps)) / 2
		acc.RPEAvg = (acc.RPEAvg + rpe) / 2
		acc.RIRAvg = (acc.RIRAvg + rir) / 2
		if acc.TargetReps == 0 {
			acc.TargetReps = e.TargetReps
		}
	}

	sessions := make([]SessionStats, 0, len(order))
	for _, workoutID := range order {
		sessions = append(sessions, *byWorkout[workoutID])
	}
	return sessions
}

func max1RM(entries []Entry) float64 {
	var best float64
	for _, e := range entries {
		if est := e.estimated1RM(); est > best {
			best = est
		}
	}
	return best
}
