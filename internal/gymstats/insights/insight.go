package insights

import "time"

type Type string

const (
	TypeProgress  Type = "progress"
	TypeLoad      Type = "load"
	TypeRecovery  Type = "recovery"
	TypeAdherence Type = "adherence"
	TypeVolume    Type = "volume"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

const (
	IDVolumeJump    = "recovery-volume-jump"
	IDStreak        = "recovery-streak"
	IDAdherenceLow  = "adherence-low"
	IDVolumeSummary = "volume-summary"

	prIDPrefix     = "pr-"
	loadUpIDPrefix = "load-up-"
)

// Insight is a single coaching message. Date is always the generation time,
// never the time of the underlying training event.
type Insight struct {
	ID          string    `json:"id"`
	Type        Type      `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Severity    Severity  `json:"severity"`
	Icon        string    `json:"icon"`
	Meta        *Meta     `json:"meta,omitempty"`
}

// Meta carries the numeric context of an insight. Every rule fills only
// its own fields, the rest stay nil and are omitted from JSON.
type Meta struct {
	PrevVolume   *float64 `json:"prevVolume,omitempty"`
	LastVolume   *float64 `json:"lastVolume,omitempty"`
	MaxStreak    *int     `json:"maxStreak,omitempty"`
	AdherenceAvg *float64 `json:"adherenceAvg,omitempty"`
	OneRepMax    *float64 `json:"oneRepMax,omitempty"`
	WeeklyVolume *int     `json:"weeklyVolume,omitempty"`
}

// SetRecord is one completed set, joined with its exercise and the
// completion time of the parent session.
type SetRecord struct {
	Weight       float64    `json:"weight"`
	Reps         int        `json:"reps"`
	RPE          *float64   `json:"rpe,omitempty"`
	RIR          *int       `json:"rir,omitempty"`
	ExerciseID   string     `json:"exerciseId"`
	ExerciseName string     `json:"exerciseName"`
	WorkoutID    string     `json:"workoutId"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

// at returns the instant the set is bucketed by
func (s SetRecord) at(now time.Time) time.Time {
	if s.CompletedAt == nil {
		return now
	}
	return *s.CompletedAt
}

type TargetRecord struct {
	WorkoutID  string `json:"workoutId"`
	ExerciseID string `json:"exerciseId"`
	TargetReps int    `json:"targetReps"`
}

type AdherenceSample struct {
	Value     float64   `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
}

// Snapshot is the read-only input of one invocation.
type Snapshot struct {
	Sets      []SetRecord
	Targets   []TargetRecord
	Adherence []AdherenceSample
}

func float64Ptr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}
