package insights

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gyminsights/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// LookbackWindow bounds all the data the engine considers.
const LookbackWindow = 12 * 7 * 24 * time.Hour

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=insights_test

type dataSource interface {
	ListCompletedSets(ctx context.Context, userID string, since time.Time) ([]SetRecord, error)
	ListTargets(ctx context.Context, userID string, since time.Time) ([]TargetRecord, error)
	ListAdherence(ctx context.Context, userID string, since time.Time) ([]AdherenceSample, error)
}

// Engine computes the insights of one user per call. It holds no mutable
// state and a single instance is safe for concurrent use.
type Engine struct {
	source dataSource
	now    func() time.Time
	loc    *time.Location
}

type Option func(*Engine)

// WithClock overrides time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithLocation sets the time zone used for day and week buckets (default UTC).
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

func NewEngine(source dataSource, opts ...Option) *Engine {
	e := &Engine{
		source: source,
		now:    time.Now,
		loc:    time.UTC,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ComputeInsights fetches the user's snapshot and runs all the rules on it.
// An empty user ID (no session) yields an empty list, not an error.
func (e *Engine) ComputeInsights(ctx context.Context, userID string) (_ []Insight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.insights.compute")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	if userID == "" {
		return []Insight{}, nil
	}

	now := e.now()
	snapshot, err := e.snapshot(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	insights := Assemble(snapshot, now, e.loc)
	span.SetAttributes(
		attribute.Int("sets", len(snapshot.Sets)),
		attribute.Int("insights", len(insights)),
	)

	return insights, nil
}

// VolumeReport is the aggregated training volume of the lookback window.
type VolumeReport struct {
	From          time.Time          `json:"from"`
	To            time.Time          `json:"to"`
	WeeklyVolume  map[string]float64 `json:"weeklyVolume"`
	TrainingDays  int                `json:"trainingDays"`
	LongestStreak int                `json:"longestStreak"`
}

// TrainingVolume returns the weekly volume and training days of the user.
func (e *Engine) TrainingVolume(ctx context.Context, userID string) (_ *VolumeReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.insights.volume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	now := e.now()
	report := &VolumeReport{
		From:         now.Add(-LookbackWindow),
		To:           now,
		WeeklyVolume: make(map[string]float64),
	}
	if userID == "" {
		return report, nil
	}

	sets, err := e.source.ListCompletedSets(ctx, userID, report.From)
	if err != nil {
		return nil, fmt.Errorf("list completed sets: %w", err)
	}

	agg := Aggregate(sets, now, e.loc)
	report.WeeklyVolume = agg.WeeklyVolume
	report.TrainingDays = len(agg.DayTrainCounts)
	report.LongestStreak = agg.LongestStreak()

	return report, nil
}

// snapshot is all-or-nothing: the first failing source aborts the call.
func (e *Engine) snapshot(ctx context.Context, userID string, now time.Time) (Snapshot, error) {
	since := now.Add(-LookbackWindow)

	sets, err := e.source.ListCompletedSets(ctx, userID, since)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list completed sets: %w", err)
	}
	targets, err := e.source.ListTargets(ctx, userID, since)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list targets: %w", err)
	}
	adherence, err := e.source.ListAdherence(ctx, userID, since)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list adherence: %w", err)
	}

	return Snapshot{
		Sets:      sets,
		Targets:   targets,
		Adherence: adherence,
	}, nil
}

// Assemble runs every rule over the snapshot, in reference order:
// volume jump, streak, adherence, then PR and load-up per exercise,
// and the volume summary last. The result is neither sorted nor deduplicated.
func Assemble(snapshot Snapshot, now time.Time, loc *time.Location) []Insight {
	agg := Aggregate(snapshot.Sets, now, loc)
	histories := BuildHistories(snapshot.Sets, snapshot.Targets, now)

	insights := make([]Insight, 0)
	add := func(i *Insight) {
		if i != nil {
			insights = append(insights, *i)
		}
	}

	add(VolumeJumpRule(agg, now))
	add(StreakRule(agg, now))
	add(AdherenceRule(snapshot.Adherence, loc, now))
	for _, h := range histories {
		add(PersonalRecordRule(h, now))
		add(LoadIncreaseRule(h, now))
	}
	add(VolumeSummaryRule(agg, now))

	return insights
}
