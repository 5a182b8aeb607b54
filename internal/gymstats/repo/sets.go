package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gyminsights/internal/gymstats/insights"
	"github.com/2beens/gyminsights/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// ListCompletedSets returns the sets of the user's completed sessions in the
// window. A completed session without a completion time is still included,
// the engine reads it as "now".
func (r *Repo) ListCompletedSets(ctx context.Context, userID string, since time.Time) (_ []insights.SetRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.sets.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				ws.weight, ws.reps, ws.rpe, ws.rir,
				e.id, e.name, s.id, s.completed_at
			FROM workout_set ws
				JOIN workout_session s ON s.id = ws.workout_id
				JOIN exercise e ON e.id = ws.exercise_id
			WHERE s.user_id = $1
				AND s.status = $2
				AND (s.completed_at IS NULL OR s.completed_at >= $3)
			ORDER BY s.completed_at NULLS LAST, ws.id;
		`,
		userID, statusCompleted, since,
	)
	if err != nil {
		return nil, fmt.Errorf("query sets: %w", err)
	}
	defer rows.Close()

	var sets []insights.SetRecord
	for rows.Next() {
		var (
			s           insights.SetRecord
			completedAt *time.Time
		)
		if err := rows.Scan(
			&s.Weight, &s.Reps, &s.RPE, &s.RIR,
			&s.ExerciseID, &s.ExerciseName, &s.WorkoutID, &completedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		s.CompletedAt = completedAt
		sets = append(sets, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	span.SetAttributes(attribute.Int("sets", len(sets)))

	return sets, nil
}
