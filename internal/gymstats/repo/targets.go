package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gyminsights/internal/gymstats/insights"
	"github.com/2beens/gyminsights/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// ListTargets returns the target reps planned for the user's sessions in the window.
func (r *Repo) ListTargets(ctx context.Context, userID string, since time.Time) (_ []insights.TargetRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.targets.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT t.workout_id, t.exercise_id, t.target_reps
			FROM workout_target t
				JOIN workout_session s ON s.id = t.workout_id
			WHERE s.user_id = $1
				AND (s.completed_at IS NULL OR s.completed_at >= $2)
			ORDER BY t.workout_id, t.exercise_id;
		`,
		userID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("query targets: %w", err)
	}
	defer rows.Close()

	var targets []insights.TargetRecord
	for rows.Next() {
		var t insights.TargetRecord
		if err := rows.Scan(&t.WorkoutID, &t.ExerciseID, &t.TargetReps); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		targets = append(targets, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return targets, nil
}
