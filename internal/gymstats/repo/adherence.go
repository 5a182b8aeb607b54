package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gyminsights/internal/gymstats/insights"
	"github.com/2beens/gyminsights/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// ListAdherence returns the adherence samples of all the user's training plans
// recorded since the given time, oldest first.
func (r *Repo) ListAdherence(ctx context.Context, userID string, since time.Time) (_ []insights.AdherenceSample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.adherence.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT a.value, a.created_at
			FROM plan_adherence a
				JOIN training_plan p ON p.id = a.plan_id
			WHERE p.user_id = $1
				AND a.created_at >= $2
			ORDER BY a.created_at, a.id;
		`,
		userID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("query adherence: %w", err)
	}
	defer rows.Close()

	var samples []insights.AdherenceSample
	for rows.Next() {
		var s insights.AdherenceSample
		if err := rows.Scan(&s.Value, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		samples = append(samples, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return samples, nil
}
