package sessions

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pumpout/backend/internal/telemetry/tracing"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", session.WorkoutID.String()))

	rows, err := r.db.Query(ctx,
		`INSERT INTO workout_sessions (id, user_id, workout_id, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		session.ID, session.UserID, session.WorkoutID, session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected, failed to insert workout session")
	}

	var id uuid.UUID
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("scan inserted session id: %w", err)
	}

	session.ID = id
	return &session, nil
}

// CreatedSince returns the timestamps of the user's sessions finished
// at or after the given moment.
func (r *Repo) CreatedSince(ctx context.Context, userID uuid.UUID, since time.Time) (_ []time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.createdSince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT created_at
		 FROM workout_sessions
		 WHERE user_id = $1 AND created_at >= $2
		 ORDER BY created_at`,
		userID, since,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var timestamps []time.Time
	for rows.Next() {
		var createdAt time.Time
		if err := rows.Scan(&createdAt); err != nil {
			return nil, fmt.Errorf("scan session timestamp: %w", err)
		}
		timestamps = append(timestamps, createdAt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return timestamps, nil
}

func (r *Repo) CountForUser(ctx context.Context, userID uuid.UUID) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.countForUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT COUNT(*) FROM workout_sessions WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("unexpected, no count row")
	}

	var count int
	if err := rows.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan sessions count: %w", err)
	}
	return count, nil
}
