package trainlog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

func (r *Repo) Append(ctx context.Context, log Log) (_ *Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainlog.append")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", log.ExerciseID.String()))

	rows, err := r.db.Query(ctx,
		`INSERT INTO exercise_logs (id, exercise_id, user_id, sets, reps, weight, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		log.ID, log.ExerciseID, log.UserID, log.Sets, log.Reps, log.Weight, log.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected, failed to insert exercise log")
	}

	var id uuid.UUID
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("scan inserted log id: %w", err)
	}

	log.ID = id
	return &log, nil
}

// LatestPerExercise returns the newest log of each given exercise for
// one user. Exercises without any log are simply absent from the map.
func (r *Repo) LatestPerExercise(ctx context.Context, userID uuid.UUID, exerciseIDs []uuid.UUID) (_ map[uuid.UUID]Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainlog.latestPerExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if len(exerciseIDs) == 0 {
		return map[uuid.UUID]Log{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT ON (exercise_id)
			id, exercise_id, user_id, sets, reps, weight, created_at
		 FROM exercise_logs
		 WHERE user_id = $1 AND exercise_id = ANY($2)
		 ORDER BY exercise_id, created_at DESC, id DESC`,
		userID, exerciseIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs, err := rows2logs(rows)
	if err != nil {
		return nil, err
	}

	latest := make(map[uuid.UUID]Log, len(logs))
	for _, l := range logs {
		latest[l.ExerciseID] = l
	}
	return latest, nil
}

// History returns up to limit most recent logs of one exercise,
// newest first.
func (r *Repo) History(ctx context.Context, userID, exerciseID uuid.UUID, limit int) (_ []Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainlog.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exerciseID.String()))

	rows, err := r.db.Query(ctx,
		`SELECT id, exercise_id, user_id, sets, reps, weight, created_at
		 FROM exercise_logs
		 WHERE user_id = $1 AND exercise_id = $2
		 ORDER BY created_at DESC, id DESC
		 LIMIT $3`,
		userID, exerciseID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2logs(rows)
}

func rows2logs(rows pgx.Rows) ([]Log, error) {
	var logs []Log
	for rows.Next() {
		var l Log
		if err := rows.Scan(
			&l.ID, &l.ExerciseID, &l.UserID,
			&l.Sets, &l.Reps, &l.Weight, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan exercise log row: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}
