package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pumpout/backend/internal/telemetry/tracing"
)

var ErrWorkoutNotFound = errors.New("workout not found")

// ExerciseSuggestion is a distinct exercise name with the defaults it
// was last saved with, used for editor autocomplete.
type ExerciseSuggestion struct {
	Name          string  `json:"name"`
	DefaultSets   int     `json:"defaultSets"`
	DefaultReps   int     `json:"defaultReps"`
	DefaultWeight float64 `json:"defaultWeight"`
}

type WorkoutsRepo struct {
	db *pgxpool.Pool
}

func NewWorkoutsRepo(db *pgxpool.Pool) *WorkoutsRepo {
	return &WorkoutsRepo{
		db: db,
	}
}

func (r *WorkoutsRepo) Create(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workouts
				(id, title, image_url, category_id, user_id, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		workout.ID, workout.Title, workout.ImageURL, workout.CategoryID, workout.UserID, workout.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id uuid.UUID
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.String("workout.id", id.String()))

	workout.ID = id
	return &workout, nil
}

func (r *WorkoutsRepo) Get(ctx context.Context, id uuid.UUID) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, title, image_url, category_id, user_id, created_at
			FROM workouts WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	workouts, err := r.rows2workouts(rows)
	if err != nil {
		return nil, err
	}

	if len(workouts) != 1 {
		return nil, ErrWorkoutNotFound
	}

	return &workouts[0], nil
}

// ListForUser returns the user's workouts together with the built-in
// ones (built-ins have no owner).
func (r *WorkoutsRepo) ListForUser(ctx context.Context, userID uuid.UUID) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listforuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, title, image_url, category_id, user_id, created_at
			FROM workouts
			WHERE user_id = $1 OR user_id IS NULL
			ORDER BY created_at;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.rows2workouts(rows)
}

func (r *WorkoutsRepo) Update(ctx context.Context, id, userID uuid.UUID, title string, categoryID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id.String()))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workouts SET title = $1, category_id = $2 WHERE id = $3 AND user_id = $4;`,
		title, categoryID, id, userID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}

	return nil
}

func (r *WorkoutsRepo) Delete(ctx context.Context, id, userID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id.String()))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workouts WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}

	return nil
}

func (r *WorkoutsRepo) Exercises(ctx context.Context, workoutID uuid.UUID) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workoutID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, workout_id, name, default_sets, default_reps, default_weight, created_at
			FROM exercises
			WHERE workout_id = $1
			ORDER BY created_at;`,
		workoutID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var exercises []Exercise
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(
			&e.ID, &e.WorkoutID, &e.Name, &e.DefaultSets, &e.DefaultReps, &e.DefaultWeight, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, e)
	}

	return exercises, nil
}

func (r *WorkoutsRepo) InsertExercises(ctx context.Context, exercises []Exercise) (err error) {
	if len(exercises) == 0 {
		return nil
	}

	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.insertexercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercises.count", len(exercises)))

	batch := &pgx.Batch{}
	for _, e := range exercises {
		batch.Queue(
			`INSERT INTO exercises
				(id, workout_id, name, default_sets, default_reps, default_weight, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7);`,
			e.ID, e.WorkoutID, e.Name, e.DefaultSets, e.DefaultReps, e.DefaultWeight, e.CreatedAt,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer func() {
		if closeErr := results.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	for range exercises {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert exercise: %w", err)
		}
	}

	return nil
}

func (r *WorkoutsRepo) DeleteExercises(ctx context.Context, workoutID uuid.UUID, ids []uuid.UUID) (err error) {
	if len(ids) == 0 {
		return nil
	}

	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteexercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercises.count", len(ids)))

	_, err = r.db.Exec(
		ctx,
		`DELETE FROM exercises WHERE workout_id = $1 AND id = ANY($2);`,
		workoutID, ids,
	)
	return err
}

// ExerciseSuggestions returns distinct exercise names across the
// user's workouts, each with the defaults of its most recent row.
func (r *WorkoutsRepo) ExerciseSuggestions(ctx context.Context, userID uuid.UUID) (_ []ExerciseSuggestion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercisesuggestions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT ON (e.name)
				e.name, e.default_sets, e.default_reps, e.default_weight
			FROM exercises e
			JOIN workouts w ON e.workout_id = w.id
			WHERE w.user_id = $1 OR w.user_id IS NULL
			ORDER BY e.name, e.created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var suggestions []ExerciseSuggestion
	for rows.Next() {
		var s ExerciseSuggestion
		if err := rows.Scan(&s.Name, &s.DefaultSets, &s.DefaultReps, &s.DefaultWeight); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		suggestions = append(suggestions, s)
	}

	return suggestions, nil
}

func (r *WorkoutsRepo) rows2workouts(rows pgx.Rows) ([]Workout, error) {
	var workouts []Workout
	for rows.Next() {
		var w Workout
		if err := rows.Scan(
			&w.ID, &w.Title, &w.ImageURL, &w.CategoryID, &w.UserID, &w.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		workouts = append(workouts, w)
	}
	return workouts, nil
}
