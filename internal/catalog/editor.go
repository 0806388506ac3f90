package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pumpout/backend/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=editor_mocks_test.go -package=catalog_test

var ErrNoCategory = errors.New("no category to copy the workout into")

type workoutsApi interface {
	Create(ctx context.Context, workout Workout) (*Workout, error)
	Get(ctx context.Context, id uuid.UUID) (*Workout, error)
	Update(ctx context.Context, id, userID uuid.UUID, title string, categoryID uuid.UUID) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	Exercises(ctx context.Context, workoutID uuid.UUID) ([]Exercise, error)
	InsertExercises(ctx context.Context, exercises []Exercise) error
	DeleteExercises(ctx context.Context, workoutID uuid.UUID, ids []uuid.UUID) error
}

type firstCategoryApi interface {
	FirstForUser(ctx context.Context, userID uuid.UUID) (*Category, error)
}

type CreateWorkoutParams struct {
	Title      string
	ImageURL   string
	CategoryID uuid.UUID
	Drafts     []DraftExercise
}

type EditWorkoutParams struct {
	Title      string
	CategoryID uuid.UUID
	DeletedIDs []uuid.UUID
	Drafts     []DraftExercise
}

// Editor owns workout catalog writes: creating, saving editor
// sessions, deleting, and copying workouts from friends.
type Editor struct {
	workouts   workoutsApi
	categories firstCategoryApi
}

func NewEditor(workouts workoutsApi, categories firstCategoryApi) *Editor {
	return &Editor{
		workouts:   workouts,
		categories: categories,
	}
}

func (e *Editor) Create(ctx context.Context, userID uuid.UUID, params CreateWorkoutParams) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "editor.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	imageURL := params.ImageURL
	if imageURL == "" {
		imageURL = RandomCover()
	}

	workout, err := e.workouts.Create(ctx, Workout{
		ID:         uuid.New(),
		Title:      params.Title,
		ImageURL:   imageURL,
		CategoryID: params.CategoryID,
		UserID:     &userID,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create workout: %w", err)
	}

	span.SetAttributes(attribute.String("workout.id", workout.ID.String()))

	exercises := make([]Exercise, 0, len(params.Drafts))
	for _, draft := range params.Drafts {
		exercises = append(exercises, draft.Parse(workout.ID))
	}
	if err := e.workouts.InsertExercises(ctx, exercises); err != nil {
		// the workout row stays, the client shows it without exercises
		return nil, fmt.Errorf("insert exercises: %w", err)
	}

	workout.Exercises = exercises
	return workout, nil
}

func (e *Editor) Edit(ctx context.Context, userID, workoutID uuid.UUID, params EditWorkoutParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "editor.edit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workoutID.String()))

	if err := e.workouts.Update(ctx, workoutID, userID, params.Title, params.CategoryID); err != nil {
		return fmt.Errorf("update workout: %w", err)
	}

	plan := Reconcile(workoutID, params.DeletedIDs, params.Drafts)
	if err := e.workouts.DeleteExercises(ctx, workoutID, plan.ToDelete); err != nil {
		return fmt.Errorf("delete exercises: %w", err)
	}
	if err := e.workouts.InsertExercises(ctx, plan.ToInsert); err != nil {
		return fmt.Errorf("insert exercises: %w", err)
	}

	return nil
}

func (e *Editor) Delete(ctx context.Context, userID, workoutID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "editor.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workoutID.String()))

	return e.workouts.Delete(ctx, workoutID, userID)
}

// Duplicate copies a friend's workout, exercises included, into the
// user's oldest category. Logs are not copied, the user starts fresh.
func (e *Editor) Duplicate(ctx context.Context, userID, workoutID uuid.UUID, friendName string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "editor.duplicate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workoutID.String()))

	source, err := e.workouts.Get(ctx, workoutID)
	if err != nil {
		return nil, fmt.Errorf("get source workout: %w", err)
	}

	category, err := e.categories.FirstForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return nil, ErrNoCategory
		}
		return nil, fmt.Errorf("get first category: %w", err)
	}

	copied, err := e.workouts.Create(ctx, Workout{
		ID:         uuid.New(),
		Title:      fmt.Sprintf("%s (by %s)", source.Title, friendName),
		ImageURL:   source.ImageURL,
		CategoryID: category.ID,
		UserID:     &userID,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create workout copy: %w", err)
	}

	sourceExercises, err := e.workouts.Exercises(ctx, workoutID)
	if err != nil {
		return nil, fmt.Errorf("get source exercises: %w", err)
	}

	copies := make([]Exercise, 0, len(sourceExercises))
	for _, ex := range sourceExercises {
		copies = append(copies, Exercise{
			ID:            uuid.New(),
			WorkoutID:     copied.ID,
			Name:          ex.Name,
			DefaultSets:   ex.DefaultSets,
			DefaultReps:   ex.DefaultReps,
			DefaultWeight: ex.DefaultWeight,
			CreatedAt:     time.Now(),
		})
	}
	if err := e.workouts.InsertExercises(ctx, copies); err != nil {
		return nil, fmt.Errorf("insert exercise copies: %w", err)
	}

	log.Debugf("workout %s duplicated for %s as %s", workoutID, userID, copied.ID)
	copied.Exercises = copies
	return copied, nil
}
