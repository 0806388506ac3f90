package trainlog

//go:generate mockgen -source=$GOFILE -destination=tracker_mocks_test.go -package=trainlog_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pumpout/backend/internal/catalog"
	"github.com/pumpout/backend/internal/telemetry/tracing"
)

const (
	historyLimit    = 7
	minBarHeightPct = 10
)

type logsRepo interface {
	Append(ctx context.Context, log Log) (*Log, error)
	LatestPerExercise(ctx context.Context, userID uuid.UUID, exerciseIDs []uuid.UUID) (map[uuid.UUID]Log, error)
	History(ctx context.Context, userID, exerciseID uuid.UUID, limit int) ([]Log, error)
}

type workoutExercises interface {
	Exercises(ctx context.Context, workoutID uuid.UUID) ([]catalog.Exercise, error)
}

// Tracker keeps the exercise log history and answers what an
// exercise currently looks like for a user.
type Tracker struct {
	logs      logsRepo
	exercises workoutExercises

	// injectable for tests
	Now func() time.Time
}

func NewTracker(logs logsRepo, exercises workoutExercises) *Tracker {
	return &Tracker{
		logs:      logs,
		exercises: exercises,
		Now:       time.Now,
	}
}

func (t *Tracker) Save(ctx context.Context, userID, exerciseID uuid.UUID, sets, reps int, weight float64) (*Log, error) {
	return t.logs.Append(ctx, Log{
		ID:         uuid.New(),
		ExerciseID: exerciseID,
		UserID:     userID,
		Sets:       sets,
		Reps:       reps,
		Weight:     weight,
		CreatedAt:  t.Now(),
	})
}

// ResolveWorkout returns the workout exercises with the user's latest
// logged values, falling back to exercise defaults where no log exists.
func (t *Tracker) ResolveWorkout(ctx context.Context, userID, workoutID uuid.UUID) (_ []ResolvedExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.resolveWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercises, err := t.exercises.Exercises(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	if len(exercises) == 0 {
		return []ResolvedExercise{}, nil
	}

	exerciseIDs := make([]uuid.UUID, 0, len(exercises))
	for _, ex := range exercises {
		exerciseIDs = append(exerciseIDs, ex.ID)
	}

	latest, err := t.logs.LatestPerExercise(ctx, userID, exerciseIDs)
	if err != nil {
		return nil, err
	}

	resolved := make([]ResolvedExercise, 0, len(exercises))
	for _, ex := range exercises {
		resolved = append(resolved, resolveExercise(ex, latest))
	}
	return resolved, nil
}

// Resolve answers what a single exercise currently looks like for the
// user: the latest logged values, or the defaults when nothing was
// logged yet.
func (t *Tracker) Resolve(ctx context.Context, userID uuid.UUID, ex catalog.Exercise) (ResolvedExercise, error) {
	latest, err := t.logs.LatestPerExercise(ctx, userID, []uuid.UUID{ex.ID})
	if err != nil {
		return ResolvedExercise{}, err
	}
	return resolveExercise(ex, latest), nil
}

func resolveExercise(ex catalog.Exercise, latest map[uuid.UUID]Log) ResolvedExercise {
	re := ResolvedExercise{
		ExerciseID: ex.ID,
		Name:       ex.Name,
		Sets:       ex.DefaultSets,
		Reps:       ex.DefaultReps,
		Weight:     ex.DefaultWeight,
	}
	if l, ok := latest[ex.ID]; ok {
		re.Sets = l.Sets
		re.Reps = l.Reps
		re.Weight = l.Weight
		re.FromLog = true
	}
	return re
}

// History returns the last logged weights of one exercise as chart
// bars, oldest first.
func (t *Tracker) History(ctx context.Context, userID, exerciseID uuid.UUID) (_ []HistoryBar, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	logs, err := t.logs.History(ctx, userID, exerciseID, historyLimit)
	if err != nil {
		return nil, err
	}

	// newest first from the repo, chart wants oldest first
	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}

	var maxWeight float64
	for _, l := range logs {
		if l.Weight > maxWeight {
			maxWeight = l.Weight
		}
	}
	// all-zero weights would divide by zero otherwise
	if maxWeight == 0 {
		maxWeight = 1
	}

	bars := make([]HistoryBar, 0, len(logs))
	for _, l := range logs {
		heightPct := l.Weight / maxWeight * 100
		if heightPct < minBarHeightPct {
			heightPct = minBarHeightPct
		}
		bars = append(bars, HistoryBar{
			Weight:    l.Weight,
			HeightPct: heightPct,
			CreatedAt: l.CreatedAt,
		})
	}
	return bars, nil
}
