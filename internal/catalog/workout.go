package catalog

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	fallbackSets = 3
	fallbackReps = 8
)

type Workout struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	ImageURL   string    `json:"imageUrl"`
	CategoryID uuid.UUID `json:"categoryId"`
	// nil for built-in workouts shipped with the app
	UserID    *uuid.UUID `json:"userId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`

	Exercises []Exercise `json:"exercises,omitempty"`
}

type Exercise struct {
	ID            uuid.UUID `json:"id"`
	WorkoutID     uuid.UUID `json:"workoutId"`
	Name          string    `json:"name"`
	DefaultSets   int       `json:"defaultSets"`
	DefaultReps   int       `json:"defaultReps"`
	DefaultWeight float64   `json:"defaultWeight"`
	CreatedAt     time.Time `json:"createdAt"`
}

// DraftExercise is an exercise row as typed into the workout editor.
// Sets, reps and weight arrive as raw strings and fall back to
// sensible defaults when empty or unparseable. A nil ID marks a row
// added in this editing session, an existing ID marks a kept row.
type DraftExercise struct {
	ID     *uuid.UUID `json:"id,omitempty"`
	Name   string     `json:"name"`
	Sets   string     `json:"sets"`
	Reps   string     `json:"reps"`
	Weight string     `json:"weight"`
}

func (d DraftExercise) Parse(workoutID uuid.UUID) Exercise {
	sets, err := strconv.Atoi(d.Sets)
	if err != nil || sets <= 0 {
		sets = fallbackSets
	}
	reps, err := strconv.Atoi(d.Reps)
	if err != nil || reps <= 0 {
		reps = fallbackReps
	}
	weight, err := strconv.ParseFloat(d.Weight, 64)
	if err != nil || weight < 0 {
		weight = 0
	}

	id := uuid.New()
	if d.ID != nil {
		id = *d.ID
	}

	return Exercise{
		ID:            id,
		WorkoutID:     workoutID,
		Name:          d.Name,
		DefaultSets:   sets,
		DefaultReps:   reps,
		DefaultWeight: weight,
		CreatedAt:     time.Now(),
	}
}

// ReconcilePlan is what an editor save boils down to: rows the user
// removed get deleted, rows added in this session get inserted, and
// kept rows are left untouched so their logs survive.
type ReconcilePlan struct {
	ToDelete []uuid.UUID
	ToInsert []Exercise
}

func Reconcile(workoutID uuid.UUID, deletedIDs []uuid.UUID, drafts []DraftExercise) ReconcilePlan {
	var plan ReconcilePlan

	seen := make(map[uuid.UUID]bool, len(deletedIDs))
	for _, id := range deletedIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		plan.ToDelete = append(plan.ToDelete, id)
	}

	for _, draft := range drafts {
		if draft.ID != nil {
			continue
		}
		plan.ToInsert = append(plan.ToInsert, draft.Parse(workoutID))
	}

	return plan
}
