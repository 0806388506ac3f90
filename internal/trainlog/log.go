package trainlog

import (
	"time"

	"github.com/google/uuid"
)

// Log is one saved set/rep/weight snapshot for an exercise. Logs are
// append-only, the newest one wins when showing current values.
type Log struct {
	ID         uuid.UUID `json:"id"`
	ExerciseID uuid.UUID `json:"exerciseId"`
	UserID     uuid.UUID `json:"userId"`
	Sets       int       `json:"sets"`
	Reps       int       `json:"reps"`
	Weight     float64   `json:"weight"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ResolvedExercise is an exercise as shown on the workout screen:
// the latest log values when the user has logged it, the exercise
// defaults otherwise.
type ResolvedExercise struct {
	ExerciseID uuid.UUID `json:"exerciseId"`
	Name       string    `json:"name"`
	Sets       int       `json:"sets"`
	Reps       int       `json:"reps"`
	Weight     float64   `json:"weight"`
	FromLog    bool      `json:"fromLog"`
}

// HistoryBar is one column of the per-exercise weight chart. Height
// is a percentage of the heaviest entry, floored at 10 so tiny
// weights still render a visible bar.
type HistoryBar struct {
	Weight    float64   `json:"weight"`
	HeightPct float64   `json:"heightPct"`
	CreatedAt time.Time `json:"createdAt"`
}
