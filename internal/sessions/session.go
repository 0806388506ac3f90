package sessions

import (
	"time"

	"github.com/google/uuid"
)

// Session marks one finished workout. Only the fact that the workout
// happened is recorded, the logged values live with the exercise logs.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	WorkoutID uuid.UUID `json:"workoutId"`
	CreatedAt time.Time `json:"createdAt"`
}

// WeeklyEntry is one column of the weekly activity chart.
type WeeklyEntry struct {
	Day    string `json:"day"`
	Value  int    `json:"value"`
	Active bool   `json:"active"`
}
