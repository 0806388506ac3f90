package social

import (
	"time"

	"github.com/google/uuid"
)

// FriendProfile is a followed user as stored, before session counts
// are attached.
type FriendProfile struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
}

// Friend is a followed user as shown on the friends screen.
type Friend struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	Sessions  int       `json:"sessions"`
}

// FeedItem is one workout finished by a followed user.
type FeedItem struct {
	FriendID     uuid.UUID `json:"friendId"`
	Username     string    `json:"username"`
	AvatarURL    string    `json:"avatarUrl,omitempty"`
	WorkoutID    uuid.UUID `json:"workoutId"`
	WorkoutTitle string    `json:"workoutTitle"`
	CreatedAt    time.Time `json:"createdAt"`
}
