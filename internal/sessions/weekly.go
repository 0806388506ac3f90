package sessions

//go:generate mockgen -source=$GOFILE -destination=weekly_mocks_test.go -package=sessions_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pumpout/backend/internal/telemetry/tracing"
)

// Chart values are binary on purpose, the client renders a day as
// either a stub or a full bar.
const (
	inactiveDayValue = 5
	activeDayValue   = 100
)

var weekDays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type sessionsRepo interface {
	Create(ctx context.Context, session Session) (*Session, error)
	CreatedSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error)
	CountForUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type Service struct {
	repo sessionsRepo

	// injectable for tests
	Now func() time.Time
}

func NewService(repo sessionsRepo) *Service {
	return &Service{
		repo: repo,
		Now:  time.Now,
	}
}

func (s *Service) Finish(ctx context.Context, userID, workoutID uuid.UUID) (*Session, error) {
	return s.repo.Create(ctx, Session{
		ID:        uuid.New(),
		UserID:    userID,
		WorkoutID: workoutID,
		CreatedAt: s.Now(),
	})
}

// WeeklyActivity returns one entry per weekday, Monday first. A day is
// active when at least one session was finished on it during the last
// seven days. Weekdays are bucketed in UTC.
func (s *Service) WeeklyActivity(ctx context.Context, userID uuid.UUID) (_ []WeeklyEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessions.weeklyActivity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	since := s.Now().UTC().AddDate(0, 0, -7)
	timestamps, err := s.repo.CreatedSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	var active [7]bool
	for _, ts := range timestamps {
		active[mondayIndex(ts.UTC().Weekday())] = true
	}

	entries := make([]WeeklyEntry, 0, len(weekDays))
	for i, day := range weekDays {
		entry := WeeklyEntry{Day: day, Value: inactiveDayValue}
		if active[i] {
			entry.Value = activeDayValue
			entry.Active = true
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *Service) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.CountForUser(ctx, userID)
}

// mondayIndex maps time.Weekday (Sunday = 0) to a Monday-first index.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
