package social

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=social_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/pumpout/backend/internal/telemetry/tracing"
)

const feedLimit = 20

var ErrSelfFollow = errors.New("cannot follow yourself")

type friendsRepo interface {
	Follow(ctx context.Context, userID, friendID uuid.UUID) error
	Unfollow(ctx context.Context, userID, friendID uuid.UUID) error
	Friends(ctx context.Context, userID uuid.UUID) ([]FriendProfile, error)
	Feed(ctx context.Context, userID uuid.UUID, limit int) ([]FeedItem, error)
}

type sessionCounter interface {
	Count(ctx context.Context, userID uuid.UUID) (int, error)
}

type Service struct {
	repo     friendsRepo
	sessions sessionCounter
}

func NewService(repo friendsRepo, sessions sessionCounter) *Service {
	return &Service{
		repo:     repo,
		sessions: sessions,
	}
}

func (s *Service) Follow(ctx context.Context, userID, friendID uuid.UUID) error {
	if userID == friendID {
		return ErrSelfFollow
	}
	return s.repo.Follow(ctx, userID, friendID)
}

func (s *Service) Unfollow(ctx context.Context, userID, friendID uuid.UUID) error {
	return s.repo.Unfollow(ctx, userID, friendID)
}

// Friends returns the followed users with their finished workout
// counts, most active first. Counts are fetched concurrently, one
// failed count fails the whole call.
func (s *Service) Friends(ctx context.Context, userID uuid.UUID) (_ []Friend, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "social.friends")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	profiles, err := s.repo.Friends(ctx, userID)
	if err != nil {
		return nil, err
	}

	friends := make([]Friend, len(profiles))
	countErrs := make([]error, len(profiles))

	var wg sync.WaitGroup
	for i, p := range profiles {
		wg.Add(1)
		go func() {
			defer wg.Done()
			count, countErr := s.sessions.Count(ctx, p.ID)
			if countErr != nil {
				countErrs[i] = countErr
				return
			}
			friends[i] = Friend{
				ID:        p.ID,
				Username:  p.Username,
				AvatarURL: p.AvatarURL,
				Sessions:  count,
			}
		}()
	}
	wg.Wait()

	if err := multierr.Combine(countErrs...); err != nil {
		return nil, err
	}

	sort.Slice(friends, func(i, j int) bool {
		if friends[i].Sessions != friends[j].Sessions {
			return friends[i].Sessions > friends[j].Sessions
		}
		return friends[i].Username < friends[j].Username
	})
	return friends, nil
}

func (s *Service) Feed(ctx context.Context, userID uuid.UUID) ([]FeedItem, error) {
	return s.repo.Feed(ctx, userID, feedLimit)
}
