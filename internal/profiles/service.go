package profiles

import (
	"context"
	"encoding/json"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/pumpout/backend/internal/telemetry/tracing"
)

const (
	profileCacheSize       = 10 * 1024 * 1024
	profileCacheTTLSeconds = 5 * 60
)

type profilesRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Profile, error)
}

// Service fronts the profiles repo with an in-process cache for the
// hot "who am I" lookups done on almost every screen.
type Service struct {
	repo  profilesRepo
	cache *freecache.Cache
}

func NewService(repo profilesRepo) *Service {
	return &Service{
		repo:  repo,
		cache: freecache.NewCache(profileCacheSize),
	}
}

func (s *Service) Me(ctx context.Context, id uuid.UUID) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profiles.me")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cacheKey := id[:]
	if cached, err := s.cache.Get(cacheKey); err == nil {
		var profile Profile
		if err := json.Unmarshal(cached, &profile); err == nil {
			return &profile, nil
		}
		// bad cache entry, fall through to the repo
		s.cache.Del(cacheKey)
	}

	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profileJson, err := json.Marshal(profile)
	if err == nil {
		if err := s.cache.Set(cacheKey, profileJson, profileCacheTTLSeconds); err != nil {
			log.Tracef("profiles service: cache profile %s: %s", id, err)
		}
	}

	return profile, nil
}

// Invalidate drops the cached profile, called after avatar or account changes.
func (s *Service) Invalidate(id uuid.UUID) {
	s.cache.Del(id[:])
}
