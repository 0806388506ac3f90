package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (lc *LoginChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	_, err := lc.UserID(ctx, token)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotLoggedIn):
		return false, nil
	default:
		return false, err
	}
}

// UserID resolves the session token to the owning user, or ErrNotLoggedIn
// when the token is unknown or the session is older than the TTL.
func (lc *LoginChecker) UserID(ctx context.Context, token string) (string, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := lc.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotLoggedIn
		}
		return "", err
	}

	userID, createdAt, err := parseSessionValue(cmd.Val())
	if err != nil {
		return "", err
	}

	if time.Since(createdAt) > lc.ttl {
		return "", ErrNotLoggedIn
	}

	return userID, nil
}
