package auth

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const userIDContextKey contextKey = "user-id"

func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDContextKey).(string)
	return userID, ok
}

// UserIDFromRequest pulls the logged-in user out of the request context,
// as set by the auth middleware.
func UserIDFromRequest(r *http.Request) (uuid.UUID, bool) {
	userIDStr, ok := UserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}
