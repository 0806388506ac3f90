package social

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pumpout/backend/internal/telemetry/tracing"
)

var ErrFriendshipNotFound = errors.New("friendship not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// Follow adds a one-directional follow edge. A duplicate follow comes
// back as a unique violation from the database.
func (r *Repo) Follow(ctx context.Context, userID, friendID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.social.follow")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("friend.id", friendID.String()))

	_, err = r.db.Exec(ctx,
		`INSERT INTO friendships (user_id, friend_id) VALUES ($1, $2)`,
		userID, friendID,
	)
	return err
}

func (r *Repo) Unfollow(ctx context.Context, userID, friendID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.social.unfollow")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("friend.id", friendID.String()))

	tag, err := r.db.Exec(ctx,
		`DELETE FROM friendships WHERE user_id = $1 AND friend_id = $2`,
		userID, friendID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrFriendshipNotFound
	}
	return nil
}

func (r *Repo) Friends(ctx context.Context, userID uuid.UUID) (_ []FriendProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.social.friends")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT p.id, p.username, COALESCE(p.avatar_url, '')
		 FROM friendships f
		 JOIN profiles p ON p.id = f.friend_id
		 WHERE f.user_id = $1
		 ORDER BY p.username`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var friends []FriendProfile
	for rows.Next() {
		var f FriendProfile
		if err := rows.Scan(&f.ID, &f.Username, &f.AvatarURL); err != nil {
			return nil, fmt.Errorf("scan friend row: %w", err)
		}
		friends = append(friends, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return friends, nil
}

// Feed returns the most recent workouts finished by the user's
// friends, newest first.
func (r *Repo) Feed(ctx context.Context, userID uuid.UUID, limit int) (_ []FeedItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.social.feed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT p.id, p.username, COALESCE(p.avatar_url, ''), w.id, w.title, ws.created_at
		 FROM friendships f
		 JOIN workout_sessions ws ON ws.user_id = f.friend_id
		 JOIN profiles p ON p.id = f.friend_id
		 JOIN workouts w ON w.id = ws.workout_id
		 WHERE f.user_id = $1
		 ORDER BY ws.created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []FeedItem
	for rows.Next() {
		var item FeedItem
		if err := rows.Scan(
			&item.FriendID, &item.Username, &item.AvatarURL,
			&item.WorkoutID, &item.WorkoutTitle, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan feed row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
