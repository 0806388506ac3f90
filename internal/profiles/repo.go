package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"

	"github.com/pumpout/backend/internal/telemetry/tracing"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, profile Profile) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO profiles
				(id, email, username, password_hash, avatar_url, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		profile.ID, profile.Email, profile.Username, profile.PasswordHash, profile.AvatarURL, profile.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id uuid.UUID
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.String("profile.id", id.String()))

	profile.ID = id
	return &profile, nil
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.getbyid")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	return r.getOne(
		ctx,
		`SELECT id, email, username, password_hash, COALESCE(avatar_url, ''), created_at
			FROM profiles WHERE id = $1;`,
		id,
	)
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.getbyemail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.getOne(
		ctx,
		`SELECT id, email, username, password_hash, COALESCE(avatar_url, ''), created_at
			FROM profiles WHERE email = $1;`,
		email,
	)
}

func (r *Repo) getOne(ctx context.Context, query string, arg any) (*Profile, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	found, err := r.rows2profiles(rows)
	if err != nil {
		return nil, err
	}

	if len(found) != 1 {
		return nil, ErrProfileNotFound
	}

	return &found[0], nil
}

// Search finds profiles whose username contains the given query,
// excluding the searching user. Case-insensitive, capped at limit.
func (r *Repo) Search(ctx context.Context, query string, excludeID uuid.UUID, limit int) (_ []Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.search")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("query", query))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, email, username, password_hash, COALESCE(avatar_url, ''), created_at
			FROM profiles
			WHERE username ILIKE '%' || $1 || '%' AND id != $2
			ORDER BY username
			LIMIT $3;`,
		query, excludeID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.rows2profiles(rows)
}

func (r *Repo) UpdateAvatarURL(ctx context.Context, id uuid.UUID, avatarURL string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.updateavatar")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE profiles SET avatar_url = $1 WHERE id = $2;`,
		avatarURL, id,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// DeleteAccount removes the profile and everything hanging off of it
// in a single transaction: logs, sessions, friendships, workouts with
// their exercises, and owned categories.
func (r *Repo) DeleteAccount(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.deleteaccount")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, tx.Rollback(ctx))
		}
	}()

	for _, query := range []string{
		`DELETE FROM exercise_logs WHERE user_id = $1;`,
		`DELETE FROM workout_sessions WHERE user_id = $1;`,
		`DELETE FROM friendships WHERE user_id = $1 OR friend_id = $1;`,
		`DELETE FROM exercises WHERE workout_id IN (SELECT id FROM workouts WHERE user_id = $1);`,
		`DELETE FROM workouts WHERE user_id = $1;`,
		`DELETE FROM categories WHERE user_id = $1;`,
	} {
		if _, err = tx.Exec(ctx, query, id); err != nil {
			return fmt.Errorf("delete account data: %w", err)
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM profiles WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		err = ErrProfileNotFound
		return err
	}

	return tx.Commit(ctx)
}

func (r *Repo) rows2profiles(rows pgx.Rows) ([]Profile, error) {
	var found []Profile
	for rows.Next() {
		var p Profile
		if err := rows.Scan(
			&p.ID, &p.Email, &p.Username, &p.PasswordHash, &p.AvatarURL, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		found = append(found, p)
	}
	return found, nil
}
