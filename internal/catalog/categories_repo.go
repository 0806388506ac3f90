package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pumpout/backend/internal/telemetry/tracing"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoriesRepo struct {
	db *pgxpool.Pool
}

func NewCategoriesRepo(db *pgxpool.Pool) *CategoriesRepo {
	return &CategoriesRepo{
		db: db,
	}
}

func (r *CategoriesRepo) Create(ctx context.Context, category Category) (_ *Category, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.categories.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO categories
				(id, name, image_url, user_id, created_at)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		category.ID, category.Name, category.ImageURL, category.UserID, category.CreatedAt,
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

	span.SetAttributes(attribute.String("category.id", id.String()))

	category.ID = id
	return &category, nil
}

func (r *CategoriesRepo) ListForUser(ctx context.Context, userID uuid.UUID) (_ []Category, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.categories.listforuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, image_url, user_id, created_at
			FROM categories
			WHERE user_id = $1
			ORDER BY name;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.rows2categories(rows)
}

// FirstForUser returns the oldest category of the user, the landing
// spot for workouts copied from friends.
func (r *CategoriesRepo) FirstForUser(ctx context.Context, userID uuid.UUID) (_ *Category, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.categories.firstforuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, image_url, user_id, created_at
			FROM categories
			WHERE user_id = $1
			ORDER BY created_at
			LIMIT 1;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	categories, err := r.rows2categories(rows)
	if err != nil {
		return nil, err
	}

	if len(categories) != 1 {
		return nil, ErrCategoryNotFound
	}

	return &categories[0], nil
}

func (r *CategoriesRepo) Rename(ctx context.Context, id, userID uuid.UUID, name string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.categories.rename")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("category.id", id.String()))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE categories SET name = $1 WHERE id = $2 AND user_id = $3;`,
		name, id, userID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

func (r *CategoriesRepo) Delete(ctx context.Context, id, userID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.categories.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("category.id", id.String()))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM categories WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

func (r *CategoriesRepo) rows2categories(rows pgx.Rows) ([]Category, error) {
	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(
			&c.ID, &c.Name, &c.ImageURL, &c.UserID, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, nil
}
