package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sheponsu/blood-aid-server/internal/apperrors"
	"github.com/sheponsu/blood-aid-server/internal/domain"
)

var blogColumns = []string{
	"id", "title", "image", "category", "content", "status",
	"created_at", "updated_at",
}

type BlogRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewBlogRepository(db *sqlx.DB, log *slog.Logger) *BlogRepository {
	return &BlogRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *BlogRepository) Create(ctx context.Context, blog *domain.Blog) (string, error) {
	const op = "internal.repository.postgres.BlogRepository.Create"

	id := uuid.NewString()

	query, args, err := r.sq.Insert("blogs").
		Columns("id", "title", "image", "category", "content", "status").
		Values(id, blog.Title, blog.Image, blog.Category, blog.Content, blog.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	var insertedID string
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&insertedID); err != nil {
		return "", fmt.Errorf("%s: failed to execute insert: %w", op, err)
	}

	return insertedID, nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id string) (*domain.Blog, error) {
	const op = "internal.repository.postgres.BlogRepository.GetByID"

	query, args, err := r.sq.Select(blogColumns...).
		From("blogs").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var blog domain.Blog
	if err := r.db.GetContext(ctx, &blog, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w: blog with id '%s'", op, apperrors.ErrNotFound, id)
		}

		return nil, fmt.Errorf("%s: failed to get blog: %w", op, err)
	}

	return &blog, nil
}

func (r *BlogRepository) GetAll(ctx context.Context) ([]domain.Blog, error) {
	const op = "internal.repository.postgres.BlogRepository.GetAll"

	return r.selectBlogs(ctx, op, r.sq.Select(blogColumns...).
		From("blogs").
		OrderBy("created_at DESC"))
}

func (r *BlogRepository) GetPublished(ctx context.Context) ([]domain.Blog, error) {
	const op = "internal.repository.postgres.BlogRepository.GetPublished"

	return r.selectBlogs(ctx, op, r.sq.Select(blogColumns...).
		From("blogs").
		Where(sq.Eq{"status": domain.BlogPublished}).
		OrderBy("created_at DESC"))
}

func (r *BlogRepository) Update(ctx context.Context, id string, upd domain.BlogUpdate) (int64, error) {
	const op = "internal.repository.postgres.BlogRepository.Update"

	setClauses := map[string]interface{}{}

	set := func(column string, v *string) {
		if v != nil {
			setClauses[column] = *v
		}
	}

	set("title", upd.Title)
	set("image", upd.Image)
	set("category", upd.Category)
	set("content", upd.Content)
	set("status", upd.Status)

	if len(setClauses) == 0 {
		return 0, nil
	}

	query, args, err := r.sq.Update("blogs").
		SetMap(setClauses).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: failed to build update query: %w", op, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to execute update: %w", op, err)
	}

	modified, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: failed to read rows affected: %w", op, err)
	}

	return modified, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) (int64, error) {
	const op = "internal.repository.postgres.BlogRepository.Delete"

	query, args, err := r.sq.Delete("blogs").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: failed to build delete query: %w", op, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to execute delete: %w", op, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: failed to read rows affected: %w", op, err)
	}

	return deleted, nil
}

func (r *BlogRepository) selectBlogs(ctx context.Context, op string, queryBuilder sq.SelectBuilder) ([]domain.Blog, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var blogs []domain.Blog
	if err := r.db.SelectContext(ctx, &blogs, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []domain.Blog{}, nil
		}

		return nil, fmt.Errorf("%s: failed to select blogs: %w", op, err)
	}

	return blogs, nil
}
