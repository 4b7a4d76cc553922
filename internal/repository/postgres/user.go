package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/sheponsu/blood-aid-server/internal/apperrors"
	"github.com/sheponsu/blood-aid-server/internal/domain"
)

var userColumns = []string{
	"id", "name", "email", "password_hash", "blood_group", "division",
	"district", "avatar", "role", "status", "created_at", "updated_at",
}

type UserRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewUserRepository(db *sqlx.DB, log *slog.Logger) *UserRepository {
	return &UserRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (string, error) {
	const op = "internal.repository.postgres.UserRepository.Create"

	id := uuid.NewString()
	email := strings.ToLower(user.Email)

	query, args, err := r.sq.Insert("users").
		Columns("id", "name", "email", "password_hash", "blood_group",
			"division", "district", "avatar", "role", "status").
		Values(id, user.Name, email, user.PasswordHash, user.BloodGroup,
			user.Division, user.District, user.Avatar, user.Role, user.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	var insertedID string
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&insertedID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return "", &apperrors.UserAlreadyExistsError{Email: email}
		}

		return "", fmt.Errorf("%s: failed to execute insert: %w", op, err)
	}

	return insertedID, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const op = "internal.repository.postgres.UserRepository.GetByEmail"

	query, args, err := r.sq.Select(userColumns...).
		From("users").
		Where(sq.Expr("LOWER(email) = LOWER(?)", email)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w: user with email '%s'", op, apperrors.ErrNotFound, email)
		}

		return nil, fmt.Errorf("%s: failed to get user: %w", op, err)
	}

	return &user, nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	const op = "internal.repository.postgres.UserRepository.GetAll"

	query, args, err := r.sq.Select(userColumns...).
		From("users").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var users []domain.User
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []domain.User{}, nil
		}

		return nil, fmt.Errorf("%s: failed to select users: %w", op, err)
	}

	return users, nil
}

func (r *UserRepository) UpdateByEmail(ctx context.Context, email string, upd domain.UserUpdate) (int64, error) {
	const op = "internal.repository.postgres.UserRepository.UpdateByEmail"

	return r.update(ctx, op, sq.Expr("LOWER(email) = LOWER(?)", email), upd)
}

func (r *UserRepository) UpdateByID(ctx context.Context, id string, upd domain.UserUpdate) (int64, error) {
	const op = "internal.repository.postgres.UserRepository.UpdateByID"

	return r.update(ctx, op, sq.Eq{"id": id}, upd)
}

func (r *UserRepository) update(ctx context.Context, op string, where interface{}, upd domain.UserUpdate) (int64, error) {
	setClauses := map[string]interface{}{}

	set := func(column string, v *string) {
		if v != nil {
			setClauses[column] = *v
		}
	}

	set("name", upd.Name)
	set("blood_group", upd.BloodGroup)
	set("division", upd.Division)
	set("district", upd.District)
	set("avatar", upd.Avatar)
	set("role", upd.Role)
	set("status", upd.Status)

	if len(setClauses) == 0 {
		return 0, nil
	}

	query, args, err := r.sq.Update("users").
		SetMap(setClauses).
		Set("updated_at", sq.Expr("now()")).
		Where(where).
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

func (r *UserRepository) CountByRole(ctx context.Context, role string) (int, error) {
	const op = "internal.repository.postgres.UserRepository.CountByRole"

	query, args, err := r.sq.Select("COUNT(*)").
		From("users").
		Where(sq.Eq{"role": role}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("%s: failed to count users: %w", op, err)
	}

	return count, nil
}
