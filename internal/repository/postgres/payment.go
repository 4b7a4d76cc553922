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

	"github.com/sheponsu/blood-aid-server/internal/domain"
)

type PaymentRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewPaymentRepository(db *sqlx.DB, log *slog.Logger) *PaymentRepository {
	return &PaymentRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) (string, error) {
	const op = "internal.repository.postgres.PaymentRepository.Create"

	id := uuid.NewString()

	query, args, err := r.sq.Insert("payments").
		Columns("id", "user_name", "amount", "method", "transaction_id", "status", "paid_at").
		Values(id, payment.UserName, payment.Amount, payment.Method,
			payment.TransactionID, payment.Status, payment.PaidAt).
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

func (r *PaymentRepository) GetAll(ctx context.Context) ([]domain.Payment, error) {
	const op = "internal.repository.postgres.PaymentRepository.GetAll"

	query, args, err := r.sq.Select("id", "user_name", "amount", "method",
		"transaction_id", "status", "paid_at", "created_at").
		From("payments").
		OrderBy("paid_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var payments []domain.Payment
	if err := r.db.SelectContext(ctx, &payments, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []domain.Payment{}, nil
		}

		return nil, fmt.Errorf("%s: failed to select payments: %w", op, err)
	}

	return payments, nil
}

// SumCompleted feeds the admin stats funding figure from the ledger instead
// of a placeholder constant.
func (r *PaymentRepository) SumCompleted(ctx context.Context) (float64, error) {
	const op = "internal.repository.postgres.PaymentRepository.SumCompleted"

	query, args, err := r.sq.Select("COALESCE(SUM(amount), 0)").
		From("payments").
		Where(sq.Expr("LOWER(status) = ?", "completed")).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var total float64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("%s: failed to sum payments: %w", op, err)
	}

	return total, nil
}
