package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sheponsu/blood-aid-server/internal/apperrors"
	"github.com/sheponsu/blood-aid-server/internal/domain"
	"github.com/sheponsu/blood-aid-server/internal/repository"
	"github.com/sheponsu/blood-aid-server/pkg/api"
)

// PaymentIntents abstracts the external card processor. Only the client
// secret of a created intent crosses this boundary; card data never touches
// the service.
type PaymentIntents interface {
	CreateIntent(ctx context.Context, amount float64, currency string) (clientSecret string, err error)
}

// PaymentPayload records a settled payment reported by the client after the
// processor confirms the charge.
type PaymentPayload struct {
	UserName      string
	Amount        float64
	Method        string
	TransactionID string
	Status        string
	PaidAt        time.Time
}

type PaymentService interface {
	CreateIntent(ctx context.Context, amount float64) (string, error)
	Record(ctx context.Context, payload PaymentPayload, identity domain.Identity) (*api.InsertResult, error)
	ListAll(ctx context.Context) ([]api.Payment, error)
}

type PaymentServiceImpl struct {
	payments repository.PaymentStore
	intents  PaymentIntents
	log      *slog.Logger
}

func NewPaymentService(payments repository.PaymentStore, intents PaymentIntents, log *slog.Logger) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		payments: payments,
		intents:  intents,
		log:      log,
	}
}

// CreateIntent asks the processor for a payment intent and hands the client
// secret back to the browser. Amounts must be positive.
func (s *PaymentServiceImpl) CreateIntent(ctx context.Context, amount float64) (string, error) {
	const op = "internal.service.payment.CreateIntent"

	if amount <= 0 {
		return "", fmt.Errorf("%w: amount must be positive", apperrors.ErrInvalidRequest)
	}

	if s.intents == nil {
		return "", fmt.Errorf("%s: payment processor is not configured", op)
	}

	secret, err := s.intents.CreateIntent(ctx, amount, "usd")
	if err != nil {
		return "", fmt.Errorf("%s: failed to create payment intent: %w", op, err)
	}

	return secret, nil
}

// Record persists a settled payment. The caller must be authenticated; the
// record is informational, so any signed-in user may file their own payment.
func (s *PaymentServiceImpl) Record(ctx context.Context, payload PaymentPayload, identity domain.Identity) (*api.InsertResult, error) {
	const op = "internal.service.payment.Record"
	log := s.log.With(slog.String("op", op))

	if identity.Email == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	if payload.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrInvalidRequest)
	}

	status := strings.ToLower(strings.TrimSpace(payload.Status))
	if status == "" {
		status = "completed"
	}

	paidAt := payload.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}

	id, err := s.payments.Create(ctx, &domain.Payment{
		UserName:      payload.UserName,
		Amount:        payload.Amount,
		Method:        payload.Method,
		TransactionID: payload.TransactionID,
		Status:        status,
		PaidAt:        paidAt,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to record payment: %w", op, err)
	}

	log.Info("payment recorded",
		slog.String("payment_id", id),
		slog.Float64("amount", payload.Amount),
	)

	return &api.InsertResult{InsertedID: id}, nil
}

func (s *PaymentServiceImpl) ListAll(ctx context.Context) ([]api.Payment, error) {
	const op = "internal.service.payment.ListAll"

	payments, err := s.payments.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list payments: %w", op, err)
	}

	result := make([]api.Payment, len(payments))
	for i, p := range payments {
		result[i] = api.Payment{
			ID:            p.ID,
			UserName:      p.UserName,
			Amount:        p.Amount,
			Method:        p.Method,
			TransactionID: p.TransactionID,
			Status:        p.Status,
			PaidAt:        p.PaidAt,
		}
	}

	return result, nil
}
