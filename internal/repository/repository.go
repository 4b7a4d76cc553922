// package repository defines the interfaces for the data persistence layer.
// These interfaces abstract the underlying database implementation from the
// service layer.
package repository

import (
	"context"

	"github.com/sheponsu/blood-aid-server/internal/domain"
)

// RequestStore owns all read/write access to the donation-request collection.
// Lists are always ordered by creation time, most recent first.
type RequestStore interface {
	// Create persists a new donation request and returns its assigned id.
	Create(ctx context.Context, req *domain.DonationRequest) (string, error)

	// GetByID retrieves a single request.
	// It returns apperrors.ErrNotFound if the id does not resolve.
	GetByID(ctx context.Context, id string) (*domain.DonationRequest, error)

	// GetAll retrieves every request.
	GetAll(ctx context.Context) ([]domain.DonationRequest, error)

	// GetByRequester retrieves the requests created by the given email.
	GetByRequester(ctx context.Context, email string) ([]domain.DonationRequest, error)

	// GetPending retrieves requests whose status equals pending,
	// compared case-insensitively at the query boundary.
	GetPending(ctx context.Context) ([]domain.DonationRequest, error)

	// Search retrieves pending requests matching the optional conjunctive
	// filter: exact blood group, case-insensitive substring on division
	// and district.
	Search(ctx context.Context, filter domain.RequestFilter) ([]domain.DonationRequest, error)

	// Update applies a partial edit and returns the modified count.
	Update(ctx context.Context, id string, upd domain.RequestUpdate) (int64, error)

	// UpdateStatus sets status, donor_name and donor_email together in a
	// single atomic statement and returns the modified count. Two
	// concurrent calls on the same id resolve as last-writer-wins with no
	// half-applied state observable to readers.
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus, donorName, donorEmail *string) (int64, error)

	// Delete removes a request and returns the deleted count.
	// A missing id yields 0, not an error.
	Delete(ctx context.Context, id string) (int64, error)

	// Count returns the total number of requests.
	Count(ctx context.Context) (int, error)
}

// UserStore is the user directory: account records keyed by email.
type UserStore interface {
	// Create persists a new user and returns its assigned id.
	// It returns a *apperrors.UserAlreadyExistsError on a duplicate email.
	Create(ctx context.Context, user *domain.User) (string, error)

	// GetByEmail retrieves a user by unique email (case-insensitive).
	// It returns apperrors.ErrNotFound if no such user exists.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetAll retrieves every user, most recently registered first.
	GetAll(ctx context.Context) ([]domain.User, error)

	// UpdateByEmail applies a partial profile edit keyed by email.
	UpdateByEmail(ctx context.Context, email string, upd domain.UserUpdate) (int64, error)

	// UpdateByID applies a partial edit keyed by id (admin console path).
	UpdateByID(ctx context.Context, id string, upd domain.UserUpdate) (int64, error)

	// CountByRole counts users holding the given role.
	CountByRole(ctx context.Context, role string) (int, error)
}

// PaymentStore records settled payments and aggregates the funding total.
type PaymentStore interface {
	// Create persists a payment record and returns its assigned id.
	Create(ctx context.Context, payment *domain.Payment) (string, error)

	// GetAll retrieves every payment, most recent first.
	GetAll(ctx context.Context) ([]domain.Payment, error)

	// SumCompleted sums the amounts of completed payments.
	SumCompleted(ctx context.Context) (float64, error)
}

// BlogStore persists blog content for the public site and admin console.
type BlogStore interface {
	Create(ctx context.Context, blog *domain.Blog) (string, error)

	// GetByID returns apperrors.ErrNotFound if the id does not resolve.
	GetByID(ctx context.Context, id string) (*domain.Blog, error)

	GetAll(ctx context.Context) ([]domain.Blog, error)

	// GetPublished retrieves only posts with status published.
	GetPublished(ctx context.Context) ([]domain.Blog, error)

	Update(ctx context.Context, id string, upd domain.BlogUpdate) (int64, error)

	Delete(ctx context.Context, id string) (int64, error)
}
