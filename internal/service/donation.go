package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/sheponsu/blood-aid-server/internal/apperrors"
	"github.com/sheponsu/blood-aid-server/internal/domain"
	"github.com/sheponsu/blood-aid-server/internal/repository"
	"github.com/sheponsu/blood-aid-server/pkg/api"
)

// DonationService is the request lifecycle engine: it validates and executes
// state transitions, enforces ownership rules, builds search predicates and
// shapes responses. It holds no state of its own; persistence belongs to the
// request store.
type DonationService interface {
	Create(ctx context.Context, payload api.DonationRequestPayload, identity domain.Identity) (*api.InsertResult, error)
	Get(ctx context.Context, id string) (*api.DonationRequest, error)
	ListAll(ctx context.Context) ([]api.DonationRequest, error)
	ListMine(ctx context.Context, email string, identity domain.Identity) ([]api.DonationRequest, error)
	ListPending(ctx context.Context) ([]api.DonationRequest, error)
	Search(ctx context.Context, filter api.SearchFilter) ([]api.DonationRequest, error)
	Update(ctx context.Context, id string, payload api.RequestUpdatePayload, identity domain.Identity) (*api.ModifyResult, error)
	UpdateStatus(ctx context.Context, id string, payload api.StatusUpdatePayload, identity domain.Identity) (*api.ModifyResult, error)
	Delete(ctx context.Context, id string, identity domain.Identity) (*api.DeleteResult, error)
}

type DonationServiceImpl struct {
	requests repository.RequestStore
	log      *slog.Logger
}

func NewDonationService(requests repository.RequestStore, log *slog.Logger) *DonationServiceImpl {
	return &DonationServiceImpl{
		requests: requests,
		log:      log,
	}
}

// Create persists a new donation request. Status and donor fields from the
// payload are never trusted: every new request starts pending with no donor,
// so nobody can submit a pre-accepted request.
func (s *DonationServiceImpl) Create(ctx context.Context, payload api.DonationRequestPayload, identity domain.Identity) (*api.InsertResult, error) {
	const op = "internal.service.donation.Create"
	log := s.log.With(slog.String("op", op), slog.String("requester", payload.RequesterEmail))

	if err := requireSelfOrAdmin(identity, payload.RequesterEmail); err != nil {
		return nil, err
	}

	req := &domain.DonationRequest{
		RequesterName:     payload.RequesterName,
		RequesterEmail:    strings.ToLower(payload.RequesterEmail),
		RecipientName:     payload.RecipientName,
		HospitalName:      payload.HospitalName,
		FullAddress:       payload.FullAddress,
		Division:          payload.Division,
		RecipientDistrict: payload.RecipientDistrict,
		District:          payload.District,
		BloodGroup:        payload.BloodGroup,
		DonationDate:      payload.DonationDate,
		DonationTime:      payload.DonationTime,
		Message:           payload.Message,
		Status:            domain.StatusPending,
		DonorName:         nil,
		DonorEmail:        nil,
	}

	id, err := s.requests.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create donation request: %w", op, err)
	}

	log.Info("donation request created", slog.String("request_id", id))

	return &api.InsertResult{InsertedID: id}, nil
}

func (s *DonationServiceImpl) Get(ctx context.Context, id string) (*api.DonationRequest, error) {
	const op = "internal.service.donation.Get"

	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get donation request: %w", op, err)
	}

	return toAPIDonationRequest(req), nil
}

func (s *DonationServiceImpl) ListAll(ctx context.Context) ([]api.DonationRequest, error) {
	const op = "internal.service.donation.ListAll"

	requests, err := s.requests.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list donation requests: %w", op, err)
	}

	return toAPIDonationRequests(requests), nil
}

// ListMine returns the caller's own requests. The email in the path must
// belong to the caller; admins may inspect anyone's list.
func (s *DonationServiceImpl) ListMine(ctx context.Context, email string, identity domain.Identity) ([]api.DonationRequest, error) {
	const op = "internal.service.donation.ListMine"

	if err := requireSelfOrAdmin(identity, email); err != nil {
		return nil, err
	}

	requests, err := s.requests.GetByRequester(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list donation requests: %w", op, err)
	}

	return toAPIDonationRequests(requests), nil
}

func (s *DonationServiceImpl) ListPending(ctx context.Context) ([]api.DonationRequest, error) {
	const op = "internal.service.donation.ListPending"

	requests, err := s.requests.GetPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list pending requests: %w", op, err)
	}

	return toAPIDonationRequests(requests), nil
}

func (s *DonationServiceImpl) Search(ctx context.Context, filter api.SearchFilter) ([]api.DonationRequest, error) {
	const op = "internal.service.donation.Search"

	requests, err := s.requests.Search(ctx, domain.RequestFilter{
		BloodGroup: strings.TrimSpace(filter.BloodGroup),
		Division:   strings.TrimSpace(filter.Division),
		District:   strings.TrimSpace(filter.District),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to search requests: %w", op, err)
	}

	return toAPIDonationRequests(requests), nil
}

// Update applies a full-record edit (address corrections and the like) for
// the original requester or an admin. The donor pair may only change
// together, and only while the current status carries a donor; the status
// itself is not editable through this path.
func (s *DonationServiceImpl) Update(ctx context.Context, id string, payload api.RequestUpdatePayload, identity domain.Identity) (*api.ModifyResult, error) {
	const op = "internal.service.donation.Update"

	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get donation request: %w", op, err)
	}

	if err := requireSelfOrAdmin(identity, req.RequesterEmail); err != nil {
		return nil, err
	}

	if (payload.DonorName == nil) != (payload.DonorEmail == nil) {
		return nil, &apperrors.InvalidTransitionError{
			Reason: "donor name and donor email must be supplied together",
		}
	}

	if payload.DonorName != nil && !req.Status.RequiresDonor() {
		return nil, &apperrors.InvalidTransitionError{
			Status: string(req.Status),
			Reason: "donor fields cannot be edited while no donor is assigned",
		}
	}

	if payload.DonorEmail != nil {
		if _, err := mail.ParseAddress(*payload.DonorEmail); err != nil {
			return nil, &apperrors.InvalidTransitionError{
				Reason: fmt.Sprintf("donor email '%s' is not a valid address", *payload.DonorEmail),
			}
		}
	}

	modified, err := s.requests.Update(ctx, id, domain.RequestUpdate{
		RequesterName:     payload.RequesterName,
		RecipientName:     payload.RecipientName,
		HospitalName:      payload.HospitalName,
		FullAddress:       payload.FullAddress,
		Division:          payload.Division,
		RecipientDistrict: payload.RecipientDistrict,
		District:          payload.District,
		BloodGroup:        payload.BloodGroup,
		DonationDate:      payload.DonationDate,
		DonationTime:      payload.DonationTime,
		Message:           payload.Message,
		DonorName:         payload.DonorName,
		DonorEmail:        payload.DonorEmail,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update donation request: %w", op, err)
	}

	return &api.ModifyResult{ModifiedCount: modified}, nil
}

// UpdateStatus executes a lifecycle transition. Accepted, confirmed and done
// require a donor name/email pair; pending and canceled clear the pair. The
// write is a single atomic statement, so concurrent transitions on the same
// id resolve as last-writer-wins with no half-applied state.
func (s *DonationServiceImpl) UpdateStatus(ctx context.Context, id string, payload api.StatusUpdatePayload, identity domain.Identity) (*api.ModifyResult, error) {
	const op = "internal.service.donation.UpdateStatus"
	log := s.log.With(slog.String("op", op), slog.String("request_id", id))

	status, donorName, donorEmail, err := validateTransition(payload)
	if err != nil {
		return nil, err
	}

	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get donation request: %w", op, err)
	}

	if err := s.authorizeTransition(identity, req, status, donorEmail); err != nil {
		return nil, err
	}

	modified, err := s.requests.UpdateStatus(ctx, id, status, donorName, donorEmail)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update status: %w", op, err)
	}

	log.Info("request status updated",
		slog.String("from", string(req.Status)),
		slog.String("to", string(status)),
	)

	return &api.ModifyResult{ModifiedCount: modified}, nil
}

// Delete removes a request. A missing id is not an error: the caller gets a
// deleted count of zero, so retries stay safe.
func (s *DonationServiceImpl) Delete(ctx context.Context, id string, identity domain.Identity) (*api.DeleteResult, error) {
	const op = "internal.service.donation.Delete"

	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return &api.DeleteResult{DeletedCount: 0}, nil
		}

		return nil, fmt.Errorf("%s: failed to get donation request: %w", op, err)
	}

	if err := requireSelfOrAdmin(identity, req.RequesterEmail); err != nil {
		return nil, err
	}

	deleted, err := s.requests.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to delete donation request: %w", op, err)
	}

	return &api.DeleteResult{DeletedCount: deleted}, nil
}

// validateTransition canonicalizes the target status and checks the
// status/donor-field pairing invariant.
func validateTransition(payload api.StatusUpdatePayload) (domain.RequestStatus, *string, *string, error) {
	status, ok := domain.CanonicalStatus(payload.Status)
	if !ok {
		return "", nil, nil, &apperrors.InvalidTransitionError{
			Status: payload.Status,
			Reason: "unknown status value",
		}
	}

	donorName := trimmed(payload.DonorName)
	donorEmail := trimmed(payload.DonorEmail)

	if status.RequiresDonor() {
		if donorName == nil || donorEmail == nil {
			return "", nil, nil, &apperrors.InvalidTransitionError{
				Status: string(status),
				Reason: "both donor name and donor email are required",
			}
		}

		if _, err := mail.ParseAddress(*donorEmail); err != nil {
			return "", nil, nil, &apperrors.InvalidTransitionError{
				Status: string(status),
				Reason: fmt.Sprintf("donor email '%s' is not a valid address", *donorEmail),
			}
		}

		return status, donorName, donorEmail, nil
	}

	if donorName != nil || donorEmail != nil {
		return "", nil, nil, &apperrors.InvalidTransitionError{
			Status: string(status),
			Reason: "donor fields cannot accompany this status",
		}
	}

	return status, nil, nil, nil
}

// authorizeTransition: admins may do anything; a donor may accept, confirm or
// complete a request in their own name; the original requester may cancel or
// reopen their own request.
func (s *DonationServiceImpl) authorizeTransition(identity domain.Identity, req *domain.DonationRequest, status domain.RequestStatus, donorEmail *string) error {
	if identity.Email == "" {
		return apperrors.ErrUnauthenticated
	}

	if identity.IsAdmin() {
		return nil
	}

	if status.RequiresDonor() {
		if donorEmail != nil && identity.IsSelf(*donorEmail) {
			return nil
		}

		return fmt.Errorf("%w: only the named donor may take this request", apperrors.ErrForbidden)
	}

	if identity.IsSelf(req.RequesterEmail) {
		return nil
	}

	return fmt.Errorf("%w: only the requester may cancel this request", apperrors.ErrForbidden)
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}

	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}

	return &t
}

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}

func toAPIDonationRequest(req *domain.DonationRequest) *api.DonationRequest {
	return &api.DonationRequest{
		ID:                req.ID,
		RequesterName:     req.RequesterName,
		RequesterEmail:    req.RequesterEmail,
		RecipientName:     req.RecipientName,
		HospitalName:      req.HospitalName,
		FullAddress:       req.FullAddress,
		Division:          req.Division,
		RecipientDistrict: req.RecipientDistrict,
		District:          req.District,
		BloodGroup:        req.BloodGroup,
		DonationDate:      req.DonationDate,
		DonationTime:      req.DonationTime,
		Message:           req.Message,
		Status:            string(req.Status),
		DonorName:         req.DonorName,
		DonorEmail:        req.DonorEmail,
		CreatedAt:         req.CreatedAt,
		UpdatedAt:         req.UpdatedAt,
	}
}

func toAPIDonationRequests(requests []domain.DonationRequest) []api.DonationRequest {
	result := make([]api.DonationRequest, len(requests))
	for i := range requests {
		result[i] = *toAPIDonationRequest(&requests[i])
	}

	return result
}
