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

var requestColumns = []string{
	"id", "requester_name", "requester_email", "recipient_name",
	"hospital_name", "full_address", "division", "recipient_district",
	"district", "blood_group", "donation_date", "donation_time", "message",
	"status", "donor_name", "donor_email", "created_at", "updated_at",
}

type RequestRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewRequestRepository(db *sqlx.DB, log *slog.Logger) *RequestRepository {
	return &RequestRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.DonationRequest) (string, error) {
	const op = "internal.repository.postgres.RequestRepository.Create"

	id := uuid.NewString()

	query, args, err := r.sq.Insert("donation_requests").
		Columns(
			"id", "requester_name", "requester_email", "recipient_name",
			"hospital_name", "full_address", "division", "recipient_district",
			"district", "blood_group", "donation_date", "donation_time",
			"message", "status", "donor_name", "donor_email",
		).
		Values(
			id, req.RequesterName, req.RequesterEmail, req.RecipientName,
			req.HospitalName, req.FullAddress, req.Division, req.RecipientDistrict,
			req.District, req.BloodGroup, req.DonationDate, req.DonationTime,
			req.Message, req.Status, req.DonorName, req.DonorEmail,
		).
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

func (r *RequestRepository) GetByID(ctx context.Context, id string) (*domain.DonationRequest, error) {
	const op = "internal.repository.postgres.RequestRepository.GetByID"

	query, args, err := r.sq.Select(requestColumns...).
		From("donation_requests").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var req domain.DonationRequest
	if err := r.db.GetContext(ctx, &req, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w: donation request with id '%s'", op, apperrors.ErrNotFound, id)
		}

		return nil, fmt.Errorf("%s: failed to get donation request: %w", op, err)
	}

	return &req, nil
}

func (r *RequestRepository) GetAll(ctx context.Context) ([]domain.DonationRequest, error) {
	const op = "internal.repository.postgres.RequestRepository.GetAll"

	return r.selectRequests(ctx, op, r.sq.Select(requestColumns...).
		From("donation_requests").
		OrderBy("created_at DESC"))
}

func (r *RequestRepository) GetByRequester(ctx context.Context, email string) ([]domain.DonationRequest, error) {
	const op = "internal.repository.postgres.RequestRepository.GetByRequester"

	return r.selectRequests(ctx, op, r.sq.Select(requestColumns...).
		From("donation_requests").
		Where(sq.Expr("LOWER(requester_email) = LOWER(?)", email)).
		OrderBy("created_at DESC"))
}

func (r *RequestRepository) GetPending(ctx context.Context) ([]domain.DonationRequest, error) {
	const op = "internal.repository.postgres.RequestRepository.GetPending"

	return r.selectRequests(ctx, op, r.sq.Select(requestColumns...).
		From("donation_requests").
		Where(sq.Expr("LOWER(status) = ?", string(domain.StatusPending))).
		OrderBy("created_at DESC"))
}

// Search composes a conjunctive predicate from the optional filter subset.
// The status clause always restricts to pending; blood group is exact,
// division and district are case-insensitive substring matches.
func (r *RequestRepository) Search(ctx context.Context, filter domain.RequestFilter) ([]domain.DonationRequest, error) {
	const op = "internal.repository.postgres.RequestRepository.Search"

	queryBuilder := r.sq.Select(requestColumns...).
		From("donation_requests").
		Where(sq.Expr("LOWER(status) = ?", string(domain.StatusPending)))

	if filter.BloodGroup != "" {
		queryBuilder = queryBuilder.Where(sq.Eq{"blood_group": filter.BloodGroup})
	}

	if filter.Division != "" {
		queryBuilder = queryBuilder.Where(sq.ILike{"division": "%" + filter.Division + "%"})
	}

	if filter.District != "" {
		queryBuilder = queryBuilder.Where(sq.ILike{"district": "%" + filter.District + "%"})
	}

	return r.selectRequests(ctx, op, queryBuilder.OrderBy("created_at DESC"))
}

func (r *RequestRepository) Update(ctx context.Context, id string, upd domain.RequestUpdate) (int64, error) {
	const op = "internal.repository.postgres.RequestRepository.Update"

	setClauses := map[string]interface{}{}

	set := func(column string, v *string) {
		if v != nil {
			setClauses[column] = *v
		}
	}

	set("requester_name", upd.RequesterName)
	set("recipient_name", upd.RecipientName)
	set("hospital_name", upd.HospitalName)
	set("full_address", upd.FullAddress)
	set("division", upd.Division)
	set("recipient_district", upd.RecipientDistrict)
	set("district", upd.District)
	set("blood_group", upd.BloodGroup)
	set("donation_date", upd.DonationDate)
	set("donation_time", upd.DonationTime)
	set("message", upd.Message)
	set("donor_name", upd.DonorName)
	set("donor_email", upd.DonorEmail)

	if len(setClauses) == 0 {
		return 0, nil
	}

	query, args, err := r.sq.Update("donation_requests").
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

// UpdateStatus writes status, donor_name and donor_email in one UPDATE so a
// concurrent reader can never observe a half-applied transition. Conflicting
// writers resolve as last-writer-wins inside the database.
func (r *RequestRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus, donorName, donorEmail *string) (int64, error) {
	const op = "internal.repository.postgres.RequestRepository.UpdateStatus"

	query, args, err := r.sq.Update("donation_requests").
		Set("status", status).
		Set("donor_name", donorName).
		Set("donor_email", donorEmail).
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

func (r *RequestRepository) Delete(ctx context.Context, id string) (int64, error) {
	const op = "internal.repository.postgres.RequestRepository.Delete"

	query, args, err := r.sq.Delete("donation_requests").
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

func (r *RequestRepository) Count(ctx context.Context) (int, error) {
	const op = "internal.repository.postgres.RequestRepository.Count"

	query, args, err := r.sq.Select("COUNT(*)").
		From("donation_requests").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("%s: failed to count donation requests: %w", op, err)
	}

	return count, nil
}

func (r *RequestRepository) selectRequests(ctx context.Context, op string, queryBuilder sq.SelectBuilder) ([]domain.DonationRequest, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var requests []domain.DonationRequest
	if err := r.db.SelectContext(ctx, &requests, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []domain.DonationRequest{}, nil
		}

		return nil, fmt.Errorf("%s: failed to select donation requests: %w", op, err)
	}

	return requests, nil
}
