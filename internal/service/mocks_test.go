package service

import (
	"context"

	"github.com/sheponsu/blood-aid-server/internal/domain"
	"github.com/sheponsu/blood-aid-server/internal/repository"
	"github.com/stretchr/testify/mock"
)

type RequestStoreMock struct {
	mock.Mock
}

var _ repository.RequestStore = (*RequestStoreMock)(nil)

func (m *RequestStoreMock) Create(ctx context.Context, req *domain.DonationRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *RequestStoreMock) GetByID(ctx context.Context, id string) (*domain.DonationRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.DonationRequest), args.Error(1)
}

func (m *RequestStoreMock) GetAll(ctx context.Context) ([]domain.DonationRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.DonationRequest), args.Error(1)
}

func (m *RequestStoreMock) GetByRequester(ctx context.Context, email string) ([]domain.DonationRequest, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.DonationRequest), args.Error(1)
}

func (m *RequestStoreMock) GetPending(ctx context.Context) ([]domain.DonationRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.DonationRequest), args.Error(1)
}

func (m *RequestStoreMock) Search(ctx context.Context, filter domain.RequestFilter) ([]domain.DonationRequest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.DonationRequest), args.Error(1)
}

func (m *RequestStoreMock) Update(ctx context.Context, id string, upd domain.RequestUpdate) (int64, error) {
	args := m.Called(ctx, id, upd)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RequestStoreMock) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus, donorName, donorEmail *string) (int64, error) {
	args := m.Called(ctx, id, status, donorName, donorEmail)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RequestStoreMock) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RequestStoreMock) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type UserStoreMock struct {
	mock.Mock
}

var _ repository.UserStore = (*UserStoreMock)(nil)

func (m *UserStoreMock) Create(ctx context.Context, user *domain.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *UserStoreMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserStoreMock) GetAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *UserStoreMock) UpdateByEmail(ctx context.Context, email string, upd domain.UserUpdate) (int64, error) {
	args := m.Called(ctx, email, upd)
	return args.Get(0).(int64), args.Error(1)
}

func (m *UserStoreMock) UpdateByID(ctx context.Context, id string, upd domain.UserUpdate) (int64, error) {
	args := m.Called(ctx, id, upd)
	return args.Get(0).(int64), args.Error(1)
}

func (m *UserStoreMock) CountByRole(ctx context.Context, role string) (int, error) {
	args := m.Called(ctx, role)
	return args.Int(0), args.Error(1)
}

type PaymentStoreMock struct {
	mock.Mock
}

var _ repository.PaymentStore = (*PaymentStoreMock)(nil)

func (m *PaymentStoreMock) Create(ctx context.Context, payment *domain.Payment) (string, error) {
	args := m.Called(ctx, payment)
	return args.String(0), args.Error(1)
}

func (m *PaymentStoreMock) GetAll(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *PaymentStoreMock) SumCompleted(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

type BlogStoreMock struct {
	mock.Mock
}

var _ repository.BlogStore = (*BlogStoreMock)(nil)

func (m *BlogStoreMock) Create(ctx context.Context, blog *domain.Blog) (string, error) {
	args := m.Called(ctx, blog)
	return args.String(0), args.Error(1)
}

func (m *BlogStoreMock) GetByID(ctx context.Context, id string) (*domain.Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Blog), args.Error(1)
}

func (m *BlogStoreMock) GetAll(ctx context.Context) ([]domain.Blog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Blog), args.Error(1)
}

func (m *BlogStoreMock) GetPublished(ctx context.Context) ([]domain.Blog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Blog), args.Error(1)
}

func (m *BlogStoreMock) Update(ctx context.Context, id string, upd domain.BlogUpdate) (int64, error) {
	args := m.Called(ctx, id, upd)
	return args.Get(0).(int64), args.Error(1)
}

func (m *BlogStoreMock) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type TokenIssuerMock struct {
	mock.Mock
}

var _ TokenIssuer = (*TokenIssuerMock)(nil)

func (m *TokenIssuerMock) Issue(identity domain.Identity) (string, error) {
	args := m.Called(identity)
	return args.String(0), args.Error(1)
}
