package http

import (
	"context"

	"github.com/sheponsu/blood-aid-server/internal/domain"
	"github.com/sheponsu/blood-aid-server/internal/repository"
	"github.com/sheponsu/blood-aid-server/internal/service"
	"github.com/sheponsu/blood-aid-server/pkg/api"
	"github.com/stretchr/testify/mock"
)

type TokenVerifierMock struct {
	mock.Mock
}

var _ TokenVerifier = (*TokenVerifierMock)(nil)

func (m *TokenVerifierMock) Verify(token string) (domain.Identity, error) {
	args := m.Called(token)
	return args.Get(0).(domain.Identity), args.Error(1)
}

type DonationServiceMock struct {
	mock.Mock
}

var _ service.DonationService = (*DonationServiceMock)(nil)

func (m *DonationServiceMock) Create(ctx context.Context, payload api.DonationRequestPayload, identity domain.Identity) (*api.InsertResult, error) {
	args := m.Called(ctx, payload, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.InsertResult), args.Error(1)
}

func (m *DonationServiceMock) Get(ctx context.Context, id string) (*api.DonationRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.DonationRequest), args.Error(1)
}

func (m *DonationServiceMock) ListAll(ctx context.Context) ([]api.DonationRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]api.DonationRequest), args.Error(1)
}

func (m *DonationServiceMock) ListMine(ctx context.Context, email string, identity domain.Identity) ([]api.DonationRequest, error) {
	args := m.Called(ctx, email, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]api.DonationRequest), args.Error(1)
}

func (m *DonationServiceMock) ListPending(ctx context.Context) ([]api.DonationRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]api.DonationRequest), args.Error(1)
}

func (m *DonationServiceMock) Search(ctx context.Context, filter api.SearchFilter) ([]api.DonationRequest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]api.DonationRequest), args.Error(1)
}

func (m *DonationServiceMock) Update(ctx context.Context, id string, payload api.RequestUpdatePayload, identity domain.Identity) (*api.ModifyResult, error) {
	args := m.Called(ctx, id, payload, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.ModifyResult), args.Error(1)
}

func (m *DonationServiceMock) UpdateStatus(ctx context.Context, id string, payload api.StatusUpdatePayload, identity domain.Identity) (*api.ModifyResult, error) {
	args := m.Called(ctx, id, payload, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.ModifyResult), args.Error(1)
}

func (m *DonationServiceMock) Delete(ctx context.Context, id string, identity domain.Identity) (*api.DeleteResult, error) {
	args := m.Called(ctx, id, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.DeleteResult), args.Error(1)
}

type AuthServiceMock struct {
	mock.Mock
}

var _ service.AuthService = (*AuthServiceMock)(nil)

func (m *AuthServiceMock) Register(ctx context.Context, payload service.RegisterPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *AuthServiceMock) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.AuthResponse), args.Error(1)
}

func (m *AuthServiceMock) IssueToken(ctx context.Context, email, role string) (*api.TokenResponse, error) {
	args := m.Called(ctx, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.TokenResponse), args.Error(1)
}

type UserServiceMock struct {
	mock.Mock
}

var _ service.UserService = (*UserServiceMock)(nil)

func (m *UserServiceMock) GetByEmail(ctx context.Context, email string) (*api.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.User), args.Error(1)
}

func (m *UserServiceMock) ListAll(ctx context.Context) ([]api.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]api.User), args.Error(1)
}

func (m *UserServiceMock) Update(ctx context.Context, email string, payload service.UserUpdatePayload, identity domain.Identity) (*api.ModifyResult, error) {
	args := m.Called(ctx, email, payload, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.ModifyResult), args.Error(1)
}

func (m *UserServiceMock) AdminUpdate(ctx context.Context, id string, payload service.UserUpdatePayload) (*api.ModifyResult, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.ModifyResult), args.Error(1)
}

type PaymentServiceMock struct {
	mock.Mock
}

var _ service.PaymentService = (*PaymentServiceMock)(nil)

func (m *PaymentServiceMock) CreateIntent(ctx context.Context, amount float64) (string, error) {
	args := m.Called(ctx, amount)
	return args.String(0), args.Error(1)
}

func (m *PaymentServiceMock) Record(ctx context.Context, payload service.PaymentPayload, identity domain.Identity) (*api.InsertResult, error) {
	args := m.Called(ctx, payload, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.InsertResult), args.Error(1)
}

func (m *PaymentServiceMock) ListAll(ctx context.Context) ([]api.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]api.Payment), args.Error(1)
}

type BlogServiceMock struct {
	mock.Mock
}

var _ service.BlogService = (*BlogServiceMock)(nil)

func (m *BlogServiceMock) Create(ctx context.Context, payload service.BlogPayload) (*api.InsertResult, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.InsertResult), args.Error(1)
}

func (m *BlogServiceMock) Get(ctx context.Context, id string) (*api.Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.Blog), args.Error(1)
}

func (m *BlogServiceMock) ListAll(ctx context.Context) ([]api.Blog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]api.Blog), args.Error(1)
}

func (m *BlogServiceMock) ListPublished(ctx context.Context) ([]api.Blog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]api.Blog), args.Error(1)
}

func (m *BlogServiceMock) Update(ctx context.Context, id string, payload service.BlogUpdatePayload) (*api.ModifyResult, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.ModifyResult), args.Error(1)
}

func (m *BlogServiceMock) Delete(ctx context.Context, id string) (*api.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.DeleteResult), args.Error(1)
}

type AdminServiceMock struct {
	mock.Mock
}

var _ service.AdminService = (*AdminServiceMock)(nil)

func (m *AdminServiceMock) Stats(ctx context.Context) (*api.AdminStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.AdminStats), args.Error(1)
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
