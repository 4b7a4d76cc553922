package service

import (
	"context"
	"fmt"

	"github.com/sheponsu/blood-aid-server/internal/domain"
	"github.com/sheponsu/blood-aid-server/internal/repository"
	"github.com/sheponsu/blood-aid-server/pkg/api"
)

// UserUpdatePayload is a partial profile edit; nil fields stay untouched.
// Role and status edits are reserved for the admin path.
type UserUpdatePayload struct {
	Name       *string
	BloodGroup *string
	Division   *string
	District   *string
	Avatar     *string
	Role       *string
	Status     *string
}

// UserService exposes the user directory.
type UserService interface {
	GetByEmail(ctx context.Context, email string) (*api.User, error)
	ListAll(ctx context.Context) ([]api.User, error)
	Update(ctx context.Context, email string, payload UserUpdatePayload, identity domain.Identity) (*api.ModifyResult, error)
	AdminUpdate(ctx context.Context, id string, payload UserUpdatePayload) (*api.ModifyResult, error)
}

type UserServiceImpl struct {
	users repository.UserStore
}

func NewUserService(users repository.UserStore) *UserServiceImpl {
	return &UserServiceImpl{users: users}
}

func (s *UserServiceImpl) GetByEmail(ctx context.Context, email string) (*api.User, error) {
	const op = "internal.service.user.GetByEmail"

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get user: %w", op, err)
	}

	return toAPIUser(user), nil
}

func (s *UserServiceImpl) ListAll(ctx context.Context) ([]api.User, error) {
	const op = "internal.service.user.ListAll"

	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list users: %w", op, err)
	}

	result := make([]api.User, len(users))
	for i := range users {
		result[i] = *toAPIUser(&users[i])
	}

	return result, nil
}

// Update edits a profile. Only the profile owner or an admin may write, and
// only admins may touch role or status.
func (s *UserServiceImpl) Update(ctx context.Context, email string, payload UserUpdatePayload, identity domain.Identity) (*api.ModifyResult, error) {
	const op = "internal.service.user.Update"

	if err := requireSelfOrAdmin(identity, email); err != nil {
		return nil, err
	}

	if !identity.IsAdmin() {
		payload.Role = nil
		payload.Status = nil
	}

	modified, err := s.users.UpdateByEmail(ctx, email, toUserUpdate(payload))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update user: %w", op, err)
	}

	return &api.ModifyResult{ModifiedCount: modified}, nil
}

func (s *UserServiceImpl) AdminUpdate(ctx context.Context, id string, payload UserUpdatePayload) (*api.ModifyResult, error) {
	const op = "internal.service.user.AdminUpdate"

	modified, err := s.users.UpdateByID(ctx, id, toUserUpdate(payload))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update user: %w", op, err)
	}

	return &api.ModifyResult{ModifiedCount: modified}, nil
}

func toUserUpdate(payload UserUpdatePayload) domain.UserUpdate {
	return domain.UserUpdate{
		Name:       payload.Name,
		BloodGroup: payload.BloodGroup,
		Division:   payload.Division,
		District:   payload.District,
		Avatar:     payload.Avatar,
		Role:       payload.Role,
		Status:     payload.Status,
	}
}

func toAPIUser(user *domain.User) *api.User {
	return &api.User{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		BloodGroup: user.BloodGroup,
		Division:   user.Division,
		District:   user.District,
		Avatar:     user.Avatar,
		Role:       user.Role,
		Status:     user.Status,
		CreatedAt:  user.CreatedAt,
	}
}
