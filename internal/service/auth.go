package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sheponsu/blood-aid-server/internal/apperrors"
	"github.com/sheponsu/blood-aid-server/internal/auth"
	"github.com/sheponsu/blood-aid-server/internal/domain"
	"github.com/sheponsu/blood-aid-server/internal/repository"
	"github.com/sheponsu/blood-aid-server/pkg/api"
)

// TokenIssuer signs access tokens for verified identities.
type TokenIssuer interface {
	Issue(identity domain.Identity) (string, error)
}

// RegisterPayload carries a new account submission.
type RegisterPayload struct {
	Name       string
	Email      string
	Password   string
	BloodGroup string
	Division   string
	District   string
	Avatar     string
}

// AuthService registers accounts and exchanges credentials for bearer tokens.
type AuthService interface {
	Register(ctx context.Context, payload RegisterPayload) error
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	IssueToken(ctx context.Context, email, role string) (*api.TokenResponse, error)
}

type AuthServiceImpl struct {
	users  repository.UserStore
	tokens TokenIssuer
	log    *slog.Logger
}

func NewAuthService(users repository.UserStore, tokens TokenIssuer, log *slog.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		users:  users,
		tokens: tokens,
		log:    log,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, payload RegisterPayload) error {
	const op = "internal.service.auth.Register"
	log := s.log.With(slog.String("op", op), slog.String("email", payload.Email))

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	user := &domain.User{
		Name:         payload.Name,
		Email:        strings.ToLower(payload.Email),
		PasswordHash: hash,
		BloodGroup:   payload.BloodGroup,
		Division:     payload.Division,
		District:     payload.District,
		Avatar:       payload.Avatar,
		Role:         domain.RoleDonor,
		Status:       "active",
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("%s: failed to create user: %w", op, err)
	}

	log.Info("user registered")

	return nil
}

// Login verifies credentials and issues a token carrying email and role.
// A bad email and a bad password are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	const op = "internal.service.auth.Login"

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}

		return nil, fmt.Errorf("%s: failed to get user: %w", op, err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.Identity{Email: user.Email, Role: user.Role})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to issue token: %w", op, err)
	}

	return &api.AuthResponse{
		Token: token,
		User: api.AuthUser{
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}

// IssueToken mints a token for the given claims without checking a password.
// This backs the legacy POST /jwt endpoint the client calls after social
// sign-in; the role is looked up from the directory, never trusted from the
// request.
func (s *AuthServiceImpl) IssueToken(ctx context.Context, email, role string) (*api.TokenResponse, error) {
	const op = "internal.service.auth.IssueToken"

	resolvedRole := role
	if user, err := s.users.GetByEmail(ctx, email); err == nil {
		resolvedRole = user.Role
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("%s: failed to get user: %w", op, err)
	}

	if resolvedRole == "" {
		resolvedRole = domain.RoleDonor
	}

	token, err := s.tokens.Issue(domain.Identity{Email: strings.ToLower(email), Role: resolvedRole})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to issue token: %w", op, err)
	}

	return &api.TokenResponse{Token: token}, nil
}
