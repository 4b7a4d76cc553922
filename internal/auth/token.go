// package auth implements the identity gate: it issues and verifies the
// HS256 bearer tokens carried by the web client and hashes credentials.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sheponsu/blood-aid-server/internal/apperrors"
	"github.com/sheponsu/blood-aid-server/internal/domain"
)

// TokenManager signs and verifies access tokens carrying an email and role.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

type accessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token for the given identity. Emails are lower-cased so the
// claim always matches the users table.
func (m *TokenManager) Issue(identity domain.Identity) (string, error) {
	now := time.Now().UTC()

	claims := accessClaims{
		Email: strings.ToLower(identity.Email),
		Role:  identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}

// Verify parses and validates a bearer token and returns the caller identity.
// Any parse, signature or expiry failure maps to ErrForbidden: the credential
// was presented but is not acceptable.
func (m *TokenManager) Verify(tokenString string) (domain.Identity, error) {
	var claims accessClaims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}

		return m.secret, nil
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", apperrors.ErrForbidden, err)
	}

	if claims.Email == "" {
		return domain.Identity{}, fmt.Errorf("%w: %w", apperrors.ErrForbidden, errors.New("token carries no email claim"))
	}

	return domain.Identity{
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}
