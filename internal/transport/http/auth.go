package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/sheponsu/blood-aid-server/internal/domain"
	"github.com/sheponsu/blood-aid-server/pkg/logger/sl"
)

const identityKey = contextKey("identity")

// TokenVerifier checks a presented bearer token and returns the caller
// identity it carries.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// requireAuth gates a route behind a bearer token. A missing credential is
// answered with 401; a presented but unacceptable one with 403. The verified
// identity is stored in the request context for the handlers.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			s.respondError(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			s.respondError(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		identity, err := s.verifier.Verify(token)
		if err != nil {
			s.log.Warn("token rejected", sl.Err(err))
			s.respondError(w, http.StatusForbidden, "forbidden access")
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin re-checks the caller's role against the user directory rather
// than trusting the role claim alone, so a demoted admin is locked out as
// soon as the directory changes.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := identityFrom(r.Context())
		if identity.Email == "" {
			s.respondError(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		user, err := s.directory.GetByEmail(r.Context(), identity.Email)
		if err != nil || user.Role != domain.RoleAdmin {
			s.respondError(w, http.StatusForbidden, "forbidden access")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func identityFrom(ctx context.Context) domain.Identity {
	if identity, ok := ctx.Value(identityKey).(domain.Identity); ok {
		return identity
	}

	return domain.Identity{}
}
