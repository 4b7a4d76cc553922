package service

import (
	"fmt"

	"github.com/sheponsu/blood-aid-server/internal/apperrors"
	"github.com/sheponsu/blood-aid-server/internal/domain"
)

// requireSelfOrAdmin allows the owner of the given email or an admin.
// An empty identity means no credential was presented (Unauthenticated);
// a present but insufficient identity is Forbidden. The two failures are
// distinct so the transport layer can answer 401 vs 403.
func requireSelfOrAdmin(identity domain.Identity, ownerEmail string) error {
	if identity.Email == "" {
		return apperrors.ErrUnauthenticated
	}

	if identity.IsAdmin() || identity.IsSelf(ownerEmail) {
		return nil
	}

	return fmt.Errorf("%w: caller '%s' does not own this resource", apperrors.ErrForbidden, identity.Email)
}
