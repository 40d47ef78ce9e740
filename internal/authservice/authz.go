package authservice

import (
	"fmt"

	"auction-exchange/internal/exchangeerrors"
	model "auction-exchange/internal/models"
)

// RequireRole checks that the caller has the given account type. roleErr is the
// sentinel returned on mismatch, so call sites keep their specific errors.
func RequireRole(caller Identity, role model.UserType, roleErr error) error {
	if caller.UserType != role {
		return fmt.Errorf("authz: caller %s has type %s: %w", caller.UserID, caller.UserType, roleErr)
	}
	return nil
}

// RequireOwner checks that the caller is the owner of a resource. All
// ownership decisions in the exchange go through this single predicate.
func RequireOwner(ownerID string, caller Identity) error {
	if ownerID != caller.UserID {
		return fmt.Errorf("authz: caller %s is not owner %s: %w", caller.UserID, ownerID, exchangeerrors.ErrNotOwner)
	}
	return nil
}
