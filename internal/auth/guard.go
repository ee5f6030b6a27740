package auth

import (
	"storefront-backend/internal/apperr"
	"storefront-backend/internal/model"
)

// Require returns nil when the user's role set intersects the required set.
// ADMIN overrides every gate. Pure: no I/O, no side effects.
func Require(user *model.User, required ...model.Permission) error {
	if user == nil {
		return apperr.ErrUnauthenticated
	}
	if user.Permissions.Has(model.PermissionAdmin) {
		return nil
	}
	if user.Permissions.Intersects(required...) {
		return nil
	}
	return apperr.ErrForbidden
}
