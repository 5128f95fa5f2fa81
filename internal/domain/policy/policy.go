// Package policy centralizes the role and ownership checks shared by every
// usecase. Admins bypass ownership; everyone else may only touch records they
// own or are assigned to.
package policy

import (
	"vetclinic/internal/domain/entity"
	domainerrors "vetclinic/internal/domain/errors"
)

// CheckOwnership allows the action when the caller is an admin or when the
// caller's username matches the record owner's username.
func CheckOwnership(role entity.Role, callerUsername, ownerUsername string) error {
	if role == entity.RoleAdmin {
		return nil
	}
	if callerUsername == ownerUsername {
		return nil
	}

	return domainerrors.ErrForbidden
}

// RequireRole allows the action only when the caller holds one of the listed
// roles.
func RequireRole(role entity.Role, allowed ...entity.Role) error {
	for _, a := range allowed {
		if role == a {
			return nil
		}
	}

	return domainerrors.ErrForbidden
}

// IsStaff reports whether the role can act on any patient record.
func IsStaff(role entity.Role) bool {
	return role == entity.RoleVeterinario || role == entity.RoleAdmin
}
