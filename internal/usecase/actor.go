package usecase

import (
	"vetclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller of an operation. It is built by
// the auth middleware from the validated token claims and passed down so the
// business layer can apply ownership and role checks without extra lookups.
type Actor struct {
	ID       uuid.UUID
	Username string
	Role     entity.Role
}

// IsAdmin reports whether the caller holds the admin role.
func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == entity.RoleAdmin
}

// IsVeterinario reports whether the caller holds the veterinario role.
func (a *Actor) IsVeterinario() bool {
	return a != nil && a.Role == entity.RoleVeterinario
}
