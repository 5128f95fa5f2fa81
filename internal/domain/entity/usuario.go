// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "github.com/google/uuid"

// Usuario is an account in the system: a pet owner, a veterinarian or an
// administrator, distinguished by Role. The username is the public handle
// other records reference (mascotas.propietario, citas.veterinario, ...).
type Usuario struct {
	ID       uuid.UUID
	Username string
	Nombre   string
	Edad     int
	Telefono string
	Role     Role

	// PBKDF2 credentials, hex-encoded. Never exposed on the wire.
	PasswordSalt string
	PasswordHash string

	Audit
}

// IsVeterinario reports whether the account holds the veterinarian role.
func (u *Usuario) IsVeterinario() bool {
	return u.Role == RoleVeterinario
}

// IsAdmin reports whether the account holds the administrator role.
func (u *Usuario) IsAdmin() bool {
	return u.Role == RoleAdmin
}
