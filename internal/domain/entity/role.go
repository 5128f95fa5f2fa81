// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleCliente indicates a pet owner account.
	RoleCliente Role = "cliente"
	// RoleVeterinario indicates a veterinarian account.
	RoleVeterinario Role = "veterinario"
	// RoleAdmin indicates an administrator account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCliente, RoleVeterinario, RoleAdmin:
		return true
	default:
		return false
	}
}
