// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vetclinic/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new usuario.
type RegisterInput struct {
	Username string
	Password string
	Nombre   string
	Edad     int
	Telefono string
	Role     *entity.Role // optional; defaults to cliente
}

// LoginInput defines the data required for a usuario to log in.
type LoginInput struct {
	Username string
	Password string
}

// ChangePasswordInput defines the data required to change the caller's password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created usuario.
type RegisterOutput struct {
	Usuario *entity.Usuario
}

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	Usuario     *entity.Usuario
}

// AuthUsecase defines the interface for authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new usuario. The actor is nil for anonymous
	// registration; creating a veterinario account requires an admin actor.
	Register(ctx context.Context, actor *Actor, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	ChangePassword(ctx context.Context, actor *Actor, input *ChangePasswordInput) error
}
