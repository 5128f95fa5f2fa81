// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"vetclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// UsuarioFilter narrows usuario listings.
type UsuarioFilter struct {
	Role           *entity.Role
	Search         string // Matches username or nombre.
	IncludeDeleted bool
	Offset         int
	Limit          int
}

// UsuarioRepository defines the standard operations for account persistence.
type UsuarioRepository interface {
	// FindByID retrieves a single usuario by ID, including soft-deleted rows
	// so that restore can reach them.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Usuario, error)

	// FindByUsername retrieves a non-deleted usuario by their username.
	FindByUsername(ctx context.Context, username string) (*entity.Usuario, error)

	// List returns a page of usuarios plus the total row count for the filter.
	List(ctx context.Context, filter UsuarioFilter) ([]*entity.Usuario, int64, error)

	// Create persists a new usuario.
	Create(ctx context.Context, usuario *entity.Usuario) error

	// Update modifies an existing usuario.
	Update(ctx context.Context, usuario *entity.Usuario) error
}
