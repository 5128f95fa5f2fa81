package repository

import (
	"context"

	"vetclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// RecetaFilter narrows receta listings.
type RecetaFilter struct {
	IDCita         *uuid.UUID
	IDMascota      *uuid.UUID // Joined through citas.
	Veterinario    string     // Issuing vet username; empty means all.
	Propietario    string     // Pet owner username; empty means all. Joined through citas and mascotas.
	IncludeDeleted bool
	Offset         int
	Limit          int
}

// RecetaRepository defines the standard operations for prescription persistence.
type RecetaRepository interface {
	// FindByID retrieves a single receta by ID, including soft-deleted rows.
	// Medication lines and the source cita are preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Receta, error)

	// FindByCita retrieves the non-deleted receta issued for a cita, or
	// ErrRecetaNotFound when the cita has no prescription yet.
	FindByCita(ctx context.Context, idCita uuid.UUID) (*entity.Receta, error)

	// List returns a page of recetas plus the total row count for the filter.
	List(ctx context.Context, filter RecetaFilter) ([]*entity.Receta, int64, error)

	// Create persists a new receta together with its medication lines.
	Create(ctx context.Context, receta *entity.Receta) error

	// Update modifies the receta header fields only.
	Update(ctx context.Context, receta *entity.Receta) error

	// ReplaceLineas deletes every existing medication line of the receta and
	// inserts the given set. Callers run this inside a transaction together
	// with Update.
	ReplaceLineas(ctx context.Context, idReceta uuid.UUID, lineas []entity.RecetaLinea) error

	// UpdateVeterinarioUsername rewrites the denormalized vet username on
	// every receta when an account is renamed.
	UpdateVeterinarioUsername(ctx context.Context, oldUsername, newUsername string) error
}
