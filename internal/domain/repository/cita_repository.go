package repository

import (
	"context"

	"vetclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// CitaFilter narrows cita listings.
type CitaFilter struct {
	IDMascota      *uuid.UUID
	Estado         *entity.EstadoCita
	Veterinario    string // Assigned vet username; empty means all.
	Propietario    string // Pet owner username; empty means all. Joined through mascotas.
	Involucrado    string // Matches the assigned vet or the pet owner. Used for the vet listing scope.
	IncludeDeleted bool
	Offset         int
	Limit          int
}

// CitaRepository defines the standard operations for appointment persistence.
type CitaRepository interface {
	// FindByID retrieves a single cita by ID, including soft-deleted rows.
	// The mascota and assigned vet are preloaded for response enrichment.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Cita, error)

	// List returns a page of citas plus the total row count for the filter.
	List(ctx context.Context, filter CitaFilter) ([]*entity.Cita, int64, error)

	// Create persists a new cita.
	Create(ctx context.Context, cita *entity.Cita) error

	// Update modifies an existing cita.
	Update(ctx context.Context, cita *entity.Cita) error

	// UpdateVeterinarioUsername rewrites the denormalized vet username on
	// every cita when an account is renamed.
	UpdateVeterinarioUsername(ctx context.Context, oldUsername, newUsername string) error
}
