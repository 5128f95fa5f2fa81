package repository

import (
	"context"
	"time"

	"vetclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// VacunaFilter narrows vacuna listings.
type VacunaFilter struct {
	IDMascota      *uuid.UUID
	TipoVacuna     *entity.TipoVacuna
	Veterinario    string     // Applying vet username; empty means all.
	Propietario    string     // Pet owner username; empty means all. Joined through mascotas.
	ProximaDesde   *time.Time // Only records with proxima_dosis on or after this date.
	IncludeDeleted bool
	Offset         int
	Limit          int
}

// VacunaRepository defines the standard operations for vaccination persistence.
type VacunaRepository interface {
	// FindByID retrieves a single vacuna by ID, including soft-deleted rows.
	// The mascota and applying vet are preloaded for response enrichment.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vacuna, error)

	// List returns a page of vacunas plus the total row count for the filter.
	List(ctx context.Context, filter VacunaFilter) ([]*entity.Vacuna, int64, error)

	// Create persists a new vacuna.
	Create(ctx context.Context, vacuna *entity.Vacuna) error

	// Update modifies an existing vacuna.
	Update(ctx context.Context, vacuna *entity.Vacuna) error

	// UpdateVeterinarioUsername rewrites the denormalized vet username on
	// every vacuna when an account is renamed.
	UpdateVeterinarioUsername(ctx context.Context, oldUsername, newUsername string) error
}
