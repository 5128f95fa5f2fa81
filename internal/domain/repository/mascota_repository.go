package repository

import (
	"context"

	"vetclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// MascotaFilter narrows mascota listings.
type MascotaFilter struct {
	Tipo           *entity.TipoMascota
	Propietario    string // Owner username; empty means all owners.
	Search         string // Matches nombre or raza.
	IncludeDeleted bool
	Offset         int
	Limit          int
}

// MascotaRepository defines the standard operations for patient persistence.
type MascotaRepository interface {
	// FindByID retrieves a single mascota by ID, including soft-deleted rows.
	// The owner account is preloaded for response enrichment.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Mascota, error)

	// List returns a page of mascotas plus the total row count for the filter.
	List(ctx context.Context, filter MascotaFilter) ([]*entity.Mascota, int64, error)

	// Create persists a new mascota.
	Create(ctx context.Context, mascota *entity.Mascota) error

	// Update modifies an existing mascota.
	Update(ctx context.Context, mascota *entity.Mascota) error

	// UpdatePropietarioUsername rewrites the denormalized owner username on
	// every mascota when an account is renamed.
	UpdatePropietarioUsername(ctx context.Context, oldUsername, newUsername string) error
}
