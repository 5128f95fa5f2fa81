package repository

import (
	"context"

	"vetclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// FacturaFilter narrows factura listings.
type FacturaFilter struct {
	IDMascota      *uuid.UUID
	Estado         *entity.EstadoFactura
	Veterinario    string // Issuing vet username; empty means all.
	Propietario    string // Pet owner username; empty means all. Joined through mascotas.
	IncludeDeleted bool
	Offset         int
	Limit          int
}

// FacturaRepository defines the standard operations for invoice persistence.
type FacturaRepository interface {
	// FindByID retrieves a single factura by ID, including soft-deleted rows.
	// The mascota and issuing vet are preloaded for response enrichment.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Factura, error)

	// FindByCita retrieves the non-deleted factura issued for a cita, or
	// ErrFacturaNotFound when the cita has no invoice yet.
	FindByCita(ctx context.Context, idCita uuid.UUID) (*entity.Factura, error)

	// FindByVacuna retrieves the non-deleted factura issued for a vacuna, or
	// ErrFacturaNotFound when the vacuna has no invoice yet.
	FindByVacuna(ctx context.Context, idVacuna uuid.UUID) (*entity.Factura, error)

	// List returns a page of facturas plus the total row count for the filter.
	List(ctx context.Context, filter FacturaFilter) ([]*entity.Factura, int64, error)

	// Create persists a new factura.
	Create(ctx context.Context, factura *entity.Factura) error

	// Update modifies an existing factura.
	Update(ctx context.Context, factura *entity.Factura) error

	// UpdateVeterinarioUsername rewrites the denormalized vet username on
	// every factura when an account is renamed.
	UpdateVeterinarioUsername(ctx context.Context, oldUsername, newUsername string) error
}
