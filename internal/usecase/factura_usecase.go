package usecase

import (
	"context"

	"vetclinic/internal/domain/entity"
	"vetclinic/internal/pagination"

	"github.com/google/uuid"
)

// CreateFacturaInput defines the data required to issue a factura. Exactly
// one of IDCita or IDVacuna must be set. The issuing veterinario, the invoice
// number, the date and the total come from the server.
type CreateFacturaInput struct {
	IDCita        *uuid.UUID
	IDVacuna      *uuid.UUID
	TipoServicio  entity.TipoServicio
	Descripcion   string
	ValorServicio float64
	IVA           float64
	Descuento     float64
}

// UpdateFacturaInput defines the editable factura fields. Nil pointers leave
// the stored value untouched. The total is recomputed whenever a monetary
// field changes.
type UpdateFacturaInput struct {
	TipoServicio  *entity.TipoServicio
	Descripcion   *string
	ValorServicio *float64
	IVA           *float64
	Descuento     *float64
}

// ListFacturasInput defines the filters for listing facturas.
type ListFacturasInput struct {
	IDMascota      *uuid.UUID
	Estado         *entity.EstadoFactura
	Veterinario    string
	IncludeDeleted bool
	Page           pagination.Params
}

// ListFacturasOutput returns a page of facturas with pagination metadata.
type ListFacturasOutput struct {
	Facturas []*entity.Factura
	Meta     pagination.Meta
}

// FacturaUsecase defines the interface for factura management operations.
type FacturaUsecase interface {
	Create(ctx context.Context, actor *Actor, input *CreateFacturaInput) (*entity.Factura, error)
	Get(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.Factura, error)
	List(ctx context.Context, actor *Actor, input *ListFacturasInput) (*ListFacturasOutput, error)
	Update(ctx context.Context, actor *Actor, id uuid.UUID, input *UpdateFacturaInput) (*entity.Factura, error)
	MarcarPagada(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.Factura, error)
	// Anular sets the estado to anulada and soft-deletes the factura in one
	// transaction. Paid facturas can never be voided.
	Anular(ctx context.Context, actor *Actor, id uuid.UUID) error
}
