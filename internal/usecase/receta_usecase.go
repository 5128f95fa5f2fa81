package usecase

import (
	"context"

	"vetclinic/internal/domain/entity"
	"vetclinic/internal/pagination"

	"github.com/google/uuid"
)

// RecetaLineaInput defines one medication line of a receta.
type RecetaLineaInput struct {
	Medicamento string
	Dosis       string
	Frecuencia  string
	Duracion    string
}

// CreateRecetaInput defines the data required to issue a receta for a cita.
type CreateRecetaInput struct {
	IDCita       uuid.UUID
	Indicaciones string
	Lineas       []RecetaLineaInput
}

// UpdateRecetaInput defines the editable receta fields. A non-nil Lineas
// slice replaces the stored lines wholesale; nil keeps them.
type UpdateRecetaInput struct {
	Indicaciones *string
	Lineas       []RecetaLineaInput
}

// ListRecetasInput defines the filters for listing recetas.
type ListRecetasInput struct {
	IDCita         *uuid.UUID
	IDMascota      *uuid.UUID
	IncludeDeleted bool
	Page           pagination.Params
}

// ListRecetasOutput returns a page of recetas with pagination metadata.
type ListRecetasOutput struct {
	Recetas []*entity.Receta
	Meta    pagination.Meta
}

// RecetaUsecase defines the interface for receta management operations.
type RecetaUsecase interface {
	Create(ctx context.Context, actor *Actor, input *CreateRecetaInput) (*entity.Receta, error)
	Get(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.Receta, error)
	GetByCita(ctx context.Context, actor *Actor, idCita uuid.UUID) (*entity.Receta, error)
	List(ctx context.Context, actor *Actor, input *ListRecetasInput) (*ListRecetasOutput, error)
	Update(ctx context.Context, actor *Actor, id uuid.UUID, input *UpdateRecetaInput) (*entity.Receta, error)
	Delete(ctx context.Context, actor *Actor, id uuid.UUID) error
}
