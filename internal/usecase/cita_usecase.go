package usecase

import (
	"context"
	"time"

	"vetclinic/internal/domain/entity"
	"vetclinic/internal/pagination"

	"github.com/google/uuid"
)

// CreateCitaInput defines the data required to schedule a cita.
type CreateCitaInput struct {
	IDMascota   uuid.UUID
	Fecha       time.Time
	Motivo      string
	Veterinario string
}

// UpdateCitaInput defines the editable cita fields. Nil pointers leave the
// stored value untouched. Fecha, Motivo and Veterinario are scheduling
// fields; Estado, Diagnostico and Tratamiento are clinical fields and follow
// separate write rules.
type UpdateCitaInput struct {
	Fecha       *time.Time
	Motivo      *string
	Veterinario *string
	Estado      *entity.EstadoCita
	Diagnostico *string
	Tratamiento *string
}

// ListCitasInput defines the filters for listing citas.
type ListCitasInput struct {
	IDMascota      *uuid.UUID
	Estado         *entity.EstadoCita
	Veterinario    string
	IncludeDeleted bool
	Page           pagination.Params
}

// ListCitasOutput returns a page of citas with pagination metadata.
type ListCitasOutput struct {
	Citas []*entity.Cita
	Meta  pagination.Meta
}

// CitaUsecase defines the interface for cita management operations.
type CitaUsecase interface {
	Create(ctx context.Context, actor *Actor, input *CreateCitaInput) (*entity.Cita, error)
	Get(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.Cita, error)
	List(ctx context.Context, actor *Actor, input *ListCitasInput) (*ListCitasOutput, error)
	Update(ctx context.Context, actor *Actor, id uuid.UUID, input *UpdateCitaInput) (*entity.Cita, error)
	// Cancel sets the estado to cancelada and soft-deletes the cita in one
	// transaction. Only the pet owner or an admin may cancel.
	Cancel(ctx context.Context, actor *Actor, id uuid.UUID) error
}
