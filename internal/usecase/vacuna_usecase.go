package usecase

import (
	"context"
	"time"

	"vetclinic/internal/domain/entity"
	"vetclinic/internal/pagination"

	"github.com/google/uuid"
)

// CreateVacunaInput defines the data required to record a vacuna. The
// application date and the applying veterinario come from the server, not
// from the caller.
type CreateVacunaInput struct {
	IDMascota    uuid.UUID
	TipoVacuna   entity.TipoVacuna
	LoteVacuna   string
	ProximaDosis *time.Time
}

// UpdateVacunaInput defines the editable vacuna fields. Nil pointers leave
// the stored value untouched.
type UpdateVacunaInput struct {
	TipoVacuna   *entity.TipoVacuna
	LoteVacuna   *string
	ProximaDosis *time.Time
}

// ListVacunasInput defines the filters for listing vacunas.
type ListVacunasInput struct {
	IDMascota      *uuid.UUID
	TipoVacuna     *entity.TipoVacuna
	Veterinario    string
	IncludeDeleted bool
	Page           pagination.Params
}

// ListVacunasOutput returns a page of vacunas with pagination metadata.
type ListVacunasOutput struct {
	Vacunas []*entity.Vacuna
	Meta    pagination.Meta
}

// VacunaUsecase defines the interface for vacuna management operations.
type VacunaUsecase interface {
	Create(ctx context.Context, actor *Actor, input *CreateVacunaInput) (*entity.Vacuna, error)
	Get(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.Vacuna, error)
	List(ctx context.Context, actor *Actor, input *ListVacunasInput) (*ListVacunasOutput, error)
	Update(ctx context.Context, actor *Actor, id uuid.UUID, input *UpdateVacunaInput) (*entity.Vacuna, error)
	Delete(ctx context.Context, actor *Actor, id uuid.UUID) error
	// ProximasDosis lists upcoming booster doses, scoped to the caller's
	// role, ordered by application date.
	ProximasDosis(ctx context.Context, actor *Actor, page pagination.Params) (*ListVacunasOutput, error)
}
