package usecase

import (
	"context"

	"vetclinic/internal/domain/entity"
	"vetclinic/internal/pagination"

	"github.com/google/uuid"
)

// CreateMascotaInput defines the data required to register a mascota.
// The caller becomes its propietario.
type CreateMascotaInput struct {
	Nombre string
	Tipo   entity.TipoMascota
	Raza   string
	Edad   int
	Peso   float64
}

// UpdateMascotaInput defines the editable mascota fields. Nil pointers leave
// the stored value untouched.
type UpdateMascotaInput struct {
	Nombre *string
	Tipo   *entity.TipoMascota
	Raza   *string
	Edad   *int
	Peso   *float64
}

// ListMascotasInput defines the filters for listing mascotas. The propietario
// filter is only honored for admin callers; other roles are scoped to their
// own pets.
type ListMascotasInput struct {
	Tipo           *entity.TipoMascota
	Propietario    string
	Search         string
	IncludeDeleted bool
	Page           pagination.Params
}

// ListMascotasOutput returns a page of mascotas with pagination metadata.
type ListMascotasOutput struct {
	Mascotas []*entity.Mascota
	Meta     pagination.Meta
}

// MascotaUsecase defines the interface for mascota management and the
// per-pet clinical history views.
type MascotaUsecase interface {
	Create(ctx context.Context, actor *Actor, input *CreateMascotaInput) (*entity.Mascota, error)
	Get(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.Mascota, error)
	List(ctx context.Context, actor *Actor, input *ListMascotasInput) (*ListMascotasOutput, error)
	Update(ctx context.Context, actor *Actor, id uuid.UUID, input *UpdateMascotaInput) (*entity.Mascota, error)
	Delete(ctx context.Context, actor *Actor, id uuid.UUID) error
	Restore(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.Mascota, error)

	HistorialCitas(ctx context.Context, actor *Actor, idMascota uuid.UUID, page pagination.Params) (*ListCitasOutput, error)
	HistorialVacunas(ctx context.Context, actor *Actor, idMascota uuid.UUID, page pagination.Params) (*ListVacunasOutput, error)
	HistorialFacturas(ctx context.Context, actor *Actor, idMascota uuid.UUID, page pagination.Params) (*ListFacturasOutput, error)
}
