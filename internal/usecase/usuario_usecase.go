package usecase

import (
	"context"

	"vetclinic/internal/domain/entity"
	"vetclinic/internal/pagination"

	"github.com/google/uuid"
)

// ListUsuariosInput defines the filters for listing usuarios.
type ListUsuariosInput struct {
	Role           *entity.Role
	Search         string
	IncludeDeleted bool
	Page           pagination.Params
}

// UpdateUsuarioInput defines the editable usuario fields. Nil pointers leave
// the stored value untouched.
type UpdateUsuarioInput struct {
	Username *string
	Nombre   *string
	Edad     *int
	Telefono *string
}

// ListUsuariosOutput returns a page of usuarios with pagination metadata.
type ListUsuariosOutput struct {
	Usuarios []*entity.Usuario
	Meta     pagination.Meta
}

// UsuarioUsecase defines the interface for usuario management operations.
type UsuarioUsecase interface {
	List(ctx context.Context, actor *Actor, input *ListUsuariosInput) (*ListUsuariosOutput, error)
	Get(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.Usuario, error)
	Update(ctx context.Context, actor *Actor, id uuid.UUID, input *UpdateUsuarioInput) (*entity.Usuario, error)
	Delete(ctx context.Context, actor *Actor, id uuid.UUID) error
	Restore(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.Usuario, error)
}
