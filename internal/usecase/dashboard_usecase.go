package usecase

import (
	"context"

	"vetclinic/internal/domain/entity"
)

// EstadisticasOutput carries the dashboard aggregates for the caller's role.
// Exactly one of the three payloads is non-nil.
type EstadisticasOutput struct {
	Role        entity.Role
	Cliente     *entity.EstadisticasCliente
	Veterinario *entity.EstadisticasVeterinario
	Admin       *entity.EstadisticasAdmin
}

// DashboardUsecase defines the interface for the role-scoped dashboard.
type DashboardUsecase interface {
	Estadisticas(ctx context.Context, actor *Actor) (*EstadisticasOutput, error)
}
