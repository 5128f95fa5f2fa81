package impl

import (
	"context"
	"testing"
	"time"

	"vetclinic/internal/domain/entity"
	mockRepo "vetclinic/internal/mocks/repository"
	"vetclinic/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dashboardServiceFixtures holds all test dependencies for dashboard tests.
type dashboardServiceFixtures struct {
	service       usecase.DashboardUsecase
	dashboardRepo *mockRepo.MockDashboardRepository
	clock         fixedClock
}

func createTestDashboardService(t *testing.T) dashboardServiceFixtures {
	dashboardRepo := mockRepo.NewMockDashboardRepository(t)
	clock := newTestClock()

	service := NewDashboardService(DashboardServiceParams{
		DashboardRepo: dashboardRepo,
		Clock:         clock,
		Logger:        newDiscardLogger(),
	})

	return dashboardServiceFixtures{
		service:       service,
		dashboardRepo: dashboardRepo,
		clock:         clock,
	}
}

func TestDashboardService_Estadisticas_Cliente(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()
	actor := clienteActor("carlos")

	fx.dashboardRepo.On("CountMascotas", ctx, "carlos").Return(int64(2), nil)
	fx.dashboardRepo.On("CountCitas", ctx, entity.EstadoCitaPendiente, "carlos", "").Return(int64(1), nil)
	fx.dashboardRepo.On("CountCitas", ctx, entity.EstadoCitaCompletada, "carlos", "").Return(int64(5), nil)
	fx.dashboardRepo.On("CountVacunas", ctx, "carlos", "").Return(int64(4), nil)
	fx.dashboardRepo.On("CountFacturas", ctx, entity.EstadoFacturaPendiente, "carlos", "").Return(int64(1), nil)
	fx.dashboardRepo.On("CountFacturas", ctx, entity.EstadoFacturaPagada, "carlos", "").Return(int64(3), nil)

	out, err := fx.service.Estadisticas(ctx, actor)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleCliente, out.Role)
	require.NotNil(t, out.Cliente)
	assert.Nil(t, out.Veterinario)
	assert.Nil(t, out.Admin)
	assert.Equal(t, int64(2), out.Cliente.MisMascotas)
	assert.Equal(t, int64(1), out.Cliente.CitasPendientes)
	assert.Equal(t, int64(5), out.Cliente.CitasCompletadas)
	assert.Equal(t, int64(3), out.Cliente.FacturasPagadas)
}

func TestDashboardService_Estadisticas_Veterinario(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()
	actor := vetActor("dra_gomez")

	fx.dashboardRepo.On("CountMascotasAtendidasPor", ctx, "dra_gomez").Return(int64(12), nil)
	fx.dashboardRepo.On("CountCitas", ctx, entity.EstadoCitaPendiente, "", "dra_gomez").Return(int64(3), nil)
	fx.dashboardRepo.On("CountCitas", ctx, entity.EstadoCitaCompletada, "", "dra_gomez").Return(int64(40), nil)
	fx.dashboardRepo.On("CountVacunas", ctx, "", "dra_gomez").Return(int64(20), nil)
	fx.dashboardRepo.On("CountFacturas", ctx, entity.EstadoFacturaPendiente, "", "dra_gomez").Return(int64(6), nil)
	fx.dashboardRepo.On("CountFacturas", ctx, entity.EstadoFacturaPagada, "", "dra_gomez").Return(int64(30), nil)

	out, err := fx.service.Estadisticas(ctx, actor)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleVeterinario, out.Role)
	require.NotNil(t, out.Veterinario)
	assert.Nil(t, out.Cliente)
	assert.Equal(t, int64(12), out.Veterinario.MisMascotas)
	assert.Equal(t, int64(3), out.Veterinario.CitasAsignadas)
	assert.Equal(t, int64(30), out.Veterinario.FacturasCobradas)
}

func TestDashboardService_Estadisticas_AdminWindows(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()
	loc := fx.clock.Location()

	// The clock is pinned to 2025-03-15 in America/Bogota, so "today" spans
	// March 15 to 16 and "this month" spans March 1 to April 1, local time.
	today := time.Date(2025, time.March, 15, 0, 0, 0, 0, loc)
	tomorrow := time.Date(2025, time.March, 16, 0, 0, 0, 0, loc)
	monthStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, loc)
	nextMonthStart := time.Date(2025, time.April, 1, 0, 0, 0, 0, loc)

	fx.dashboardRepo.On("CountMascotas", ctx, "").Return(int64(120), nil)
	fx.dashboardRepo.On("CountUsuarios", ctx).Return(int64(80), nil)
	fx.dashboardRepo.On("CountCitas", ctx, entity.EstadoCitaPendiente, "", "").Return(int64(14), nil)
	fx.dashboardRepo.On("CountCitasEntre", ctx, today, tomorrow).Return(int64(5), nil)
	fx.dashboardRepo.On("CountVacunasEntre", ctx, monthStart, nextMonthStart).Return(int64(22), nil)
	fx.dashboardRepo.On("CountFacturas", ctx, entity.EstadoFacturaPendiente, "", "").Return(int64(9), nil)
	fx.dashboardRepo.On("SumIngresosEntre", ctx, monthStart, nextMonthStart).Return(1250000.0, nil)

	out, err := fx.service.Estadisticas(ctx, adminActor("admin"))

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
	require.NotNil(t, out.Admin)
	assert.Equal(t, int64(120), out.Admin.TotalMascotas)
	assert.Equal(t, int64(5), out.Admin.CitasHoy)
	assert.Equal(t, int64(22), out.Admin.VacunasMes)
	assert.InDelta(t, 1250000.0, out.Admin.IngresosMes, 0.001)
}
