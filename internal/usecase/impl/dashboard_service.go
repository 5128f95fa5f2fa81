package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "vetclinic/internal/delivery/context"
	"vetclinic/internal/domain/entity"
	domainerrors "vetclinic/internal/domain/errors"
	"vetclinic/internal/domain/repository"
	"vetclinic/internal/domain/service"
	"vetclinic/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	clock         service.Clock
	logger        *slog.Logger
}

// DashboardServiceParams holds dependencies for dashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	DashboardRepo repository.DashboardRepository
	Clock         service.Clock
	Logger        *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		dashboardRepo: params.DashboardRepo,
		clock:         params.Clock,
		logger:        params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Estadisticas builds the dashboard for the caller's role.
func (srv *dashboardService) Estadisticas(ctx context.Context, actor *usecase.Actor) (*usecase.EstadisticasOutput, error) {
	var (
		out *usecase.EstadisticasOutput
		err error
	)

	switch actor.Role {
	case entity.RoleCliente:
		out, err = srv.estadisticasCliente(ctx, actor.Username)
	case entity.RoleVeterinario:
		out, err = srv.estadisticasVeterinario(ctx, actor.Username)
	case entity.RoleAdmin:
		out, err = srv.estadisticasAdmin(ctx)
	default:
		return nil, domainerrors.ErrForbidden
	}

	if err != nil {
		srv.log(ctx).Error("Failed to build dashboard", slog.String("role", actor.Role.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to build dashboard")
	}

	return out, nil
}

func (srv *dashboardService) estadisticasCliente(ctx context.Context, username string) (*usecase.EstadisticasOutput, error) {
	stats := &entity.EstadisticasCliente{}

	counts := []countTask{
		{&stats.MisMascotas, func() (int64, error) { return srv.dashboardRepo.CountMascotas(ctx, username) }},
		{&stats.CitasPendientes, func() (int64, error) {
			return srv.dashboardRepo.CountCitas(ctx, entity.EstadoCitaPendiente, username, "")
		}},
		{&stats.CitasCompletadas, func() (int64, error) {
			return srv.dashboardRepo.CountCitas(ctx, entity.EstadoCitaCompletada, username, "")
		}},
		{&stats.VacunasAplicadas, func() (int64, error) { return srv.dashboardRepo.CountVacunas(ctx, username, "") }},
		{&stats.FacturasPendientes, func() (int64, error) {
			return srv.dashboardRepo.CountFacturas(ctx, entity.EstadoFacturaPendiente, username, "")
		}},
		{&stats.FacturasPagadas, func() (int64, error) {
			return srv.dashboardRepo.CountFacturas(ctx, entity.EstadoFacturaPagada, username, "")
		}},
	}
	if err := runCounts(counts); err != nil {
		return nil, err
	}

	return &usecase.EstadisticasOutput{Role: entity.RoleCliente, Cliente: stats}, nil
}

func (srv *dashboardService) estadisticasVeterinario(ctx context.Context, username string) (*usecase.EstadisticasOutput, error) {
	stats := &entity.EstadisticasVeterinario{}

	counts := []countTask{
		{&stats.MisMascotas, func() (int64, error) { return srv.dashboardRepo.CountMascotasAtendidasPor(ctx, username) }},
		{&stats.CitasAsignadas, func() (int64, error) {
			return srv.dashboardRepo.CountCitas(ctx, entity.EstadoCitaPendiente, "", username)
		}},
		{&stats.CitasCompletadas, func() (int64, error) {
			return srv.dashboardRepo.CountCitas(ctx, entity.EstadoCitaCompletada, "", username)
		}},
		{&stats.VacunasAplicadas, func() (int64, error) { return srv.dashboardRepo.CountVacunas(ctx, "", username) }},
		{&stats.FacturasEmitidas, func() (int64, error) {
			return srv.dashboardRepo.CountFacturas(ctx, entity.EstadoFacturaPendiente, "", username)
		}},
		{&stats.FacturasCobradas, func() (int64, error) {
			return srv.dashboardRepo.CountFacturas(ctx, entity.EstadoFacturaPagada, "", username)
		}},
	}
	if err := runCounts(counts); err != nil {
		return nil, err
	}

	return &usecase.EstadisticasOutput{Role: entity.RoleVeterinario, Veterinario: stats}, nil
}

func (srv *dashboardService) estadisticasAdmin(ctx context.Context) (*usecase.EstadisticasOutput, error) {
	today := srv.clock.Today()
	tomorrow := today.AddDate(0, 0, 1)
	monthStart, nextMonthStart := srv.monthWindow()

	stats := &entity.EstadisticasAdmin{}

	counts := []countTask{
		{&stats.TotalMascotas, func() (int64, error) { return srv.dashboardRepo.CountMascotas(ctx, "") }},
		{&stats.TotalUsuarios, func() (int64, error) { return srv.dashboardRepo.CountUsuarios(ctx) }},
		{&stats.CitasPendientes, func() (int64, error) {
			return srv.dashboardRepo.CountCitas(ctx, entity.EstadoCitaPendiente, "", "")
		}},
		{&stats.CitasHoy, func() (int64, error) { return srv.dashboardRepo.CountCitasEntre(ctx, today, tomorrow) }},
		{&stats.VacunasMes, func() (int64, error) {
			return srv.dashboardRepo.CountVacunasEntre(ctx, monthStart, nextMonthStart)
		}},
		{&stats.FacturasPendientes, func() (int64, error) {
			return srv.dashboardRepo.CountFacturas(ctx, entity.EstadoFacturaPendiente, "", "")
		}},
	}
	if err := runCounts(counts); err != nil {
		return nil, err
	}

	ingresos, err := srv.dashboardRepo.SumIngresosEntre(ctx, monthStart, nextMonthStart)
	if err != nil {
		return nil, err
	}
	stats.IngresosMes = ingresos

	return &usecase.EstadisticasOutput{Role: entity.RoleAdmin, Admin: stats}, nil
}

// monthWindow returns the local-time half-open interval covering the current
// calendar month.
func (srv *dashboardService) monthWindow() (time.Time, time.Time) {
	now := srv.clock.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, srv.clock.Location())

	return start, start.AddDate(0, 1, 0)
}

// countTask pairs a destination field with the query that fills it.
type countTask struct {
	dst  *int64
	load func() (int64, error)
}

func runCounts(counts []countTask) error {
	for _, c := range counts {
		value, err := c.load()
		if err != nil {
			return err
		}
		*c.dst = value
	}

	return nil
}
