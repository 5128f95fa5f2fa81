package impl

import (
	"context"
	"log/slog"
	"time"

	"vetclinic/config"
	deliverycontext "vetclinic/internal/delivery/context"
	"vetclinic/internal/domain/entity"
	domainerrors "vetclinic/internal/domain/errors"
	"vetclinic/internal/domain/policy"
	"vetclinic/internal/domain/repository"
	"vetclinic/internal/domain/service"
	"vetclinic/internal/pagination"
	"vetclinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// vacunaService implements the VacunaUsecase interface.
type vacunaService struct {
	txManager  repository.TransactionManager
	vacunaRepo repository.VacunaRepository
	clock      service.Clock
	pages      pageLimits
	logger     *slog.Logger
}

// VacunaServiceParams holds dependencies for vacunaService, injected by Fx.
type VacunaServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	VacunaRepo repository.VacunaRepository
	Clock      service.Clock
	Config     *config.Config
	Logger     *slog.Logger
}

// NewVacunaService is the constructor for vacunaService.
func NewVacunaService(params VacunaServiceParams) usecase.VacunaUsecase {
	return &vacunaService{
		txManager:  params.TxManager,
		vacunaRepo: params.VacunaRepo,
		clock:      params.Clock,
		pages:      pageLimitsFromConfig(params.Config),
		logger:     params.Logger,
	}
}

func (srv *vacunaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create records a vaccination. Vets and admins only. The application date is
// the clinic's current day and the applying vet is always the caller.
func (srv *vacunaService) Create(ctx context.Context, actor *usecase.Actor, input *usecase.CreateVacunaInput) (*entity.Vacuna, error) {
	if err := policy.RequireRole(actor.Role, entity.RoleVeterinario, entity.RoleAdmin); err != nil {
		return nil, err
	}
	if !input.TipoVacuna.IsValid() {
		return nil, domainerrors.NewValidationError("tipo_vacuna", "Tipo de vacuna inválido")
	}

	fechaAplicacion := srv.clock.Today()
	if err := validateProximaDosis(input.ProximaDosis, fechaAplicacion); err != nil {
		return nil, err
	}

	vacuna := &entity.Vacuna{
		IDMascota:       input.IDMascota,
		TipoVacuna:      input.TipoVacuna,
		FechaAplicacion: fechaAplicacion,
		Veterinario:     actor.Username,
		LoteVacuna:      input.LoteVacuna,
		ProximaDosis:    input.ProximaDosis,
	}
	vacuna.StampCreated(actor.ID, srv.clock.Now())

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mascota, findErr := repoFactory.MascotaRepo().FindByID(ctx, input.IDMascota)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load mascota for vacuna")
		}
		if mascota.IsDeleted {
			return domainerrors.ErrMascotaNotFound
		}

		return repoFactory.VacunaRepo().Create(ctx, vacuna)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute vacuna creation transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute vacuna creation transaction")
	}

	srv.log(ctx).Info("Vacuna created", slog.Any("vacunaID", vacuna.ID), slog.String("veterinario", actor.Username))

	return vacuna, nil
}

// validateProximaDosis rejects booster dates that do not fall strictly after
// the application date.
func validateProximaDosis(proximaDosis *time.Time, fechaAplicacion time.Time) error {
	if proximaDosis != nil && !proximaDosis.After(fechaAplicacion) {
		return domainerrors.NewValidationError("proxima_dosis", "La próxima dosis debe ser posterior a la fecha de aplicación")
	}

	return nil
}

// Get returns a single vacuna. Staff read any; clientes only their own pets'.
func (srv *vacunaService) Get(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.Vacuna, error) {
	vacuna, err := srv.vacunaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find vacuna")
	}

	if !policy.IsStaff(actor.Role) {
		owner := ""
		if vacuna.Mascota != nil {
			owner = vacuna.Mascota.Propietario
		}
		if ownErr := policy.CheckOwnership(actor.Role, actor.Username, owner); ownErr != nil {
			return nil, ownErr
		}
	}

	return vacuna, nil
}

// List returns a page of vacunas scoped to the caller's role. Staff see all
// records with the full filter set; clientes only their own pets'.
func (srv *vacunaService) List(ctx context.Context, actor *usecase.Actor, input *usecase.ListVacunasInput) (*usecase.ListVacunasOutput, error) {
	filter := repository.VacunaFilter{
		IDMascota:  input.IDMascota,
		TipoVacuna: input.TipoVacuna,
	}

	switch {
	case actor.IsAdmin():
		filter.Veterinario = input.Veterinario
		filter.IncludeDeleted = input.IncludeDeleted
	case actor.IsVeterinario():
		filter.Veterinario = input.Veterinario
	default:
		filter.Propietario = actor.Username
	}

	page := srv.pages.normalize(input.Page)
	filter.Offset = page.Offset()
	filter.Limit = page.PageSize

	vacunas, total, err := srv.vacunaRepo.List(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list vacunas", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list vacunas")
	}

	return &usecase.ListVacunasOutput{
		Vacunas: vacunas,
		Meta:    pagination.CalculateMeta(page.Page, page.PageSize, total),
	}, nil
}

// Update modifies a vacuna. Only an admin or the vet who applied it.
func (srv *vacunaService) Update(ctx context.Context, actor *usecase.Actor, id uuid.UUID, input *usecase.UpdateVacunaInput) (*entity.Vacuna, error) {
	if input.TipoVacuna != nil && !input.TipoVacuna.IsValid() {
		return nil, domainerrors.NewValidationError("tipo_vacuna", "Tipo de vacuna inválido")
	}

	var updated *entity.Vacuna
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		vacunaRepo := repoFactory.VacunaRepo()

		vacuna, findErr := vacunaRepo.FindByID(ctx, id)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load vacuna for update")
		}
		if vacuna.IsDeleted {
			return domainerrors.ErrRegistroEliminado
		}
		if ownErr := policy.CheckOwnership(actor.Role, actor.Username, vacuna.Veterinario); ownErr != nil {
			return ownErr
		}

		if input.TipoVacuna != nil {
			vacuna.TipoVacuna = *input.TipoVacuna
		}
		if input.LoteVacuna != nil {
			vacuna.LoteVacuna = *input.LoteVacuna
		}
		if input.ProximaDosis != nil {
			if dosisErr := validateProximaDosis(input.ProximaDosis, vacuna.FechaAplicacion); dosisErr != nil {
				return dosisErr
			}
			vacuna.ProximaDosis = input.ProximaDosis
		}

		vacuna.StampUpdated(actor.ID, srv.clock.Now())
		if updateErr := vacunaRepo.Update(ctx, vacuna); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update vacuna")
		}

		updated = vacuna

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute vacuna update transaction", slog.Any("vacunaID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute vacuna update transaction")
	}

	return updated, nil
}

// Delete soft-deletes a vacuna. Only an admin or the vet who applied it.
func (srv *vacunaService) Delete(ctx context.Context, actor *usecase.Actor, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		vacunaRepo := repoFactory.VacunaRepo()

		vacuna, findErr := vacunaRepo.FindByID(ctx, id)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load vacuna for delete")
		}
		if ownErr := policy.CheckOwnership(actor.Role, actor.Username, vacuna.Veterinario); ownErr != nil {
			return ownErr
		}
		if vacuna.IsDeleted {
			return domainerrors.NewBusinessRuleError("La vacuna ya está eliminada")
		}

		vacuna.MarkDeleted(actor.ID, srv.clock.Now())

		return vacunaRepo.Update(ctx, vacuna)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete vacuna", slog.Any("vacunaID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute vacuna delete transaction")
	}

	srv.log(ctx).Info("Vacuna deleted", slog.Any("vacunaID", id))

	return nil
}

// ProximasDosis lists vaccinations whose booster is still pending, scoped to
// the caller's role.
func (srv *vacunaService) ProximasDosis(ctx context.Context, actor *usecase.Actor, page pagination.Params) (*usecase.ListVacunasOutput, error) {
	desde := srv.clock.Today()
	filter := repository.VacunaFilter{ProximaDesde: &desde}

	switch {
	case actor.IsAdmin():
	case actor.IsVeterinario():
		filter.Veterinario = actor.Username
	default:
		filter.Propietario = actor.Username
	}

	page = srv.pages.normalize(page)
	filter.Offset = page.Offset()
	filter.Limit = page.PageSize

	vacunas, total, err := srv.vacunaRepo.List(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list proximas dosis", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list proximas dosis")
	}

	return &usecase.ListVacunasOutput{
		Vacunas: vacunas,
		Meta:    pagination.CalculateMeta(page.Page, page.PageSize, total),
	}, nil
}
