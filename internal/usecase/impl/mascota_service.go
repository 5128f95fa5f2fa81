package impl

import (
	"context"
	"log/slog"

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

// mascotaService implements the MascotaUsecase interface.
type mascotaService struct {
	txManager   repository.TransactionManager
	mascotaRepo repository.MascotaRepository
	citaRepo    repository.CitaRepository
	vacunaRepo  repository.VacunaRepository
	facturaRepo repository.FacturaRepository
	clock       service.Clock
	pages       pageLimits
	logger      *slog.Logger
}

// MascotaServiceParams holds dependencies for mascotaService, injected by Fx.
type MascotaServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	MascotaRepo repository.MascotaRepository
	CitaRepo    repository.CitaRepository
	VacunaRepo  repository.VacunaRepository
	FacturaRepo repository.FacturaRepository
	Clock       service.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewMascotaService is the constructor for mascotaService.
func NewMascotaService(params MascotaServiceParams) usecase.MascotaUsecase {
	return &mascotaService{
		txManager:   params.TxManager,
		mascotaRepo: params.MascotaRepo,
		citaRepo:    params.CitaRepo,
		vacunaRepo:  params.VacunaRepo,
		facturaRepo: params.FacturaRepo,
		clock:       params.Clock,
		pages:       pageLimitsFromConfig(params.Config),
		logger:      params.Logger,
	}
}

func (srv *mascotaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create registers a new mascota with the caller as its propietario.
func (srv *mascotaService) Create(ctx context.Context, actor *usecase.Actor, input *usecase.CreateMascotaInput) (*entity.Mascota, error) {
	if !input.Tipo.IsValid() {
		return nil, domainerrors.NewValidationError("tipo", "Tipo de mascota inválido")
	}

	mascota := &entity.Mascota{
		Nombre:      input.Nombre,
		Tipo:        input.Tipo,
		Raza:        input.Raza,
		Edad:        input.Edad,
		Peso:        input.Peso,
		Propietario: actor.Username,
	}
	mascota.StampCreated(actor.ID, srv.clock.Now())

	if err := srv.mascotaRepo.Create(ctx, mascota); err != nil {
		srv.log(ctx).Error("Failed to create mascota", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create mascota")
	}

	srv.log(ctx).Info("Mascota created", slog.Any("mascotaID", mascota.ID), slog.String("propietario", actor.Username))

	return mascota, nil
}

// Get returns a single mascota. Staff may read any; clientes only their own.
func (srv *mascotaService) Get(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.Mascota, error) {
	return srv.loadReadable(ctx, actor, id)
}

// loadReadable fetches a mascota and applies the read policy: staff see any
// patient, clientes only their own.
func (srv *mascotaService) loadReadable(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.Mascota, error) {
	mascota, err := srv.mascotaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find mascota")
	}

	if !policy.IsStaff(actor.Role) {
		if err := policy.CheckOwnership(actor.Role, actor.Username, mascota.Propietario); err != nil {
			return nil, err
		}
	}

	return mascota, nil
}

// List returns a page of mascotas scoped to the caller's role. The
// propietario filter is honored for admins only.
func (srv *mascotaService) List(ctx context.Context, actor *usecase.Actor, input *usecase.ListMascotasInput) (*usecase.ListMascotasOutput, error) {
	filter := repository.MascotaFilter{
		Tipo:   input.Tipo,
		Search: input.Search,
	}

	switch {
	case actor.IsAdmin():
		filter.Propietario = input.Propietario
		filter.IncludeDeleted = input.IncludeDeleted
	case actor.IsVeterinario():
		// Vets see every patient but never deleted ones.
	default:
		filter.Propietario = actor.Username
	}

	page := srv.pages.normalize(input.Page)
	filter.Offset = page.Offset()
	filter.Limit = page.PageSize

	mascotas, total, err := srv.mascotaRepo.List(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list mascotas", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list mascotas")
	}

	return &usecase.ListMascotasOutput{
		Mascotas: mascotas,
		Meta:     pagination.CalculateMeta(page.Page, page.PageSize, total),
	}, nil
}

// Update modifies a mascota. Owner or admin only.
func (srv *mascotaService) Update(ctx context.Context, actor *usecase.Actor, id uuid.UUID, input *usecase.UpdateMascotaInput) (*entity.Mascota, error) {
	if input.Tipo != nil && !input.Tipo.IsValid() {
		return nil, domainerrors.NewValidationError("tipo", "Tipo de mascota inválido")
	}

	var updated *entity.Mascota
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mascotaRepo := repoFactory.MascotaRepo()

		mascota, findErr := mascotaRepo.FindByID(ctx, id)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load mascota for update")
		}
		if mascota.IsDeleted {
			return domainerrors.ErrRegistroEliminado
		}
		if ownErr := policy.CheckOwnership(actor.Role, actor.Username, mascota.Propietario); ownErr != nil {
			return ownErr
		}

		if input.Nombre != nil {
			mascota.Nombre = *input.Nombre
		}
		if input.Tipo != nil {
			mascota.Tipo = *input.Tipo
		}
		if input.Raza != nil {
			mascota.Raza = *input.Raza
		}
		if input.Edad != nil {
			mascota.Edad = *input.Edad
		}
		if input.Peso != nil {
			mascota.Peso = *input.Peso
		}

		mascota.StampUpdated(actor.ID, srv.clock.Now())
		if updateErr := mascotaRepo.Update(ctx, mascota); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update mascota")
		}

		updated = mascota

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute mascota update transaction", slog.Any("mascotaID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute mascota update transaction")
	}

	return updated, nil
}

// Delete soft-deletes a mascota. Owner or admin only.
func (srv *mascotaService) Delete(ctx context.Context, actor *usecase.Actor, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mascotaRepo := repoFactory.MascotaRepo()

		mascota, findErr := mascotaRepo.FindByID(ctx, id)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load mascota for delete")
		}
		if ownErr := policy.CheckOwnership(actor.Role, actor.Username, mascota.Propietario); ownErr != nil {
			return ownErr
		}
		if mascota.IsDeleted {
			return domainerrors.NewBusinessRuleError("La mascota ya está eliminada")
		}

		mascota.MarkDeleted(actor.ID, srv.clock.Now())

		return mascotaRepo.Update(ctx, mascota)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete mascota", slog.Any("mascotaID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute mascota delete transaction")
	}

	srv.log(ctx).Info("Mascota deleted", slog.Any("mascotaID", id))

	return nil
}

// Restore clears the soft-delete marker. Owner or admin only.
func (srv *mascotaService) Restore(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.Mascota, error) {
	var restored *entity.Mascota
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mascotaRepo := repoFactory.MascotaRepo()

		mascota, findErr := mascotaRepo.FindByID(ctx, id)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load mascota for restore")
		}
		if ownErr := policy.CheckOwnership(actor.Role, actor.Username, mascota.Propietario); ownErr != nil {
			return ownErr
		}
		if !mascota.IsDeleted {
			return domainerrors.NewBusinessRuleError("La mascota no está eliminada")
		}

		mascota.ClearDeleted(actor.ID, srv.clock.Now())
		if updateErr := mascotaRepo.Update(ctx, mascota); updateErr != nil {
			return errors.Wrap(updateErr, "failed to restore mascota")
		}

		restored = mascota

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to restore mascota", slog.Any("mascotaID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute mascota restore transaction")
	}

	srv.log(ctx).Info("Mascota restored", slog.Any("mascotaID", id))

	return restored, nil
}

// HistorialCitas lists the appointments of one patient.
func (srv *mascotaService) HistorialCitas(ctx context.Context, actor *usecase.Actor, idMascota uuid.UUID, page pagination.Params) (*usecase.ListCitasOutput, error) {
	if _, err := srv.loadReadable(ctx, actor, idMascota); err != nil {
		return nil, err
	}

	page = srv.pages.normalize(page)
	citas, total, err := srv.citaRepo.List(ctx, repository.CitaFilter{
		IDMascota: &idMascota,
		Offset:    page.Offset(),
		Limit:     page.PageSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list citas for mascota")
	}

	return &usecase.ListCitasOutput{
		Citas: citas,
		Meta:  pagination.CalculateMeta(page.Page, page.PageSize, total),
	}, nil
}

// HistorialVacunas lists the vaccinations of one patient.
func (srv *mascotaService) HistorialVacunas(ctx context.Context, actor *usecase.Actor, idMascota uuid.UUID, page pagination.Params) (*usecase.ListVacunasOutput, error) {
	if _, err := srv.loadReadable(ctx, actor, idMascota); err != nil {
		return nil, err
	}

	page = srv.pages.normalize(page)
	vacunas, total, err := srv.vacunaRepo.List(ctx, repository.VacunaFilter{
		IDMascota: &idMascota,
		Offset:    page.Offset(),
		Limit:     page.PageSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vacunas for mascota")
	}

	return &usecase.ListVacunasOutput{
		Vacunas: vacunas,
		Meta:    pagination.CalculateMeta(page.Page, page.PageSize, total),
	}, nil
}

// HistorialFacturas lists the invoices of one patient. Vets only see the
// invoices they issued themselves.
func (srv *mascotaService) HistorialFacturas(ctx context.Context, actor *usecase.Actor, idMascota uuid.UUID, page pagination.Params) (*usecase.ListFacturasOutput, error) {
	if _, err := srv.loadReadable(ctx, actor, idMascota); err != nil {
		return nil, err
	}

	filter := repository.FacturaFilter{IDMascota: &idMascota}
	if actor.IsVeterinario() {
		filter.Veterinario = actor.Username
	}

	page = srv.pages.normalize(page)
	filter.Offset = page.Offset()
	filter.Limit = page.PageSize

	facturas, total, err := srv.facturaRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list facturas for mascota")
	}

	return &usecase.ListFacturasOutput{
		Facturas: facturas,
		Meta:     pagination.CalculateMeta(page.Page, page.PageSize, total),
	}, nil
}
