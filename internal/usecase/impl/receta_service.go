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

// recetaService implements the RecetaUsecase interface.
type recetaService struct {
	txManager  repository.TransactionManager
	recetaRepo repository.RecetaRepository
	citaRepo   repository.CitaRepository
	clock      service.Clock
	pages      pageLimits
	logger     *slog.Logger
}

// RecetaServiceParams holds dependencies for recetaService, injected by Fx.
type RecetaServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RecetaRepo repository.RecetaRepository
	CitaRepo   repository.CitaRepository
	Clock      service.Clock
	Config     *config.Config
	Logger     *slog.Logger
}

// NewRecetaService is the constructor for recetaService.
func NewRecetaService(params RecetaServiceParams) usecase.RecetaUsecase {
	return &recetaService{
		txManager:  params.TxManager,
		recetaRepo: params.RecetaRepo,
		citaRepo:   params.CitaRepo,
		clock:      params.Clock,
		pages:      pageLimitsFromConfig(params.Config),
		logger:     params.Logger,
	}
}

func (srv *recetaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create issues a receta for a cita. Vets may only prescribe on citas
// assigned to them; each cita carries at most one receta.
func (srv *recetaService) Create(ctx context.Context, actor *usecase.Actor, input *usecase.CreateRecetaInput) (*entity.Receta, error) {
	if err := policy.RequireRole(actor.Role, entity.RoleVeterinario, entity.RoleAdmin); err != nil {
		return nil, err
	}

	now := srv.clock.Now()
	receta := &entity.Receta{
		IDCita:       input.IDCita,
		FechaEmision: now,
		Veterinario:  actor.Username,
		Indicaciones: input.Indicaciones,
		Lineas:       toRecetaLineas(input.Lineas),
	}
	receta.StampCreated(actor.ID, now)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recetaRepo := repoFactory.RecetaRepo()

		cita, findErr := repoFactory.CitaRepo().FindByID(ctx, input.IDCita)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load cita for receta")
		}
		if cita.IsDeleted {
			return domainerrors.ErrCitaNotFound
		}
		if actor.IsVeterinario() && cita.Veterinario != actor.Username {
			return domainerrors.NewForbiddenError("Solo puede emitir recetas para citas asignadas a usted")
		}

		_, dupErr := recetaRepo.FindByCita(ctx, input.IDCita)
		if dupErr == nil {
			return domainerrors.NewBusinessRuleError("La cita ya tiene una receta asociada")
		}
		if !errors.Is(dupErr, domainerrors.ErrRecetaNotFound) {
			return errors.Wrap(dupErr, "failed to check existing receta for cita")
		}

		return recetaRepo.Create(ctx, receta)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute receta creation transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute receta creation transaction")
	}

	srv.log(ctx).Info("Receta created", slog.Any("recetaID", receta.ID), slog.Any("citaID", input.IDCita))

	return receta, nil
}

func toRecetaLineas(inputs []usecase.RecetaLineaInput) []entity.RecetaLinea {
	lineas := make([]entity.RecetaLinea, 0, len(inputs))
	for _, in := range inputs {
		lineas = append(lineas, entity.RecetaLinea{
			Medicamento: in.Medicamento,
			Dosis:       in.Dosis,
			Frecuencia:  in.Frecuencia,
			Duracion:    in.Duracion,
		})
	}

	return lineas
}

// Get returns a single receta. Admins read any; the issuing vet their own;
// clientes only those for their own pets.
func (srv *recetaService) Get(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.Receta, error) {
	receta, err := srv.recetaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find receta")
	}

	if err := canReadReceta(actor, receta); err != nil {
		return nil, err
	}

	return receta, nil
}

func canReadReceta(actor *usecase.Actor, receta *entity.Receta) error {
	if actor.IsAdmin() {
		return nil
	}
	if receta.Veterinario == actor.Username {
		return nil
	}
	if receta.Cita != nil && receta.Cita.Mascota != nil && receta.Cita.Mascota.Propietario == actor.Username {
		return nil
	}

	return domainerrors.ErrForbidden
}

// GetByCita returns the receta issued for a cita, applying the same read
// policy as Get.
func (srv *recetaService) GetByCita(ctx context.Context, actor *usecase.Actor, idCita uuid.UUID) (*entity.Receta, error) {
	receta, err := srv.recetaRepo.FindByCita(ctx, idCita)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find receta for cita")
	}

	// FindByCita skips the cita preload, so resolve ownership separately.
	if !actor.IsAdmin() && receta.Veterinario != actor.Username {
		cita, citaErr := srv.citaRepo.FindByID(ctx, idCita)
		if citaErr != nil {
			return nil, errors.Wrap(citaErr, "failed to load cita for receta read check")
		}
		if cita.Mascota == nil || cita.Mascota.Propietario != actor.Username {
			return nil, domainerrors.ErrForbidden
		}
	}

	return receta, nil
}

// List returns a page of recetas scoped to the caller's role.
func (srv *recetaService) List(ctx context.Context, actor *usecase.Actor, input *usecase.ListRecetasInput) (*usecase.ListRecetasOutput, error) {
	filter := repository.RecetaFilter{
		IDCita:    input.IDCita,
		IDMascota: input.IDMascota,
	}

	switch {
	case actor.IsAdmin():
		filter.IncludeDeleted = input.IncludeDeleted
	case actor.IsVeterinario():
		filter.Veterinario = actor.Username
	default:
		filter.Propietario = actor.Username
	}

	page := srv.pages.normalize(input.Page)
	filter.Offset = page.Offset()
	filter.Limit = page.PageSize

	recetas, total, err := srv.recetaRepo.List(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list recetas", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list recetas")
	}

	return &usecase.ListRecetasOutput{
		Recetas: recetas,
		Meta:    pagination.CalculateMeta(page.Page, page.PageSize, total),
	}, nil
}

// Update modifies a receta. Admin or issuing vet only. A non-nil set of
// lineas replaces the stored ones wholesale within the same transaction.
func (srv *recetaService) Update(ctx context.Context, actor *usecase.Actor, id uuid.UUID, input *usecase.UpdateRecetaInput) (*entity.Receta, error) {
	var updated *entity.Receta
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recetaRepo := repoFactory.RecetaRepo()

		receta, findErr := recetaRepo.FindByID(ctx, id)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load receta for update")
		}
		if receta.IsDeleted {
			return domainerrors.ErrRegistroEliminado
		}
		if ownErr := policy.CheckOwnership(actor.Role, actor.Username, receta.Veterinario); ownErr != nil {
			return ownErr
		}

		if input.Indicaciones != nil {
			receta.Indicaciones = *input.Indicaciones
		}

		receta.StampUpdated(actor.ID, srv.clock.Now())
		if updateErr := recetaRepo.Update(ctx, receta); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update receta")
		}

		if input.Lineas != nil {
			lineas := toRecetaLineas(input.Lineas)
			if replaceErr := recetaRepo.ReplaceLineas(ctx, receta.ID, lineas); replaceErr != nil {
				return errors.Wrap(replaceErr, "failed to replace receta lineas")
			}
			receta.Lineas = lineas
		}

		updated = receta

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute receta update transaction", slog.Any("recetaID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute receta update transaction")
	}

	return updated, nil
}

// Delete soft-deletes a receta. Admin or issuing vet only.
func (srv *recetaService) Delete(ctx context.Context, actor *usecase.Actor, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recetaRepo := repoFactory.RecetaRepo()

		receta, findErr := recetaRepo.FindByID(ctx, id)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load receta for delete")
		}
		if ownErr := policy.CheckOwnership(actor.Role, actor.Username, receta.Veterinario); ownErr != nil {
			return ownErr
		}
		if receta.IsDeleted {
			return domainerrors.NewBusinessRuleError("La receta ya está eliminada")
		}

		receta.MarkDeleted(actor.ID, srv.clock.Now())

		return recetaRepo.Update(ctx, receta)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete receta", slog.Any("recetaID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute receta delete transaction")
	}

	srv.log(ctx).Info("Receta deleted", slog.Any("recetaID", id))

	return nil
}
