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

// citaService implements the CitaUsecase interface.
type citaService struct {
	txManager repository.TransactionManager
	citaRepo  repository.CitaRepository
	clock     service.Clock
	pages     pageLimits
	logger    *slog.Logger
}

// CitaServiceParams holds dependencies for citaService, injected by Fx.
type CitaServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CitaRepo  repository.CitaRepository
	Clock     service.Clock
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCitaService is the constructor for citaService.
func NewCitaService(params CitaServiceParams) usecase.CitaUsecase {
	return &citaService{
		txManager: params.TxManager,
		citaRepo:  params.CitaRepo,
		clock:     params.Clock,
		pages:     pageLimitsFromConfig(params.Config),
		logger:    params.Logger,
	}
}

func (srv *citaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create schedules a cita for one of the caller's pets (or any pet, for
// admins). The date may not be in the past and the assigned vet must exist
// with the veterinario role.
func (srv *citaService) Create(ctx context.Context, actor *usecase.Actor, input *usecase.CreateCitaInput) (*entity.Cita, error) {
	if input.Fecha.Before(srv.clock.Now()) {
		return nil, domainerrors.NewValidationError("fecha", "La fecha de la cita no puede estar en el pasado")
	}

	cita := &entity.Cita{
		IDMascota:   input.IDMascota,
		Fecha:       input.Fecha,
		Motivo:      input.Motivo,
		Veterinario: input.Veterinario,
		Estado:      entity.EstadoCitaPendiente,
	}
	cita.StampCreated(actor.ID, srv.clock.Now())

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mascota, findErr := repoFactory.MascotaRepo().FindByID(ctx, input.IDMascota)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load mascota for cita")
		}
		if mascota.IsDeleted {
			return domainerrors.ErrMascotaNotFound
		}
		if ownErr := policy.CheckOwnership(actor.Role, actor.Username, mascota.Propietario); ownErr != nil {
			return ownErr
		}

		if vetErr := srv.verifyVeterinario(ctx, repoFactory, input.Veterinario); vetErr != nil {
			return vetErr
		}

		return repoFactory.CitaRepo().Create(ctx, cita)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute cita creation transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute cita creation transaction")
	}

	srv.log(ctx).Info("Cita created", slog.Any("citaID", cita.ID), slog.String("veterinario", cita.Veterinario))

	return cita, nil
}

// verifyVeterinario checks that the username belongs to an active account
// holding the veterinario role.
func (srv *citaService) verifyVeterinario(ctx context.Context, repoFactory repository.RepositoryFactory, username string) error {
	vet, err := repoFactory.UsuarioRepo().FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUsuarioNotFound) {
			return domainerrors.NewValidationError("veterinario", "El veterinario indicado no existe")
		}

		return errors.Wrap(err, "failed to load veterinario for cita")
	}
	if !vet.IsVeterinario() {
		return domainerrors.NewValidationError("veterinario", "El usuario indicado no es un veterinario")
	}

	return nil
}

// Get returns a single cita. Admins read any; vets those assigned to them or
// belonging to their own pets; clientes only their own pets' citas.
func (srv *citaService) Get(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.Cita, error) {
	cita, err := srv.citaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cita")
	}

	if err := canReadCita(actor, cita); err != nil {
		return nil, err
	}

	return cita, nil
}

func canReadCita(actor *usecase.Actor, cita *entity.Cita) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.IsVeterinario() && cita.Veterinario == actor.Username {
		return nil
	}
	if cita.Mascota != nil && cita.Mascota.Propietario == actor.Username {
		return nil
	}

	return domainerrors.ErrForbidden
}

// List returns a page of citas scoped to the caller's role.
func (srv *citaService) List(ctx context.Context, actor *usecase.Actor, input *usecase.ListCitasInput) (*usecase.ListCitasOutput, error) {
	filter := repository.CitaFilter{
		IDMascota: input.IDMascota,
		Estado:    input.Estado,
	}

	switch {
	case actor.IsAdmin():
		filter.Veterinario = input.Veterinario
		filter.IncludeDeleted = input.IncludeDeleted
	case actor.IsVeterinario():
		filter.Involucrado = actor.Username
	default:
		filter.Propietario = actor.Username
	}

	page := srv.pages.normalize(input.Page)
	filter.Offset = page.Offset()
	filter.Limit = page.PageSize

	citas, total, err := srv.citaRepo.List(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list citas", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list citas")
	}

	return &usecase.ListCitasOutput{
		Citas: citas,
		Meta:  pagination.CalculateMeta(page.Page, page.PageSize, total),
	}, nil
}

// Update modifies a cita. Scheduling fields (fecha, motivo, veterinario) are
// writable by the pet owner or an admin and silently dropped for vets.
// Clinical fields (estado, diagnostico, tratamiento) are writable by an
// admin, the assigned vet, or the owner. A vet not assigned to the cita is
// rejected outright.
func (srv *citaService) Update(ctx context.Context, actor *usecase.Actor, id uuid.UUID, input *usecase.UpdateCitaInput) (*entity.Cita, error) {
	if input.Estado != nil && !input.Estado.IsValid() {
		return nil, domainerrors.NewValidationError("estado", "Estado de cita inválido")
	}

	var updated *entity.Cita
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		citaRepo := repoFactory.CitaRepo()

		cita, findErr := citaRepo.FindByID(ctx, id)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load cita for update")
		}
		if cita.IsDeleted {
			return domainerrors.ErrRegistroEliminado
		}

		owner := ""
		if cita.Mascota != nil {
			owner = cita.Mascota.Propietario
		}

		isOwner := owner == actor.Username
		if actor.IsVeterinario() && cita.Veterinario != actor.Username && !isOwner {
			return domainerrors.NewForbiddenError("No puede modificar citas asignadas a otro veterinario")
		}
		if !actor.IsAdmin() && !actor.IsVeterinario() && !isOwner {
			return domainerrors.ErrForbidden
		}

		if schedErr := srv.applySchedulingFields(ctx, repoFactory, actor, cita, input, isOwner); schedErr != nil {
			return schedErr
		}

		if input.Estado != nil {
			cita.Estado = *input.Estado
		}
		if input.Diagnostico != nil {
			cita.Diagnostico = input.Diagnostico
		}
		if input.Tratamiento != nil {
			cita.Tratamiento = input.Tratamiento
		}

		cita.StampUpdated(actor.ID, srv.clock.Now())
		if updateErr := citaRepo.Update(ctx, cita); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update cita")
		}

		updated = cita

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute cita update transaction", slog.Any("citaID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute cita update transaction")
	}

	return updated, nil
}

// applySchedulingFields writes fecha, motivo and veterinario for owners and
// admins. For vets these fields are dropped without error, matching the
// behavior clients rely on when a vet submits the whole form back.
func (srv *citaService) applySchedulingFields(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	actor *usecase.Actor,
	cita *entity.Cita,
	input *usecase.UpdateCitaInput,
	isOwner bool,
) error {
	if actor.IsVeterinario() && !actor.IsAdmin() {
		return nil
	}
	if !actor.IsAdmin() && !isOwner {
		return nil
	}

	if input.Fecha != nil {
		if input.Fecha.Before(srv.clock.Now()) {
			return domainerrors.NewValidationError("fecha", "La fecha de la cita no puede estar en el pasado")
		}
		cita.Fecha = *input.Fecha
	}
	if input.Motivo != nil {
		cita.Motivo = *input.Motivo
	}
	if input.Veterinario != nil && *input.Veterinario != cita.Veterinario {
		if vetErr := srv.verifyVeterinario(ctx, repoFactory, *input.Veterinario); vetErr != nil {
			return vetErr
		}
		cita.Veterinario = *input.Veterinario
	}

	return nil
}

// Cancel sets the estado to cancelada and soft-deletes the cita in the same
// transaction. Only the pet owner or an admin may cancel; vets never.
func (srv *citaService) Cancel(ctx context.Context, actor *usecase.Actor, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		citaRepo := repoFactory.CitaRepo()

		cita, findErr := citaRepo.FindByID(ctx, id)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load cita for cancel")
		}

		// The already-cancelled rule wins over permission checks so every
		// caller sees the same answer for a dead cita.
		if cita.IsDeleted || cita.Estado == entity.EstadoCitaCancelada {
			return domainerrors.NewBusinessRuleError("La cita ya está cancelada")
		}

		owner := ""
		if cita.Mascota != nil {
			owner = cita.Mascota.Propietario
		}
		if ownErr := policy.CheckOwnership(actor.Role, actor.Username, owner); ownErr != nil {
			return ownErr
		}

		now := srv.clock.Now()
		cita.Estado = entity.EstadoCitaCancelada
		cita.MarkDeleted(actor.ID, now)

		return citaRepo.Update(ctx, cita)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to cancel cita", slog.Any("citaID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute cita cancel transaction")
	}

	srv.log(ctx).Info("Cita cancelled", slog.Any("citaID", id))

	return nil
}
