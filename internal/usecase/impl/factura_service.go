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

// facturaService implements the FacturaUsecase interface.
type facturaService struct {
	txManager   repository.TransactionManager
	facturaRepo repository.FacturaRepository
	clock       service.Clock
	pages       pageLimits
	logger      *slog.Logger
}

// FacturaServiceParams holds dependencies for facturaService, injected by Fx.
type FacturaServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	FacturaRepo repository.FacturaRepository
	Clock       service.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewFacturaService is the constructor for facturaService.
func NewFacturaService(params FacturaServiceParams) usecase.FacturaUsecase {
	return &facturaService{
		txManager:   params.TxManager,
		facturaRepo: params.FacturaRepo,
		clock:       params.Clock,
		pages:       pageLimitsFromConfig(params.Config),
		logger:      params.Logger,
	}
}

func (srv *facturaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create issues a factura for exactly one cita or one vacuna. Vets may only
// invoice services they performed themselves; invoicing a cita marks it
// completada in the same transaction.
func (srv *facturaService) Create(ctx context.Context, actor *usecase.Actor, input *usecase.CreateFacturaInput) (*entity.Factura, error) {
	if err := policy.RequireRole(actor.Role, entity.RoleVeterinario, entity.RoleAdmin); err != nil {
		return nil, err
	}
	if (input.IDCita == nil) == (input.IDVacuna == nil) {
		return nil, domainerrors.NewValidationError("id_cita", "Debe indicar exactamente una cita o una vacuna")
	}
	if !input.TipoServicio.IsValid() {
		return nil, domainerrors.NewValidationError("tipo_servicio", "Tipo de servicio inválido")
	}
	if input.ValorServicio < 0 || input.IVA < 0 || input.Descuento < 0 {
		return nil, domainerrors.NewValidationError("valor_servicio", "Los valores monetarios no pueden ser negativos")
	}

	now := srv.clock.Now()
	factura := &entity.Factura{
		NumeroFactura: entity.NewNumeroFactura(now.Year()),
		IDCita:        input.IDCita,
		IDVacuna:      input.IDVacuna,
		FechaFactura:  now,
		TipoServicio:  input.TipoServicio,
		Descripcion:   input.Descripcion,
		Veterinario:   actor.Username,
		ValorServicio: input.ValorServicio,
		IVA:           input.IVA,
		Descuento:     input.Descuento,
		Estado:        entity.EstadoFacturaPendiente,
	}
	factura.RecomputeTotal()
	factura.StampCreated(actor.ID, now)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if input.IDCita != nil {
			return srv.createFromCita(ctx, repoFactory, actor, factura, *input.IDCita)
		}

		return srv.createFromVacuna(ctx, repoFactory, actor, factura, *input.IDVacuna)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute factura creation transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute factura creation transaction")
	}

	srv.log(ctx).Info("Factura created", slog.Any("facturaID", factura.ID), slog.String("numero", factura.NumeroFactura))

	return factura, nil
}

func (srv *facturaService) createFromCita(ctx context.Context, repoFactory repository.RepositoryFactory, actor *usecase.Actor, factura *entity.Factura, idCita uuid.UUID) error {
	citaRepo := repoFactory.CitaRepo()
	facturaRepo := repoFactory.FacturaRepo()

	cita, err := citaRepo.FindByID(ctx, idCita)
	if err != nil {
		return errors.Wrap(err, "failed to load cita for factura")
	}
	if cita.IsDeleted {
		return domainerrors.NewBusinessRuleError("No se puede facturar una cita eliminada")
	}
	if actor.IsVeterinario() && cita.Veterinario != actor.Username {
		return domainerrors.NewForbiddenError("Solo puede facturar citas asignadas a usted")
	}

	if dupErr := srv.ensureNotInvoiced(ctx, facturaRepo.FindByCita, idCita, "La cita ya tiene una factura asociada"); dupErr != nil {
		return dupErr
	}

	factura.IDMascota = cita.IDMascota
	if err := facturaRepo.Create(ctx, factura); err != nil {
		return errors.Wrap(err, "failed to create factura")
	}

	// Invoicing closes the appointment.
	cita.Estado = entity.EstadoCitaCompletada
	cita.StampUpdated(actor.ID, srv.clock.Now())

	return errors.Wrap(citaRepo.Update(ctx, cita), "failed to mark cita completada")
}

func (srv *facturaService) createFromVacuna(ctx context.Context, repoFactory repository.RepositoryFactory, actor *usecase.Actor, factura *entity.Factura, idVacuna uuid.UUID) error {
	facturaRepo := repoFactory.FacturaRepo()

	vacuna, err := repoFactory.VacunaRepo().FindByID(ctx, idVacuna)
	if err != nil {
		return errors.Wrap(err, "failed to load vacuna for factura")
	}
	if vacuna.IsDeleted {
		return domainerrors.NewBusinessRuleError("No se puede facturar una vacuna eliminada")
	}
	if actor.IsVeterinario() && vacuna.Veterinario != actor.Username {
		return domainerrors.NewForbiddenError("Solo puede facturar vacunas aplicadas por usted")
	}

	if dupErr := srv.ensureNotInvoiced(ctx, facturaRepo.FindByVacuna, idVacuna, "La vacuna ya tiene una factura asociada"); dupErr != nil {
		return dupErr
	}

	factura.IDMascota = vacuna.IDMascota

	return errors.Wrap(facturaRepo.Create(ctx, factura), "failed to create factura")
}

// ensureNotInvoiced enforces the one-invoice-per-source rule.
func (srv *facturaService) ensureNotInvoiced(
	ctx context.Context,
	find func(context.Context, uuid.UUID) (*entity.Factura, error),
	sourceID uuid.UUID,
	message string,
) error {
	_, err := find(ctx, sourceID)
	if err == nil {
		return domainerrors.NewBusinessRuleError(message)
	}
	if !errors.Is(err, domainerrors.ErrFacturaNotFound) {
		return errors.Wrap(err, "failed to check existing factura for source")
	}

	return nil
}

// Get returns a single factura. Admins, the pet owner and the issuing vet.
func (srv *facturaService) Get(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.Factura, error) {
	factura, err := srv.facturaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find factura")
	}

	if err := canReadFactura(actor, factura); err != nil {
		return nil, err
	}

	return factura, nil
}

func canReadFactura(actor *usecase.Actor, factura *entity.Factura) error {
	if actor.IsAdmin() {
		return nil
	}
	if factura.Veterinario == actor.Username {
		return nil
	}
	if factura.Mascota != nil && factura.Mascota.Propietario == actor.Username {
		return nil
	}

	return domainerrors.ErrForbidden
}

// List returns a page of facturas scoped to the caller's role.
func (srv *facturaService) List(ctx context.Context, actor *usecase.Actor, input *usecase.ListFacturasInput) (*usecase.ListFacturasOutput, error) {
	filter := repository.FacturaFilter{
		IDMascota: input.IDMascota,
		Estado:    input.Estado,
	}

	switch {
	case actor.IsAdmin():
		filter.Veterinario = input.Veterinario
		filter.IncludeDeleted = input.IncludeDeleted
	case actor.IsVeterinario():
		filter.Veterinario = actor.Username
	default:
		filter.Propietario = actor.Username
	}

	page := srv.pages.normalize(input.Page)
	filter.Offset = page.Offset()
	filter.Limit = page.PageSize

	facturas, total, err := srv.facturaRepo.List(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list facturas", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list facturas")
	}

	return &usecase.ListFacturasOutput{
		Facturas: facturas,
		Meta:     pagination.CalculateMeta(page.Page, page.PageSize, total),
	}, nil
}

// Update modifies a factura. Admin or issuing vet only; a paid factura is
// immutable. The total is recomputed when any monetary field changes.
func (srv *facturaService) Update(ctx context.Context, actor *usecase.Actor, id uuid.UUID, input *usecase.UpdateFacturaInput) (*entity.Factura, error) {
	if input.TipoServicio != nil && !input.TipoServicio.IsValid() {
		return nil, domainerrors.NewValidationError("tipo_servicio", "Tipo de servicio inválido")
	}

	var updated *entity.Factura
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		facturaRepo := repoFactory.FacturaRepo()

		factura, findErr := facturaRepo.FindByID(ctx, id)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load factura for update")
		}
		if factura.IsDeleted {
			return domainerrors.ErrRegistroEliminado
		}
		if ownErr := policy.CheckOwnership(actor.Role, actor.Username, factura.Veterinario); ownErr != nil {
			return ownErr
		}
		if factura.Estado == entity.EstadoFacturaPagada {
			return domainerrors.NewBusinessRuleError("Una factura pagada no puede modificarse")
		}

		if input.TipoServicio != nil {
			factura.TipoServicio = *input.TipoServicio
		}
		if input.Descripcion != nil {
			factura.Descripcion = *input.Descripcion
		}
		if input.ValorServicio != nil {
			factura.ValorServicio = *input.ValorServicio
		}
		if input.IVA != nil {
			factura.IVA = *input.IVA
		}
		if input.Descuento != nil {
			factura.Descuento = *input.Descuento
		}
		if factura.ValorServicio < 0 || factura.IVA < 0 || factura.Descuento < 0 {
			return domainerrors.NewValidationError("valor_servicio", "Los valores monetarios no pueden ser negativos")
		}
		factura.RecomputeTotal()

		factura.StampUpdated(actor.ID, srv.clock.Now())
		if updateErr := facturaRepo.Update(ctx, factura); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update factura")
		}

		updated = factura

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute factura update transaction", slog.Any("facturaID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute factura update transaction")
	}

	return updated, nil
}

// MarcarPagada flips a pending factura to pagada. Admin or issuing vet only.
func (srv *facturaService) MarcarPagada(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.Factura, error) {
	var paid *entity.Factura
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		facturaRepo := repoFactory.FacturaRepo()

		factura, findErr := facturaRepo.FindByID(ctx, id)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load factura for payment")
		}
		if ownErr := policy.CheckOwnership(actor.Role, actor.Username, factura.Veterinario); ownErr != nil {
			return ownErr
		}

		switch factura.Estado {
		case entity.EstadoFacturaPagada:
			return domainerrors.NewBusinessRuleError("La factura ya está pagada")
		case entity.EstadoFacturaAnulada:
			return domainerrors.NewBusinessRuleError("Una factura anulada no puede marcarse como pagada")
		case entity.EstadoFacturaPendiente:
		}

		factura.Estado = entity.EstadoFacturaPagada
		factura.StampUpdated(actor.ID, srv.clock.Now())
		if updateErr := facturaRepo.Update(ctx, factura); updateErr != nil {
			return errors.Wrap(updateErr, "failed to mark factura pagada")
		}

		paid = factura

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to mark factura pagada", slog.Any("facturaID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute factura payment transaction")
	}

	srv.log(ctx).Info("Factura pagada", slog.Any("facturaID", id))

	return paid, nil
}

// Anular voids a factura: estado flips to anulada and the record is
// soft-deleted in the same transaction. A paid factura can never be voided,
// with no admin override.
func (srv *facturaService) Anular(ctx context.Context, actor *usecase.Actor, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		facturaRepo := repoFactory.FacturaRepo()

		factura, findErr := facturaRepo.FindByID(ctx, id)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load factura for void")
		}
		if ownErr := policy.CheckOwnership(actor.Role, actor.Username, factura.Veterinario); ownErr != nil {
			return ownErr
		}

		switch factura.Estado {
		case entity.EstadoFacturaPagada:
			return domainerrors.NewBusinessRuleError("Una factura pagada no puede anularse")
		case entity.EstadoFacturaAnulada:
			return domainerrors.NewBusinessRuleError("La factura ya está anulada")
		case entity.EstadoFacturaPendiente:
		}

		factura.Estado = entity.EstadoFacturaAnulada
		factura.MarkDeleted(actor.ID, srv.clock.Now())

		return facturaRepo.Update(ctx, factura)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to void factura", slog.Any("facturaID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute factura void transaction")
	}

	srv.log(ctx).Info("Factura anulada", slog.Any("facturaID", id))

	return nil
}
