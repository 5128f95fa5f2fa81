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

// usuarioService implements the UsuarioUsecase interface.
type usuarioService struct {
	txManager   repository.TransactionManager
	usuarioRepo repository.UsuarioRepository
	clock       service.Clock
	pages       pageLimits
	logger      *slog.Logger
}

// UsuarioServiceParams holds dependencies for usuarioService, injected by Fx.
type UsuarioServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UsuarioRepo repository.UsuarioRepository
	Clock       service.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewUsuarioService is the constructor for usuarioService.
func NewUsuarioService(params UsuarioServiceParams) usecase.UsuarioUsecase {
	return &usuarioService{
		txManager:   params.TxManager,
		usuarioRepo: params.UsuarioRepo,
		clock:       params.Clock,
		pages:       pageLimitsFromConfig(params.Config),
		logger:      params.Logger,
	}
}

func (srv *usuarioService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns a page of accounts. Admin only.
func (srv *usuarioService) List(ctx context.Context, actor *usecase.Actor, input *usecase.ListUsuariosInput) (*usecase.ListUsuariosOutput, error) {
	if err := policy.RequireRole(actor.Role, entity.RoleAdmin); err != nil {
		return nil, err
	}

	page := srv.pages.normalize(input.Page)
	usuarios, total, err := srv.usuarioRepo.List(ctx, repository.UsuarioFilter{
		Role:           input.Role,
		Search:         input.Search,
		IncludeDeleted: input.IncludeDeleted,
		Offset:         page.Offset(),
		Limit:          page.PageSize,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list usuarios", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list usuarios")
	}

	return &usecase.ListUsuariosOutput{
		Usuarios: usuarios,
		Meta:     pagination.CalculateMeta(page.Page, page.PageSize, total),
	}, nil
}

// Get returns a single account. Callers may read themselves; admins anyone.
func (srv *usuarioService) Get(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.Usuario, error) {
	if !actor.IsAdmin() && actor.ID != id {
		return nil, domainerrors.ErrForbidden
	}

	usuario, err := srv.usuarioRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find usuario")
	}

	return usuario, nil
}

// Update modifies an account. A username change cascades to every record
// that references the old handle, inside the same transaction.
func (srv *usuarioService) Update(ctx context.Context, actor *usecase.Actor, id uuid.UUID, input *usecase.UpdateUsuarioInput) (*entity.Usuario, error) {
	if !actor.IsAdmin() && actor.ID != id {
		return nil, domainerrors.ErrForbidden
	}

	var updated *entity.Usuario
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		usuarioRepo := repoFactory.UsuarioRepo()

		usuario, findErr := usuarioRepo.FindByID(ctx, id)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load usuario for update")
		}
		if usuario.IsDeleted {
			return domainerrors.ErrRegistroEliminado
		}

		if input.Username != nil && *input.Username != usuario.Username {
			if renameErr := srv.renameUsername(ctx, repoFactory, usuario, *input.Username); renameErr != nil {
				return renameErr
			}
		}
		if input.Nombre != nil {
			usuario.Nombre = *input.Nombre
		}
		if input.Edad != nil {
			usuario.Edad = *input.Edad
		}
		if input.Telefono != nil {
			usuario.Telefono = *input.Telefono
		}

		usuario.StampUpdated(actor.ID, srv.clock.Now())
		if updateErr := usuarioRepo.Update(ctx, usuario); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update usuario")
		}

		updated = usuario

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute usuario update transaction", slog.Any("usuarioID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute usuario update transaction")
	}

	return updated, nil
}

// renameUsername verifies the new handle is free and rewrites every
// denormalized reference before the account itself is saved. All of it runs
// inside the caller's transaction, so a failed cascade rolls back the rename.
func (srv *usuarioService) renameUsername(ctx context.Context, repoFactory repository.RepositoryFactory, usuario *entity.Usuario, newUsername string) error {
	usuarioRepo := repoFactory.UsuarioRepo()

	existing, err := usuarioRepo.FindByUsername(ctx, newUsername)
	if err != nil && !errors.Is(err, domainerrors.ErrUsuarioNotFound) {
		return errors.Wrap(err, "failed to check username availability")
	}
	if existing != nil && existing.ID != usuario.ID {
		return domainerrors.ErrUsernameDuplicado
	}

	oldUsername := usuario.Username

	if err := repoFactory.MascotaRepo().UpdatePropietarioUsername(ctx, oldUsername, newUsername); err != nil {
		return errors.Wrap(err, "failed to cascade rename to mascotas")
	}
	if err := repoFactory.CitaRepo().UpdateVeterinarioUsername(ctx, oldUsername, newUsername); err != nil {
		return errors.Wrap(err, "failed to cascade rename to citas")
	}
	if err := repoFactory.VacunaRepo().UpdateVeterinarioUsername(ctx, oldUsername, newUsername); err != nil {
		return errors.Wrap(err, "failed to cascade rename to vacunas")
	}
	if err := repoFactory.FacturaRepo().UpdateVeterinarioUsername(ctx, oldUsername, newUsername); err != nil {
		return errors.Wrap(err, "failed to cascade rename to facturas")
	}
	if err := repoFactory.RecetaRepo().UpdateVeterinarioUsername(ctx, oldUsername, newUsername); err != nil {
		return errors.Wrap(err, "failed to cascade rename to recetas")
	}

	usuario.Username = newUsername

	return nil
}

// Delete soft-deletes an account. Callers may delete themselves; admins anyone.
func (srv *usuarioService) Delete(ctx context.Context, actor *usecase.Actor, id uuid.UUID) error {
	if !actor.IsAdmin() && actor.ID != id {
		return domainerrors.ErrForbidden
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		usuarioRepo := repoFactory.UsuarioRepo()

		usuario, findErr := usuarioRepo.FindByID(ctx, id)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load usuario for delete")
		}
		if usuario.IsDeleted {
			return domainerrors.NewBusinessRuleError("El usuario ya está eliminado")
		}

		usuario.MarkDeleted(actor.ID, srv.clock.Now())

		return usuarioRepo.Update(ctx, usuario)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete usuario", slog.Any("usuarioID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute usuario delete transaction")
	}

	srv.log(ctx).Info("Usuario deleted", slog.Any("usuarioID", id))

	return nil
}

// Restore clears the soft-delete marker. Admin only.
func (srv *usuarioService) Restore(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.Usuario, error) {
	if err := policy.RequireRole(actor.Role, entity.RoleAdmin); err != nil {
		return nil, err
	}

	var restored *entity.Usuario
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		usuarioRepo := repoFactory.UsuarioRepo()

		usuario, findErr := usuarioRepo.FindByID(ctx, id)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load usuario for restore")
		}
		if !usuario.IsDeleted {
			return domainerrors.NewBusinessRuleError("El usuario no está eliminado")
		}

		usuario.ClearDeleted(actor.ID, srv.clock.Now())
		if updateErr := usuarioRepo.Update(ctx, usuario); updateErr != nil {
			return errors.Wrap(updateErr, "failed to restore usuario")
		}

		restored = usuario

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to restore usuario", slog.Any("usuarioID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute usuario restore transaction")
	}

	srv.log(ctx).Info("Usuario restored", slog.Any("usuarioID", id))

	return restored, nil
}
