package impl

import (
	"context"
	"fmt"
	"log/slog"

	"vetclinic/config"
	deliverycontext "vetclinic/internal/delivery/context"
	"vetclinic/internal/domain/entity"
	domainerrors "vetclinic/internal/domain/errors"
	"vetclinic/internal/domain/repository"
	"vetclinic/internal/domain/service"
	"vetclinic/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	usuarioRepo       repository.UsuarioRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	clock             service.Clock
	passwordMinLength int
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UsuarioRepo  repository.UsuarioRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Clock        service.Clock
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	passwordMinLength := 6
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.PasswordMinLength > 0 {
		passwordMinLength = params.Config.Auth.PasswordMinLength
	}

	return &authService{
		txManager:         params.TxManager,
		usuarioRepo:       params.UsuarioRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		clock:             params.Clock,
		passwordMinLength: passwordMinLength,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. Anonymous callers may only register
// clientes; veterinario accounts require an admin caller; admin accounts are
// never created through this flow.
func (srv *authService) Register(ctx context.Context, actor *usecase.Actor, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	role, err := srv.resolveRegistrationRole(actor, input.Role)
	if err != nil {
		srv.log(ctx).Warn("Registration rejected", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	if len(input.Password) < srv.passwordMinLength {
		return nil, domainerrors.NewValidationError(
			"password",
			fmt.Sprintf("La contraseña debe tener al menos %d caracteres", srv.passwordMinLength),
		)
	}

	salt, hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	nuevo := &entity.Usuario{
		Username:     input.Username,
		Nombre:       input.Nombre,
		Edad:         input.Edad,
		Telefono:     input.Telefono,
		Role:         role,
		PasswordSalt: salt,
		PasswordHash: hash,
	}
	stampCreated(&nuevo.Audit, actor, srv.clock.Now())

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		usuarioRepo := repoFactory.UsuarioRepo()

		_, findErr := usuarioRepo.FindByUsername(ctx, input.Username)
		if findErr == nil {
			return domainerrors.ErrUsernameDuplicado
		}
		if !errors.Is(findErr, domainerrors.ErrUsuarioNotFound) {
			return errors.Wrap(findErr, "failed to check username availability")
		}

		return usuarioRepo.Create(ctx, nuevo)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Info("Usuario registered", slog.Any("userID", nuevo.ID), slog.String("role", role.String()))

	return &usecase.RegisterOutput{Usuario: nuevo}, nil
}

func (srv *authService) resolveRegistrationRole(actor *usecase.Actor, requested *entity.Role) (entity.Role, error) {
	if requested == nil {
		return entity.RoleCliente, nil
	}

	role := *requested
	if !role.IsValid() {
		return "", domainerrors.NewValidationError("role", "Rol inválido")
	}

	switch role {
	case entity.RoleAdmin:
		return "", domainerrors.NewForbiddenError("No es posible registrar cuentas de administrador")
	case entity.RoleVeterinario:
		if !actor.IsAdmin() {
			return "", domainerrors.NewForbiddenError("Solo un administrador puede registrar veterinarios")
		}
	case entity.RoleCliente:
	}

	return role, nil
}

// Login verifies the credentials and issues an access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	usuario, err := srv.usuarioRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		if errors.Is(err, domainerrors.ErrUsuarioNotFound) {
			return nil, domainerrors.ErrCredencialesInvalidas
		}

		return nil, errors.Wrap(err, "failed to load usuario for login")
	}

	// Password check stays outside any transaction (PBKDF2 is CPU-bound).
	if !srv.hasher.Check(input.Password, usuario.PasswordSalt, usuario.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrCredencialesInvalidas))

		return nil, domainerrors.ErrCredencialesInvalidas
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(usuario.ID, usuario.Username, usuario.Role.String())
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.Any("userID", usuario.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("Usuario logged in", slog.Any("userID", usuario.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   "bearer",
		Usuario:     usuario,
	}, nil
}

// ChangePassword verifies the caller's current password and stores a new one.
func (srv *authService) ChangePassword(ctx context.Context, actor *usecase.Actor, input *usecase.ChangePasswordInput) error {
	if len(input.NewPassword) < srv.passwordMinLength {
		return domainerrors.NewValidationError(
			"new_password",
			fmt.Sprintf("La contraseña debe tener al menos %d caracteres", srv.passwordMinLength),
		)
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		usuarioRepo := repoFactory.UsuarioRepo()

		usuario, findErr := usuarioRepo.FindByID(ctx, actor.ID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load usuario for password change")
		}

		if !srv.hasher.Check(input.CurrentPassword, usuario.PasswordSalt, usuario.PasswordHash) {
			return domainerrors.ErrCredencialesInvalidas
		}

		salt, hash, hashErr := srv.hasher.Hash(input.NewPassword)
		if hashErr != nil {
			return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
		}

		usuario.PasswordSalt = salt
		usuario.PasswordHash = hash
		usuario.StampUpdated(actor.ID, srv.clock.Now())

		return usuarioRepo.Update(ctx, usuario)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to change password", slog.Any("userID", actor.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password change transaction")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", actor.ID))

	return nil
}
