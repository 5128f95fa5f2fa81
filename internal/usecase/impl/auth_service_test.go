package impl

import (
	"context"
	"testing"

	"vetclinic/internal/domain/entity"
	domainerrors "vetclinic/internal/domain/errors"
	mockRepo "vetclinic/internal/mocks/repository"
	mockService "vetclinic/internal/mocks/service"
	"vetclinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	usuarioRepo  *mockRepo.MockUsuarioRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	usuarioRepo := mockRepo.NewMockUsuarioRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	txManager := &mockRepo.FakeTransactionManager{Factory: &mockRepo.StubRepositoryFactory{
		Usuarios: usuarioRepo,
	}}

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UsuarioRepo:  usuarioRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Clock:        newTestClock(),
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		usuarioRepo:  usuarioRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_DefaultsToCliente(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "secreto123").Return("salt", "hash", nil)
	fx.usuarioRepo.On("FindByUsername", ctx, "carlos").Return(nil, domainerrors.ErrUsuarioNotFound)
	fx.usuarioRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.Usuario) bool {
		return u.Role == entity.RoleCliente && u.PasswordSalt == "salt" && u.PasswordHash == "hash"
	})).Return(nil)

	out, err := fx.service.Register(ctx, nil, &usecase.RegisterInput{
		Username: "carlos",
		Password: "secreto123",
		Nombre:   "Carlos Ruiz",
		Edad:     34,
		Telefono: "3001234567",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleCliente, out.Usuario.Role)
	// Anonymous registration leaves the creator stamps empty.
	assert.Nil(t, out.Usuario.IDUsuarioCreacion)
	assert.False(t, out.Usuario.FechaCreacion.IsZero())
}

func TestAuthService_Register_VeterinarioRequiresAdmin(t *testing.T) {
	fx := createTestAuthService(t)
	role := entity.RoleVeterinario

	input := &usecase.RegisterInput{
		Username: "dra_gomez",
		Password: "secreto123",
		Role:     &role,
	}

	_, err := fx.service.Register(context.Background(), clienteActor("carlos"), input)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
	assert.Equal(t, "Solo un administrador puede registrar veterinarios", appErr.Message())
}

func TestAuthService_Register_VeterinarioByAdmin(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	actor := adminActor("admin")
	role := entity.RoleVeterinario

	fx.hasher.On("Hash", "secreto123").Return("salt", "hash", nil)
	fx.usuarioRepo.On("FindByUsername", ctx, "dra_gomez").Return(nil, domainerrors.ErrUsuarioNotFound)
	fx.usuarioRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.Usuario) bool {
		return u.Role == entity.RoleVeterinario && u.IDUsuarioCreacion != nil && *u.IDUsuarioCreacion == actor.ID
	})).Return(nil)

	out, err := fx.service.Register(ctx, actor, &usecase.RegisterInput{
		Username: "dra_gomez",
		Password: "secreto123",
		Nombre:   "Ana Gómez",
		Role:     &role,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleVeterinario, out.Usuario.Role)
}

func TestAuthService_Register_AdminNeverSelfService(t *testing.T) {
	fx := createTestAuthService(t)
	role := entity.RoleAdmin

	// Even an admin caller cannot mint admin accounts through registration.
	_, err := fx.service.Register(context.Background(), adminActor("admin"), &usecase.RegisterInput{
		Username: "otro_admin",
		Password: "secreto123",
		Role:     &role,
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
	assert.Equal(t, "No es posible registrar cuentas de administrador", appErr.Message())
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	fx := createTestAuthService(t)
	role := entity.Role("hechicero")

	_, err := fx.service.Register(context.Background(), nil, &usecase.RegisterInput{
		Username: "carlos",
		Password: "secreto123",
		Role:     &role,
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
	assert.Equal(t, "role", appErr.Details())
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), nil, &usecase.RegisterInput{
		Username: "carlos",
		Password: "corta",
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
	assert.Equal(t, "password", appErr.Details())
	assert.Equal(t, "La contraseña debe tener al menos 6 caracteres", appErr.Message())
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "secreto123").Return("salt", "hash", nil)
	fx.usuarioRepo.On("FindByUsername", ctx, "carlos").
		Return(&entity.Usuario{ID: uuid.New(), Username: "carlos"}, nil)

	_, err := fx.service.Register(ctx, nil, &usecase.RegisterInput{
		Username: "carlos",
		Password: "secreto123",
	})

	require.ErrorIs(t, err, domainerrors.ErrUsernameDuplicado)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	id := uuid.New()

	usuario := &entity.Usuario{
		ID:           id,
		Username:     "carlos",
		Role:         entity.RoleCliente,
		PasswordSalt: "salt",
		PasswordHash: "hash",
	}

	fx.usuarioRepo.On("FindByUsername", ctx, "carlos").Return(usuario, nil)
	fx.hasher.On("Check", "secreto123", "salt", "hash").Return(true)
	fx.tokenService.On("GenerateAccessToken", id, "carlos", "cliente").Return("token-abc", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "carlos", Password: "secreto123"})

	require.NoError(t, err)
	assert.Equal(t, "token-abc", out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, usuario, out.Usuario)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	usuario := &entity.Usuario{ID: uuid.New(), Username: "carlos", PasswordSalt: "salt", PasswordHash: "hash"}

	fx.usuarioRepo.On("FindByUsername", ctx, "carlos").Return(usuario, nil)
	fx.hasher.On("Check", "incorrecta", "salt", "hash").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "carlos", Password: "incorrecta"})

	require.ErrorIs(t, err, domainerrors.ErrCredencialesInvalidas)
}

func TestAuthService_Login_UnknownUsernameMapsToInvalidCredentials(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.usuarioRepo.On("FindByUsername", ctx, "fantasma").Return(nil, domainerrors.ErrUsuarioNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "fantasma", Password: "loquesea"})

	// Unknown accounts are indistinguishable from a wrong password.
	require.ErrorIs(t, err, domainerrors.ErrCredencialesInvalidas)
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	actor := clienteActor("carlos")

	usuario := &entity.Usuario{ID: actor.ID, Username: "carlos", PasswordSalt: "salt", PasswordHash: "hash"}

	fx.usuarioRepo.On("FindByID", ctx, actor.ID).Return(usuario, nil)
	fx.hasher.On("Check", "actual123", "salt", "hash").Return(true)
	fx.hasher.On("Hash", "nueva456").Return("salt2", "hash2", nil)
	fx.usuarioRepo.On("Update", ctx, mock.MatchedBy(func(u *entity.Usuario) bool {
		return u.PasswordSalt == "salt2" && u.PasswordHash == "hash2"
	})).Return(nil)

	err := fx.service.ChangePassword(ctx, actor, &usecase.ChangePasswordInput{
		CurrentPassword: "actual123",
		NewPassword:     "nueva456",
	})

	require.NoError(t, err)
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	actor := clienteActor("carlos")

	usuario := &entity.Usuario{ID: actor.ID, Username: "carlos", PasswordSalt: "salt", PasswordHash: "hash"}

	fx.usuarioRepo.On("FindByID", ctx, actor.ID).Return(usuario, nil)
	fx.hasher.On("Check", "equivocada", "salt", "hash").Return(false)

	err := fx.service.ChangePassword(ctx, actor, &usecase.ChangePasswordInput{
		CurrentPassword: "equivocada",
		NewPassword:     "nueva456",
	})

	require.ErrorIs(t, err, domainerrors.ErrCredencialesInvalidas)
}
