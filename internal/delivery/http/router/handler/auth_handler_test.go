package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vetclinic/internal/delivery/http/validator"
	"vetclinic/internal/domain/entity"
	domainerrors "vetclinic/internal/domain/errors"
	"vetclinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase lets each test plug in the behavior it needs.
type stubAuthUsecase struct {
	registerFn func(ctx context.Context, actor *usecase.Actor, input *usecase.RegisterInput) (*usecase.RegisterOutput, error)
	loginFn    func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error)
}

func (s *stubAuthUsecase) Register(ctx context.Context, actor *usecase.Actor, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return s.registerFn(ctx, actor, input)
}

func (s *stubAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginFn(ctx, input)
}

func (s *stubAuthUsecase) ChangePassword(ctx context.Context, actor *usecase.Actor, input *usecase.ChangePasswordInput) error {
	return nil
}

func newHandlerTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	userID := uuid.New()
	uc := &stubAuthUsecase{
		loginFn: func(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
			assert.Equal(t, "carlos", input.Username)
			assert.Equal(t, "secreta123", input.Password)

			return &usecase.LoginOutput{
				AccessToken: "token-abc",
				TokenType:   "bearer",
				Usuario: &entity.Usuario{
					ID:       userID,
					Username: "carlos",
					Nombre:   "Carlos Pérez",
					Role:     entity.RoleCliente,
				},
			}, nil
		},
	}
	h := NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newHandlerTestContext(t, http.MethodPost, "/auth/login",
		`{"username":"carlos","password":"secreta123"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"access_token":"token-abc"`)
	assert.Contains(t, body, `"token_type":"bearer"`)
	assert.Contains(t, body, `"username":"carlos"`)
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "salt")
}

func TestAuthHandler_Login_MissingPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newHandlerTestContext(t, http.MethodPost, "/auth/login",
		`{"username":"carlos"}`)

	err := h.Login(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPCode())
	assert.Equal(t, "password", appErr.Details())
}

func TestAuthHandler_Register_ForwardsOptionalRole(t *testing.T) {
	uc := &stubAuthUsecase{
		registerFn: func(_ context.Context, actor *usecase.Actor, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
			assert.Nil(t, actor)
			require.NotNil(t, input.Role)
			assert.Equal(t, entity.RoleCliente, *input.Role)

			return &usecase.RegisterOutput{
				Usuario: &entity.Usuario{
					ID:       uuid.New(),
					Username: input.Username,
					Nombre:   input.Nombre,
					Role:     *input.Role,
				},
			}, nil
		},
	}
	h := NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newHandlerTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"carlos","password":"secreta123","nombre":"Carlos Pérez","edad":30,"role":"cliente"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Usuario registrado exitosamente")
}

func TestAuthHandler_Register_PropagatesUsecaseError(t *testing.T) {
	uc := &stubAuthUsecase{
		registerFn: func(_ context.Context, _ *usecase.Actor, _ *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
			return nil, domainerrors.ErrUsernameDuplicado
		},
	}
	h := NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newHandlerTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"carlos","password":"secreta123","nombre":"Carlos Pérez","edad":30}`)

	err := h.Register(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameDuplicado)
}
