package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vetclinic/internal/domain/entity"
	"vetclinic/internal/domain/service"
	mockService "vetclinic/internal/mocks/service"
	"vetclinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/mascotas", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okNext(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "")

	err := m.Authenticate(okNext)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, GetActor(c))
}

func TestAuthMiddleware_Authenticate_MalformedHeader(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "Token abc123")

	err := m.Authenticate(okNext)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bearer")
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.On("ValidateToken", "expired").Return(nil, errors.New("token is expired"))
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "Bearer expired")

	err := m.Authenticate(okNext)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_ValidToken(t *testing.T) {
	userID := uuid.New()
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.On("ValidateToken", "good").Return(&service.Claims{
		UserID:   userID,
		Username: "carlos",
		Role:     "cliente",
	}, nil)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "Bearer good")

	err := m.Authenticate(okNext)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	actor := GetActor(c)
	require.NotNil(t, actor)
	assert.Equal(t, userID, actor.ID)
	assert.Equal(t, "carlos", actor.Username)
	assert.Equal(t, entity.RoleCliente, actor.Role)
}

func TestAuthMiddleware_AuthenticateOptional_AnonymousPasses(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "")

	err := m.AuthenticateOptional(okNext)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, GetActor(c))
}

func TestAuthMiddleware_AuthenticateOptional_BadTokenStillRejected(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.On("ValidateToken", "bad").Return(nil, errors.New("signature is invalid"))
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "Bearer bad")

	err := m.AuthenticateOptional(okNext)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name     string
		role     entity.Role
		allowed  []entity.Role
		wantCode int
	}{
		{
			name:     "matching role passes",
			role:     entity.RoleAdmin,
			allowed:  []entity.Role{entity.RoleAdmin},
			wantCode: http.StatusOK,
		},
		{
			name:     "any of several roles passes",
			role:     entity.RoleVeterinario,
			allowed:  []entity.Role{entity.RoleVeterinario, entity.RoleAdmin},
			wantCode: http.StatusOK,
		},
		{
			name:     "missing role is forbidden",
			role:     entity.RoleCliente,
			allowed:  []entity.Role{entity.RoleAdmin},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			m := NewAuthMiddleware(tokenSvc)

			c, rec := newAuthTestContext(t, "")
			SetActor(c, &usecase.Actor{ID: uuid.New(), Username: "someone", Role: tt.role})

			err := m.RequireRole(tt.allowed...)(okNext)(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestAuthMiddleware_RequireRole_WithoutActor(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "")

	err := m.RequireRole(entity.RoleAdmin)(okNext)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
