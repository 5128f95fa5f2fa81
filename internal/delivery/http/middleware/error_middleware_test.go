package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "vetclinic/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/mascotas", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestErrorMiddleware_AppError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(domainerrors.ErrMascotaNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"success":false`)
	assert.Contains(t, body, "MASCOTA_NOT_FOUND")
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(errors.WithStack(domainerrors.NewBusinessRuleError("La factura ya está pagada")), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "BUSINESS_RULE_VIOLATION")
	assert.Contains(t, body, "La factura ya está pagada")
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestErrorMiddleware_UnknownErrorIsMasked(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(errors.New("pq: connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "INTERNAL_ERROR")
	assert.NotContains(t, body, "connection refused")
}

func TestErrorMiddleware_CommittedResponseUntouched(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	assert.NoError(t, c.NoContent(http.StatusOK))
	m.HandleHTTPError(domainerrors.ErrMascotaNotFound, c)

	assert.Equal(t, http.StatusOK, rec.Code)
}
