// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	"vetclinic/internal/delivery/http/middleware"
	domainerrors "vetclinic/internal/domain/errors"
	"vetclinic/internal/pagination"
	"vetclinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentActor returns the authenticated caller, or nil for anonymous
// requests on routes with optional authentication.
func currentActor(c echo.Context) *usecase.Actor {
	return middleware.GetActor(c)
}

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(name, "Identificador inválido")
	}

	return id, nil
}

// queryPage reads the page window from the query string. Out-of-range values
// are normalized by the usecase layer.
func queryPage(c echo.Context) pagination.Params {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))

	return pagination.Params{Page: page, PageSize: pageSize}
}

// queryBool reads a boolean query parameter, defaulting to false.
func queryBool(c echo.Context, name string) bool {
	value, _ := strconv.ParseBool(c.QueryParam(name))

	return value
}

// queryUUID reads an optional UUID query parameter. Invalid values are
// rejected rather than silently ignored.
func queryUUID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.NewValidationError(name, "Identificador inválido")
	}

	return &id, nil
}
