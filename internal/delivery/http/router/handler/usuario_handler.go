package handler

import (
	"log/slog"
	"net/http"

	"vetclinic/internal/delivery/http/response"
	"vetclinic/internal/domain/entity"
	domainerrors "vetclinic/internal/domain/errors"
	"vetclinic/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UsuarioHandler holds dependencies for account management handlers.
type UsuarioHandler struct {
	uc     usecase.UsuarioUsecase
	logger *slog.Logger
}

// NewUsuarioHandler is the constructor for UsuarioHandler, injected by Fx.
func NewUsuarioHandler(uc usecase.UsuarioUsecase, logger *slog.Logger) *UsuarioHandler {
	return &UsuarioHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns a page of accounts. Admin only.
func (h *UsuarioHandler) List(c echo.Context) error {
	input := &usecase.ListUsuariosInput{
		Search:         c.QueryParam("search"),
		IncludeDeleted: queryBool(c, "include_deleted"),
		Page:           queryPage(c),
	}
	if raw := c.QueryParam("role"); raw != "" {
		role := entity.Role(raw)
		if !role.IsValid() {
			return domainerrors.NewValidationError("role", "Rol inválido")
		}
		input.Role = &role
	}

	output, err := h.uc.List(c.Request().Context(), currentActor(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, newUsuarioResponses(output.Usuarios), output.Meta, "")
}

// Get returns one account.
func (h *UsuarioHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	usuario, err := h.uc.Get(c.Request().Context(), currentActor(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUsuarioResponse(usuario), "")
}

type updateUsuarioRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Nombre   *string `json:"nombre"`
	Edad     *int    `json:"edad" validate:"omitempty,gte=0"`
	Telefono *string `json:"telefono"`
}

// Update modifies one account.
func (h *UsuarioHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateUsuarioRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de usuario inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	usuario, err := h.uc.Update(c.Request().Context(), currentActor(c), id, &usecase.UpdateUsuarioInput{
		Username: req.Username,
		Nombre:   req.Nombre,
		Edad:     req.Edad,
		Telefono: req.Telefono,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUsuarioResponse(usuario), "Usuario actualizado exitosamente")
}

// Delete soft-deletes one account.
func (h *UsuarioHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), currentActor(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Usuario eliminado"}, "Usuario eliminado exitosamente")
}

// Restore clears the soft-delete marker of one account. Admin only.
func (h *UsuarioHandler) Restore(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	usuario, err := h.uc.Restore(c.Request().Context(), currentActor(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUsuarioResponse(usuario), "Usuario restaurado exitosamente")
}
