package handler

import (
	"log/slog"
	"net/http"

	"vetclinic/internal/delivery/http/response"
	"vetclinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecetaHandler holds dependencies for prescription handlers.
type RecetaHandler struct {
	uc     usecase.RecetaUsecase
	logger *slog.Logger
}

// NewRecetaHandler is the constructor for RecetaHandler, injected by Fx.
func NewRecetaHandler(uc usecase.RecetaUsecase, logger *slog.Logger) *RecetaHandler {
	return &RecetaHandler{
		uc:     uc,
		logger: logger,
	}
}

type recetaLineaRequest struct {
	Medicamento string `json:"medicamento" validate:"required"`
	Dosis       string `json:"dosis" validate:"required"`
	Frecuencia  string `json:"frecuencia"`
	Duracion    string `json:"duracion"`
}

type createRecetaRequest struct {
	IDCita       uuid.UUID            `json:"id_cita" validate:"required"`
	Indicaciones string               `json:"indicaciones"`
	Lineas       []recetaLineaRequest `json:"lineas" validate:"dive"`
}

func toLineaInputs(lineas []recetaLineaRequest) []usecase.RecetaLineaInput {
	out := make([]usecase.RecetaLineaInput, 0, len(lineas))
	for _, l := range lineas {
		out = append(out, usecase.RecetaLineaInput{
			Medicamento: l.Medicamento,
			Dosis:       l.Dosis,
			Frecuencia:  l.Frecuencia,
			Duracion:    l.Duracion,
		})
	}

	return out
}

// Create issues a prescription for a cita.
func (h *RecetaHandler) Create(c echo.Context) error {
	var req createRecetaRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de receta inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	receta, err := h.uc.Create(c.Request().Context(), currentActor(c), &usecase.CreateRecetaInput{
		IDCita:       req.IDCita,
		Indicaciones: req.Indicaciones,
		Lineas:       toLineaInputs(req.Lineas),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newRecetaResponse(receta), "Receta emitida exitosamente")
}

// Get returns one receta.
func (h *RecetaHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	receta, err := h.uc.Get(c.Request().Context(), currentActor(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newRecetaResponse(receta), "")
}

// GetByCita returns the receta issued for one cita.
func (h *RecetaHandler) GetByCita(c echo.Context) error {
	idCita, err := pathID(c, "id_cita")
	if err != nil {
		return err
	}

	receta, err := h.uc.GetByCita(c.Request().Context(), currentActor(c), idCita)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newRecetaResponse(receta), "")
}

// List returns a page of recetas scoped to the caller's role.
func (h *RecetaHandler) List(c echo.Context) error {
	idCita, err := queryUUID(c, "id_cita")
	if err != nil {
		return err
	}
	idMascota, err := queryUUID(c, "id_mascota")
	if err != nil {
		return err
	}

	output, err := h.uc.List(c.Request().Context(), currentActor(c), &usecase.ListRecetasInput{
		IDCita:         idCita,
		IDMascota:      idMascota,
		IncludeDeleted: queryBool(c, "include_deleted"),
		Page:           queryPage(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, newRecetaResponses(output.Recetas), output.Meta, "")
}

type updateRecetaRequest struct {
	Indicaciones *string              `json:"indicaciones"`
	Lineas       []recetaLineaRequest `json:"lineas" validate:"omitempty,dive"`
}

// Update modifies one receta. A non-null lineas array replaces the stored
// lines wholesale.
func (h *RecetaHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateRecetaRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de receta inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateRecetaInput{Indicaciones: req.Indicaciones}
	if req.Lineas != nil {
		input.Lineas = toLineaInputs(req.Lineas)
	}

	receta, err := h.uc.Update(c.Request().Context(), currentActor(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newRecetaResponse(receta), "Receta actualizada exitosamente")
}

// Delete soft-deletes one receta.
func (h *RecetaHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), currentActor(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Receta eliminada"}, "Receta eliminada exitosamente")
}
