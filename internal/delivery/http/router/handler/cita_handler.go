package handler

import (
	"log/slog"
	"net/http"
	"time"

	"vetclinic/internal/delivery/http/response"
	"vetclinic/internal/domain/entity"
	domainerrors "vetclinic/internal/domain/errors"
	"vetclinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CitaHandler holds dependencies for appointment handlers.
type CitaHandler struct {
	uc     usecase.CitaUsecase
	logger *slog.Logger
}

// NewCitaHandler is the constructor for CitaHandler, injected by Fx.
func NewCitaHandler(uc usecase.CitaUsecase, logger *slog.Logger) *CitaHandler {
	return &CitaHandler{
		uc:     uc,
		logger: logger,
	}
}

type createCitaRequest struct {
	IDMascota   uuid.UUID `json:"id_mascota" validate:"required"`
	Fecha       time.Time `json:"fecha" validate:"required"`
	Motivo      string    `json:"motivo" validate:"required"`
	Veterinario string    `json:"veterinario" validate:"required"`
}

// Create schedules a new cita.
func (h *CitaHandler) Create(c echo.Context) error {
	var req createCitaRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de cita inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	cita, err := h.uc.Create(c.Request().Context(), currentActor(c), &usecase.CreateCitaInput{
		IDMascota:   req.IDMascota,
		Fecha:       req.Fecha,
		Motivo:      req.Motivo,
		Veterinario: req.Veterinario,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newCitaResponse(cita), "Cita agendada exitosamente")
}

// Get returns one cita.
func (h *CitaHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	cita, err := h.uc.Get(c.Request().Context(), currentActor(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCitaResponse(cita), "")
}

// List returns a page of citas scoped to the caller's role.
func (h *CitaHandler) List(c echo.Context) error {
	idMascota, err := queryUUID(c, "id_mascota")
	if err != nil {
		return err
	}

	input := &usecase.ListCitasInput{
		IDMascota:      idMascota,
		Veterinario:    c.QueryParam("veterinario"),
		IncludeDeleted: queryBool(c, "include_deleted"),
		Page:           queryPage(c),
	}
	if raw := c.QueryParam("estado"); raw != "" {
		estado := entity.EstadoCita(raw)
		if !estado.IsValid() {
			return domainerrors.NewValidationError("estado", "Estado de cita inválido")
		}
		input.Estado = &estado
	}

	output, err := h.uc.List(c.Request().Context(), currentActor(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, newCitaResponses(output.Citas), output.Meta, "")
}

type updateCitaRequest struct {
	Fecha       *time.Time `json:"fecha"`
	Motivo      *string    `json:"motivo"`
	Veterinario *string    `json:"veterinario"`
	Estado      *string    `json:"estado"`
	Diagnostico *string    `json:"diagnostico"`
	Tratamiento *string    `json:"tratamiento"`
}

// Update modifies one cita. Scheduling and clinical fields follow separate
// write rules applied by the usecase layer.
func (h *CitaHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateCitaRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de cita inválidos")
	}

	input := &usecase.UpdateCitaInput{
		Fecha:       req.Fecha,
		Motivo:      req.Motivo,
		Veterinario: req.Veterinario,
		Diagnostico: req.Diagnostico,
		Tratamiento: req.Tratamiento,
	}
	if req.Estado != nil {
		estado := entity.EstadoCita(*req.Estado)
		if !estado.IsValid() {
			return domainerrors.NewValidationError("estado", "Estado de cita inválido")
		}
		input.Estado = &estado
	}

	cita, err := h.uc.Update(c.Request().Context(), currentActor(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCitaResponse(cita), "Cita actualizada exitosamente")
}

// Cancel cancels one cita, flipping its estado and soft-deleting it.
func (h *CitaHandler) Cancel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Cancel(c.Request().Context(), currentActor(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Cita cancelada"}, "Cita cancelada exitosamente")
}
