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

// VacunaHandler holds dependencies for vaccination handlers.
type VacunaHandler struct {
	uc     usecase.VacunaUsecase
	logger *slog.Logger
}

// NewVacunaHandler is the constructor for VacunaHandler, injected by Fx.
func NewVacunaHandler(uc usecase.VacunaUsecase, logger *slog.Logger) *VacunaHandler {
	return &VacunaHandler{
		uc:     uc,
		logger: logger,
	}
}

type createVacunaRequest struct {
	IDMascota    uuid.UUID  `json:"id_mascota" validate:"required"`
	TipoVacuna   string     `json:"tipo_vacuna" validate:"required"`
	LoteVacuna   string     `json:"lote_vacuna"`
	ProximaDosis *time.Time `json:"proxima_dosis"`
}

// Create records a vaccination applied by the calling vet.
func (h *VacunaHandler) Create(c echo.Context) error {
	var req createVacunaRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de vacuna inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	vacuna, err := h.uc.Create(c.Request().Context(), currentActor(c), &usecase.CreateVacunaInput{
		IDMascota:    req.IDMascota,
		TipoVacuna:   entity.TipoVacuna(req.TipoVacuna),
		LoteVacuna:   req.LoteVacuna,
		ProximaDosis: req.ProximaDosis,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newVacunaResponse(vacuna), "Vacuna registrada exitosamente")
}

// Get returns one vacuna.
func (h *VacunaHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	vacuna, err := h.uc.Get(c.Request().Context(), currentActor(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newVacunaResponse(vacuna), "")
}

// List returns a page of vacunas scoped to the caller's role.
func (h *VacunaHandler) List(c echo.Context) error {
	idMascota, err := queryUUID(c, "id_mascota")
	if err != nil {
		return err
	}

	input := &usecase.ListVacunasInput{
		IDMascota:      idMascota,
		Veterinario:    c.QueryParam("veterinario"),
		IncludeDeleted: queryBool(c, "include_deleted"),
		Page:           queryPage(c),
	}
	if raw := c.QueryParam("tipo_vacuna"); raw != "" {
		tipo := entity.TipoVacuna(raw)
		if !tipo.IsValid() {
			return domainerrors.NewValidationError("tipo_vacuna", "Tipo de vacuna inválido")
		}
		input.TipoVacuna = &tipo
	}

	output, err := h.uc.List(c.Request().Context(), currentActor(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, newVacunaResponses(output.Vacunas), output.Meta, "")
}

type updateVacunaRequest struct {
	TipoVacuna   *string    `json:"tipo_vacuna"`
	LoteVacuna   *string    `json:"lote_vacuna"`
	ProximaDosis *time.Time `json:"proxima_dosis"`
}

// Update modifies one vacuna.
func (h *VacunaHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateVacunaRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de vacuna inválidos")
	}

	input := &usecase.UpdateVacunaInput{
		LoteVacuna:   req.LoteVacuna,
		ProximaDosis: req.ProximaDosis,
	}
	if req.TipoVacuna != nil {
		tipo := entity.TipoVacuna(*req.TipoVacuna)
		input.TipoVacuna = &tipo
	}

	vacuna, err := h.uc.Update(c.Request().Context(), currentActor(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newVacunaResponse(vacuna), "Vacuna actualizada exitosamente")
}

// Delete soft-deletes one vacuna.
func (h *VacunaHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), currentActor(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Vacuna eliminada"}, "Vacuna eliminada exitosamente")
}

// ProximasDosis lists upcoming booster doses scoped to the caller's role.
func (h *VacunaHandler) ProximasDosis(c echo.Context) error {
	output, err := h.uc.ProximasDosis(c.Request().Context(), currentActor(c), queryPage(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, newVacunaResponses(output.Vacunas), output.Meta, "")
}
