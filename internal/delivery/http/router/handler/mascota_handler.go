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

// MascotaHandler holds dependencies for patient management handlers.
type MascotaHandler struct {
	uc     usecase.MascotaUsecase
	logger *slog.Logger
}

// NewMascotaHandler is the constructor for MascotaHandler, injected by Fx.
func NewMascotaHandler(uc usecase.MascotaUsecase, logger *slog.Logger) *MascotaHandler {
	return &MascotaHandler{
		uc:     uc,
		logger: logger,
	}
}

type createMascotaRequest struct {
	Nombre string  `json:"nombre" validate:"required"`
	Tipo   string  `json:"tipo" validate:"required"`
	Raza   string  `json:"raza"`
	Edad   int     `json:"edad" validate:"gte=0"`
	Peso   float64 `json:"peso" validate:"gte=0"`
}

// Create registers a new mascota owned by the caller.
func (h *MascotaHandler) Create(c echo.Context) error {
	var req createMascotaRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de mascota inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	mascota, err := h.uc.Create(c.Request().Context(), currentActor(c), &usecase.CreateMascotaInput{
		Nombre: req.Nombre,
		Tipo:   entity.TipoMascota(req.Tipo),
		Raza:   req.Raza,
		Edad:   req.Edad,
		Peso:   req.Peso,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newMascotaResponse(mascota), "Mascota registrada exitosamente")
}

// Get returns one mascota.
func (h *MascotaHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	mascota, err := h.uc.Get(c.Request().Context(), currentActor(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newMascotaResponse(mascota), "")
}

// List returns a page of mascotas scoped to the caller's role.
func (h *MascotaHandler) List(c echo.Context) error {
	input := &usecase.ListMascotasInput{
		Propietario:    c.QueryParam("propietario"),
		Search:         c.QueryParam("search"),
		IncludeDeleted: queryBool(c, "include_deleted"),
		Page:           queryPage(c),
	}
	if raw := c.QueryParam("tipo"); raw != "" {
		tipo := entity.TipoMascota(raw)
		if !tipo.IsValid() {
			return domainerrors.NewValidationError("tipo", "Tipo de mascota inválido")
		}
		input.Tipo = &tipo
	}

	output, err := h.uc.List(c.Request().Context(), currentActor(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, newMascotaResponses(output.Mascotas), output.Meta, "")
}

type updateMascotaRequest struct {
	Nombre *string  `json:"nombre"`
	Tipo   *string  `json:"tipo"`
	Raza   *string  `json:"raza"`
	Edad   *int     `json:"edad" validate:"omitempty,gte=0"`
	Peso   *float64 `json:"peso" validate:"omitempty,gte=0"`
}

// Update modifies one mascota.
func (h *MascotaHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateMascotaRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de mascota inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateMascotaInput{
		Nombre: req.Nombre,
		Raza:   req.Raza,
		Edad:   req.Edad,
		Peso:   req.Peso,
	}
	if req.Tipo != nil {
		tipo := entity.TipoMascota(*req.Tipo)
		input.Tipo = &tipo
	}

	mascota, err := h.uc.Update(c.Request().Context(), currentActor(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newMascotaResponse(mascota), "Mascota actualizada exitosamente")
}

// Delete soft-deletes one mascota.
func (h *MascotaHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), currentActor(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Mascota eliminada"}, "Mascota eliminada exitosamente")
}

// Restore clears the soft-delete marker of one mascota.
func (h *MascotaHandler) Restore(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	mascota, err := h.uc.Restore(c.Request().Context(), currentActor(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newMascotaResponse(mascota), "Mascota restaurada exitosamente")
}

// HistorialCitas lists the appointments of one mascota.
func (h *MascotaHandler) HistorialCitas(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.uc.HistorialCitas(c.Request().Context(), currentActor(c), id, queryPage(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, newCitaResponses(output.Citas), output.Meta, "")
}

// HistorialVacunas lists the vaccinations of one mascota.
func (h *MascotaHandler) HistorialVacunas(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.uc.HistorialVacunas(c.Request().Context(), currentActor(c), id, queryPage(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, newVacunaResponses(output.Vacunas), output.Meta, "")
}

// HistorialFacturas lists the invoices of one mascota.
func (h *MascotaHandler) HistorialFacturas(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.uc.HistorialFacturas(c.Request().Context(), currentActor(c), id, queryPage(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, newFacturaResponses(output.Facturas), output.Meta, "")
}
