package handler

import (
	"log/slog"
	"net/http"

	"vetclinic/internal/delivery/http/response"
	"vetclinic/internal/domain/entity"
	domainerrors "vetclinic/internal/domain/errors"
	"vetclinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FacturaHandler holds dependencies for invoice handlers.
type FacturaHandler struct {
	uc     usecase.FacturaUsecase
	logger *slog.Logger
}

// NewFacturaHandler is the constructor for FacturaHandler, injected by Fx.
func NewFacturaHandler(uc usecase.FacturaUsecase, logger *slog.Logger) *FacturaHandler {
	return &FacturaHandler{
		uc:     uc,
		logger: logger,
	}
}

type createFacturaRequest struct {
	IDCita        *uuid.UUID `json:"id_cita"`
	IDVacuna      *uuid.UUID `json:"id_vacuna"`
	TipoServicio  string     `json:"tipo_servicio" validate:"required"`
	Descripcion   string     `json:"descripcion"`
	ValorServicio float64    `json:"valor_servicio" validate:"gte=0"`
	IVA           float64    `json:"iva" validate:"gte=0"`
	Descuento     float64    `json:"descuento" validate:"gte=0"`
}

// Create issues an invoice for exactly one cita or one vacuna.
func (h *FacturaHandler) Create(c echo.Context) error {
	var req createFacturaRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de factura inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	factura, err := h.uc.Create(c.Request().Context(), currentActor(c), &usecase.CreateFacturaInput{
		IDCita:        req.IDCita,
		IDVacuna:      req.IDVacuna,
		TipoServicio:  entity.TipoServicio(req.TipoServicio),
		Descripcion:   req.Descripcion,
		ValorServicio: req.ValorServicio,
		IVA:           req.IVA,
		Descuento:     req.Descuento,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newFacturaResponse(factura), "Factura emitida exitosamente")
}

// Get returns one factura.
func (h *FacturaHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	factura, err := h.uc.Get(c.Request().Context(), currentActor(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newFacturaResponse(factura), "")
}

// List returns a page of facturas scoped to the caller's role.
func (h *FacturaHandler) List(c echo.Context) error {
	idMascota, err := queryUUID(c, "id_mascota")
	if err != nil {
		return err
	}

	input := &usecase.ListFacturasInput{
		IDMascota:      idMascota,
		Veterinario:    c.QueryParam("veterinario"),
		IncludeDeleted: queryBool(c, "include_deleted"),
		Page:           queryPage(c),
	}
	if raw := c.QueryParam("estado"); raw != "" {
		estado := entity.EstadoFactura(raw)
		if !estado.IsValid() {
			return domainerrors.NewValidationError("estado", "Estado de factura inválido")
		}
		input.Estado = &estado
	}

	output, err := h.uc.List(c.Request().Context(), currentActor(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, newFacturaResponses(output.Facturas), output.Meta, "")
}

type updateFacturaRequest struct {
	TipoServicio  *string  `json:"tipo_servicio"`
	Descripcion   *string  `json:"descripcion"`
	ValorServicio *float64 `json:"valor_servicio"`
	IVA           *float64 `json:"iva"`
	Descuento     *float64 `json:"descuento"`
}

// Update modifies one factura. Paid invoices are immutable.
func (h *FacturaHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateFacturaRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de factura inválidos")
	}

	input := &usecase.UpdateFacturaInput{
		Descripcion:   req.Descripcion,
		ValorServicio: req.ValorServicio,
		IVA:           req.IVA,
		Descuento:     req.Descuento,
	}
	if req.TipoServicio != nil {
		tipo := entity.TipoServicio(*req.TipoServicio)
		input.TipoServicio = &tipo
	}

	factura, err := h.uc.Update(c.Request().Context(), currentActor(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newFacturaResponse(factura), "Factura actualizada exitosamente")
}

// MarcarPagada marks one factura as paid.
func (h *FacturaHandler) MarcarPagada(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	factura, err := h.uc.MarcarPagada(c.Request().Context(), currentActor(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newFacturaResponse(factura), "Factura marcada como pagada")
}

// Anular voids one factura, flipping its estado and soft-deleting it.
func (h *FacturaHandler) Anular(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Anular(c.Request().Context(), currentActor(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Factura anulada"}, "Factura anulada exitosamente")
}
