package handler

import (
	"log/slog"
	"net/http"

	"vetclinic/internal/delivery/http/response"
	"vetclinic/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler holds dependencies for the role-scoped dashboard.
type DashboardHandler struct {
	uc     usecase.DashboardUsecase
	logger *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		uc:     uc,
		logger: logger,
	}
}

type estadisticasClienteResponse struct {
	MisMascotas        int64 `json:"mis_mascotas"`
	CitasPendientes    int64 `json:"citas_pendientes"`
	CitasCompletadas   int64 `json:"citas_completadas"`
	VacunasAplicadas   int64 `json:"vacunas_aplicadas"`
	FacturasPendientes int64 `json:"facturas_pendientes"`
	FacturasPagadas    int64 `json:"facturas_pagadas"`
}

type estadisticasVeterinarioResponse struct {
	MisMascotas      int64 `json:"mis_mascotas"`
	CitasAsignadas   int64 `json:"citas_asignadas"`
	CitasCompletadas int64 `json:"citas_completadas"`
	VacunasAplicadas int64 `json:"vacunas_aplicadas"`
	FacturasEmitidas int64 `json:"facturas_emitidas"`
	FacturasCobradas int64 `json:"facturas_cobradas"`
}

type estadisticasAdminResponse struct {
	TotalMascotas      int64   `json:"total_mascotas"`
	TotalUsuarios      int64   `json:"total_usuarios"`
	CitasPendientes    int64   `json:"citas_pendientes"`
	CitasHoy           int64   `json:"citas_hoy"`
	VacunasMes         int64   `json:"vacunas_mes"`
	FacturasPendientes int64   `json:"facturas_pendientes"`
	IngresosMes        float64 `json:"ingresos_mes"`
}

type estadisticasResponse struct {
	Role        string                           `json:"role"`
	Cliente     *estadisticasClienteResponse     `json:"cliente,omitempty"`
	Veterinario *estadisticasVeterinarioResponse `json:"veterinario,omitempty"`
	Admin       *estadisticasAdminResponse       `json:"admin,omitempty"`
}

// Estadisticas returns the dashboard aggregates for the caller's role.
func (h *DashboardHandler) Estadisticas(c echo.Context) error {
	output, err := h.uc.Estadisticas(c.Request().Context(), currentActor(c))
	if err != nil {
		return errors.WithStack(err)
	}

	resp := &estadisticasResponse{Role: output.Role.String()}
	if output.Cliente != nil {
		resp.Cliente = &estadisticasClienteResponse{
			MisMascotas:        output.Cliente.MisMascotas,
			CitasPendientes:    output.Cliente.CitasPendientes,
			CitasCompletadas:   output.Cliente.CitasCompletadas,
			VacunasAplicadas:   output.Cliente.VacunasAplicadas,
			FacturasPendientes: output.Cliente.FacturasPendientes,
			FacturasPagadas:    output.Cliente.FacturasPagadas,
		}
	}
	if output.Veterinario != nil {
		resp.Veterinario = &estadisticasVeterinarioResponse{
			MisMascotas:      output.Veterinario.MisMascotas,
			CitasAsignadas:   output.Veterinario.CitasAsignadas,
			CitasCompletadas: output.Veterinario.CitasCompletadas,
			VacunasAplicadas: output.Veterinario.VacunasAplicadas,
			FacturasEmitidas: output.Veterinario.FacturasEmitidas,
			FacturasCobradas: output.Veterinario.FacturasCobradas,
		}
	}
	if output.Admin != nil {
		resp.Admin = &estadisticasAdminResponse{
			TotalMascotas:      output.Admin.TotalMascotas,
			TotalUsuarios:      output.Admin.TotalUsuarios,
			CitasPendientes:    output.Admin.CitasPendientes,
			CitasHoy:           output.Admin.CitasHoy,
			VacunasMes:         output.Admin.VacunasMes,
			FacturasPendientes: output.Admin.FacturasPendientes,
			IngresosMes:        output.Admin.IngresosMes,
		}
	}

	return response.Success(c, http.StatusOK, resp, "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Servicio disponible")
}
