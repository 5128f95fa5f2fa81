// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vetclinic/internal/delivery/http/middleware"
	"vetclinic/internal/delivery/http/router/handler"
	"vetclinic/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	UsuarioHandler   *handler.UsuarioHandler
	MascotaHandler   *handler.MascotaHandler
	CitaHandler      *handler.CitaHandler
	VacunaHandler    *handler.VacunaHandler
	FacturaHandler   *handler.FacturaHandler
	RecetaHandler    *handler.RecetaHandler
	DashboardHandler *handler.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	usuarioHandler   *handler.UsuarioHandler
	mascotaHandler   *handler.MascotaHandler
	citaHandler      *handler.CitaHandler
	vacunaHandler    *handler.VacunaHandler
	facturaHandler   *handler.FacturaHandler
	recetaHandler    *handler.RecetaHandler
	dashboardHandler *handler.DashboardHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		usuarioHandler:   params.UsuarioHandler,
		mascotaHandler:   params.MascotaHandler,
		citaHandler:      params.CitaHandler,
		vacunaHandler:    params.VacunaHandler,
		facturaHandler:   params.FacturaHandler,
		recetaHandler:    params.RecetaHandler,
		dashboardHandler: params.DashboardHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes. Registration is optionally authenticated: anonymous
	// callers self-register as cliente, admins may create veterinarios.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register, r.authMiddleware.AuthenticateOptional)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.PUT("/password", r.authHandler.ChangePassword, r.authMiddleware.Authenticate)
	}

	// Everything below requires a valid token. Ownership and role scoping
	// beyond the coarse role gates live in the usecase layer.
	usuarioGroup := e.Group("/usuarios")
	usuarioGroup.Use(r.authMiddleware.Authenticate)
	{
		usuarioGroup.GET("", r.usuarioHandler.List)
		usuarioGroup.GET("/:id", r.usuarioHandler.Get)
		usuarioGroup.PUT("/:id", r.usuarioHandler.Update)
		usuarioGroup.DELETE("/:id", r.usuarioHandler.Delete)
		usuarioGroup.POST("/:id/restore", r.usuarioHandler.Restore, r.authMiddleware.RequireRole(entity.RoleAdmin))
	}

	mascotaGroup := e.Group("/mascotas")
	mascotaGroup.Use(r.authMiddleware.Authenticate)
	{
		mascotaGroup.POST("", r.mascotaHandler.Create)
		mascotaGroup.GET("", r.mascotaHandler.List)
		mascotaGroup.GET("/:id", r.mascotaHandler.Get)
		mascotaGroup.PUT("/:id", r.mascotaHandler.Update)
		mascotaGroup.DELETE("/:id", r.mascotaHandler.Delete)
		mascotaGroup.POST("/:id/restore", r.mascotaHandler.Restore)
		mascotaGroup.GET("/:id/citas", r.mascotaHandler.HistorialCitas)
		mascotaGroup.GET("/:id/vacunas", r.mascotaHandler.HistorialVacunas)
		mascotaGroup.GET("/:id/facturas", r.mascotaHandler.HistorialFacturas)
	}

	citaGroup := e.Group("/citas")
	citaGroup.Use(r.authMiddleware.Authenticate)
	{
		citaGroup.POST("", r.citaHandler.Create)
		citaGroup.GET("", r.citaHandler.List)
		citaGroup.GET("/:id", r.citaHandler.Get)
		citaGroup.PUT("/:id", r.citaHandler.Update)
		citaGroup.POST("/:id/cancelar", r.citaHandler.Cancel)
	}

	vacunaGroup := e.Group("/vacunas")
	vacunaGroup.Use(r.authMiddleware.Authenticate)
	{
		// Static route before the parameterized one.
		vacunaGroup.GET("/proximas-dosis", r.vacunaHandler.ProximasDosis)
		vacunaGroup.POST("", r.vacunaHandler.Create, r.authMiddleware.RequireRole(entity.RoleVeterinario, entity.RoleAdmin))
		vacunaGroup.GET("", r.vacunaHandler.List)
		vacunaGroup.GET("/:id", r.vacunaHandler.Get)
		vacunaGroup.PUT("/:id", r.vacunaHandler.Update)
		vacunaGroup.DELETE("/:id", r.vacunaHandler.Delete)
	}

	facturaGroup := e.Group("/facturas")
	facturaGroup.Use(r.authMiddleware.Authenticate)
	{
		facturaGroup.POST("", r.facturaHandler.Create, r.authMiddleware.RequireRole(entity.RoleVeterinario, entity.RoleAdmin))
		facturaGroup.GET("", r.facturaHandler.List)
		facturaGroup.GET("/:id", r.facturaHandler.Get)
		facturaGroup.PUT("/:id", r.facturaHandler.Update)
		facturaGroup.POST("/:id/pagar", r.facturaHandler.MarcarPagada)
		facturaGroup.POST("/:id/anular", r.facturaHandler.Anular)
	}

	recetaGroup := e.Group("/recetas")
	recetaGroup.Use(r.authMiddleware.Authenticate)
	{
		recetaGroup.GET("/cita/:id_cita", r.recetaHandler.GetByCita)
		recetaGroup.POST("", r.recetaHandler.Create, r.authMiddleware.RequireRole(entity.RoleVeterinario, entity.RoleAdmin))
		recetaGroup.GET("", r.recetaHandler.List)
		recetaGroup.GET("/:id", r.recetaHandler.Get)
		recetaGroup.PUT("/:id", r.recetaHandler.Update)
		recetaGroup.DELETE("/:id", r.recetaHandler.Delete)
	}

	dashboardGroup := e.Group("/dashboard")
	dashboardGroup.Use(r.authMiddleware.Authenticate)
	{
		dashboardGroup.GET("/estadisticas", r.dashboardHandler.Estadisticas)
	}
}
