package handler

import (
	"log/slog"
	"net/http"

	"vetclinic/internal/delivery/http/response"
	"vetclinic/internal/domain/entity"
	"vetclinic/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Password string  `json:"password" validate:"required"`
	Nombre   string  `json:"nombre" validate:"required"`
	Edad     int     `json:"edad" validate:"gte=0"`
	Telefono string  `json:"telefono"`
	Role     *string `json:"role"`
}

// Register handles account registration. Anonymous callers create cliente
// accounts; an authenticated admin may create veterinario accounts.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de registro inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Nombre:   req.Nombre,
		Edad:     req.Edad,
		Telefono: req.Telefono,
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		input.Role = &role
	}

	output, err := h.uc.Register(c.Request().Context(), currentActor(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUsuarioResponse(output.Usuario), "Usuario registrado exitosamente")
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles the login request and issues an access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de acceso inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &LoginResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		Usuario:     newUsuarioResponse(output.Usuario),
	}, "Inicio de sesión exitoso")
}

type changePasswordRequest struct {
	CurrentPassword string `json:"password_actual" validate:"required"`
	NewPassword     string `json:"password_nueva" validate:"required"`
}

// ChangePassword handles the password change request for the caller.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de cambio de contraseña inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err := h.uc.ChangePassword(c.Request().Context(), currentActor(c), &usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Contraseña actualizada"}, "Contraseña actualizada exitosamente")
}
