package middleware

import (
	"strings"

	"vetclinic/internal/delivery/http/response"
	"vetclinic/internal/domain/entity"
	"vetclinic/internal/domain/service"
	"vetclinic/internal/usecase"

	"github.com/labstack/echo/v4"
)

// actorKey is the echo.Context key under which the authenticated caller is
// stored.
const actorKey = "actor"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the caller on the
// context. Requests without a valid token are rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := m.resolveActor(c)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", err.Error())
		}
		if actor == nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "No autenticado")
		}

		SetActor(c, actor)

		return next(c)
	}
}

// AuthenticateOptional validates the bearer token when one is present but
// lets anonymous requests through. Registration uses it: anonymous callers
// create cliente accounts, admins may create veterinarios.
func (m *AuthMiddleware) AuthenticateOptional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := m.resolveActor(c)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", err.Error())
		}
		if actor != nil {
			SetActor(c, actor)
		}

		return next(c)
	}
}

// resolveActor extracts and validates the bearer token. A missing header
// yields (nil, nil); a malformed or invalid token yields an error.
func (m *AuthMiddleware) resolveActor(c echo.Context) (*usecase.Actor, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, errInvalidTokenFormat
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return nil, errInvalidToken
	}

	return &usecase.Actor{
		ID:       claims.UserID,
		Username: claims.Username,
		Role:     entity.Role(claims.Role),
	}, nil
}

// RequireRole is a middleware factory that checks the caller's role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := GetActor(c)
			if actor == nil {
				return response.Unauthorized(c, "UNAUTHORIZED", "No autenticado")
			}

			for _, role := range roles {
				if actor.Role == role {
					return next(c)
				}
			}

			return response.Forbidden(c, "FORBIDDEN", "No tiene permisos para realizar esta acción")
		}
	}
}

// SetActor stores the authenticated caller on the echo context.
func SetActor(c echo.Context, actor *usecase.Actor) {
	c.Set(actorKey, actor)
}

// GetActor returns the authenticated caller, or nil for anonymous requests.
func GetActor(c echo.Context) *usecase.Actor {
	actor, ok := c.Get(actorKey).(*usecase.Actor)
	if !ok {
		return nil
	}

	return actor
}

type authError string

func (e authError) Error() string { return string(e) }

const (
	errInvalidTokenFormat = authError("El token debe enviarse como 'Bearer <token>'")
	errInvalidToken       = authError("Token inválido o expirado")
)
