package middleware

import (
	"strings"

	deliverycontext "servihub/internal/delivery/context"
	"servihub/internal/delivery/api/response"
	"servihub/internal/domain/entity"
	"servihub/internal/domain/service"
	"servihub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddleware validates access tokens and checks roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenSvc}
}

// Authenticate validates the access token and stores the caller on the context.
// The token is read from the Authorization header, or from the access_token query
// parameter for event streams opened by browsers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing or malformed")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		roles := entity.RolesFromStrings(claims.Roles)
		if len(roles) == 0 {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token carries no role")
		}

		deliverycontext.SetIdentity(c, claims.UserID, roles[0])

		return next(c)
	}
}

// RequireRole must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := deliverycontext.GetRole(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !entity.Roles(allowed).Contains(role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied for role '"+role.String()+"'")
			}

			return next(c)
		}
	}
}

// GetActor returns the authenticated caller.
func GetActor(c echo.Context) (usecase.Actor, bool) {
	id, ok := deliverycontext.GetProfileID(c)
	if !ok {
		return usecase.Actor{}, false
	}

	role, ok := deliverycontext.GetRole(c)
	if !ok {
		return usecase.Actor{}, false
	}

	return usecase.Actor{ID: id, Role: role}, true
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		token := c.QueryParam("access_token")

		return token, token != ""
	}

	token, found := strings.CutPrefix(header, bearerPrefix)
	if !found || token == "" {
		return "", false
	}

	return token, true
}
