package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole admits the request only when the verified role claim is one of the
// allowed roles. It must run after JWTMiddleware.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	roleSet := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		roleSet[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFromContext(c)
			if claims == nil {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"status":  http.StatusUnauthorized,
					"message": "Missing or invalid JWT claims",
					"data":    nil,
				})
			}

			if _, allowed := roleSet[claims.Role]; !allowed {
				return c.JSON(http.StatusForbidden, map[string]interface{}{
					"status":  http.StatusForbidden,
					"message": "You do not have access to this resource",
					"data":    nil,
				})
			}

			return next(c)
		}
	}
}
