package middlewares

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/strokeapp/stroke-backend/pkg/utils"
)

type contextKey string

// ContextKeyClaims is the echo context key under which verified claims are stored.
const ContextKeyClaims contextKey = "claims"

// JWTMiddleware extracts the bearer token, validates it, and stores the verified
// claims in the request context for downstream handlers.
func JWTMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"status":  http.StatusUnauthorized,
					"message": "Authorization header missing",
					"data":    nil,
				})
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"status":  http.StatusUnauthorized,
					"message": "Invalid authorization header",
					"data":    nil,
				})
			}

			claims, err := utils.ValidateJWTToken(parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"status":  http.StatusUnauthorized,
					"message": "Invalid token: " + err.Error(),
					"data":    nil,
				})
			}

			c.Set(string(ContextKeyClaims), claims)
			return next(c)
		}
	}
}

// ClaimsFromContext returns the verified claims stored by JWTMiddleware, or nil
// when the route was reached without them.
func ClaimsFromContext(c echo.Context) *utils.Claims {
	claims, _ := c.Get(string(ContextKeyClaims)).(*utils.Claims)
	return claims
}
