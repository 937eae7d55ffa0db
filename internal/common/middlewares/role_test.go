package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strokeapp/stroke-backend/pkg/utils"
)

func callWithClaims(t *testing.T, mw echo.MiddlewareFunc, claims *utils.Claims) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set(string(ContextKeyClaims), claims)
	}

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	rec := callWithClaims(t, RequireRole("doctor"), &utils.Claims{UserID: 1, Role: "doctor"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleRejectsOtherRoles(t *testing.T) {
	for _, role := range []string{"patient", "admin", ""} {
		rec := callWithClaims(t, RequireRole("doctor"), &utils.Claims{UserID: 1, Role: role})
		assert.Equal(t, http.StatusForbidden, rec.Code, "role %q must be rejected", role)
	}
}

func TestRequireRoleRejectsMissingClaims(t *testing.T) {
	rec := callWithClaims(t, RequireRole("doctor"), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddlewareRejectsMissingOrMalformedHeader(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	e := echo.New()

	for _, header := range []string{"", "Basic abc", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := JWTMiddleware()(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestJWTMiddlewareStoresClaims(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	token, err := utils.GenerateJWTToken(9, "dr@strokeapp.com", "doctor", time.Now().Add(time.Hour))
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTMiddleware()(func(c echo.Context) error {
		claims := ClaimsFromContext(c)
		require.NotNil(t, claims)
		assert.Equal(t, 9, claims.UserID)
		assert.Equal(t, "doctor", claims.Role)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
