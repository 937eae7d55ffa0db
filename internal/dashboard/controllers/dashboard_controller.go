package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/strokeapp/stroke-backend/internal/common/middlewares"
	"github.com/strokeapp/stroke-backend/internal/dashboard/services"
)

type DashboardController struct {
	Service *services.DashboardService
}

func NewDashboardController(service *services.DashboardService) *DashboardController {
	return &DashboardController{Service: service}
}

// GetPatients serves the paginated clinician dashboard. Query params: page
// (default 1, minimum 1) and page_size (default 10, clamped to [1,100]).
func (dc *DashboardController) GetPatients(c echo.Context) error {
	page := parseQueryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := parseQueryInt(c, "page_size", 10)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > 100 {
		pageSize = 100
	}

	claims := middlewares.ClaimsFromContext(c)

	resp, err := dc.Service.GetDashboard(c.Request().Context(), claims, page, pageSize)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			return c.JSON(http.StatusForbidden, map[string]interface{}{
				"status":  http.StatusForbidden,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Error retrieving patient data: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, resp)
}

func parseQueryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
