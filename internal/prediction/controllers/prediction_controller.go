package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/strokeapp/stroke-backend/internal/common/middlewares"
	"github.com/strokeapp/stroke-backend/internal/prediction/models"
	"github.com/strokeapp/stroke-backend/internal/prediction/services"
	"github.com/strokeapp/stroke-backend/ws"
)

type PredictionController struct {
	Service *services.PredictionService
	Hub     *ws.Hub
}

func NewPredictionController(service *services.PredictionService, hub *ws.Hub) *PredictionController {
	return &PredictionController{Service: service, Hub: hub}
}

// SavePredictionRequest carries the clinical input plus the result already
// scored by the classifier collaborator.
type SavePredictionRequest struct {
	InputData  models.StrokeInput      `json:"input_data"`
	Prediction models.PredictionResult `json:"prediction"`
}

// SavePrediction stores one scored assessment for the authenticated user and
// notifies connected dashboard clients.
func (pc *PredictionController) SavePrediction(c echo.Context) error {
	var req SavePredictionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload",
			"data":    nil,
		})
	}

	if req.Prediction.Result != 0 && req.Prediction.Result != 1 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "prediction.result must be 0 or 1",
			"data":    nil,
		})
	}
	if req.Prediction.Probability < 0 || req.Prediction.Probability > 1 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "prediction.probability must be between 0 and 1",
			"data":    nil,
		})
	}
	switch req.Prediction.RiskLevel {
	case models.RiskLow, models.RiskModerate, models.RiskHigh:
	default:
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "prediction.risk_level must be Low, Moderate or High",
			"data":    nil,
		})
	}

	claims := middlewares.ClaimsFromContext(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"status":  http.StatusUnauthorized,
			"message": "Missing or invalid JWT claims",
			"data":    nil,
		})
	}

	id, err := pc.Service.Save(c.Request().Context(), claims.UserID, claims.Email, req.InputData, req.Prediction)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to save stroke prediction data: " + err.Error(),
			"data":    nil,
		})
	}

	if pc.Hub != nil {
		pc.Hub.BroadcastEvent(ws.Event{
			Event:        "prediction_saved",
			PredictionID: id,
			RiskLevel:    req.Prediction.RiskLevel,
		})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"status":  http.StatusCreated,
		"message": "Prediction saved",
		"data":    map[string]interface{}{"prediction_id": id},
	})
}

// MyPredictions returns the authenticated user's own assessments, newest first.
// Query param: limit (default 100, clamped to [1,1000]).
func (pc *PredictionController) MyPredictions(c echo.Context) error {
	claims := middlewares.ClaimsFromContext(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"status":  http.StatusUnauthorized,
			"message": "Missing or invalid JWT claims",
			"data":    nil,
		})
	}

	limit := 100
	if raw := c.QueryParam("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 1000 {
		limit = 1000
	}

	records, err := pc.Service.FetchByUser(c.Request().Context(), claims.UserID, int64(limit))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve stroke predictions: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "OK",
		"data":    records,
	})
}
