package models

import (
	predmodels "github.com/strokeapp/stroke-backend/internal/prediction/models"
)

// PatientPrediction is one prediction record merged with the resolved user name.
// CreatedAt is serialized (RFC 3339) or empty when the record carries no timestamp.
type PatientPrediction struct {
	PredictionID string                      `json:"prediction_id"`
	UserID       *int                        `json:"user_id"`
	UserEmail    string                      `json:"user_email"`
	UserName     *string                     `json:"user_name"`
	InputData    predmodels.StrokeInput      `json:"input_data"`
	Prediction   predmodels.PredictionResult `json:"prediction"`
	CreatedAt    string                      `json:"created_at"`
}

// DashboardResponse is the derived page handed to the clinician dashboard. It is
// computed per request and never persisted. The aggregate counts always cover
// the whole working set, not just the returned page.
type DashboardResponse struct {
	Success           bool                `json:"success"`
	TotalPatients     int                 `json:"total_patients"`
	TotalPredictions  int                 `json:"total_predictions"`
	HighRiskCount     int                 `json:"high_risk_count"`
	ModerateRiskCount int                 `json:"moderate_risk_count"`
	LowRiskCount      int                 `json:"low_risk_count"`
	Predictions       []PatientPrediction `json:"predictions"`
	CurrentPage       int                 `json:"current_page"`
	TotalPages        int                 `json:"total_pages"`
	PageSize          int                 `json:"page_size"`
	HasNext           bool                `json:"has_next"`
	HasPrev           bool                `json:"has_prev"`
}
