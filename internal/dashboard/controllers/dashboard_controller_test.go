package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strokeapp/stroke-backend/internal/common/middlewares"
	"github.com/strokeapp/stroke-backend/internal/dashboard/models"
	"github.com/strokeapp/stroke-backend/internal/dashboard/services"
	predmodels "github.com/strokeapp/stroke-backend/internal/prediction/models"
	"github.com/strokeapp/stroke-backend/pkg/utils"
)

var (
	_ services.PredictionStore = (*fakePredictionStore)(nil)
	_ services.UserDirectory   = (*fakeUserDirectory)(nil)
)

type fakePredictionStore struct {
	records []predmodels.PredictionRecord
	err     error
}

func (f *fakePredictionStore) FetchRecent(ctx context.Context, limit int64) ([]predmodels.PredictionRecord, error) {
	return f.records, f.err
}

type fakeUserDirectory struct{}

func (f *fakeUserDirectory) ResolveNames(ctx context.Context, userIDs []int) (map[int]string, error) {
	return map[int]string{}, nil
}

func serveDashboard(t *testing.T, store *fakePredictionStore, claims *utils.Claims, target string) *httptest.ResponseRecorder {
	t.Helper()

	svc := services.NewDashboardService(store, &fakeUserDirectory{})
	controller := NewDashboardController(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set(string(middlewares.ContextKeyClaims), claims)
	}

	require.NoError(t, controller.GetPatients(c))
	return rec
}

func doctorClaims() *utils.Claims {
	return &utils.Claims{UserID: 7, Email: "dr@strokeapp.com", Role: "doctor"}
}

func someRecords(n int) []predmodels.PredictionRecord {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	records := make([]predmodels.PredictionRecord, 0, n)
	for i := 0; i < n; i++ {
		id := i
		records = append(records, predmodels.PredictionRecord{
			UserID:    &id,
			UserEmail: "p@strokeapp.com",
			Prediction: predmodels.PredictionResult{
				RiskLevel: predmodels.RiskLow,
			},
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		})
	}
	return records
}

func TestGetPatientsClampsPageSize(t *testing.T) {
	store := &fakePredictionStore{records: someRecords(5)}

	tests := []struct {
		target       string
		wantPageSize int
	}{
		{"/api/dashboard/patients", 10},
		{"/api/dashboard/patients?page_size=0", 1},
		{"/api/dashboard/patients?page_size=-3", 1},
		{"/api/dashboard/patients?page_size=999", 100},
		{"/api/dashboard/patients?page_size=25", 25},
		{"/api/dashboard/patients?page_size=abc", 10},
	}
	for _, tt := range tests {
		rec := serveDashboard(t, store, doctorClaims(), tt.target)
		require.Equal(t, http.StatusOK, rec.Code, tt.target)

		var resp models.DashboardResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, tt.wantPageSize, resp.PageSize, tt.target)
	}
}

func TestGetPatientsDefaultsInvalidPage(t *testing.T) {
	store := &fakePredictionStore{records: someRecords(5)}

	for _, target := range []string{
		"/api/dashboard/patients?page=0",
		"/api/dashboard/patients?page=-1",
		"/api/dashboard/patients?page=abc",
	} {
		rec := serveDashboard(t, store, doctorClaims(), target)
		require.Equal(t, http.StatusOK, rec.Code, target)

		var resp models.DashboardResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.CurrentPage, target)
	}
}

func TestGetPatientsForbiddenForNonDoctor(t *testing.T) {
	store := &fakePredictionStore{records: someRecords(1)}

	rec := serveDashboard(t, store, &utils.Claims{UserID: 1, Role: "patient"}, "/api/dashboard/patients")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serveDashboard(t, store, nil, "/api/dashboard/patients")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetPatientsStoreFailureIsInternalError(t *testing.T) {
	store := &fakePredictionStore{err: errors.New("server selection timeout")}

	rec := serveDashboard(t, store, doctorClaims(), "/api/dashboard/patients")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error retrieving patient data")
}
