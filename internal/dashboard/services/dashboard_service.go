package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/strokeapp/stroke-backend/internal/dashboard/models"
	predmodels "github.com/strokeapp/stroke-backend/internal/prediction/models"
	"github.com/strokeapp/stroke-backend/pkg/utils"
)

// workingSetLimit bounds the batch of most-recent predictions the dashboard
// aggregates over. It approximates "all records" without unbounded memory use.
const workingSetLimit = 10000

var (
	// ErrForbidden is returned before any store access when the caller is not a doctor.
	ErrForbidden = errors.New("only doctors can access this endpoint")
	// ErrStoreUnavailable is returned when either backing store cannot be read.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// PredictionStore reads the bounded working set of prediction documents.
type PredictionStore interface {
	FetchRecent(ctx context.Context, limit int64) ([]predmodels.PredictionRecord, error)
}

// UserDirectory batch-resolves user IDs to display names.
type UserDirectory interface {
	ResolveNames(ctx context.Context, userIDs []int) (map[int]string, error)
}

// DashboardService computes the clinician dashboard: role gate, working-set
// fetch, name resolution, risk aggregation, and pagination. It holds no mutable
// state, so concurrent requests share it safely.
type DashboardService struct {
	Predictions PredictionStore
	Users       UserDirectory
}

func NewDashboardService(predictions PredictionStore, users UserDirectory) *DashboardService {
	return &DashboardService{Predictions: predictions, Users: users}
}

// GetDashboard builds one dashboard page. page and pageSize must already be
// validated by the caller (page >= 1, pageSize in [1,100]); a page beyond the
// last one is clamped to the last page rather than rejected. Authorization is
// checked before any store access.
func (svc *DashboardService) GetDashboard(ctx context.Context, claims *utils.Claims, page, pageSize int) (models.DashboardResponse, error) {
	var resp models.DashboardResponse

	if claims == nil || claims.Role != "doctor" {
		return resp, ErrForbidden
	}

	records, err := svc.Predictions.FetchRecent(ctx, workingSetLimit)
	if err != nil {
		return resp, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	names, err := svc.Users.ResolveNames(ctx, distinctUserIDs(records))
	if err != nil {
		return resp, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	merged, counts, totalPatients := aggregate(records, names)
	pageSlice, meta := paginate(merged, page, pageSize)

	resp = models.DashboardResponse{
		Success:           true,
		TotalPatients:     totalPatients,
		TotalPredictions:  len(merged),
		HighRiskCount:     counts.high,
		ModerateRiskCount: counts.moderate,
		LowRiskCount:      counts.low,
		Predictions:       pageSlice,
		CurrentPage:       meta.currentPage,
		TotalPages:        meta.totalPages,
		PageSize:          pageSize,
		HasNext:           meta.hasNext,
		HasPrev:           meta.hasPrev,
	}
	return resp, nil
}

type riskCounts struct {
	high     int
	moderate int
	low      int
}

// aggregate merges records with resolved names, counts risk tiers, and sorts the
// result by serialized timestamp, newest first. Any risk level other than
// exactly High or Moderate counts as Low; missing or garbled values fall back
// to the lowest tier rather than being dropped.
func aggregate(records []predmodels.PredictionRecord, names map[int]string) ([]models.PatientPrediction, riskCounts, int) {
	var counts riskCounts
	merged := make([]models.PatientPrediction, 0, len(records))
	seen := make(map[int]struct{})

	for _, rec := range records {
		switch rec.Prediction.RiskLevel {
		case predmodels.RiskHigh:
			counts.high++
		case predmodels.RiskModerate:
			counts.moderate++
		default:
			counts.low++
		}

		var userName *string
		if rec.UserID != nil {
			seen[*rec.UserID] = struct{}{}
			if name, ok := names[*rec.UserID]; ok {
				userName = &name
			}
		}

		createdAt := ""
		if !rec.CreatedAt.IsZero() {
			createdAt = rec.CreatedAt.UTC().Format(time.RFC3339)
		}

		merged = append(merged, models.PatientPrediction{
			PredictionID: rec.ID.Hex(),
			UserID:       rec.UserID,
			UserEmail:    rec.UserEmail,
			UserName:     userName,
			InputData:    rec.InputData,
			Prediction:   rec.Prediction,
			CreatedAt:    createdAt,
		})
	}

	// String comparison on the serialized timestamps; records without one carry
	// "" and therefore end up last.
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].CreatedAt > merged[j].CreatedAt
	})

	return merged, counts, len(seen)
}

type pageMeta struct {
	currentPage int
	totalPages  int
	hasNext     bool
	hasPrev     bool
}

// paginate slices the sorted list into the requested page. Requests beyond the
// last page clamp to the last page instead of failing.
func paginate(list []models.PatientPrediction, page, pageSize int) ([]models.PatientPrediction, pageMeta) {
	total := len(list)
	totalPages := (total + pageSize - 1) / pageSize

	currentPage := 1
	if totalPages > 0 {
		currentPage = page
		if currentPage > totalPages {
			currentPage = totalPages
		}
	}

	start := (currentPage - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return list[start:end], pageMeta{
		currentPage: currentPage,
		totalPages:  totalPages,
		hasNext:     currentPage < totalPages,
		hasPrev:     currentPage > 1,
	}
}

// distinctUserIDs collects the unique non-null user IDs referenced by the records.
func distinctUserIDs(records []predmodels.PredictionRecord) []int {
	seen := make(map[int]struct{})
	ids := make([]int, 0)
	for _, rec := range records {
		if rec.UserID == nil {
			continue
		}
		if _, ok := seen[*rec.UserID]; ok {
			continue
		}
		seen[*rec.UserID] = struct{}{}
		ids = append(ids, *rec.UserID)
	}
	return ids
}
