package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-travel-intelligence/app/observability/metrics"
	"github.com/FACorreiaa/go-travel-intelligence/internal/budget"
	"github.com/FACorreiaa/go-travel-intelligence/internal/types"
)

// MockPlannerService is a mock implementation of Service
type MockPlannerService struct {
	mock.Mock
}

func (m *MockPlannerService) PlanTrip(ctx context.Context, city string, weather *types.WeatherResult) (*types.TravelPlan, error) {
	args := m.Called(ctx, city, weather)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TravelPlan), args.Error(1)
}

// MockWeatherSource is a mock implementation of sources.WeatherSource
type MockWeatherSource struct {
	mock.Mock
}

func (m *MockWeatherSource) GetByCityAndDate(ctx context.Context, city, startDate, endDate string) *types.WeatherResult {
	args := m.Called(ctx, city, startDate, endDate)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*types.WeatherResult)
}

// MockPricingService is a mock implementation of pricing.Service
type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) Signals(ctx context.Context, lat, lon float64) *types.PricingSignals {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*types.PricingSignals)
}

// MockBudgetService is a mock implementation of budget.Service
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) Estimate(ctx context.Context, plan *types.TravelPlan, signals *types.PricingSignals, opts budget.Options) *types.BudgetEstimate {
	args := m.Called(ctx, plan, signals, opts)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*types.BudgetEstimate)
}

// MockHistoryRepository is a mock implementation of history.Repository
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) SavePlanSummary(ctx context.Context, record types.PlanHistoryRecord) (uuid.UUID, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockHistoryRepository) ListPlanSummaries(ctx context.Context, city string, limit int) ([]types.PlanHistoryRecord, error) {
	args := m.Called(ctx, city, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.PlanHistoryRecord), args.Error(1)
}

type handlerMocks struct {
	planner *MockPlannerService
	weather *MockWeatherSource
	pricing *MockPricingService
	budget  *MockBudgetService
	history *MockHistoryRepository
}

func setupHandlerTest() (*Handler, *handlerMocks) {
	metrics.InitAppMetrics()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := &handlerMocks{
		planner: new(MockPlannerService),
		weather: new(MockWeatherSource),
		pricing: new(MockPricingService),
		budget:  new(MockBudgetService),
		history: new(MockHistoryRepository),
	}
	h := NewHandler(m.planner, m.weather, m.pricing, m.budget, m.history, logger)
	return h, m
}

func postPlan(t *testing.T, h *Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plan", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.CreatePlan(rr, req)
	return rr
}

func validRequest() PlanRequest {
	return PlanRequest{
		City:      "Paris",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-03",
		Travelers: 2,
		Currency:  "USD",
	}
}

func minimalPlan() *types.TravelPlan {
	return &types.TravelPlan{
		Destination: "Paris",
		TripDuration: types.TripDuration{
			StartDate: "2025-06-01", EndDate: "2025-06-03", Days: 3,
		},
		TripSummary: types.TripSummary{TotalAttractions: 8, TotalEvents: 2},
	}
}

func TestHandler_CreatePlan(t *testing.T) {
	t.Run("happy path returns plan and budget", func(t *testing.T) {
		h, m := setupHandlerTest()
		weather := &types.WeatherResult{
			City:        "Paris",
			Coordinates: types.Coordinates{Lat: 48.85, Lon: 2.35},
			Forecast:    []types.ForecastDay{{Date: "2025-06-01", Temp: 21, Condition: "clear"}},
		}
		plan := minimalPlan()
		estimate := &types.BudgetEstimate{
			Currency: "USD", Travelers: 2,
			Moderate: types.BudgetTier{TripTotal: types.MoneyRange{Min: 900, Max: 1400}},
		}

		m.weather.On("GetByCityAndDate", mock.Anything, "Paris", "2025-06-01", "2025-06-03").Return(weather).Once()
		m.planner.On("PlanTrip", mock.Anything, "Paris", weather).Return(plan, nil).Once()
		m.pricing.On("Signals", mock.Anything, 48.85, 2.35).Return(&types.PricingSignals{}).Once()
		m.budget.On("Estimate", mock.Anything, plan, mock.Anything, budget.Options{Travelers: 2, Currency: "USD"}).Return(estimate).Once()
		m.history.On("SavePlanSummary", mock.Anything, mock.MatchedBy(func(r types.PlanHistoryRecord) bool {
			return r.City == "Paris" && r.TotalAttractions == 8 && r.ModerateTripTotal == 1400
		})).Return(uuid.New(), nil).Once()

		rr := postPlan(t, h, validRequest())

		require.Equal(t, http.StatusOK, rr.Code)
		var resp PlanResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Paris", resp.Plan.Destination)
		assert.Equal(t, 1400.0, resp.Budget.Moderate.TripTotal.Max)
		m.planner.AssertExpectations(t)
		m.history.AssertExpectations(t)
	})

	t.Run("history failure does not block the response", func(t *testing.T) {
		h, m := setupHandlerTest()
		weather := &types.WeatherResult{City: "Paris", Forecast: []types.ForecastDay{{Date: "2025-06-01"}}}
		m.weather.On("GetByCityAndDate", mock.Anything, "Paris", "2025-06-01", "2025-06-03").Return(weather).Once()
		m.planner.On("PlanTrip", mock.Anything, "Paris", weather).Return(minimalPlan(), nil).Once()
		m.pricing.On("Signals", mock.Anything, 0.0, 0.0).Return(&types.PricingSignals{}).Once()
		m.budget.On("Estimate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(&types.BudgetEstimate{Currency: "USD", Travelers: 2}).Once()
		m.history.On("SavePlanSummary", mock.Anything, mock.Anything).
			Return(uuid.Nil, errors.New("db down")).Once()

		rr := postPlan(t, h, validRequest())

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("weather error propagates as bad gateway", func(t *testing.T) {
		h, m := setupHandlerTest()
		weather := &types.WeatherResult{City: "Nowhere", Err: "city Nowhere not found"}
		m.weather.On("GetByCityAndDate", mock.Anything, "Nowhere", "2025-06-01", "2025-06-03").Return(weather).Once()
		m.planner.On("PlanTrip", mock.Anything, "Nowhere", weather).
			Return(nil, errors.New("city Nowhere not found")).Once()

		req := validRequest()
		req.City = "Nowhere"
		rr := postPlan(t, h, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.Contains(t, rr.Body.String(), "city Nowhere not found")
		m.pricing.AssertNotCalled(t, "Signals", mock.Anything, mock.Anything, mock.Anything)
		m.budget.AssertNotCalled(t, "Estimate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing city rejected", func(t *testing.T) {
		h, _ := setupHandlerTest()
		req := validRequest()
		req.City = ""

		rr := postPlan(t, h, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed dates rejected", func(t *testing.T) {
		h, _ := setupHandlerTest()
		req := validRequest()
		req.StartDate = "June 1st"

		rr := postPlan(t, h, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("end before start rejected", func(t *testing.T) {
		h, _ := setupHandlerTest()
		req := validRequest()
		req.StartDate, req.EndDate = req.EndDate, req.StartDate

		rr := postPlan(t, h, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown body field rejected", func(t *testing.T) {
		h, _ := setupHandlerTest()

		rr := postPlan(t, h, map[string]any{"city": "Paris", "bogus": true})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "unknown key")
	})
}

func TestHandler_ListHistory(t *testing.T) {
	t.Run("returns records", func(t *testing.T) {
		h, m := setupHandlerTest()
		m.history.On("ListPlanSummaries", mock.Anything, "Paris", 20).
			Return([]types.PlanHistoryRecord{{City: "Paris"}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/plan/history?city=Paris", nil)
		rr := httptest.NewRecorder()
		h.ListHistory(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got []types.PlanHistoryRecord
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "Paris", got[0].City)
	})

	t.Run("missing city parameter", func(t *testing.T) {
		h, _ := setupHandlerTest()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/plan/history", nil)
		rr := httptest.NewRecorder()
		h.ListHistory(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("repository error", func(t *testing.T) {
		h, m := setupHandlerTest()
		m.history.On("ListPlanSummaries", mock.Anything, "Paris", 20).
			Return(nil, errors.New("db down")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/plan/history?city=Paris", nil)
		rr := httptest.NewRecorder()
		h.ListHistory(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
