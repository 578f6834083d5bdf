package planner

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/FACorreiaa/go-travel-intelligence/app/observability/metrics"
	"github.com/FACorreiaa/go-travel-intelligence/internal/api"
	"github.com/FACorreiaa/go-travel-intelligence/internal/budget"
	"github.com/FACorreiaa/go-travel-intelligence/internal/history"
	"github.com/FACorreiaa/go-travel-intelligence/internal/pricing"
	"github.com/FACorreiaa/go-travel-intelligence/internal/sources"
	"github.com/FACorreiaa/go-travel-intelligence/internal/types"
)

var (
	errEmptyCity      = errors.New("city is required")
	errBadStartDate   = errors.New("start_date must be formatted as YYYY-MM-DD")
	errBadEndDate     = errors.New("end_date must be formatted as YYYY-MM-DD")
	errEndBeforeStart = errors.New("end_date must not be before start_date")
)

// PlanRequest is the POST /plan body.
type PlanRequest struct {
	City      string `json:"city"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Travelers int    `json:"travelers"`
	Currency  string `json:"currency"`
}

// PlanResponse bundles the itinerary with its budget estimate.
type PlanResponse struct {
	Plan   *types.TravelPlan     `json:"plan"`
	Budget *types.BudgetEstimate `json:"budget"`
}

type Handler struct {
	logger  *slog.Logger
	planner Service
	weather sources.WeatherSource
	pricing pricing.Service
	budget  budget.Service
	history history.Repository
}

func NewHandler(planner Service, weather sources.WeatherSource, pricingSvc pricing.Service, budgetSvc budget.Service, historyRepo history.Repository, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		planner: planner,
		weather: weather,
		pricing: pricingSvc,
		budget:  budgetSvc,
		history: historyRepo,
	}
}

// CreatePlan handles POST /plan - generates a full travel plan with budget.
func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PlannerHandler").Start(r.Context(), "CreatePlan")
	defer span.End()

	l := h.logger.With(slog.String("method", "CreatePlan"))
	start := time.Now()

	var req PlanRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := validatePlanRequest(&req); err != nil {
		l.WarnContext(ctx, "Request validation failed", slog.Any("error", err))
		span.SetStatus(codes.Error, "Validation failed")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	span.SetAttributes(
		attribute.String("city.name", req.City),
		attribute.String("trip.start", req.StartDate),
		attribute.String("trip.end", req.EndDate),
	)

	l.InfoContext(ctx, "Generating travel plan",
		slog.String("city", req.City),
		slog.String("start", req.StartDate),
		slog.String("end", req.EndDate),
		slog.Int("travelers", req.Travelers))

	weather := h.weather.GetByCityAndDate(ctx, req.City, req.StartDate, req.EndDate)

	plan, err := h.planner.PlanTrip(ctx, req.City, weather)
	if err != nil {
		l.ErrorContext(ctx, "Plan generation failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Plan generation failed")
		api.ErrorResponse(w, r, http.StatusBadGateway, err.Error())
		return
	}

	signals := h.pricing.Signals(ctx, weather.Coordinates.Lat, weather.Coordinates.Lon)
	estimate := h.budget.Estimate(ctx, plan, signals, budget.Options{
		Travelers: req.Travelers,
		Currency:  req.Currency,
	})

	// History persistence is best effort: a dead database must not block the
	// response.
	if h.history != nil {
		record := types.PlanHistoryRecord{
			City:              plan.Destination,
			StartDate:         plan.TripDuration.StartDate,
			EndDate:           plan.TripDuration.EndDate,
			Travelers:         estimate.Travelers,
			TotalAttractions:  plan.TripSummary.TotalAttractions,
			TotalEvents:       plan.TripSummary.TotalEvents,
			ModerateTripTotal: estimate.Moderate.TripTotal.Max,
			Currency:          estimate.Currency,
		}
		if _, err := h.history.SavePlanSummary(ctx, record); err != nil {
			l.WarnContext(ctx, "Failed to persist plan summary", slog.Any("error", err))
			span.AddEvent("History save failed")
		}
	}

	metrics.Get().PlansGeneratedTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("city", plan.Destination)))
	metrics.Get().PlanDurationSeconds.Record(ctx, time.Since(start).Seconds())

	span.SetStatus(codes.Ok, "Plan generated")
	api.WriteJSONResponse(w, r, http.StatusOK, PlanResponse{Plan: plan, Budget: estimate})
}

// ListHistory handles GET /plan/history?city=X - returns recent plan summaries.
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PlannerHandler").Start(r.Context(), "ListHistory")
	defer span.End()

	l := h.logger.With(slog.String("method", "ListHistory"))

	city := r.URL.Query().Get("city")
	if city == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "query parameter city is required")
		return
	}
	if h.history == nil {
		api.ErrorResponse(w, r, http.StatusServiceUnavailable, "plan history is not available")
		return
	}

	records, err := h.history.ListPlanSummaries(ctx, city, 20)
	if err != nil {
		l.ErrorContext(ctx, "Failed to list plan history", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "History query failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to list plan history")
		return
	}

	span.SetStatus(codes.Ok, "History returned")
	api.WriteJSONResponse(w, r, http.StatusOK, records)
}

func validatePlanRequest(req *PlanRequest) error {
	if req.City == "" {
		return errEmptyCity
	}
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return errBadStartDate
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return errBadEndDate
	}
	if end.Before(start) {
		return errEndBeforeStart
	}
	if req.Travelers <= 0 {
		req.Travelers = 1
	}
	if req.Currency == "" {
		req.Currency = "USD"
	}
	return nil
}
