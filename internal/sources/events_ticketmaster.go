package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-travel-intelligence/config"
	"github.com/FACorreiaa/go-travel-intelligence/internal/ratelimit"
	"github.com/FACorreiaa/go-travel-intelligence/internal/types"
)

var _ EventSource = (*TicketmasterSource)(nil)

// TicketmasterSource queries the Discovery API. Callers are expected to gate it
// behind SupportsRegion; the adapter itself only enforces the rate budget.
type TicketmasterSource struct {
	logger  *slog.Logger
	limiter ratelimit.Limiter
	client  *http.Client
	cfg     config.SourceConfig
}

func NewTicketmasterSource(cfg config.SourceConfig, limiter ratelimit.Limiter, logger *slog.Logger) *TicketmasterSource {
	return &TicketmasterSource{
		logger:  logger,
		limiter: limiter,
		client:  newHTTPClient(),
		cfg:     cfg,
	}
}

func (s *TicketmasterSource) Name() string { return "ticketmaster" }

type ticketmasterResponse struct {
	Embedded struct {
		Events []struct {
			Name  string `json:"name"`
			URL   string `json:"url"`
			Dates struct {
				Start struct {
					LocalDate string `json:"localDate"`
					LocalTime string `json:"localTime"`
				} `json:"start"`
			} `json:"dates"`
			Classifications []struct {
				Segment struct {
					Name string `json:"name"`
				} `json:"segment"`
			} `json:"classifications"`
			PriceRanges []struct {
				Min      float64 `json:"min"`
				Max      float64 `json:"max"`
				Currency string  `json:"currency"`
			} `json:"priceRanges"`
			Embedded struct {
				Venues []struct {
					Name string `json:"name"`
				} `json:"venues"`
			} `json:"_embedded"`
		} `json:"events"`
	} `json:"_embedded"`
}

func (s *TicketmasterSource) FetchEvents(ctx context.Context, city string, lat, lon float64, startDate, endDate string) ([]types.EventRecord, bool) {
	ctx, span := otel.Tracer("TicketmasterSource").Start(ctx, "FetchEvents")
	defer span.End()
	span.SetAttributes(
		attribute.String("city.name", city),
		attribute.String("trip.start", startDate),
		attribute.String("trip.end", endDate),
	)

	if !s.limiter.Allow(s.Name()) {
		span.AddEvent("Rate limited, skipping call")
		return nil, false
	}

	q := url.Values{}
	q.Set("apikey", s.cfg.APIKey)
	q.Set("latlong", fmt.Sprintf("%f,%f", lat, lon))
	q.Set("radius", "30")
	q.Set("unit", "km")
	q.Set("startDateTime", startDate+"T00:00:00Z")
	q.Set("endDateTime", endDate+"T23:59:59Z")
	q.Set("size", "20")
	q.Set("sort", "date,asc")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		span.RecordError(err)
		return nil, false
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.WarnContext(ctx, "Ticketmaster request failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Request failed")
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.WarnContext(ctx, "Ticketmaster returned non-OK status", slog.Int("status", resp.StatusCode))
		span.SetStatus(codes.Error, "Non-OK status")
		return nil, false
	}

	var payload ticketmasterResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		s.logger.WarnContext(ctx, "Failed to decode Ticketmaster response", slog.Any("error", err))
		span.RecordError(err)
		return nil, false
	}

	records := make([]types.EventRecord, 0, len(payload.Embedded.Events))
	for _, e := range payload.Embedded.Events {
		date := e.Dates.Start.LocalDate
		// The API occasionally leaks events just outside the window.
		if e.Name == "" || date < startDate || date > endDate {
			continue
		}
		category := types.EventCommunity
		if len(e.Classifications) > 0 {
			category = ticketmasterCategory(e.Classifications[0].Segment.Name)
		}
		venue := ""
		if len(e.Embedded.Venues) > 0 {
			venue = e.Embedded.Venues[0].Name
		}
		priceRange := "See tickets"
		if len(e.PriceRanges) > 0 {
			pr := e.PriceRanges[0]
			priceRange = fmt.Sprintf("%.0f-%.0f %s", pr.Min, pr.Max, pr.Currency)
		}
		eventTime := e.Dates.Start.LocalTime
		if len(eventTime) >= 5 {
			eventTime = eventTime[:5]
		}
		records = append(records, types.EventRecord{
			Name:        e.Name,
			Category:    category,
			Date:        date,
			Time:        eventTime,
			Venue:       venue,
			Description: fmt.Sprintf("Live event in %s.", city),
			PriceRange:  priceRange,
			URL:         e.URL,
			Source:      s.Name(),
		})
	}

	span.SetAttributes(attribute.Int("results.count", len(records)))
	span.SetStatus(codes.Ok, "Events fetched")
	return records, true
}

func ticketmasterCategory(segment string) string {
	switch segment {
	case "Music":
		return types.EventConcerts
	case "Sports":
		return types.EventSports
	case "Arts & Theatre":
		return types.EventCultural
	case "Film":
		return types.EventCultural
	default:
		return types.EventCommunity
	}
}
