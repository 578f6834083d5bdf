package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-travel-intelligence/config"
	"github.com/FACorreiaa/go-travel-intelligence/internal/ratelimit"
	"github.com/FACorreiaa/go-travel-intelligence/internal/types"
)

var _ PlaceSource = (*FoursquareSource)(nil)

// FoursquareSource queries the Foursquare Places search API. Foursquare rates
// venues 0-10; records below the threshold or with too few ratings are dropped
// before they reach the merge step.
type FoursquareSource struct {
	logger  *slog.Logger
	limiter ratelimit.Limiter
	client  *http.Client
	cfg     config.SourceConfig
}

func NewFoursquareSource(cfg config.SourceConfig, limiter ratelimit.Limiter, logger *slog.Logger) *FoursquareSource {
	return &FoursquareSource{
		logger:  logger,
		limiter: limiter,
		client:  newHTTPClient(),
		cfg:     cfg,
	}
}

func (s *FoursquareSource) Name() string { return "foursquare" }

type foursquareResponse struct {
	Results []struct {
		Name       string `json:"name"`
		Categories []struct {
			Name string `json:"name"`
		} `json:"categories"`
		Rating      float64 `json:"rating"`
		Description string  `json:"description"`
		Stats       struct {
			TotalRatings int `json:"total_ratings"`
		} `json:"stats"`
	} `json:"results"`
}

func (s *FoursquareSource) FetchAttractions(ctx context.Context, city string, lat, lon float64) ([]types.AttractionRecord, bool) {
	ctx, span := otel.Tracer("FoursquareSource").Start(ctx, "FetchAttractions")
	defer span.End()
	span.SetAttributes(attribute.String("city.name", city))

	if !s.limiter.Allow(s.Name()) {
		span.AddEvent("Rate limited, skipping call")
		return nil, false
	}

	q := url.Values{}
	q.Set("ll", fmt.Sprintf("%f,%f", lat, lon))
	q.Set("radius", "5000")
	q.Set("categories", "16000,10000,15000") // landmarks, arts, travel
	q.Set("fields", "name,categories,rating,stats,description")
	q.Set("limit", fmt.Sprintf("%d", maxPlaceResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		span.RecordError(err)
		return nil, false
	}
	req.Header.Set("Authorization", s.cfg.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.WarnContext(ctx, "Foursquare request failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Request failed")
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.WarnContext(ctx, "Foursquare returned non-OK status", slog.Int("status", resp.StatusCode))
		span.SetStatus(codes.Error, "Non-OK status")
		return nil, false
	}

	var payload foursquareResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		s.logger.WarnContext(ctx, "Failed to decode Foursquare response", slog.Any("error", err))
		span.RecordError(err)
		return nil, false
	}

	records := make([]types.AttractionRecord, 0, len(payload.Results))
	for _, r := range payload.Results {
		rating := r.Rating / 2 // 0-10 scale to 0-5
		if r.Name == "" || rating < minPlaceRating || r.Stats.TotalRatings < minReviewCount {
			continue
		}
		description := r.Description
		if description == "" {
			description = fmt.Sprintf("Well-reviewed place in %s.", city)
		}
		category := types.CategoryAttraction
		if len(r.Categories) > 0 {
			category = foursquareCategory(r.Categories[0].Name)
		}
		records = append(records, types.AttractionRecord{
			Name:        r.Name,
			Category:    category,
			Rating:      rating,
			ReviewCount: r.Stats.TotalRatings,
			Description: description,
			Source:      s.Name(),
		})
	}

	span.SetAttributes(attribute.Int("results.count", len(records)))
	span.SetStatus(codes.Ok, "Attractions fetched")
	return records, true
}

func foursquareCategory(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "beach"):
		return types.CategoryBeaches
	case strings.Contains(lower, "museum") || strings.Contains(lower, "gallery") || strings.Contains(lower, "theater"):
		return types.CategoryIndoor
	case strings.Contains(lower, "monument") || strings.Contains(lower, "historic") || strings.Contains(lower, "castle") || strings.Contains(lower, "temple"):
		return types.CategoryHeritage
	case strings.Contains(lower, "park") || strings.Contains(lower, "garden") || strings.Contains(lower, "trail"):
		return types.CategoryOutdoor
	case strings.Contains(lower, "bar") || strings.Contains(lower, "club") || strings.Contains(lower, "lounge"):
		return types.CategoryNightlife
	case strings.Contains(lower, "adventure") || strings.Contains(lower, "climbing") || strings.Contains(lower, "diving"):
		return types.CategoryAdventure
	default:
		return types.CategoryAttraction
	}
}
