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

var _ PlaceSource = (*GeoapifySource)(nil)

// GeoapifySource queries the Geoapify Places API. Geoapify has no user ratings,
// so the OSM-derived rank confidence stands in for one; low-confidence features
// are dropped the same way low-rated places are elsewhere.
type GeoapifySource struct {
	logger  *slog.Logger
	limiter ratelimit.Limiter
	client  *http.Client
	cfg     config.SourceConfig
}

func NewGeoapifySource(cfg config.SourceConfig, limiter ratelimit.Limiter, logger *slog.Logger) *GeoapifySource {
	return &GeoapifySource{
		logger:  logger,
		limiter: limiter,
		client:  newHTTPClient(),
		cfg:     cfg,
	}
}

func (s *GeoapifySource) Name() string { return "geoapify" }

type geoapifyResponse struct {
	Features []struct {
		Properties struct {
			Name       string   `json:"name"`
			Categories []string `json:"categories"`
			Rank       struct {
				Confidence float64 `json:"confidence"`
			} `json:"rank"`
		} `json:"properties"`
	} `json:"features"`
}

func (s *GeoapifySource) FetchAttractions(ctx context.Context, city string, lat, lon float64) ([]types.AttractionRecord, bool) {
	ctx, span := otel.Tracer("GeoapifySource").Start(ctx, "FetchAttractions")
	defer span.End()
	span.SetAttributes(attribute.String("city.name", city))

	if !s.limiter.Allow(s.Name()) {
		span.AddEvent("Rate limited, skipping call")
		return nil, false
	}

	q := url.Values{}
	q.Set("categories", "tourism.sights,tourism.attraction,entertainment,leisure.park,beach,heritage")
	q.Set("filter", fmt.Sprintf("circle:%f,%f,5000", lon, lat))
	q.Set("limit", fmt.Sprintf("%d", maxPlaceResults))
	q.Set("apiKey", s.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		span.RecordError(err)
		return nil, false
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.WarnContext(ctx, "Geoapify request failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Request failed")
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.WarnContext(ctx, "Geoapify returned non-OK status", slog.Int("status", resp.StatusCode))
		span.SetStatus(codes.Error, "Non-OK status")
		return nil, false
	}

	var payload geoapifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		s.logger.WarnContext(ctx, "Failed to decode Geoapify response", slog.Any("error", err))
		span.RecordError(err)
		return nil, false
	}

	records := make([]types.AttractionRecord, 0, len(payload.Features))
	for _, f := range payload.Features {
		p := f.Properties
		rating := p.Rank.Confidence * 5
		if p.Name == "" || rating < minPlaceRating {
			continue
		}
		records = append(records, types.AttractionRecord{
			Name:        p.Name,
			Category:    geoapifyCategory(p.Categories),
			Rating:      rating,
			Description: fmt.Sprintf("Popular spot in %s.", city),
			Source:      s.Name(),
		})
	}

	span.SetAttributes(attribute.Int("results.count", len(records)))
	span.SetStatus(codes.Ok, "Attractions fetched")
	return records, true
}

func geoapifyCategory(categories []string) string {
	joined := strings.Join(categories, ",")
	switch {
	case strings.Contains(joined, "beach"):
		return types.CategoryBeaches
	case strings.Contains(joined, "heritage") || strings.Contains(joined, "tourism.sights"):
		return types.CategoryHeritage
	case strings.Contains(joined, "leisure.park") || strings.Contains(joined, "national_park"):
		return types.CategoryOutdoor
	case strings.Contains(joined, "entertainment.museum") || strings.Contains(joined, "entertainment.culture"):
		return types.CategoryIndoor
	case strings.Contains(joined, "adult.nightclub") || strings.Contains(joined, "entertainment.nightlife"):
		return types.CategoryNightlife
	case strings.Contains(joined, "sport") || strings.Contains(joined, "activity"):
		return types.CategoryAdventure
	default:
		return types.CategoryAttraction
	}
}
