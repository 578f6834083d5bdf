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
)

// Sample kinds for the pricing estimator.
const (
	SampleLodging    = "lodging"
	SampleRestaurant = "restaurant"
)

// PriceSample is one nearby listing with its discrete provider price level
// (1 = cheap .. 4 = expensive).
type PriceSample struct {
	PriceLevel  int
	ReviewCount int
}

// PriceSampleSource feeds the pricing signal estimator. Same no-error contract
// as the other adapters.
type PriceSampleSource interface {
	FetchPriceSamples(ctx context.Context, lat, lon float64, kind string) ([]PriceSample, bool)
}

var _ PriceSampleSource = (*FoursquareSource)(nil)

type foursquarePriceResponse struct {
	Results []struct {
		Price int `json:"price"`
		Stats struct {
			TotalRatings int `json:"total_ratings"`
		} `json:"stats"`
	} `json:"results"`
}

// FetchPriceSamples pulls nearby lodging or restaurant listings carrying a
// price level. It shares the Foursquare call budget with attraction fetches.
func (s *FoursquareSource) FetchPriceSamples(ctx context.Context, lat, lon float64, kind string) ([]PriceSample, bool) {
	ctx, span := otel.Tracer("FoursquareSource").Start(ctx, "FetchPriceSamples")
	defer span.End()
	span.SetAttributes(attribute.String("sample.kind", kind))

	if !s.limiter.Allow(s.Name()) {
		span.AddEvent("Rate limited, skipping call")
		return nil, false
	}

	categories := "13065" // dining
	if kind == SampleLodging {
		categories = "19014" // hotels
	}

	q := url.Values{}
	q.Set("ll", fmt.Sprintf("%f,%f", lat, lon))
	q.Set("radius", "5000")
	q.Set("categories", categories)
	q.Set("fields", "price,stats")
	q.Set("limit", "50")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		span.RecordError(err)
		return nil, false
	}
	req.Header.Set("Authorization", s.cfg.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.WarnContext(ctx, "Foursquare price sample request failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Request failed")
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.WarnContext(ctx, "Foursquare returned non-OK status for price samples", slog.Int("status", resp.StatusCode))
		span.SetStatus(codes.Error, "Non-OK status")
		return nil, false
	}

	var payload foursquarePriceResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		span.RecordError(err)
		return nil, false
	}

	samples := make([]PriceSample, 0, len(payload.Results))
	for _, r := range payload.Results {
		if r.Price < 1 || r.Price > 4 {
			continue
		}
		samples = append(samples, PriceSample{PriceLevel: r.Price, ReviewCount: r.Stats.TotalRatings})
	}

	span.SetAttributes(attribute.Int("samples.count", len(samples)))
	span.SetStatus(codes.Ok, "Price samples fetched")
	return samples, true
}
