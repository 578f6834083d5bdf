package sources

import (
	"context"
	"net/http"
	"time"

	"github.com/FACorreiaa/go-travel-intelligence/internal/types"
)

// Quality thresholds applied by place adapters before anything reaches the
// merge step.
const (
	minPlaceRating  = 3.0
	minReviewCount  = 5
	maxPlaceResults = 30
)

// PlaceSource is a live attractions provider. FetchAttractions never returns an
// error: a false second value covers rate-limit denial, transport failure,
// non-2xx responses and unparseable payloads alike, and always means "let the
// fallback handle it".
type PlaceSource interface {
	Name() string
	FetchAttractions(ctx context.Context, city string, lat, lon float64) ([]types.AttractionRecord, bool)
}

// EventSource is a live events provider with the same no-error contract. A true
// second value with an empty slice means the call worked but found nothing.
type EventSource interface {
	Name() string
	FetchEvents(ctx context.Context, city string, lat, lon float64, startDate, endDate string) ([]types.EventRecord, bool)
}

// WeatherSource resolves a city to coordinates and a daily forecast. Failures
// are reported inside the result's Err field, never as a Go error, because the
// planner's fail-fast contract keys off that field.
type WeatherSource interface {
	GetByCityAndDate(ctx context.Context, city, startDate, endDate string) *types.WeatherResult
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}
