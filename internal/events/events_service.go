package events

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/FACorreiaa/go-travel-intelligence/app/observability/metrics"
	"github.com/FACorreiaa/go-travel-intelligence/internal/knowledge"
	"github.com/FACorreiaa/go-travel-intelligence/internal/resultcache"
	"github.com/FACorreiaa/go-travel-intelligence/internal/sources"
	"github.com/FACorreiaa/go-travel-intelligence/internal/types"
)

const maxCuratedEvents = 8

const dateLayout = "2006-01-02"

var _ Service = (*ServiceImpl)(nil)

// Service is the event pipeline. Live data, when present, fully replaces the
// curated catalog for that request; there is no blending.
type Service interface {
	GetForTrip(ctx context.Context, city string, lat, lon float64, startDate, endDate string) []types.EventRecord
}

// strategy is one rung of the fallback ladder. handled=false means "pass to the
// next strategy", mirroring how quota exhaustion and fetch failures degrade.
type strategy struct {
	name  string
	fetch func(ctx context.Context, city string, lat, lon float64, startDate, endDate string) ([]types.EventRecord, bool)
}

type ServiceImpl struct {
	logger     *slog.Logger
	cache      *resultcache.Cache
	strategies []strategy
}

func NewServiceImpl(live sources.EventSource, cache *resultcache.Cache, logger *slog.Logger) *ServiceImpl {
	s := &ServiceImpl{
		logger: logger,
		cache:  cache,
	}
	s.strategies = []strategy{
		{name: "live", fetch: func(ctx context.Context, city string, lat, lon float64, startDate, endDate string) ([]types.EventRecord, bool) {
			if !sources.SupportsRegion(lat, lon) {
				logger.DebugContext(ctx, "Region not covered by live events provider, skipping",
					slog.String("city", city))
				return nil, false
			}
			records, ok := live.FetchEvents(ctx, city, lat, lon, startDate, endDate)
			if !ok || len(records) == 0 {
				return nil, false
			}
			return records, true
		}},
		{name: "curated", fetch: func(ctx context.Context, city string, lat, lon float64, startDate, endDate string) ([]types.EventRecord, bool) {
			return buildCuratedEvents(city, startDate, endDate), true
		}},
	}
	return s
}

// StrategyNames exposes the fallback order for tests and diagnostics.
func (s *ServiceImpl) StrategyNames() []string {
	names := make([]string, len(s.strategies))
	for i, st := range s.strategies {
		names[i] = st.name
	}
	return names
}

func (s *ServiceImpl) GetForTrip(ctx context.Context, city string, lat, lon float64, startDate, endDate string) []types.EventRecord {
	ctx, span := otel.Tracer("EventService").Start(ctx, "GetForTrip")
	defer span.End()
	span.SetAttributes(
		attribute.String("city.name", city),
		attribute.String("trip.start", startDate),
		attribute.String("trip.end", endDate),
	)

	if cached, found := s.cache.GetEvents(city, startDate, endDate); found {
		s.logger.InfoContext(ctx, "Cache hit for events", slog.String("city", city))
		metrics.Get().CacheHitsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("namespace", "events")))
		span.AddEvent("Cache hit")
		span.SetStatus(codes.Ok, "Events served from cache")
		return cached
	}

	for _, st := range s.strategies {
		records, handled := st.fetch(ctx, city, lat, lon, startDate, endDate)
		if !handled {
			continue
		}
		s.logger.InfoContext(ctx, "Events resolved",
			slog.String("city", city),
			slog.String("strategy", st.name),
			slog.Int("count", len(records)))
		if st.name == "curated" {
			metrics.Get().FallbackServesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("pipeline", "events")))
		}
		s.cache.SetEvents(city, startDate, endDate, records)
		span.SetAttributes(
			attribute.String("events.strategy", st.name),
			attribute.Int("events.count", len(records)),
		)
		span.SetStatus(codes.Ok, "Events resolved")
		return records
	}

	// The curated strategy always handles, so this is unreachable in practice.
	span.SetStatus(codes.Error, "No event strategy handled the request")
	return nil
}

// buildCuratedEvents fills the curated and seasonal templates with concrete
// dates, distributing them round-robin across the trip span by index.
func buildCuratedEvents(city, startDate, endDate string) []types.EventRecord {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil || end.Before(start) {
		return nil
	}
	days := int(end.Sub(start).Hours()/24) + 1

	templates := knowledge.EventsFor(city)
	templates = append(templates, knowledge.SeasonalEventsFor(start.Month())...)

	if len(templates) > maxCuratedEvents {
		templates = templates[:maxCuratedEvents]
	}
	for i := range templates {
		templates[i].Date = start.AddDate(0, 0, i%days).Format(dateLayout)
	}
	return templates
}
