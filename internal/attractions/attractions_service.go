package attractions

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/go-travel-intelligence/app/observability/metrics"
	"github.com/FACorreiaa/go-travel-intelligence/internal/knowledge"
	"github.com/FACorreiaa/go-travel-intelligence/internal/merge"
	"github.com/FACorreiaa/go-travel-intelligence/internal/resultcache"
	"github.com/FACorreiaa/go-travel-intelligence/internal/sources"
	"github.com/FACorreiaa/go-travel-intelligence/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service is the attraction pipeline: cache, concurrent live fan-out, merge
// with the static knowledge base.
type Service interface {
	GetForCity(ctx context.Context, city string, lat, lon float64) []types.AttractionRecord
}

type ServiceImpl struct {
	logger  *slog.Logger
	cache   *resultcache.Cache
	sources []sources.PlaceSource
}

func NewServiceImpl(placeSources []sources.PlaceSource, cache *resultcache.Cache, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:  logger,
		cache:   cache,
		sources: placeSources,
	}
}

// GetForCity never fails: adapter misfires and rate-limit denials degrade to
// static data, and an unknown city with no live data still gets the generic
// emergency list so a plan is never blank.
func (s *ServiceImpl) GetForCity(ctx context.Context, city string, lat, lon float64) []types.AttractionRecord {
	ctx, span := otel.Tracer("AttractionService").Start(ctx, "GetForCity")
	defer span.End()
	span.SetAttributes(attribute.String("city.name", city))

	if cached, found := s.cache.GetAttractions(city); found {
		s.logger.InfoContext(ctx, "Cache hit for attractions", slog.String("city", city))
		metrics.Get().CacheHitsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("namespace", "attractions")))
		span.AddEvent("Cache hit")
		span.SetStatus(codes.Ok, "Attractions served from cache")
		return cached
	}

	// Both providers run concurrently; either one failing contributes an empty
	// slice without blocking the other. Order of apiRecords follows the fixed
	// source order, not completion order, so merge priority stays stable.
	results := make([][]types.AttractionRecord, len(s.sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range s.sources {
		g.Go(func() error {
			metrics.Get().SourceCallsTotal.Add(gctx, 1, metric.WithAttributes(attribute.String("source", src.Name())))
			records, ok := src.FetchAttractions(gctx, city, lat, lon)
			if !ok {
				s.logger.WarnContext(gctx, "Place source unavailable, continuing without it",
					slog.String("source", src.Name()))
				metrics.Get().SourceFailuresTotal.Add(gctx, 1, metric.WithAttributes(attribute.String("source", src.Name())))
				return nil
			}
			results[i] = records
			return nil
		})
	}
	_ = g.Wait() // goroutines never return an error by contract

	var apiRecords []types.AttractionRecord
	for _, recs := range results {
		apiRecords = append(apiRecords, recs...)
	}

	merged := merge.Attractions(apiRecords, knowledge.AttractionsFor(city))
	if len(merged) == 0 {
		s.logger.WarnContext(ctx, "No live or static attractions, using emergency fallback",
			slog.String("city", city))
		metrics.Get().FallbackServesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("pipeline", "attractions")))
		span.AddEvent("Emergency fallback")
		merged = knowledge.GenericAttractions()
	}

	s.cache.SetAttractions(city, merged)
	span.SetAttributes(attribute.Int("attractions.count", len(merged)))
	span.SetStatus(codes.Ok, "Attractions merged and cached")
	return merged
}
