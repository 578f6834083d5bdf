package pricing

import (
	"context"
	"log/slog"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-travel-intelligence/internal/sources"
	"github.com/FACorreiaa/go-travel-intelligence/internal/types"
)

// Provider price levels run 1..4; 2.5 is the neutral midpoint a destination is
// compared against.
const (
	neutralPriceLevel = 2.5
	levelWeight       = 0.3
	minSampleReviews  = 5
)

// Fixed per-person USD meal baselines scaled by the sampled deviation.
const (
	budgetMealBase   = 10.0
	midRangeMealBase = 25.0
	highEndMealBase  = 60.0
)

var _ Service = (*ServiceImpl)(nil)

// Service infers local hotel and meal cost signals from nearby listings.
type Service interface {
	Signals(ctx context.Context, lat, lon float64) *types.PricingSignals
}

type ServiceImpl struct {
	logger  *slog.Logger
	samples sources.PriceSampleSource
}

func NewServiceImpl(samples sources.PriceSampleSource, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger, samples: samples}
}

// Signals returns nil sub-fields when a sample class is unavailable; the budget
// engine treats that as "use the hard-coded defaults".
func (s *ServiceImpl) Signals(ctx context.Context, lat, lon float64) *types.PricingSignals {
	ctx, span := otel.Tracer("PricingService").Start(ctx, "Signals")
	defer span.End()

	out := &types.PricingSignals{}

	if lodging, ok := s.samples.FetchPriceSamples(ctx, lat, lon, sources.SampleLodging); ok {
		levels := usableLevels(lodging)
		if len(levels) > 0 {
			mean := meanOf(levels)
			out.HotelRanges = &types.HotelSignal{
				PriceLevelMean: mean,
				Factor:         scaleFactor(mean),
				SampleSize:     len(levels),
			}
		}
	}

	if dining, ok := s.samples.FetchPriceSamples(ctx, lat, lon, sources.SampleRestaurant); ok {
		levels := usableLevels(dining)
		if len(levels) > 0 {
			sort.Float64s(levels)
			out.MealCosts = &types.MealSignal{
				Budget:     budgetMealBase * scaleFactor(percentile(levels, 25)),
				MidRange:   midRangeMealBase * scaleFactor(percentile(levels, 50)),
				HighEnd:    highEndMealBase * scaleFactor(percentile(levels, 75)),
				SampleSize: len(levels),
			}
		}
	}

	if out.HotelRanges == nil && out.MealCosts == nil {
		s.logger.DebugContext(ctx, "No usable pricing samples near destination")
		span.AddEvent("No pricing samples")
	}
	span.SetAttributes(
		attribute.Bool("signals.hotel", out.HotelRanges != nil),
		attribute.Bool("signals.meals", out.MealCosts != nil),
	)
	span.SetStatus(codes.Ok, "Pricing signals computed")
	return out
}

// usableLevels keeps samples with enough reviews for statistical confidence.
func usableLevels(samples []sources.PriceSample) []float64 {
	levels := make([]float64, 0, len(samples))
	for _, sm := range samples {
		if sm.ReviewCount < minSampleReviews {
			continue
		}
		levels = append(levels, float64(sm.PriceLevel))
	}
	return levels
}

func meanOf(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// percentile expects values sorted ascending; p in [0,100].
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return neutralPriceLevel
	}
	idx := int(p / 100 * float64(len(sorted)-1))
	return sorted[idx]
}

// scaleFactor turns a price level's deviation from the neutral midpoint into a
// multiplier around 1.0.
func scaleFactor(level float64) float64 {
	return 1 + (level-neutralPriceLevel)*levelWeight
}
