package budget

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-travel-intelligence/internal/types"
)

const dateLayout = "2006-01-02"

// tierProfile holds the fixed USD baselines for one cost tier. Hotel figures
// are per room per night; meals are per person per day (breakfast + lunch +
// dinner); the rest are flat per-day figures for the whole party.
type tierProfile struct {
	tier           string
	hotelMin       float64
	hotelMax       float64
	mealsPerPerson float64
	transport      float64
	sightseeing    float64
	snacksAndWater float64
}

// Base multipliers are strictly ordered cheap < moderate < luxury; tests pin
// the hotel-range ordering that follows from it.
var tierProfiles = []tierProfile{
	{tier: types.TierCheap, hotelMin: 20, hotelMax: 45, mealsPerPerson: 25, transport: 8, sightseeing: 10, snacksAndWater: 5},
	{tier: types.TierModerate, hotelMin: 60, hotelMax: 120, mealsPerPerson: 60, transport: 20, sightseeing: 25, snacksAndWater: 10},
	{tier: types.TierLuxury, hotelMin: 180, hotelMax: 400, mealsPerPerson: 150, transport: 60, sightseeing: 60, snacksAndWater: 20},
}

// Rough relative-expense multipliers for destinations whose costs sit well
// away from the global baseline.
var expensiveCities = []string{
	"zurich", "geneva", "london", "new york", "paris", "tokyo",
	"singapore", "dubai", "sydney", "san francisco", "oslo", "copenhagen",
}

var cheapCities = []string{
	"hanoi", "delhi", "mumbai", "bangkok", "cairo", "jakarta", "bucharest",
}

const (
	expensiveCityFactor = 1.6
	cheapCityFactor     = 0.8
)

// Options for one estimate. Currency is informational; all baselines are USD.
type Options struct {
	Travelers int
	Currency  string
}

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	Estimate(ctx context.Context, plan *types.TravelPlan, signals *types.PricingSignals, opts Options) *types.BudgetEstimate
}

type ServiceImpl struct {
	logger *slog.Logger
}

func NewServiceImpl(logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger}
}

// Estimate produces the three cost tiers plus a day-by-day breakdown. The
// per-day figures deliberately do not vary across the trip: this is a planning
// estimate, not a dynamic-pricing engine.
func (s *ServiceImpl) Estimate(ctx context.Context, plan *types.TravelPlan, signals *types.PricingSignals, opts Options) *types.BudgetEstimate {
	_, span := otel.Tracer("BudgetService").Start(ctx, "Estimate")
	defer span.End()

	travelers := opts.Travelers
	if travelers <= 0 {
		travelers = 1
	}
	currency := opts.Currency
	if currency == "" {
		currency = "USD"
	}
	days := plan.TripDuration.Days
	if days <= 0 {
		days = 1
	}

	cityFactor := CityCostFactor(plan.Destination)
	roomsNeeded := int(math.Ceil(float64(travelers) / 2))

	span.SetAttributes(
		attribute.String("destination", plan.Destination),
		attribute.Int("travelers", travelers),
		attribute.Int("trip.days", days),
		attribute.Float64("city.cost_factor", cityFactor),
	)

	estimate := &types.BudgetEstimate{Currency: currency, Travelers: travelers}
	for _, profile := range tierProfiles {
		tier := buildTier(profile, plan, signals, cityFactor, roomsNeeded, travelers, days)
		switch profile.tier {
		case types.TierCheap:
			estimate.Cheap = tier
		case types.TierModerate:
			estimate.Moderate = tier
		case types.TierLuxury:
			estimate.Luxury = tier
		}
	}

	span.SetStatus(codes.Ok, "Budget estimated")
	return estimate
}

func buildTier(profile tierProfile, plan *types.TravelPlan, signals *types.PricingSignals, cityFactor float64, roomsNeeded, travelers, days int) types.BudgetTier {
	hotelFactor := cityFactor
	if signals != nil && signals.HotelRanges != nil {
		hotelFactor *= signals.HotelRanges.Factor
	}

	hotelMin := profile.hotelMin * hotelFactor * float64(roomsNeeded)
	hotelMax := profile.hotelMax * hotelFactor * float64(roomsNeeded)

	meals := mealCostPerDay(profile, signals, travelers) * cityFactor
	transport := profile.transport * cityFactor
	sightseeing := profile.sightseeing * cityFactor
	snacks := profile.snacksAndWater * cityFactor

	dailyMin := transport + sightseeing + snacks + meals + hotelMin
	dailyMax := transport + sightseeing + snacks + meals + hotelMax

	tier := types.BudgetTier{
		Tier:               profile.tier,
		PerNightHotelRange: types.MoneyRange{Min: round2(hotelMin), Max: round2(hotelMax)},
		PerDay: types.PerDayCosts{
			Transport:      round2(transport),
			Meals:          round2(meals),
			Sightseeing:    round2(sightseeing),
			SnacksAndWater: round2(snacks),
			HotelMin:       round2(hotelMin),
			HotelMax:       round2(hotelMax),
			TotalMin:       round2(dailyMin),
			TotalMax:       round2(dailyMax),
		},
		TripTotal: types.MoneyRange{
			Min: round2(dailyMin * float64(days)),
			Max: round2(dailyMax * float64(days)),
		},
	}

	hotelMid := (hotelMin + hotelMax) / 2
	tier.DailyBreakdown = make([]types.DayCost, 0, days)
	start, err := time.Parse(dateLayout, plan.TripDuration.StartDate)
	for i := 0; i < days; i++ {
		date := ""
		if err == nil {
			date = start.AddDate(0, 0, i).Format(dateLayout)
		}
		tier.DailyBreakdown = append(tier.DailyBreakdown, types.DayCost{
			Date:           date,
			Hotel:          round2(hotelMid),
			Food:           round2(meals),
			Transport:      round2(transport),
			Sightseeing:    round2(sightseeing),
			SnacksAndWater: round2(snacks),
			Total:          round2(hotelMid + meals + transport + sightseeing + snacks),
		})
	}
	return tier
}

// mealCostPerDay uses sampled meal signals when available and the fixed tier
// baseline otherwise.
func mealCostPerDay(profile tierProfile, signals *types.PricingSignals, travelers int) float64 {
	perPerson := profile.mealsPerPerson
	if signals != nil && signals.MealCosts != nil {
		switch profile.tier {
		case types.TierCheap:
			perPerson = signals.MealCosts.Budget * 3
		case types.TierModerate:
			perPerson = signals.MealCosts.MidRange * 3
		case types.TierLuxury:
			perPerson = signals.MealCosts.HighEnd * 3
		}
	}
	return perPerson * float64(travelers)
}

// CityCostFactor returns the relative-expense multiplier for a destination.
func CityCostFactor(city string) float64 {
	lower := strings.ToLower(strings.TrimSpace(city))
	for _, c := range expensiveCities {
		if lower == c {
			return expensiveCityFactor
		}
	}
	for _, c := range cheapCities {
		if lower == c {
			return cheapCityFactor
		}
	}
	return 1.0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
