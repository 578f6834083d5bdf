package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/go-travel-intelligence/internal/attractions"
	"github.com/FACorreiaa/go-travel-intelligence/internal/events"
	"github.com/FACorreiaa/go-travel-intelligence/internal/types"
)

const dateLayout = "2006-01-02"

const (
	maxFeaturedAttractions = 5
	maxUpcomingEvents      = 5
	maxDailyAttractions    = 3
	maxBestDays            = 3
)

var _ Service = (*ServiceImpl)(nil)

// Service assembles the full travel plan from a resolved weather result.
type Service interface {
	PlanTrip(ctx context.Context, city string, weather *types.WeatherResult) (*types.TravelPlan, error)
}

type ServiceImpl struct {
	logger      *slog.Logger
	attractions attractions.Service
	events      events.Service
}

func NewServiceImpl(attractionSvc attractions.Service, eventSvc events.Service, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:      logger,
		attractions: attractionSvc,
		events:      eventSvc,
	}
}

// PlanTrip fails fast when the weather collaborator reported an error: no
// attraction, event or budget work happens in that case.
func (s *ServiceImpl) PlanTrip(ctx context.Context, city string, weather *types.WeatherResult) (*types.TravelPlan, error) {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "PlanTrip")
	defer span.End()
	span.SetAttributes(attribute.String("city.name", city))

	if weather == nil {
		span.SetStatus(codes.Error, "Missing weather input")
		return nil, errors.New("no weather data for destination")
	}
	if weather.Err != "" {
		s.logger.WarnContext(ctx, "Weather lookup failed, aborting plan",
			slog.String("city", city), slog.String("error", weather.Err))
		span.SetStatus(codes.Error, "Weather error propagated")
		return nil, errors.New(weather.Err)
	}
	if len(weather.Forecast) == 0 {
		span.SetStatus(codes.Error, "Empty forecast")
		return nil, errors.New("no forecast data for destination")
	}

	duration := types.TripDuration{
		StartDate: weather.Forecast[0].Date,
		EndDate:   weather.Forecast[len(weather.Forecast)-1].Date,
		Days:      len(weather.Forecast),
	}
	lat, lon := weather.Coordinates.Lat, weather.Coordinates.Lon

	// Attraction and event pipelines are independent; run them concurrently.
	var (
		attractionList []types.AttractionRecord
		eventList      []types.EventRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		attractionList = s.attractions.GetForCity(gctx, city, lat, lon)
		return nil
	})
	g.Go(func() error {
		eventList = s.events.GetForTrip(gctx, city, lat, lon, duration.StartDate, duration.EndDate)
		return nil
	})
	_ = g.Wait() // pipelines degrade internally and never return errors

	plan := &types.TravelPlan{
		Destination:        weather.City,
		TripDuration:       duration,
		Weather:            weather,
		Attractions:        attractionOverview(attractionList),
		Events:             eventOverview(eventList),
		DailyItinerary:     buildItinerary(weather.Forecast, attractionList, eventList),
		NearbyDestinations: weather.Neighbors,
	}
	plan.TripSummary = summarize(plan, attractionList, eventList)

	span.SetAttributes(
		attribute.Int("attractions.count", len(attractionList)),
		attribute.Int("events.count", len(eventList)),
		attribute.Int("itinerary.days", len(plan.DailyItinerary)),
	)
	span.SetStatus(codes.Ok, "Travel plan assembled")
	return plan, nil
}

func attractionOverview(records []types.AttractionRecord) types.AttractionOverview {
	categories := make(map[string]int)
	for _, r := range records {
		categories[r.Category]++
	}

	featured := make([]types.AttractionRecord, len(records))
	copy(featured, records)
	sort.SliceStable(featured, func(i, j int) bool {
		return featured[i].Rating > featured[j].Rating
	})
	if len(featured) > maxFeaturedAttractions {
		featured = featured[:maxFeaturedAttractions]
	}

	return types.AttractionOverview{
		Total:      len(records),
		Categories: categories,
		Featured:   featured,
	}
}

func eventOverview(records []types.EventRecord) types.EventOverview {
	categories := make(map[string]int)
	for _, r := range records {
		categories[r.Category]++
	}
	upcoming := records
	if len(upcoming) > maxUpcomingEvents {
		upcoming = upcoming[:maxUpcomingEvents]
	}
	return types.EventOverview{
		Total:      len(records),
		Upcoming:   upcoming,
		Categories: categories,
	}
}

// Weather buckets steering the day's attraction selection.
const (
	bucketIndoor  = "indoor"
	bucketOutdoor = "outdoor"
	bucketAny     = "any"
)

func weatherBucket(condition string) string {
	lower := strings.ToLower(condition)
	switch {
	case strings.Contains(lower, "rain"), strings.Contains(lower, "storm"),
		strings.Contains(lower, "snow"), strings.Contains(lower, "drizzle"),
		strings.Contains(lower, "thunder"):
		return bucketIndoor
	case strings.Contains(lower, "clear"), strings.Contains(lower, "sun"):
		return bucketOutdoor
	default:
		return bucketAny
	}
}

var indoorLeaning = map[string]bool{
	types.CategoryIndoor:   true,
	types.CategoryCultural: true,
	types.CategoryHeritage: true,
}

var outdoorLeaning = map[string]bool{
	types.CategoryOutdoor:   true,
	types.CategoryBeaches:   true,
	types.CategoryAdventure: true,
}

func recommendationFor(day types.ForecastDay) string {
	bucket := weatherBucket(day.Condition)
	switch {
	case bucket == bucketIndoor:
		return fmt.Sprintf("Expect %s: plan museums, galleries and covered markets.", strings.ToLower(day.Condition))
	case day.Temp > 32:
		return "Hot day ahead: carry water, seek shade around midday and plan outdoor stops for the morning."
	case day.Temp < 5:
		return "Cold day: dress in warm layers and mix in indoor breaks."
	case bucket == bucketOutdoor:
		return "Clear skies: a great day for parks, viewpoints and open-air sights."
	default:
		return "Pleasant conditions: mix outdoor highlights with a few indoor stops."
	}
}

func buildItinerary(forecast []types.ForecastDay, attractionList []types.AttractionRecord, eventList []types.EventRecord) []types.DayPlan {
	itinerary := make([]types.DayPlan, 0, len(forecast))

	for i, day := range forecast {
		selected := selectAttractions(attractionList, weatherBucket(day.Condition), i)

		var dayEvents []types.EventRecord
		for _, e := range eventList {
			if e.Date == day.Date {
				dayEvents = append(dayEvents, e)
			}
		}

		itinerary = append(itinerary, types.DayPlan{
			Date:                   day.Date,
			DayOfWeek:              dayOfWeek(day.Date),
			Weather:                day,
			Recommendation:         recommendationFor(day),
			RecommendedAttractions: selected,
			Events:                 dayEvents,
			Activities:             buildActivities(selected, dayEvents),
		})
	}
	return itinerary
}

// selectAttractions biases by weather bucket; on neutral days it rotates the
// list by day index so consecutive days do not repeat the same slice.
func selectAttractions(records []types.AttractionRecord, bucket string, dayIndex int) []types.AttractionRecord {
	if len(records) == 0 {
		return nil
	}

	var preferred, rest []types.AttractionRecord
	switch bucket {
	case bucketIndoor:
		for _, r := range records {
			if indoorLeaning[r.Category] {
				preferred = append(preferred, r)
			} else {
				rest = append(rest, r)
			}
		}
	case bucketOutdoor:
		for _, r := range records {
			if outdoorLeaning[r.Category] {
				preferred = append(preferred, r)
			} else {
				rest = append(rest, r)
			}
		}
	default:
		offset := (dayIndex * maxDailyAttractions) % len(records)
		rotated := append(append([]types.AttractionRecord{}, records[offset:]...), records[:offset]...)
		preferred = rotated
	}

	selected := append(preferred, rest...)
	if len(selected) > maxDailyAttractions {
		selected = selected[:maxDailyAttractions]
	}
	return selected
}

func buildActivities(selected []types.AttractionRecord, dayEvents []types.EventRecord) []types.Activity {
	activities := make([]types.Activity, 0, 3)

	if len(selected) > 0 {
		activities = append(activities, types.Activity{
			Time:        "09:30",
			Type:        "sightseeing",
			Activity:    selected[0].Name,
			Description: selected[0].Description,
		})
	}
	if len(selected) > 1 {
		activities = append(activities, types.Activity{
			Time:        "14:00",
			Type:        "exploration",
			Activity:    selected[1].Name,
			Description: selected[1].Description,
		})
	} else {
		activities = append(activities, types.Activity{
			Time:        "14:00",
			Type:        "exploration",
			Activity:    "Neighborhood walk",
			Description: "Explore the surrounding streets, cafes and shops at your own pace.",
		})
	}

	if len(dayEvents) > 0 {
		activities = append(activities, types.Activity{
			Time:        dayEvents[0].Time,
			Type:        "event",
			Activity:    dayEvents[0].Name,
			Description: dayEvents[0].Description,
		})
	} else {
		activities = append(activities, types.Activity{
			Time:        "19:30",
			Type:        "dining",
			Activity:    "Dinner at a local restaurant",
			Description: "Try regional specialties recommended by locals.",
		})
	}
	return activities
}

func summarize(plan *types.TravelPlan, attractionList []types.AttractionRecord, eventList []types.EventRecord) types.TripSummary {
	summary := types.TripSummary{
		TotalAttractions: len(attractionList),
		TotalEvents:      len(eventList),
	}

	for i, r := range attractionList {
		if i == 3 {
			break
		}
		summary.TopAttractions = append(summary.TopAttractions, r.Name)
	}

	var tempSum float64
	for _, day := range plan.Weather.Forecast {
		tempSum += day.Temp
		bucket := weatherBucket(day.Condition)
		if bucket == bucketOutdoor {
			summary.SunnyDays++
		}
		if bucket == bucketIndoor && !strings.Contains(strings.ToLower(day.Condition), "snow") {
			summary.RainyDays++
		}
		// Best days: no rain and a comfortable temperature band.
		if bucket != bucketIndoor && day.Temp > 15 && day.Temp < 32 && len(summary.BestDays) < maxBestDays {
			summary.BestDays = append(summary.BestDays, day.Date)
		}
	}
	if len(plan.Weather.Forecast) > 0 {
		summary.AverageTempC = roundTemp(tempSum / float64(len(plan.Weather.Forecast)))
	}
	return summary
}

func dayOfWeek(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}

func roundTemp(v float64) float64 {
	return math.Round(v*10) / 10
}
