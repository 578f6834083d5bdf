package planner

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-travel-intelligence/internal/types"
)

// MockAttractionService is a mock implementation of attractions.Service
type MockAttractionService struct {
	mock.Mock
}

func (m *MockAttractionService) GetForCity(ctx context.Context, city string, lat, lon float64) []types.AttractionRecord {
	args := m.Called(ctx, city, lat, lon)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]types.AttractionRecord)
}

// MockEventService is a mock implementation of events.Service
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) GetForTrip(ctx context.Context, city string, lat, lon float64, startDate, endDate string) []types.EventRecord {
	args := m.Called(ctx, city, lat, lon, startDate, endDate)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]types.EventRecord)
}

func setupPlannerServiceTest() (*ServiceImpl, *MockAttractionService, *MockEventService) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockAttractions := new(MockAttractionService)
	mockEvents := new(MockEventService)
	service := NewServiceImpl(mockAttractions, mockEvents, logger)
	return service, mockAttractions, mockEvents
}

func threeDayWeather() *types.WeatherResult {
	return &types.WeatherResult{
		City:        "Paris",
		Coordinates: types.Coordinates{Lat: 48.85, Lon: 2.35},
		Forecast: []types.ForecastDay{
			{Date: "2025-06-01", Temp: 22, Condition: "clear"},
			{Date: "2025-06-02", Temp: 18, Condition: "rain"},
			{Date: "2025-06-03", Temp: 25, Condition: "partly cloudy"},
		},
		Neighbors: []string{"Versailles, France"},
	}
}

func parisAttractions() []types.AttractionRecord {
	return []types.AttractionRecord{
		{Name: "Eiffel Tower", Category: types.CategoryAttraction, Rating: 4.7, Description: "Iron lattice tower."},
		{Name: "Louvre Museum", Category: types.CategoryIndoor, Rating: 4.8, Description: "Largest art museum."},
		{Name: "Jardin du Luxembourg", Category: types.CategoryOutdoor, Rating: 4.6, Description: "Formal gardens."},
		{Name: "Le Marais", Category: types.CategoryNightlife, Rating: 4.5, Description: "Bars and galleries."},
	}
}

func TestServiceImpl_PlanTrip_FailFast(t *testing.T) {
	ctx := context.Background()

	t.Run("nil weather", func(t *testing.T) {
		service, mockAttractions, mockEvents := setupPlannerServiceTest()

		plan, err := service.PlanTrip(ctx, "Paris", nil)

		require.Error(t, err)
		assert.Nil(t, plan)
		mockAttractions.AssertNotCalled(t, "GetForCity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockEvents.AssertNotCalled(t, "GetForTrip", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("weather error aborts before any downstream call", func(t *testing.T) {
		service, mockAttractions, mockEvents := setupPlannerServiceTest()
		weather := &types.WeatherResult{City: "Paris", Err: "weather service unavailable"}

		plan, err := service.PlanTrip(ctx, "Paris", weather)

		require.Error(t, err)
		assert.EqualError(t, err, "weather service unavailable")
		assert.Nil(t, plan)
		mockAttractions.AssertNotCalled(t, "GetForCity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockEvents.AssertNotCalled(t, "GetForTrip", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty forecast", func(t *testing.T) {
		service, mockAttractions, _ := setupPlannerServiceTest()
		weather := &types.WeatherResult{City: "Paris"}

		plan, err := service.PlanTrip(ctx, "Paris", weather)

		require.Error(t, err)
		assert.Nil(t, plan)
		mockAttractions.AssertNotCalled(t, "GetForCity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestServiceImpl_PlanTrip(t *testing.T) {
	ctx := context.Background()

	setup := func() (*ServiceImpl, *types.WeatherResult) {
		service, mockAttractions, mockEvents := setupPlannerServiceTest()
		weather := threeDayWeather()
		mockAttractions.On("GetForCity", mock.Anything, "Paris", 48.85, 2.35).
			Return(parisAttractions()).Once()
		mockEvents.On("GetForTrip", mock.Anything, "Paris", 48.85, 2.35, "2025-06-01", "2025-06-03").
			Return([]types.EventRecord{
				{Name: "Seine Evening Concert", Date: "2025-06-02", Time: "20:00", Category: types.EventConcerts, Description: "Jazz on a barge."},
			}).Once()
		return service, weather
	}

	t.Run("itinerary covers every forecast day in order", func(t *testing.T) {
		service, weather := setup()

		plan, err := service.PlanTrip(ctx, "Paris", weather)

		require.NoError(t, err)
		require.Len(t, plan.DailyItinerary, 3)
		assert.Equal(t, "2025-06-01", plan.DailyItinerary[0].Date)
		assert.Equal(t, "2025-06-02", plan.DailyItinerary[1].Date)
		assert.Equal(t, "2025-06-03", plan.DailyItinerary[2].Date)
		assert.Equal(t, "Sunday", plan.DailyItinerary[0].DayOfWeek)
	})

	t.Run("every day has a recommendation and activities", func(t *testing.T) {
		service, weather := setup()

		plan, err := service.PlanTrip(ctx, "Paris", weather)

		require.NoError(t, err)
		for _, day := range plan.DailyItinerary {
			assert.NotEmpty(t, day.Recommendation)
			assert.NotEmpty(t, day.RecommendedAttractions)
			require.NotEmpty(t, day.Activities)
			assert.Equal(t, "09:30", day.Activities[0].Time)
		}
	})

	t.Run("rainy day prefers indoor attractions", func(t *testing.T) {
		service, weather := setup()

		plan, err := service.PlanTrip(ctx, "Paris", weather)

		require.NoError(t, err)
		rainy := plan.DailyItinerary[1]
		require.NotEmpty(t, rainy.RecommendedAttractions)
		assert.Equal(t, "Louvre Museum", rainy.RecommendedAttractions[0].Name)
	})

	t.Run("events land on their matching day", func(t *testing.T) {
		service, weather := setup()

		plan, err := service.PlanTrip(ctx, "Paris", weather)

		require.NoError(t, err)
		assert.Empty(t, plan.DailyItinerary[0].Events)
		require.Len(t, plan.DailyItinerary[1].Events, 1)
		assert.Equal(t, "Seine Evening Concert", plan.DailyItinerary[1].Events[0].Name)

		// The event slot takes over the evening activity.
		evening := plan.DailyItinerary[1].Activities[len(plan.DailyItinerary[1].Activities)-1]
		assert.Equal(t, "event", evening.Type)
		assert.Equal(t, "20:00", evening.Time)
	})

	t.Run("overview and summary totals", func(t *testing.T) {
		service, weather := setup()

		plan, err := service.PlanTrip(ctx, "Paris", weather)

		require.NoError(t, err)
		assert.Equal(t, 4, plan.Attractions.Total)
		assert.Equal(t, 1, plan.Events.Total)
		assert.Equal(t, 4, plan.TripSummary.TotalAttractions)
		assert.Equal(t, 1, plan.TripSummary.TotalEvents)
		assert.Len(t, plan.TripSummary.TopAttractions, 3)
		assert.Equal(t, 1, plan.TripSummary.SunnyDays)
		assert.Equal(t, 1, plan.TripSummary.RainyDays)
		assert.InDelta(t, 21.7, plan.TripSummary.AverageTempC, 1e-9)
		assert.Equal(t, []string{"2025-06-01", "2025-06-03"}, plan.TripSummary.BestDays)
	})

	t.Run("featured attractions sorted by rating", func(t *testing.T) {
		service, weather := setup()

		plan, err := service.PlanTrip(ctx, "Paris", weather)

		require.NoError(t, err)
		require.NotEmpty(t, plan.Attractions.Featured)
		assert.Equal(t, "Louvre Museum", plan.Attractions.Featured[0].Name)
	})

	t.Run("destination and duration taken from the weather result", func(t *testing.T) {
		service, weather := setup()

		plan, err := service.PlanTrip(ctx, "Paris", weather)

		require.NoError(t, err)
		assert.Equal(t, "Paris", plan.Destination)
		assert.Equal(t, types.TripDuration{StartDate: "2025-06-01", EndDate: "2025-06-03", Days: 3}, plan.TripDuration)
		assert.Equal(t, []string{"Versailles, France"}, plan.NearbyDestinations)
	})
}

func TestWeatherBucket(t *testing.T) {
	assert.Equal(t, bucketIndoor, weatherBucket("Heavy Rain"))
	assert.Equal(t, bucketIndoor, weatherBucket("snow"))
	assert.Equal(t, bucketIndoor, weatherBucket("thunderstorm"))
	assert.Equal(t, bucketOutdoor, weatherBucket("clear"))
	assert.Equal(t, bucketOutdoor, weatherBucket("sunny"))
	assert.Equal(t, bucketAny, weatherBucket("cloudy"))
	assert.Equal(t, bucketAny, weatherBucket("fog"))
}

func TestSelectAttractions(t *testing.T) {
	records := parisAttractions()

	t.Run("neutral days rotate the list", func(t *testing.T) {
		day0 := selectAttractions(records, bucketAny, 0)
		day1 := selectAttractions(records, bucketAny, 1)
		require.NotEmpty(t, day0)
		require.NotEmpty(t, day1)
		assert.NotEqual(t, day0[0].Name, day1[0].Name)
	})

	t.Run("empty input yields nil", func(t *testing.T) {
		assert.Nil(t, selectAttractions(nil, bucketAny, 0))
	})

	t.Run("cap applies", func(t *testing.T) {
		got := selectAttractions(records, bucketOutdoor, 0)
		assert.LessOrEqual(t, len(got), maxDailyAttractions)
	})
}
