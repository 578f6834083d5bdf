package events

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-travel-intelligence/app/observability/metrics"
	"github.com/FACorreiaa/go-travel-intelligence/internal/resultcache"
	"github.com/FACorreiaa/go-travel-intelligence/internal/types"
)

// MockEventSource is a mock implementation of sources.EventSource
type MockEventSource struct {
	mock.Mock
}

func (m *MockEventSource) Name() string {
	return "ticketmaster"
}

func (m *MockEventSource) FetchEvents(ctx context.Context, city string, lat, lon float64, startDate, endDate string) ([]types.EventRecord, bool) {
	args := m.Called(ctx, city, lat, lon, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]types.EventRecord), args.Bool(1)
}

func setupEventServiceTest() (*ServiceImpl, *MockEventSource) {
	metrics.InitAppMetrics()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockSource := new(MockEventSource)
	cache := resultcache.New(24*time.Hour, 6*time.Hour)
	service := NewServiceImpl(mockSource, cache, logger)
	return service, mockSource
}

// New York: inside the live provider's coverage.
const (
	nyLat = 40.7
	nyLon = -74.0
)

func TestServiceImpl_StrategyOrder(t *testing.T) {
	service, _ := setupEventServiceTest()
	assert.Equal(t, []string{"live", "curated"}, service.StrategyNames())
}

func TestServiceImpl_GetForTrip(t *testing.T) {
	ctx := context.Background()

	t.Run("live results fully replace the curated catalog", func(t *testing.T) {
		service, mockSource := setupEventServiceTest()
		live := []types.EventRecord{
			{Name: "Yankees Home Game", Date: "2025-06-02", Source: "ticketmaster"},
		}
		mockSource.On("FetchEvents", mock.Anything, "new york", nyLat, nyLon, "2025-06-01", "2025-06-03").
			Return(live, true).Once()

		got := service.GetForTrip(ctx, "new york", nyLat, nyLon, "2025-06-01", "2025-06-03")

		require.Len(t, got, 1)
		assert.Equal(t, "ticketmaster", got[0].Source)
		mockSource.AssertExpectations(t)
	})

	t.Run("live failure falls back to curated", func(t *testing.T) {
		service, mockSource := setupEventServiceTest()
		mockSource.On("FetchEvents", mock.Anything, "new york", nyLat, nyLon, "2025-06-01", "2025-06-03").
			Return(nil, false).Once()

		got := service.GetForTrip(ctx, "new york", nyLat, nyLon, "2025-06-01", "2025-06-03")

		require.NotEmpty(t, got)
		for _, e := range got {
			assert.Equal(t, types.SourceStatic, e.Source)
		}
		mockSource.AssertExpectations(t)
	})

	t.Run("live success with zero events still falls back", func(t *testing.T) {
		service, mockSource := setupEventServiceTest()
		mockSource.On("FetchEvents", mock.Anything, "new york", nyLat, nyLon, "2025-06-01", "2025-06-03").
			Return([]types.EventRecord{}, true).Once()

		got := service.GetForTrip(ctx, "new york", nyLat, nyLon, "2025-06-01", "2025-06-03")

		require.NotEmpty(t, got)
		assert.Equal(t, types.SourceStatic, got[0].Source)
	})

	t.Run("unsupported region never attempts the live source", func(t *testing.T) {
		service, mockSource := setupEventServiceTest()

		// Mumbai sits outside every coverage box.
		got := service.GetForTrip(ctx, "mumbai", 19.0, 72.8, "2025-06-01", "2025-06-03")

		require.NotEmpty(t, got)
		assert.Equal(t, types.SourceStatic, got[0].Source)
		mockSource.AssertNotCalled(t, "FetchEvents", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("second call is served from cache", func(t *testing.T) {
		service, mockSource := setupEventServiceTest()
		live := []types.EventRecord{{Name: "Broadway Show", Date: "2025-06-01"}}
		mockSource.On("FetchEvents", mock.Anything, "new york", nyLat, nyLon, "2025-06-01", "2025-06-03").
			Return(live, true).Once()

		first := service.GetForTrip(ctx, "new york", nyLat, nyLon, "2025-06-01", "2025-06-03")
		second := service.GetForTrip(ctx, "new york", nyLat, nyLon, "2025-06-01", "2025-06-03")

		assert.Equal(t, first, second)
		mockSource.AssertNumberOfCalls(t, "FetchEvents", 1)
	})

	t.Run("different date range misses the cache", func(t *testing.T) {
		service, mockSource := setupEventServiceTest()
		mockSource.On("FetchEvents", mock.Anything, "new york", nyLat, nyLon, mock.Anything, mock.Anything).
			Return([]types.EventRecord{{Name: "Broadway Show"}}, true)

		service.GetForTrip(ctx, "new york", nyLat, nyLon, "2025-06-01", "2025-06-03")
		service.GetForTrip(ctx, "new york", nyLat, nyLon, "2025-06-01", "2025-06-04")

		mockSource.AssertNumberOfCalls(t, "FetchEvents", 2)
	})
}

func TestBuildCuratedEvents(t *testing.T) {
	t.Run("dates distributed round-robin across the span", func(t *testing.T) {
		got := buildCuratedEvents("paris", "2025-06-01", "2025-06-03")
		require.NotEmpty(t, got)

		wantDates := []string{"2025-06-01", "2025-06-02", "2025-06-03"}
		for i, e := range got {
			assert.Equal(t, wantDates[i%3], e.Date)
		}
	})

	t.Run("seasonal templates appended for the start month", func(t *testing.T) {
		got := buildCuratedEvents("paris", "2025-06-01", "2025-06-03")
		var found bool
		for _, e := range got {
			if e.Name == "Open Air Summer Concert" {
				found = true
			}
		}
		assert.True(t, found, "June seasonal event should be included")
	})

	t.Run("output capped", func(t *testing.T) {
		got := buildCuratedEvents("paris", "2025-12-01", "2025-12-10")
		assert.LessOrEqual(t, len(got), maxCuratedEvents)
	})

	t.Run("single day trip puts everything on that day", func(t *testing.T) {
		got := buildCuratedEvents("london", "2025-06-01", "2025-06-01")
		require.NotEmpty(t, got)
		for _, e := range got {
			assert.Equal(t, "2025-06-01", e.Date)
		}
	})

	t.Run("invalid dates yield nothing", func(t *testing.T) {
		assert.Nil(t, buildCuratedEvents("paris", "bogus", "2025-06-03"))
		assert.Nil(t, buildCuratedEvents("paris", "2025-06-03", "2025-06-01"))
	})
}
