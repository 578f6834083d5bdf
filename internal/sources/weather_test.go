package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMeteoSource_GetByCityAndDate(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves city and forecast", func(t *testing.T) {
		geocode := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Paris", r.URL.Query().Get("name"))
			w.Write([]byte(`{"results":[
				{"name":"Paris","latitude":48.85,"longitude":2.35,"country":"France"},
				{"name":"Paris","latitude":33.66,"longitude":-95.55,"country":"United States"}
			]}`))
		}))
		defer geocode.Close()

		forecast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "2025-06-01", r.URL.Query().Get("start_date"))
			w.Write([]byte(`{"daily":{
				"time":["2025-06-01","2025-06-02"],
				"temperature_2m_max":[24,20],
				"temperature_2m_min":[14,12],
				"weather_code":[0,61]
			}}`))
		}))
		defer forecast.Close()

		src := NewOpenMeteoSource(geocode.URL, forecast.URL, testLogger())
		got := src.GetByCityAndDate(ctx, "Paris", "2025-06-01", "2025-06-02")

		require.Empty(t, got.Err)
		assert.Equal(t, "Paris", got.City)
		assert.InDelta(t, 48.85, got.Coordinates.Lat, 1e-9)
		assert.Equal(t, []string{"Paris, United States"}, got.Neighbors)

		require.Len(t, got.Forecast, 2)
		assert.Equal(t, "2025-06-01", got.Forecast[0].Date)
		assert.InDelta(t, 19, got.Forecast[0].Temp, 1e-9)
		assert.Equal(t, "clear", got.Forecast[0].Condition)
		assert.Equal(t, "rain", got.Forecast[1].Condition)
	})

	t.Run("unknown city reports error in result", func(t *testing.T) {
		geocode := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"results":[]}`))
		}))
		defer geocode.Close()

		src := NewOpenMeteoSource(geocode.URL, "http://unused", testLogger())
		got := src.GetByCityAndDate(ctx, "Atlantis", "2025-06-01", "2025-06-02")

		assert.Contains(t, got.Err, "not found")
		assert.Empty(t, got.Forecast)
	})

	t.Run("geocoder outage reports unavailable", func(t *testing.T) {
		geocode := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer geocode.Close()

		src := NewOpenMeteoSource(geocode.URL, "http://unused", testLogger())
		got := src.GetByCityAndDate(ctx, "Paris", "2025-06-01", "2025-06-02")

		assert.Equal(t, "weather service unavailable", got.Err)
	})

	t.Run("empty forecast window reports error", func(t *testing.T) {
		geocode := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"results":[{"name":"Paris","latitude":48.85,"longitude":2.35,"country":"France"}]}`))
		}))
		defer geocode.Close()
		forecast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"daily":{"time":[]}}`))
		}))
		defer forecast.Close()

		src := NewOpenMeteoSource(geocode.URL, forecast.URL, testLogger())
		got := src.GetByCityAndDate(ctx, "Paris", "2025-06-01", "2025-06-02")

		assert.Contains(t, got.Err, "no forecast data")
	})
}

func TestConditionFromCode(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "clear"},
		{1, "partly cloudy"},
		{3, "cloudy"},
		{45, "fog"},
		{61, "rain"},
		{71, "snow"},
		{81, "rain"},
		{95, "storm"},
		{40, "cloudy"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, conditionFromCode(tt.code), "code %d", tt.code)
	}
}
