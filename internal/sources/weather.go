package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-travel-intelligence/internal/types"
)

var _ WeatherSource = (*OpenMeteoSource)(nil)

// OpenMeteoSource geocodes the city and fetches a daily forecast. Open-Meteo is
// key-free, so it sits outside the rate limiter.
type OpenMeteoSource struct {
	logger      *slog.Logger
	client      *http.Client
	geocodeURL  string
	forecastURL string
}

func NewOpenMeteoSource(geocodeURL, forecastURL string, logger *slog.Logger) *OpenMeteoSource {
	return &OpenMeteoSource{
		logger:      logger,
		client:      newHTTPClient(),
		geocodeURL:  geocodeURL,
		forecastURL: forecastURL,
	}
}

type geocodeResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
	} `json:"results"`
}

type forecastResponse struct {
	Daily struct {
		Time        []string  `json:"time"`
		TempMax     []float64 `json:"temperature_2m_max"`
		TempMin     []float64 `json:"temperature_2m_min"`
		WeatherCode []int     `json:"weather_code"`
	} `json:"daily"`
}

func (s *OpenMeteoSource) GetByCityAndDate(ctx context.Context, city, startDate, endDate string) *types.WeatherResult {
	ctx, span := otel.Tracer("OpenMeteoSource").Start(ctx, "GetByCityAndDate")
	defer span.End()
	span.SetAttributes(attribute.String("city.name", city))

	q := url.Values{}
	q.Set("name", city)
	q.Set("count", "4")
	q.Set("language", "en")
	q.Set("format", "json")

	geo, err := s.fetchJSON(ctx, s.geocodeURL+"?"+q.Encode())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Geocoding failed")
		return &types.WeatherResult{City: city, Err: "weather service unavailable"}
	}
	var geocoded geocodeResponse
	if err := json.Unmarshal(geo, &geocoded); err != nil || len(geocoded.Results) == 0 {
		span.SetStatus(codes.Error, "City not found")
		return &types.WeatherResult{City: city, Err: fmt.Sprintf("city %s not found", city)}
	}

	primary := geocoded.Results[0]
	neighbors := make([]string, 0, len(geocoded.Results)-1)
	for _, r := range geocoded.Results[1:] {
		neighbors = append(neighbors, fmt.Sprintf("%s, %s", r.Name, r.Country))
	}

	fq := url.Values{}
	fq.Set("latitude", fmt.Sprintf("%f", primary.Latitude))
	fq.Set("longitude", fmt.Sprintf("%f", primary.Longitude))
	fq.Set("daily", "temperature_2m_max,temperature_2m_min,weather_code")
	fq.Set("timezone", "auto")
	fq.Set("start_date", startDate)
	fq.Set("end_date", endDate)

	raw, err := s.fetchJSON(ctx, s.forecastURL+"?"+fq.Encode())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Forecast failed")
		return &types.WeatherResult{City: city, Err: "weather service unavailable"}
	}
	var forecast forecastResponse
	if err := json.Unmarshal(raw, &forecast); err != nil || len(forecast.Daily.Time) == 0 {
		span.SetStatus(codes.Error, "Empty forecast")
		return &types.WeatherResult{City: city, Err: "no forecast data for the requested dates"}
	}

	days := make([]types.ForecastDay, 0, len(forecast.Daily.Time))
	for i, date := range forecast.Daily.Time {
		day := types.ForecastDay{Date: date}
		if i < len(forecast.Daily.TempMax) && i < len(forecast.Daily.TempMin) {
			day.Temp = (forecast.Daily.TempMax[i] + forecast.Daily.TempMin[i]) / 2
		}
		if i < len(forecast.Daily.WeatherCode) {
			day.Condition = conditionFromCode(forecast.Daily.WeatherCode[i])
		}
		days = append(days, day)
	}

	span.SetAttributes(attribute.Int("forecast.days", len(days)))
	span.SetStatus(codes.Ok, "Forecast fetched")
	return &types.WeatherResult{
		City:        primary.Name,
		Coordinates: types.Coordinates{Lat: primary.Latitude, Lon: primary.Longitude},
		Forecast:    days,
		Neighbors:   neighbors,
	}
}

func (s *OpenMeteoSource) fetchJSON(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.WarnContext(ctx, "Open-Meteo request failed", slog.Any("error", err))
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open-meteo returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// WMO weather interpretation codes, bucketed to the conditions the planner
// understands.
func conditionFromCode(code int) string {
	switch {
	case code == 0:
		return "clear"
	case code <= 2:
		return "partly cloudy"
	case code == 3:
		return "cloudy"
	case code >= 45 && code <= 48:
		return "fog"
	case code >= 51 && code <= 67:
		return "rain"
	case code >= 71 && code <= 77:
		return "snow"
	case code >= 80 && code <= 82:
		return "rain"
	case code >= 95:
		return "storm"
	default:
		return "cloudy"
	}
}
