package types

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type ForecastDay struct {
	Date      string  `json:"date"` // YYYY-MM-DD
	Temp      float64 `json:"temp"` // daily mean, Celsius
	Condition string  `json:"condition"`
}

// WeatherResult is what the weather collaborator hands to the planner. When Err
// is non-empty the planner must fail fast without touching any other source.
type WeatherResult struct {
	City        string        `json:"city"`
	Coordinates Coordinates   `json:"coordinates"`
	Forecast    []ForecastDay `json:"forecast"`
	Neighbors   []string      `json:"neighbors,omitempty"`
	Err         string        `json:"error,omitempty"`
}
