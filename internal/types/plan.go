package types

type TripDuration struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD, inclusive
	Days      int    `json:"days"`
}

type Activity struct {
	Time        string `json:"time"`
	Type        string `json:"type"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
}

type DayPlan struct {
	Date                   string             `json:"date"`
	DayOfWeek              string             `json:"day_of_week"`
	Weather                ForecastDay        `json:"weather"`
	Recommendation         string             `json:"recommendation"`
	RecommendedAttractions []AttractionRecord `json:"recommended_attractions"`
	Events                 []EventRecord      `json:"events"`
	Activities             []Activity         `json:"activities"`
}

type AttractionOverview struct {
	Total      int                `json:"total"`
	Categories map[string]int     `json:"categories"`
	Featured   []AttractionRecord `json:"featured"`
}

type EventOverview struct {
	Total      int            `json:"total"`
	Upcoming   []EventRecord  `json:"upcoming"`
	Categories map[string]int `json:"categories"`
}

type TripSummary struct {
	TotalAttractions int      `json:"total_attractions"`
	TotalEvents      int      `json:"total_events"`
	TopAttractions   []string `json:"top_attractions"`
	AverageTempC     float64  `json:"average_temp_c"`
	SunnyDays        int      `json:"sunny_days"`
	RainyDays        int      `json:"rainy_days"`
	BestDays         []string `json:"best_days"`
}

// TravelPlan is the aggregate root assembled once per planning request. It is
// never persisted by the engine itself; the history repository stores only a
// summary row.
type TravelPlan struct {
	Destination        string             `json:"destination"`
	TripDuration       TripDuration       `json:"trip_duration"`
	Weather            *WeatherResult     `json:"weather"`
	Attractions        AttractionOverview `json:"attractions"`
	Events             EventOverview      `json:"events"`
	DailyItinerary     []DayPlan          `json:"daily_itinerary"`
	TripSummary        TripSummary        `json:"trip_summary"`
	NearbyDestinations []string           `json:"nearby_destinations,omitempty"`
}
