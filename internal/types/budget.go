package types

const (
	TierCheap    = "cheap"
	TierModerate = "moderate"
	TierLuxury   = "luxury"
)

type MoneyRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type PerDayCosts struct {
	Transport      float64 `json:"transport"`
	Meals          float64 `json:"meals"`
	Sightseeing    float64 `json:"sightseeing"`
	SnacksAndWater float64 `json:"snacks_and_water"`
	HotelMin       float64 `json:"hotel_min"`
	HotelMax       float64 `json:"hotel_max"`
	TotalMin       float64 `json:"total_min"`
	TotalMax       float64 `json:"total_max"`
}

type DayCost struct {
	Date           string  `json:"date"`
	Hotel          float64 `json:"hotel"`
	Food           float64 `json:"food"`
	Transport      float64 `json:"transport"`
	Sightseeing    float64 `json:"sightseeing"`
	SnacksAndWater float64 `json:"snacks_and_water"`
	Total          float64 `json:"total"`
}

type BudgetTier struct {
	Tier               string      `json:"tier"`
	PerNightHotelRange MoneyRange  `json:"per_night_hotel_range"`
	PerDay             PerDayCosts `json:"per_day"`
	TripTotal          MoneyRange  `json:"trip_total"`
	DailyBreakdown     []DayCost   `json:"daily_breakdown"`
}

type BudgetEstimate struct {
	Currency  string     `json:"currency"`
	Travelers int        `json:"travelers"`
	Cheap     BudgetTier `json:"cheap"`
	Moderate  BudgetTier `json:"moderate"`
	Luxury    BudgetTier `json:"luxury"`
}

// HotelSignal scales the baseline per-night hotel ranges; MealSignal carries
// estimated per-person meal costs derived from sampled price levels. Either may
// be absent when no usable samples were found near the destination.
type HotelSignal struct {
	PriceLevelMean float64 `json:"price_level_mean"`
	Factor         float64 `json:"factor"`
	SampleSize     int     `json:"sample_size"`
}

type MealSignal struct {
	Budget     float64 `json:"budget"`      // p25-derived
	MidRange   float64 `json:"mid_range"`   // p50-derived
	HighEnd    float64 `json:"high_end"`    // p75-derived
	SampleSize int     `json:"sample_size"`
}

type PricingSignals struct {
	HotelRanges *HotelSignal `json:"hotel_ranges,omitempty"`
	MealCosts   *MealSignal  `json:"meal_costs,omitempty"`
}
