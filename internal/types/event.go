package types

// Event categories. Live providers are mapped onto these; the curated catalog
// uses them directly.
const (
	EventConcerts  = "concerts"
	EventFestivals = "festivals"
	EventSports    = "sports"
	EventCultural  = "cultural"
	EventCommunity = "community"
)

type EventRecord struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Date        string `json:"date"` // YYYY-MM-DD, always inside the queried trip range
	Time        string `json:"time"` // HH:MM
	Venue       string `json:"venue"`
	Description string `json:"description"`
	PriceRange  string `json:"price_range"`
	URL         string `json:"url,omitempty"`
	Source      string `json:"source"`
}
