package types

// Attraction categories used across adapters, the static knowledge base and the
// itinerary builder. Adapters map provider taxonomies onto these values.
const (
	CategoryOutdoor    = "outdoor"
	CategoryIndoor     = "indoor"
	CategoryHeritage   = "heritage"
	CategoryAdventure  = "adventure"
	CategoryNightlife  = "nightlife"
	CategoryBeaches    = "beaches"
	CategoryCultural   = "cultural"
	CategoryAttraction = "attraction"
)

// SourceStatic marks records that came from the curated knowledge base rather
// than a live provider.
const SourceStatic = "static"

type AttractionRecord struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	Description string  `json:"description"`
	Source      string  `json:"source"`
}
