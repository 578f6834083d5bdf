package sources

// Coarse axis-aligned bounding boxes for the geographies the live events
// provider covers well. Destinations outside them skip straight to the curated
// catalog without spending a network call or quota. The rectangles knowingly
// cover ocean and miss parts of Asia, Africa and South America; that routing is
// intentional and tests depend on it.
type boundingBox struct {
	name   string
	minLat float64
	maxLat float64
	minLon float64
	maxLon float64
}

var supportedRegions = []boundingBox{
	{name: "north-america", minLat: 24, maxLat: 60, minLon: -125, maxLon: -66},
	{name: "europe", minLat: 35, maxLat: 71, minLon: -10, maxLon: 40},
	{name: "australia", minLat: -44, maxLat: -10, minLon: 112, maxLon: 154},
}

// SupportsRegion reports whether the live events adapter should be attempted
// for the given coordinates.
func SupportsRegion(lat, lon float64) bool {
	for _, box := range supportedRegions {
		if lat >= box.minLat && lat <= box.maxLat && lon >= box.minLon && lon <= box.maxLon {
			return true
		}
	}
	return false
}
