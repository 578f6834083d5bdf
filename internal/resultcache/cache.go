package resultcache

import (
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/FACorreiaa/go-travel-intelligence/internal/types"
)

// Cache holds the two result namespaces. Attractions change slowly and get a
// long TTL; events are time-sensitive and expire much sooner. Expiry is lazy:
// stale entries are simply treated as absent on lookup.
type Cache struct {
	attractions *cache.Cache
	events      *cache.Cache
}

func New(attractionsTTL, eventsTTL time.Duration) *Cache {
	if attractionsTTL <= 0 {
		attractionsTTL = 24 * time.Hour
	}
	if eventsTTL <= 0 {
		eventsTTL = 6 * time.Hour
	}
	return &Cache{
		attractions: cache.New(attractionsTTL, 2*attractionsTTL),
		events:      cache.New(eventsTTL, 2*eventsTTL),
	}
}

// AttractionKey is the lowercased city name.
func AttractionKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// EventKey is a composite of city and the exact date range. Different ranges
// for the same city are distinct entries; there is no partial-range reuse.
func EventKey(city, startDate, endDate string) string {
	return fmt.Sprintf("%s|%s|%s", strings.ToLower(strings.TrimSpace(city)), startDate, endDate)
}

func (c *Cache) GetAttractions(city string) ([]types.AttractionRecord, bool) {
	v, found := c.attractions.Get(AttractionKey(city))
	if !found {
		return nil, false
	}
	records, ok := v.([]types.AttractionRecord)
	return records, ok
}

func (c *Cache) SetAttractions(city string, records []types.AttractionRecord) {
	c.attractions.Set(AttractionKey(city), records, cache.DefaultExpiration)
}

func (c *Cache) GetEvents(city, startDate, endDate string) ([]types.EventRecord, bool) {
	v, found := c.events.Get(EventKey(city, startDate, endDate))
	if !found {
		return nil, false
	}
	records, ok := v.([]types.EventRecord)
	return records, ok
}

func (c *Cache) SetEvents(city, startDate, endDate string, records []types.EventRecord) {
	c.events.Set(EventKey(city, startDate, endDate), records, cache.DefaultExpiration)
}
