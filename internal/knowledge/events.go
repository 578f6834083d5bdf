package knowledge

import (
	"strings"
	"time"

	"github.com/FACorreiaa/go-travel-intelligence/internal/types"
)

// Curated event templates, keyed by lowercased city. Dates are filled in by the
// events pipeline when it distributes them across the trip span.
var curatedEvents = map[string][]types.EventRecord{
	"paris": {
		{Name: "Seine Evening Concert", Category: types.EventConcerts, Time: "20:00", Venue: "Quai de la Tournelle", Description: "Classical and jazz sets on a river barge.", PriceRange: "€15-40", Source: types.SourceStatic},
		{Name: "Marché des Enfants Rouges Food Walk", Category: types.EventCommunity, Time: "11:00", Venue: "Le Marais", Description: "Guided tasting through the oldest covered market.", PriceRange: "€25", Source: types.SourceStatic},
		{Name: "Louvre Late Night Opening", Category: types.EventCultural, Time: "18:30", Venue: "Louvre Museum", Description: "Evening access with shorter queues.", PriceRange: "€17", Source: types.SourceStatic},
	},
	"london": {
		{Name: "West End Theatre Night", Category: types.EventCultural, Time: "19:30", Venue: "Shaftesbury Avenue", Description: "Award-winning plays and musicals.", PriceRange: "£25-120", Source: types.SourceStatic},
		{Name: "Borough Market Tasting", Category: types.EventCommunity, Time: "10:00", Venue: "Borough Market", Description: "Street food and producer stalls by London Bridge.", PriceRange: "Free entry", Source: types.SourceStatic},
		{Name: "Premier League Matchday", Category: types.EventSports, Time: "15:00", Venue: "Various stadiums", Description: "Top-flight football, book well ahead.", PriceRange: "£40-150", Source: types.SourceStatic},
	},
	"new york": {
		{Name: "Broadway Show", Category: types.EventCultural, Time: "19:00", Venue: "Theater District", Description: "Big-stage musicals and plays.", PriceRange: "$60-250", Source: types.SourceStatic},
		{Name: "Jazz at the Village", Category: types.EventConcerts, Time: "21:00", Venue: "Greenwich Village", Description: "Late sets in historic basement clubs.", PriceRange: "$20-50", Source: types.SourceStatic},
		{Name: "Yankees Home Game", Category: types.EventSports, Time: "18:30", Venue: "Yankee Stadium", Description: "Baseball under the lights in the Bronx.", PriceRange: "$30-120", Source: types.SourceStatic},
	},
	"tokyo": {
		{Name: "Sumo Morning Practice", Category: types.EventSports, Time: "08:00", Venue: "Ryogoku", Description: "Watch wrestlers train at a sumo stable.", PriceRange: "¥3000", Source: types.SourceStatic},
		{Name: "Shibuya Live House Night", Category: types.EventConcerts, Time: "19:30", Venue: "Shibuya", Description: "Indie bands in intimate venues.", PriceRange: "¥2500-5000", Source: types.SourceStatic},
		{Name: "Tea Ceremony Experience", Category: types.EventCultural, Time: "14:00", Venue: "Asakusa", Description: "Traditional ceremony with a tea master.", PriceRange: "¥4000", Source: types.SourceStatic},
	},
	"sydney": {
		{Name: "Opera House Performance", Category: types.EventCultural, Time: "19:30", Venue: "Sydney Opera House", Description: "Opera, ballet and symphony programs.", PriceRange: "A$40-200", Source: types.SourceStatic},
		{Name: "Harbour Bridge Climb", Category: types.EventCommunity, Time: "09:00", Venue: "The Rocks", Description: "Guided climb with harbour views.", PriceRange: "A$174-403", Source: types.SourceStatic},
	},
	"mumbai": {
		{Name: "Bollywood Studio Tour", Category: types.EventCultural, Time: "10:00", Venue: "Film City, Goregaon", Description: "Behind the scenes of Hindi cinema.", PriceRange: "₹600-2000", Source: types.SourceStatic},
		{Name: "Prithvi Theatre Play", Category: types.EventCultural, Time: "19:00", Venue: "Juhu", Description: "Intimate theatre with a storied history.", PriceRange: "₹300-800", Source: types.SourceStatic},
		{Name: "Sunday Street Food Crawl", Category: types.EventCommunity, Time: "17:00", Venue: "Mohammed Ali Road", Description: "Guided walk through legendary food stalls.", PriceRange: "₹500", Source: types.SourceStatic},
	},
}

// Generic templates used when a city has no curated catalog.
var genericEvents = []types.EventRecord{
	{Name: "Local Walking Tour", Category: types.EventCommunity, Time: "10:00", Venue: "City Center", Description: "Guided introduction to the city's highlights.", PriceRange: "Free-$20", Source: types.SourceStatic},
	{Name: "Evening Food Market", Category: types.EventCommunity, Time: "18:00", Venue: "Market District", Description: "Street food stalls and local specialties.", PriceRange: "Varies", Source: types.SourceStatic},
	{Name: "Live Music Night", Category: types.EventConcerts, Time: "20:30", Venue: "Old Town", Description: "Local bands in bars and small venues.", PriceRange: "$10-30", Source: types.SourceStatic},
}

// Seasonal templates appended based on the trip's start month.
var seasonalEvents = map[time.Month][]types.EventRecord{
	time.December: {
		{Name: "Winter Lights Festival", Category: types.EventFestivals, Time: "17:30", Venue: "City Center", Description: "Illuminations and holiday markets.", PriceRange: "Free", Source: types.SourceStatic},
	},
	time.January: {
		{Name: "New Year Concert Series", Category: types.EventConcerts, Time: "19:00", Venue: "Concert Hall", Description: "Orchestral programs to open the year.", PriceRange: "$20-80", Source: types.SourceStatic},
	},
	time.March: {
		{Name: "Spring Bloom Festival", Category: types.EventFestivals, Time: "10:00", Venue: "Botanical Gardens", Description: "Flower displays and garden tours.", PriceRange: "Free-$15", Source: types.SourceStatic},
	},
	time.April: {
		{Name: "Spring Bloom Festival", Category: types.EventFestivals, Time: "10:00", Venue: "Botanical Gardens", Description: "Flower displays and garden tours.", PriceRange: "Free-$15", Source: types.SourceStatic},
	},
	time.June: {
		{Name: "Open Air Summer Concert", Category: types.EventConcerts, Time: "19:30", Venue: "Main Park", Description: "Outdoor stage with local and touring acts.", PriceRange: "Free-$40", Source: types.SourceStatic},
	},
	time.July: {
		{Name: "Summer Night Market", Category: types.EventFestivals, Time: "18:00", Venue: "Riverfront", Description: "Food, crafts and music along the water.", PriceRange: "Free", Source: types.SourceStatic},
	},
	time.August: {
		{Name: "Open Air Cinema", Category: types.EventFestivals, Time: "21:00", Venue: "Main Square", Description: "Classic films under the stars.", PriceRange: "Free-$10", Source: types.SourceStatic},
	},
	time.October: {
		{Name: "Harvest Festival", Category: types.EventFestivals, Time: "12:00", Venue: "Old Town", Description: "Seasonal food, cider and live folk music.", PriceRange: "Free", Source: types.SourceStatic},
	},
}

// EventsFor returns the curated templates for a city, falling back to the
// generic set for unknown cities.
func EventsFor(city string) []types.EventRecord {
	if evts, ok := curatedEvents[strings.ToLower(strings.TrimSpace(city))]; ok {
		out := make([]types.EventRecord, len(evts))
		copy(out, evts)
		return out
	}
	out := make([]types.EventRecord, len(genericEvents))
	copy(out, genericEvents)
	return out
}

// SeasonalEventsFor returns extra templates for the trip's start month.
func SeasonalEventsFor(month time.Month) []types.EventRecord {
	evts := seasonalEvents[month]
	out := make([]types.EventRecord, len(evts))
	copy(out, evts)
	return out
}
