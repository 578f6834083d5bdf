package knowledge

import (
	"strings"

	"github.com/FACorreiaa/go-travel-intelligence/internal/types"
)

// Hand-authored fallback attractions, keyed by lowercased city name. Served
// whenever live place providers fail, run out of quota or return nothing.
var staticAttractions = map[string][]types.AttractionRecord{
	"paris": {
		{Name: "Eiffel Tower", Category: types.CategoryAttraction, Rating: 4.7, ReviewCount: 140000, Description: "Iron lattice tower with panoramic city views.", Source: types.SourceStatic},
		{Name: "Louvre Museum", Category: types.CategoryIndoor, Rating: 4.7, ReviewCount: 98000, Description: "World's largest art museum, home of the Mona Lisa.", Source: types.SourceStatic},
		{Name: "Notre-Dame Cathedral", Category: types.CategoryHeritage, Rating: 4.6, ReviewCount: 64000, Description: "Gothic cathedral on the Île de la Cité.", Source: types.SourceStatic},
		{Name: "Jardin du Luxembourg", Category: types.CategoryOutdoor, Rating: 4.6, ReviewCount: 41000, Description: "Formal gardens with fountains and tree-lined promenades.", Source: types.SourceStatic},
		{Name: "Le Marais", Category: types.CategoryNightlife, Rating: 4.5, ReviewCount: 12000, Description: "Historic district known for bars, galleries and boutiques.", Source: types.SourceStatic},
	},
	"london": {
		{Name: "British Museum", Category: types.CategoryIndoor, Rating: 4.7, ReviewCount: 110000, Description: "Human history and culture collection spanning two million years.", Source: types.SourceStatic},
		{Name: "Tower of London", Category: types.CategoryHeritage, Rating: 4.6, ReviewCount: 72000, Description: "Historic castle housing the Crown Jewels.", Source: types.SourceStatic},
		{Name: "Hyde Park", Category: types.CategoryOutdoor, Rating: 4.6, ReviewCount: 56000, Description: "Royal park with the Serpentine lake and Speakers' Corner.", Source: types.SourceStatic},
		{Name: "West End", Category: types.CategoryNightlife, Rating: 4.5, ReviewCount: 18000, Description: "Theatre district with shows, pubs and late-night dining.", Source: types.SourceStatic},
	},
	"new york": {
		{Name: "Central Park", Category: types.CategoryOutdoor, Rating: 4.8, ReviewCount: 190000, Description: "843-acre urban park with lakes, trails and meadows.", Source: types.SourceStatic},
		{Name: "Metropolitan Museum of Art", Category: types.CategoryIndoor, Rating: 4.8, ReviewCount: 84000, Description: "Encyclopedic art museum on Museum Mile.", Source: types.SourceStatic},
		{Name: "Statue of Liberty", Category: types.CategoryHeritage, Rating: 4.7, ReviewCount: 95000, Description: "Neoclassical monument on Liberty Island.", Source: types.SourceStatic},
		{Name: "Broadway", Category: types.CategoryNightlife, Rating: 4.7, ReviewCount: 30000, Description: "Theatre district famous for musicals and late-night spots.", Source: types.SourceStatic},
	},
	"tokyo": {
		{Name: "Senso-ji Temple", Category: types.CategoryHeritage, Rating: 4.6, ReviewCount: 68000, Description: "Ancient Buddhist temple in Asakusa.", Source: types.SourceStatic},
		{Name: "Shinjuku Gyoen", Category: types.CategoryOutdoor, Rating: 4.6, ReviewCount: 35000, Description: "Large park blending Japanese, English and French gardens.", Source: types.SourceStatic},
		{Name: "teamLab Planets", Category: types.CategoryIndoor, Rating: 4.5, ReviewCount: 29000, Description: "Immersive digital art museum.", Source: types.SourceStatic},
		{Name: "Golden Gai", Category: types.CategoryNightlife, Rating: 4.4, ReviewCount: 9000, Description: "Network of narrow alleys packed with tiny bars.", Source: types.SourceStatic},
	},
	"sydney": {
		{Name: "Sydney Opera House", Category: types.CategoryAttraction, Rating: 4.7, ReviewCount: 87000, Description: "Iconic performing arts centre on Bennelong Point.", Source: types.SourceStatic},
		{Name: "Bondi Beach", Category: types.CategoryBeaches, Rating: 4.6, ReviewCount: 52000, Description: "Famous surf beach with the coastal walk to Coogee.", Source: types.SourceStatic},
		{Name: "Royal Botanic Garden", Category: types.CategoryOutdoor, Rating: 4.7, ReviewCount: 31000, Description: "Harbourside gardens next to the Opera House.", Source: types.SourceStatic},
	},
	"mumbai": {
		{Name: "Gateway of India", Category: types.CategoryHeritage, Rating: 4.6, ReviewCount: 72000, Description: "Arch monument overlooking the Arabian Sea.", Source: types.SourceStatic},
		{Name: "Marine Drive", Category: types.CategoryOutdoor, Rating: 4.6, ReviewCount: 48000, Description: "Seafront promenade known as the Queen's Necklace.", Source: types.SourceStatic},
		{Name: "Chhatrapati Shivaji Maharaj Vastu Sangrahalaya", Category: types.CategoryIndoor, Rating: 4.5, ReviewCount: 15000, Description: "Art and history museum in a grand Indo-Saracenic building.", Source: types.SourceStatic},
		{Name: "Juhu Beach", Category: types.CategoryBeaches, Rating: 4.3, ReviewCount: 39000, Description: "Popular beach famous for street food stalls.", Source: types.SourceStatic},
	},
	"lisbon": {
		{Name: "Belém Tower", Category: types.CategoryHeritage, Rating: 4.5, ReviewCount: 44000, Description: "16th-century fortified tower on the Tagus.", Source: types.SourceStatic},
		{Name: "Alfama", Category: types.CategoryCultural, Rating: 4.6, ReviewCount: 21000, Description: "Oldest district, fado houses and winding streets.", Source: types.SourceStatic},
		{Name: "Oceanário de Lisboa", Category: types.CategoryIndoor, Rating: 4.7, ReviewCount: 33000, Description: "One of Europe's largest aquariums.", Source: types.SourceStatic},
		{Name: "Praia de Carcavelos", Category: types.CategoryBeaches, Rating: 4.4, ReviewCount: 12000, Description: "Broad sandy beach a short train ride from the centre.", Source: types.SourceStatic},
	},
}

// Emergency list used when the city is unknown and every live source came back
// empty, so a plan is never completely blank.
var genericAttractions = []types.AttractionRecord{
	{Name: "City Center Walking Tour", Category: types.CategoryOutdoor, Rating: 4.3, ReviewCount: 500, Description: "Self-guided walk through the historic core.", Source: types.SourceStatic},
	{Name: "Local History Museum", Category: types.CategoryIndoor, Rating: 4.2, ReviewCount: 350, Description: "Exhibits on the region's history and culture.", Source: types.SourceStatic},
	{Name: "Central Market", Category: types.CategoryCultural, Rating: 4.3, ReviewCount: 420, Description: "Stalls with local produce, crafts and street food.", Source: types.SourceStatic},
	{Name: "Old Town Viewpoint", Category: types.CategoryAttraction, Rating: 4.4, ReviewCount: 280, Description: "Lookout over the rooftops of the old town.", Source: types.SourceStatic},
}

// AttractionsFor returns the curated fallback list for a city, or nil when the
// city is not in the knowledge base.
func AttractionsFor(city string) []types.AttractionRecord {
	return staticAttractions[strings.ToLower(strings.TrimSpace(city))]
}

// GenericAttractions returns the emergency fallback list.
func GenericAttractions() []types.AttractionRecord {
	out := make([]types.AttractionRecord, len(genericAttractions))
	copy(out, genericAttractions)
	return out
}
