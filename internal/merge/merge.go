package merge

import (
	"strings"
	"unicode"

	"github.com/FACorreiaa/go-travel-intelligence/internal/types"
)

// Generic trailing words that add no identity to a place name. Stripped before
// dedup so "Louvre Museum Shop" and "Louvre Museum" do not count twice.
var genericSuffixes = []string{
	"Restaurant", "Shop", "Store", "Cafe", "Bar", "Hotel", "Hostel",
}

// Placeholder names that providers emit for unnamed map features.
var nameDenylist = map[string]struct{}{
	"unnamed":      {},
	"unknown":      {},
	"untitled":     {},
	"parking":      {},
	"parking lot":  {},
	"toilet":       {},
	"toilets":      {},
	"atm":          {},
	"point":        {},
	"n/a":          {},
	"tbd":          {},
	"test":         {},
	"closed":       {},
	"no name":      {},
	"placeholder":  {},
	"unnamed road": {},
}

// CleanName normalizes a raw place name and reports whether it is usable.
// Rejected names are a quality filter, never an error.
func CleanName(raw string) (string, bool) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", false
	}

	for _, suffix := range genericSuffixes {
		// A bare suffix is stripped to nothing, so reject it outright.
		if strings.EqualFold(name, suffix) {
			return "", false
		}
		trimmed := strings.TrimSuffix(name, " "+suffix)
		if trimmed != name && trimmed != "" {
			name = trimmed
			break
		}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}

	if _, denied := nameDenylist[strings.ToLower(name)]; denied {
		return "", false
	}
	if isNumericOnly(name) {
		return "", false
	}
	return name, true
}

func isNumericOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && !unicode.IsSpace(r) && r != '-' && r != '.' {
			return false
		}
	}
	return true
}

// Attractions combines live and static records into one deduplicated list.
// Live records are inserted first so they always win name ties; static entries
// only fill gaps. Output preserves insertion order.
func Attractions(apiRecords, staticRecords []types.AttractionRecord) []types.AttractionRecord {
	seen := make(map[string]struct{}, len(apiRecords)+len(staticRecords))
	merged := make([]types.AttractionRecord, 0, len(apiRecords)+len(staticRecords))

	insert := func(rec types.AttractionRecord) {
		name, ok := CleanName(rec.Name)
		if !ok {
			return
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		rec.Name = name
		merged = append(merged, rec)
	}

	for _, rec := range apiRecords {
		insert(rec)
	}
	for _, rec := range staticRecords {
		insert(rec)
	}
	return merged
}
