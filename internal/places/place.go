// Package places queries the MapQuest radius-search API for points of
// interest near a national site and converts the results into Place
// records. Responses are cached by site identity so repeat lookups are
// free.
package places

import "fmt"

// Placeholder values substituted when an API result field is missing or
// empty, mirroring the scraper's silent-substitution policy.
const (
	PlaceholderCategory = "no category"
	PlaceholderAddress  = "no street address"
	PlaceholderCity     = "no city"
)

// Place represents one nearby point of interest. Immutable, built once per
// API response item.
type Place struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
}

// Info renders the one-line listing form:
// "Name (Category): StreetAddress, City".
func (p Place) Info() string {
	return fmt.Sprintf("%s (%s): %s, %s", p.Name, p.Category, p.StreetAddress, p.City)
}
