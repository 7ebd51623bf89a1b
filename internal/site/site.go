// Package site defines the national site model and the U.S. state name
// table used to resolve user input to NPS state pages.
package site

import "fmt"

// Placeholder values substituted when a detail-page field cannot be
// extracted. Extraction never fails; it falls back to these.
const (
	PlaceholderCategory = "Not found category"
	PlaceholderAddress  = "Not found address"
	PlaceholderZipcode  = "Not found zipcode"
	PlaceholderPhone    = "Not found phone number"
)

// Site represents one protected-area entry (park, monument, lakeshore, ...)
// scraped from nps.gov. Fields that could not be extracted carry their
// placeholder value. A Site is built once per fetch and never mutated.
type Site struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Zipcode  string `json:"zipcode"`
	Phone    string `json:"phone"`
	URL      string `json:"url,omitempty"` // detail page, absolute
}

// Info renders the one-line listing form: "Name (Category): Address Zipcode".
func (s Site) Info() string {
	return fmt.Sprintf("%s (%s): %s %s", s.Name, s.Category, s.Address, s.Zipcode)
}
