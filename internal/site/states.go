package site

import "strings"

// stateAbbrevs maps lowercase full state name to two-letter abbreviation.
// Includes DC and the territories that have NPS state pages, plus the
// "national" pseudo-state the site uses for nationwide listings.
var stateAbbrevs = map[string]string{
	"alaska": "ak", "alabama": "al", "arkansas": "ar", "american samoa": "as",
	"arizona": "az", "california": "ca", "colorado": "co", "connecticut": "ct",
	"district of columbia": "dc", "delaware": "de", "florida": "fl", "georgia": "ga",
	"guam": "gu", "hawaii": "hi", "iowa": "ia", "idaho": "id", "illinois": "il",
	"indiana": "in", "kansas": "ks", "kentucky": "ky", "louisiana": "la",
	"massachusetts": "ma", "maryland": "md", "maine": "me", "michigan": "mi",
	"minnesota": "mn", "missouri": "mo", "northern mariana islands": "mp",
	"mississippi": "ms", "montana": "mt", "national": "na", "north carolina": "nc",
	"north dakota": "nd", "nebraska": "ne", "new hampshire": "nh", "new jersey": "nj",
	"new mexico": "nm", "nevada": "nv", "new york": "ny", "ohio": "oh", "oklahoma": "ok",
	"oregon": "or", "pennsylvania": "pa", "puerto rico": "pr", "rhode island": "ri",
	"south carolina": "sc", "south dakota": "sd", "tennessee": "tn", "texas": "tx",
	"utah": "ut", "virginia": "va", "virgin islands": "vi", "vermont": "vt",
	"washington": "wa", "wisconsin": "wi", "west virginia": "wv", "wyoming": "wy",
}

// stateNames is the reverse mapping, abbreviation to full name. Built once
// at init so both directions resolve to the same canonical state.
var stateNames = func() map[string]string {
	names := make(map[string]string, len(stateAbbrevs))
	for name, abbrev := range stateAbbrevs {
		names[abbrev] = name
	}
	return names
}()

// ResolveState accepts a full state name or two-letter abbreviation in any
// letter case and returns the canonical lowercase (name, abbreviation) pair.
// The second return is false when the input names no known state.
func ResolveState(input string) (name, abbrev string, ok bool) {
	key := strings.ToLower(strings.TrimSpace(input))

	if len(key) == 2 {
		if full, found := stateNames[key]; found {
			return full, key, true
		}
		return "", "", false
	}

	if ab, found := stateAbbrevs[key]; found {
		return key, ab, true
	}
	return "", "", false
}
