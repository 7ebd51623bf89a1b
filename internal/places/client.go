package places

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/lllinda/nps-explorer/internal/logger"
	"github.com/lllinda/nps-explorer/internal/site"
)

// DefaultBaseURL is the MapQuest radius-search endpoint.
const DefaultBaseURL = "http://www.mapquestapi.com/search/v2/radius"

// Fixed query shape: 10-mile radius, at most 10 matches, ambiguous origins
// ignored, JSON output.
const (
	radius     = "10"
	maxMatches = "10"
)

// KeyedFetcher retrieves a URL's body through the request cache under an
// explicit key.
type KeyedFetcher interface {
	TextKeyed(key, url string) (string, error)
}

// Client queries the places API. The API key is an explicit construction
// argument, not global state.
type Client struct {
	apiKey  string
	baseURL string
	fetcher KeyedFetcher
}

// NewClient creates a places client fetching through fetcher.
func NewClient(apiKey, baseURL string, fetcher KeyedFetcher) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		fetcher: fetcher,
	}
}

// searchResponse mirrors the slice of the API response this tool reads.
type searchResponse struct {
	SearchResults []searchResult `json:"searchResults"`
}

type searchResult struct {
	Name   string      `json:"name"`
	Fields placeFields `json:"fields"`
}

type placeFields struct {
	GroupSICCodeName    string `json:"group_sic_code_name"`
	GroupSICCodeNameExt string `json:"group_sic_code_name_ext"`
	Address             string `json:"address"`
	City                string `json:"city"`
}

// Nearby returns points of interest within the fixed radius of a site's zip
// code. Responses are cached by the site's detail-page URL — not its
// display name, which would collide for same-named sites — falling back to
// the zip code when a site carries no URL.
func (c *Client) Nearby(s site.Site) ([]Place, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("origin", s.Zipcode)
	params.Set("radius", radius)
	params.Set("maxMatches", maxMatches)
	params.Set("ambiguities", "ignore")
	params.Set("outFormat", "json")

	reqURL := c.baseURL + "?" + params.Encode()

	cacheKey := s.URL
	if cacheKey == "" {
		cacheKey = "zip:" + s.Zipcode
	}

	body, err := c.fetcher.TextKeyed(cacheKey, reqURL)
	if err != nil {
		return nil, fmt.Errorf("querying places API: %w", err)
	}
	logger.IncrCounter("places.requests")

	var resp searchResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, fmt.Errorf("parsing places response: %w", err)
	}

	places := make([]Place, 0, len(resp.SearchResults))
	for _, result := range resp.SearchResults {
		places = append(places, convert(result))
	}
	return places, nil
}

// convert applies the silent-substitution policy to one result item.
// Category has a secondary field to try before the placeholder; address and
// city fall straight back. Missing and empty-after-trim are identical.
func convert(result searchResult) Place {
	category := strings.TrimSpace(result.Fields.GroupSICCodeName)
	if category == "" {
		category = strings.TrimSpace(result.Fields.GroupSICCodeNameExt)
	}
	if category == "" {
		category = PlaceholderCategory
	}

	address := strings.TrimSpace(result.Fields.Address)
	if address == "" {
		address = PlaceholderAddress
	}

	city := strings.TrimSpace(result.Fields.City)
	if city == "" {
		city = PlaceholderCity
	}

	return Place{
		Name:          result.Name,
		Category:      category,
		StreetAddress: address,
		City:          city,
	}
}
