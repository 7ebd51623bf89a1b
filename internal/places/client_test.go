package places

import (
	"net/url"
	"testing"

	"github.com/lllinda/nps-explorer/internal/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFetcher records the key and URL it was asked for and returns a canned
// body.
type fakeFetcher struct {
	body    string
	lastKey string
	lastURL string
}

func (f *fakeFetcher) TextKeyed(key, reqURL string) (string, error) {
	f.lastKey = key
	f.lastURL = reqURL
	return f.body, nil
}

const sampleResponse = `{
	"searchResults": [
		{
			"name": "Keweenaw Co-op",
			"fields": {
				"group_sic_code_name": "Grocery Stores",
				"address": "1035 Ethel Ave",
				"city": "Hancock"
			}
		},
		{
			"name": "No Address Diner",
			"fields": {
				"group_sic_code_name": "",
				"group_sic_code_name_ext": "Restaurants",
				"city": "Houghton"
			}
		},
		{
			"name": "Blank Address Bar",
			"fields": {
				"address": "",
				"city": ""
			}
		}
	]
}`

func testSite() site.Site {
	return site.Site{
		Name:    "Isle Royale",
		Zipcode: "49931",
		URL:     "https://www.nps.gov/isro/index.htm",
	}
}

func TestNearbyQueryShape(t *testing.T) {
	fetcher := &fakeFetcher{body: `{"searchResults": []}`}
	c := NewClient("test-key", "http://places.test/radius", fetcher)

	places, err := c.Nearby(testSite())
	require.NoError(t, err)
	assert.Empty(t, places)

	parsed, err := url.Parse(fetcher.lastURL)
	require.NoError(t, err)
	q := parsed.Query()
	assert.Equal(t, "test-key", q.Get("key"))
	assert.Equal(t, "49931", q.Get("origin"))
	assert.Equal(t, "10", q.Get("radius"))
	assert.Equal(t, "10", q.Get("maxMatches"))
	assert.Equal(t, "ignore", q.Get("ambiguities"))
	assert.Equal(t, "json", q.Get("outFormat"))
}

func TestNearbyCacheKeyIsSiteURL(t *testing.T) {
	fetcher := &fakeFetcher{body: `{"searchResults": []}`}
	c := NewClient("k", "", fetcher)

	_, err := c.Nearby(testSite())
	require.NoError(t, err)
	assert.Equal(t, "https://www.nps.gov/isro/index.htm", fetcher.lastKey)

	// Sites without a detail URL key by zip instead
	s := testSite()
	s.URL = ""
	_, err = c.Nearby(s)
	require.NoError(t, err)
	assert.Equal(t, "zip:49931", fetcher.lastKey)
}

func TestNearbyConversion(t *testing.T) {
	fetcher := &fakeFetcher{body: sampleResponse}
	c := NewClient("k", "", fetcher)

	places, err := c.Nearby(testSite())
	require.NoError(t, err)
	require.Len(t, places, 3)

	assert.Equal(t, Place{
		Name:          "Keweenaw Co-op",
		Category:      "Grocery Stores",
		StreetAddress: "1035 Ethel Ave",
		City:          "Hancock",
	}, places[0])

	// Empty primary category falls back to the secondary field name;
	// missing address falls back to the placeholder
	assert.Equal(t, "Restaurants", places[1].Category)
	assert.Equal(t, PlaceholderAddress, places[1].StreetAddress)
	assert.Equal(t, "Houghton", places[1].City)

	// Missing and empty fields are treated identically
	assert.Equal(t, PlaceholderCategory, places[2].Category)
	assert.Equal(t, PlaceholderAddress, places[2].StreetAddress)
	assert.Equal(t, PlaceholderCity, places[2].City)
}

func TestNearbyMalformedResponse(t *testing.T) {
	fetcher := &fakeFetcher{body: "<html>not json</html>"}
	c := NewClient("k", "", fetcher)

	_, err := c.Nearby(testSite())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing places response")
}

func TestPlaceInfo(t *testing.T) {
	p := Place{
		Name:          "Keweenaw Co-op",
		Category:      "Grocery Stores",
		StreetAddress: "1035 Ethel Ave",
		City:          "Hancock",
	}
	assert.Equal(t, "Keweenaw Co-op (Grocery Stores): 1035 Ethel Ave, Hancock", p.Info())
}
