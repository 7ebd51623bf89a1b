package scraper

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/lllinda/nps-explorer/internal/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFetcher serves canned bodies by URL, tracking fetch counts.
type fakeFetcher struct {
	pages   map[string]string
	fetched map[string]int
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		pages:   make(map[string]string),
		fetched: make(map[string]int),
	}
}

func (f *fakeFetcher) addFixture(t *testing.T, url, fixture string) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", fixture))
	require.NoError(t, err)
	f.pages[url] = string(data)
}

func (f *fakeFetcher) Text(url string) (string, error) {
	f.fetched[url]++
	body, ok := f.pages[url]
	if !ok {
		return "", fmt.Errorf("fetching %s: no route to host", url)
	}
	return body, nil
}

const testBase = "https://www.nps.gov"

func TestStateDirectory(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.addFixture(t, testBase+"/index.htm", "index.html")

	s := New(fetcher, testBase)
	directory, err := s.StateDirectory()
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"michigan":   testBase + "/state/mi/index.htm",
		"california": testBase + "/state/ca/index.htm",
		"wyoming":    testBase + "/state/wy/index.htm",
	}, directory)
}

func TestStateURLResolvesThroughDirectory(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.addFixture(t, testBase+"/index.htm", "index.html")

	s := New(fetcher, testBase)

	url, err := s.StateURL("michigan", "mi")
	require.NoError(t, err)
	assert.Equal(t, testBase+"/state/mi/index.htm", url)

	// Not in the directory: fall back to the fixed path shape
	url, err = s.StateURL("guam", "gu")
	require.NoError(t, err)
	assert.Equal(t, testBase+"/state/gu/index.htm", url)
}

func TestSitesForState(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.addFixture(t, testBase+"/state/mi/index.htm", "state_mi.html")
	fetcher.addFixture(t, testBase+"/isro/index.htm", "detail_isro.html")
	fetcher.addFixture(t, testBase+"/piro/index.htm", "detail_missing.html")

	s := New(fetcher, testBase)
	sites, err := s.SitesForState(testBase + "/state/mi/index.htm")
	require.NoError(t, err)
	require.Len(t, sites, 2)

	// Document order defines the numbered listing
	assert.Equal(t, "Isle Royale", sites[0].Name)
	assert.Equal(t, "National Park", sites[0].Category)
	assert.Equal(t, "Houghton, MI", sites[0].Address)
	assert.Equal(t, "49931", sites[0].Zipcode)
	assert.Equal(t, "(906) 482-0984", sites[0].Phone)
	assert.Equal(t, testBase+"/isro/index.htm", sites[0].URL)

	// Listing name comes from the state page even when the detail page
	// names the site differently
	assert.Equal(t, "Pictured Rocks", sites[1].Name)
	assert.Equal(t, site.PlaceholderCategory, sites[1].Category)
}

func TestSitesForStateEmpty(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.addFixture(t, testBase+"/state/nd/index.htm", "state_empty.html")

	s := New(fetcher, testBase)
	sites, err := s.SitesForState(testBase + "/state/nd/index.htm")
	require.NoError(t, err)
	assert.Empty(t, sites)
}

func TestSitesForStatePropagatesFetchError(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.addFixture(t, testBase+"/state/mi/index.htm", "state_mi.html")
	// Detail pages deliberately absent

	s := New(fetcher, testBase)
	_, err := s.SitesForState(testBase + "/state/mi/index.htm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no route to host")
}
