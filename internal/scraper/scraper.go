package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/lllinda/nps-explorer/internal/site"
)

// DefaultBaseURL is the production nps.gov origin.
const DefaultBaseURL = "https://www.nps.gov"

// Fetcher retrieves a URL's body, normally through the request cache.
type Fetcher interface {
	Text(url string) (string, error)
}

// Scraper builds the state directory and per-state site lists from nps.gov.
type Scraper struct {
	fetcher Fetcher
	baseURL string
}

// New creates a Scraper that fetches through fetcher against baseURL.
func New(fetcher Fetcher, baseURL string) *Scraper {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Scraper{
		fetcher: fetcher,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// StateDirectory fetches the index page and returns lowercase state name to
// absolute state-page URL. The page fetch is cached; the parse is redone on
// every call.
func (s *Scraper) StateDirectory() (map[string]string, error) {
	body, err := s.fetcher.Text(s.baseURL + "/index.htm")
	if err != nil {
		return nil, fmt.Errorf("fetching index page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing index page: %w", err)
	}

	directory := make(map[string]string)
	doc.Find("ul.dropdown-menu.SearchBar-keywordSearch > li").Each(func(i int, li *goquery.Selection) {
		link := li.Find("a").First()
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		name := strings.ToLower(strings.TrimSpace(li.Text()))
		if name == "" {
			return
		}
		directory[name] = s.baseURL + href
	})

	return directory, nil
}

// StateURL resolves a state's page URL: by directory lookup on the
// canonical full name, falling back to the fixed path shape when the
// directory does not list it.
func (s *Scraper) StateURL(name, abbrev string) (string, error) {
	directory, err := s.StateDirectory()
	if err != nil {
		return "", err
	}
	if url, ok := directory[name]; ok {
		return url, nil
	}
	return fmt.Sprintf("%s/state/%s/index.htm", s.baseURL, abbrev), nil
}

// SitesForState fetches a state page and returns its sites in document
// order, which defines the numbered listing shown to the user. Each site's
// detail page is fetched to fill in category, address, zip, and phone. A
// state with no listed sites yields an empty slice.
func (s *Scraper) SitesForState(stateURL string) ([]site.Site, error) {
	body, err := s.fetcher.Text(stateURL)
	if err != nil {
		return nil, fmt.Errorf("fetching state page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing state page: %w", err)
	}

	sites := make([]site.Site, 0)
	var fetchErr error

	doc.Find("div#parkListResults h3").EachWithBreak(func(i int, h3 *goquery.Selection) bool {
		link := h3.Find("a").First()
		name := strings.TrimSpace(link.Text())
		href, ok := link.Attr("href")
		if !ok || name == "" {
			return true
		}

		detailURL := s.baseURL + href + "index.htm"
		detail, err := s.SiteDetail(detailURL)
		if err != nil {
			fetchErr = err
			return false
		}

		// The listing name comes from the state page; the detail page
		// supplies the remaining fields.
		detail.Name = name
		sites = append(sites, detail)
		return true
	})

	if fetchErr != nil {
		return nil, fetchErr
	}
	return sites, nil
}

// SiteDetail fetches one site's detail page and extracts its fields,
// substituting placeholders for anything missing.
func (s *Scraper) SiteDetail(detailURL string) (site.Site, error) {
	body, err := s.fetcher.Text(detailURL)
	if err != nil {
		return site.Site{}, fmt.Errorf("fetching detail page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return site.Site{}, fmt.Errorf("parsing detail page: %w", err)
	}

	return extractDetail(doc, detailURL), nil
}
