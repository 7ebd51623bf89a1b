package cache

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lllinda/nps-explorer/internal/logger"
)

const (
	// UserAgent identifies this tool to nps.gov and the places API.
	UserAgent = "nps-explorer/1.0 (github.com/lllinda/nps-explorer)"

	// Timeout bounds every outbound request.
	Timeout = 30 * time.Second

	// DefaultDelay is the politeness pause before any real network fetch.
	DefaultDelay = 1 * time.Second
)

// Fetcher performs HTTP GETs through a Store. Hits return the cached body
// without touching the network; misses sleep the politeness delay, fetch,
// store, and return. There are no retries.
type Fetcher struct {
	store  Store
	client *http.Client
	delay  time.Duration
	sleep  func(time.Duration) // injectable for tests
}

// NewFetcher creates a fetch-through helper on top of store.
func NewFetcher(store Store, delay time.Duration) *Fetcher {
	return &Fetcher{
		store: store,
		client: &http.Client{
			Timeout: Timeout,
		},
		delay: delay,
		sleep: time.Sleep,
	}
}

// Text fetches url through the cache, keyed by the url itself.
func (f *Fetcher) Text(url string) (string, error) {
	return f.TextKeyed(url, url)
}

// TextKeyed fetches url through the cache under an explicit key. The places
// client uses this to key API responses by site identity instead of by the
// full query URL (which embeds the credential).
func (f *Fetcher) TextKeyed(key, url string) (string, error) {
	if cached, ok, err := f.store.Get(key); err == nil && ok {
		logger.Debug("using cache", logger.Fields{"key": key})
		logger.IncrCounter("cache.hit")
		return cached, nil
	}

	logger.Debug("fetching", logger.Fields{"url": url})
	logger.IncrCounter("cache.miss")
	f.sleep(f.delay)

	body, err := f.get(url)
	if err != nil {
		return "", err
	}
	logger.IncrCounter("fetch.pages")

	if err := f.store.Put(key, body); err != nil {
		return "", fmt.Errorf("caching response: %w", err)
	}
	return body, nil
}

func (f *Fetcher) get(url string) (string, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: unexpected status code: %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	return string(body), nil
}
