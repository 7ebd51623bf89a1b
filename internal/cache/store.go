// Package cache provides the persistent request cache that makes repeated
// scraping and API runs cheap: a key-value store keyed by request URL, with
// a whole-file JSON backend and a sqlite backend, plus a fetch-through
// helper that applies a politeness delay before any real network fetch.
package cache

// Store is a persistent key-value store. Keys are request URLs (or an
// explicit caller-chosen key); values are raw response bodies. Entries
// never expire and are never evicted.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)

	// Put stores value under key, overwriting any previous value, and
	// persists the change before returning.
	Put(key, value string) error

	// Keys returns all stored keys in unspecified order.
	Keys() ([]string, error)

	// Close releases any underlying resources.
	Close() error
}
