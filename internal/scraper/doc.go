// Package scraper fetches and parses nps.gov pages: the index page for the
// state directory, state pages for site listings, and per-site detail pages
// for category, address, zip code, and phone.
//
// Every page fetch goes through the request cache. Field extraction is
// best-effort: a missing or empty field resolves to its placeholder and is
// never surfaced as an error.
package scraper
