package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/lllinda/nps-explorer/internal/places"
	"github.com/lllinda/nps-explorer/internal/site"
)

const separatorWidth = 50

func separator() string {
	return strings.Repeat("-", separatorWidth)
}

// WriteSiteListing prints the numbered, 1-indexed listing of sites for a
// state. Numbering follows slice order, which is document order on the
// state page.
func WriteSiteListing(w io.Writer, stateName string, sites []site.Site) {
	fmt.Fprintln(w, separator())
	fmt.Fprintf(w, "List of national sites in %s\n", stateName)
	fmt.Fprintln(w, separator())

	if len(sites) == 0 {
		fmt.Fprintln(w, "No sites found.")
		return
	}

	for i, s := range sites {
		fmt.Fprintf(w, "[%d] %s\n", i+1, s.Info())
	}
}

// WritePlaces prints the nearby-places listing for a site, or an explicit
// empty message.
func WritePlaces(w io.Writer, siteName string, results []places.Place) {
	fmt.Fprintln(w, separator())
	fmt.Fprintf(w, "Places near %s\n", strings.TrimSpace(siteName))
	fmt.Fprintln(w, separator())

	if len(results) == 0 {
		fmt.Fprintln(w, "No nearby places found.")
		return
	}

	for _, p := range results {
		fmt.Fprintf(w, "- %s\n", p.Info())
	}
}
