package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lllinda/nps-explorer/internal/logger"
	"github.com/lllinda/nps-explorer/internal/places"
	"github.com/lllinda/nps-explorer/internal/site"
)

// SiteLister resolves state URLs and builds per-state site lists.
type SiteLister interface {
	StateURL(name, abbrev string) (string, error)
	SitesForState(stateURL string) ([]site.Site, error)
}

// PlaceFinder looks up nearby points of interest for a site.
type PlaceFinder interface {
	Nearby(s site.Site) ([]places.Place, error)
}

// Session runs the interactive loop: prompt for a state, list its sites,
// then answer numbered detail choices until "back" or "exit". Input and
// output are injected so the loop is testable without a terminal.
type Session struct {
	lister SiteLister
	finder PlaceFinder
	in     *bufio.Scanner
	out    io.Writer
}

// NewSession creates an interactive session reading from in and writing to
// out.
func NewSession(lister SiteLister, finder PlaceFinder, in io.Reader, out io.Writer) *Session {
	return &Session{
		lister: lister,
		finder: finder,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// readLine returns the next input line, lowercased and trimmed. ok is false
// on end of input.
func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(s.in.Text())), true
}

// Run drives the loop until "exit" or end of input.
func (s *Session) Run() error {
	for {
		fmt.Fprint(s.out, `Enter a state name (e.g. Michigan, michigan) or "exit": `)

		input, ok := s.readLine()
		if !ok || input == "exit" {
			return nil
		}

		name, abbrev, found := site.ResolveState(input)
		if !found {
			fmt.Fprintln(s.out, "[Error] Enter proper state name")
			fmt.Fprintln(s.out)
			continue
		}

		stateURL, err := s.lister.StateURL(name, abbrev)
		if err != nil {
			logger.Error("resolving state URL", logger.Fields{"state": name}, err)
			fmt.Fprintf(s.out, "[Error] %v\n", err)
			continue
		}

		sites, err := s.lister.SitesForState(stateURL)
		if err != nil {
			logger.Error("building site list", logger.Fields{"state": name, "url": stateURL}, err)
			fmt.Fprintf(s.out, "[Error] %v\n", err)
			continue
		}

		WriteSiteListing(s.out, name, sites)

		if exit := s.detailLoop(sites); exit {
			return nil
		}
	}
}

// detailLoop handles numbered detail choices for the current site list.
// Returns true when the whole session should terminate.
func (s *Session) detailLoop(sites []site.Site) bool {
	for {
		fmt.Fprint(s.out, `Choose the number for detail search or "exit" or "back": `)

		input, ok := s.readLine()
		if !ok || input == "exit" {
			return true
		}
		if input == "back" {
			return false
		}

		choice, err := strconv.Atoi(input)
		if err != nil || choice < 1 || choice > len(sites) {
			fmt.Fprintln(s.out, "[Error] Invalid input")
			fmt.Fprintln(s.out, separator())
			continue
		}

		chosen := sites[choice-1]
		results, err := s.finder.Nearby(chosen)
		if err != nil {
			logger.Error("querying nearby places", logger.Fields{"site": chosen.Name}, err)
			fmt.Fprintf(s.out, "[Error] %v\n", err)
			continue
		}

		WritePlaces(s.out, chosen.Name, results)
	}
}
