// Package graph holds the cross-linked, statistically enriched view of the
// club that presentation code reads. Values here are built once per process
// by the graph service and shared read-only afterwards.
package graph

import (
	"github.com/suomipoikas/poikas-stats/internal/domain/historical"
	"github.com/suomipoikas/poikas-stats/internal/domain/season"
	"github.com/suomipoikas/poikas-stats/internal/platform/naming"
)

// TeamRecord is a resolved win/loss/tie tally.
type TeamRecord struct {
	Wins   int
	Losses int
	Ties   int
}

func (r TeamRecord) String() string {
	return naming.FullRecord(r.Wins, r.Losses, r.Ties)
}

// Season is a raw season plus the fields derived from it. Roster resolution
// and game cross-references live in Index, not here.
type Season struct {
	season.Season

	URL        string
	Link       string
	Current    bool
	Record     TeamRecord
	Historical *historical.SeasonStats
}

func (s *Season) Title() string {
	return s.Key().String()
}

// League groups every season that shares a league name.
type League struct {
	Name    string
	Seasons []*Season
	Current *Season
}
