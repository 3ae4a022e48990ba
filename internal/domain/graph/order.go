package graph

import (
	"slices"

	"github.com/suomipoikas/poikas-stats/internal/domain/season"
)

// SeasonLess orders seasons by year, then season name, then league, using
// the canonical orders from the season package.
func SeasonLess(a, b *Season) bool {
	return KeyLess(a.Key(), b.Key())
}

func KeyLess(a, b season.Key) bool {
	if a.Year != b.Year {
		return a.Year < b.Year
	}
	if a.Name != b.Name {
		return rankLess(season.NameOrder, a.Name, b.Name)
	}
	return rankLess(season.LeagueOrder, a.League, b.League)
}

// rankLess compares by position in order; unknown values follow known ones
// and compare alphabetically among themselves.
func rankLess(order []string, a, b string) bool {
	ra, rb := slices.Index(order, a), slices.Index(order, b)
	switch {
	case ra >= 0 && rb >= 0:
		return ra < rb
	case ra >= 0:
		return true
	case rb >= 0:
		return false
	default:
		return a < b
	}
}

// LeagueLess orders league names canonically.
func LeagueLess(a, b string) bool {
	if a == b {
		return false
	}
	return rankLess(season.LeagueOrder, a, b)
}
