package stats

import "github.com/suomipoikas/poikas-stats/internal/domain/historical"

// Policy declares how one tracked counter is merged with the arena's
// reported value. Historical is nil when the arena does not report the field.
type Policy struct {
	Field      string
	Value      func(*Record) *int
	Historical func(historical.PlayerTotals) int
	Merge      func(tracked int, reported *int) int
}

// Policies is applied in order by Reconcile.
var Policies = []Policy{
	{
		Field:      "goals",
		Value:      func(r *Record) *int { return &r.Goals },
		Historical: func(t historical.PlayerTotals) int { return t.Goals },
		Merge:      PreferLarger,
	},
	{
		Field:      "assists",
		Value:      func(r *Record) *int { return &r.Assists },
		Historical: func(t historical.PlayerTotals) int { return t.Assists },
		Merge:      PreferLarger,
	},
	{
		Field: "penalties",
		Value: func(r *Record) *int { return &r.Penalties },
		Merge: ClampZero,
	},
}

// PreferLarger credits whichever source counted more. Live tracking misses
// games, so a reported total can only fill gaps, never reduce the count.
func PreferLarger(tracked int, reported *int) int {
	if reported == nil {
		return tracked
	}
	return max(tracked, *reported)
}

func ClampZero(tracked int, _ *int) int {
	return max(tracked, 0)
}

// Reconcile merges reported totals into r using Policies. A nil totals means
// the arena has no line for the player; every policy still runs.
func Reconcile(r *Record, totals *historical.PlayerTotals) {
	ReconcileWith(r, totals, Policies)
}

func ReconcileWith(r *Record, totals *historical.PlayerTotals, policies []Policy) {
	for _, p := range policies {
		var reported *int
		if totals != nil && p.Historical != nil {
			v := p.Historical(*totals)
			reported = &v
		}
		field := p.Value(r)
		*field = p.Merge(*field, reported)
	}
}
