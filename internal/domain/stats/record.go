// Package stats defines the additive statistics record shared by season and
// career scopes, and the rules that derive ratios from it.
package stats

import (
	"fmt"
	"strconv"

	"github.com/suomipoikas/poikas-stats/internal/platform/naming"
)

// PenaltyMinutesPerPenalty is the flat minor used by the arena.
const PenaltyMinutesPerPenalty = 3

// Record accumulates skater, goaltending and team totals. Counter fields are
// additive; ratio and text fields are recomputed by Derive.
type Record struct {
	Goals          int
	Assists        int
	Points         int
	Penalties      int
	PenaltyMinutes int

	GoalieGames           int
	GoalieGamesWithShots  int
	GoalieWins            int
	GoalieLosses          int
	GoalieTies            int
	ShotsFor              int
	ShotsAgainst          int
	GoalsAgainst          int
	GoalsAgainstWithShots int
	GoalsAgainstEmptyNet  int
	Shutouts              int
	Saves                 int

	SavePercentage      float64
	GoalsAgainstAverage float64
	AverageShotsAgainst float64
	GoalieRecord        string

	TeamWins   int
	TeamLosses int
	TeamTies   int
	Record     string

	SavePercentageText      string
	GoalsAgainstAverageText string
	AverageShotsAgainstText string
}

// Default returns a zeroed record.
func Default() Record {
	return Record{}
}

// Add folds the counters of other into r. Derived fields are left alone; call
// Derive afterwards so ratios reflect the cumulative totals.
func (r *Record) Add(other Record) {
	r.Goals += other.Goals
	r.Assists += other.Assists
	r.Points += other.Points
	r.Penalties += other.Penalties
	r.PenaltyMinutes += other.PenaltyMinutes

	r.GoalieGames += other.GoalieGames
	r.GoalieGamesWithShots += other.GoalieGamesWithShots
	r.GoalieWins += other.GoalieWins
	r.GoalieLosses += other.GoalieLosses
	r.GoalieTies += other.GoalieTies
	r.ShotsFor += other.ShotsFor
	r.ShotsAgainst += other.ShotsAgainst
	r.GoalsAgainst += other.GoalsAgainst
	r.GoalsAgainstWithShots += other.GoalsAgainstWithShots
	r.GoalsAgainstEmptyNet += other.GoalsAgainstEmptyNet
	r.Shutouts += other.Shutouts

	r.TeamWins += other.TeamWins
	r.TeamLosses += other.TeamLosses
	r.TeamTies += other.TeamTies
}

// SetTeamRecord stores the team's win/loss/tie totals for the scope.
func (r *Record) SetTeamRecord(wins, losses, ties int) {
	r.TeamWins = wins
	r.TeamLosses = losses
	r.TeamTies = ties
}

// Finalize completes a season record after game walking and reconciliation.
func (r *Record) Finalize() {
	r.Points = r.Goals + r.Assists
	r.PenaltyMinutes = r.Penalties * PenaltyMinutesPerPenalty
	r.Derive()
}

// GoalsAgainstNet excludes empty-net goals, which are not the goalie's.
func (r *Record) GoalsAgainstNet() int {
	return r.GoalsAgainst - r.GoalsAgainstEmptyNet
}

func (r *Record) GoalsAgainstWithShotsNet() int {
	return r.GoalsAgainstWithShots - r.GoalsAgainstEmptyNet
}

// Derive recomputes ratios and text fields from the counters.
//
// Save percentage and shots-against average keep their previous value when
// there is nothing to divide by. Goals-against average is not guarded and is
// NaN for a record with no goalie games; display code renders it as a dash.
func (r *Record) Derive() {
	withShotsNet := r.GoalsAgainstWithShotsNet()

	r.Saves = r.ShotsAgainst - withShotsNet
	if withShotsNet > 0 {
		r.SavePercentage = float64(r.ShotsAgainst-withShotsNet) / float64(r.ShotsAgainst) * 100
	}
	if r.GoalieGamesWithShots > 0 {
		r.AverageShotsAgainst = float64(r.ShotsAgainst) / float64(r.GoalieGamesWithShots)
	}
	r.GoalsAgainstAverage = float64(r.GoalsAgainstNet()) / float64(r.GoalieGames)
	r.GoalieRecord = fmt.Sprintf("%d-%d-%d", r.GoalieWins, r.GoalieLosses, r.GoalieTies)
	r.Record = naming.FullRecord(r.TeamWins, r.TeamLosses, r.TeamTies)

	r.SavePercentageText = strconv.FormatFloat(r.SavePercentage, 'f', 1, 64)
	r.GoalsAgainstAverageText = strconv.FormatFloat(r.GoalsAgainstAverage, 'f', 2, 64)
	r.AverageShotsAgainstText = strconv.FormatFloat(r.AverageShotsAgainst, 'f', 2, 64)
}

// IsGoalie reports whether the record holds any goaltending.
func (r *Record) IsGoalie() bool {
	return r.GoalieGames > 0
}
