package season

import (
	"fmt"
	"strings"
	"time"
)

const (
	NameSpring = "Spring"
	NameSummer = "Summer"
	NameFall   = "Fall"
)

const (
	LeagueRec = "Rec"
	LeagueC   = "C"
	LeagueCC  = "CC"
)

const (
	PlayoffsPending   = "pending"
	PlayoffsChampions = "champions"
)

// Name and league orderings used when sorting seasons. Values outside these
// lists sort after the known ones.
var (
	NameOrder   = []string{NameSpring, NameSummer, NameFall}
	LeagueOrder = []string{LeagueRec, LeagueC, LeagueCC}
)

// Key identifies one league's season in a given year.
type Key struct {
	Year   int
	Name   string
	League string
}

func (k Key) String() string {
	return fmt.Sprintf("%d %s %s", k.Year, k.Name, k.League)
}

// Path is the lowercased, slash-joined form used in canonical URLs.
func (k Key) Path() string {
	return fmt.Sprintf("%d/%s/%s", k.Year, strings.ToLower(k.Name), strings.ToLower(k.League))
}

// Season is one league's roster and game list for a year/season-name pair.
type Season struct {
	Year        int
	Name        string
	League      string
	Playoffs    string
	Roster      []string
	Games       []Game
	Wins        *int
	Losses      *int
	Ties        *int
	Description string
	Aside       string
	Sidebar     string
	Schedule    string
	Photos      []string
	Videos      []string
}

func (s Season) Key() Key {
	return Key{Year: s.Year, Name: s.Name, League: s.League}
}

// IsCurrent reports whether the season is still being played.
func (s Season) IsCurrent() bool {
	return s.Playoffs == PlayoffsPending
}

func (s Season) IsChampion() bool {
	return s.Playoffs == PlayoffsChampions
}

func (s Season) HasGames() bool {
	return len(s.Games) > 0
}

// Lists reports whether name appears on the roster.
func (s Season) Lists(name string) bool {
	for _, n := range s.Roster {
		if n == name {
			return true
		}
	}
	return false
}

func (s Season) Validate() error {
	if s.Year <= 0 {
		return fmt.Errorf("season year must be positive")
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("season name is required")
	}
	if strings.TrimSpace(s.League) == "" {
		return fmt.Errorf("season league is required")
	}
	for i, g := range s.Games {
		if err := g.Validate(); err != nil {
			return fmt.Errorf("%s game %d: %w", s.Key(), i, err)
		}
	}

	return nil
}

// Result is a game outcome as recorded by the club.
type Result string

const (
	ResultPending   Result = "pending"
	ResultWon       Result = "won"
	ResultLost      Result = "lost"
	ResultLostOT    Result = "lost-ot"
	ResultTied      Result = "tied"
	ResultForfeited Result = "forfeited"
	ResultCancelled Result = "cancelled"
)

// PlayerGameStats is one player's line for a single game.
type PlayerGameStats struct {
	Goals     int
	Assists   int
	Penalties int
}

// Game is a single game within a season.
type Game struct {
	Opponent        string
	Us              *int
	Them            *int
	ShotsFor        *int
	ShotsAgainst    *int
	EmptyNetAgainst int
	Result          Result
	Sisu            string
	Notable         string
	Date            *time.Time
	Goalie          string
	Stats           map[string]PlayerGameStats
}

func (g Game) Validate() error {
	if strings.TrimSpace(g.Opponent) == "" {
		return fmt.Errorf("game opponent is required")
	}
	if g.EmptyNetAgainst < 0 {
		return fmt.Errorf("empty net goals against cannot be negative")
	}

	return nil
}

// Counts reports whether the game contributes to statistical tallies.
// Pending games are upcoming and cancelled games never happened.
func (g Game) Counts() bool {
	switch g.Result {
	case ResultPending, ResultCancelled:
		return false
	default:
		return true
	}
}

func (g Game) IsUpcoming() bool {
	return g.Result == ResultPending
}

func (g Game) IsWin() bool {
	return g.Result == ResultWon
}

func (g Game) IsLoss() bool {
	return g.Result == ResultLost
}

// IsTie reports ties and overtime losses, which the club books together.
func (g Game) IsTie() bool {
	return g.Result == ResultTied || g.Result == ResultLostOT
}

// HasShots reports whether both shot counts were recorded.
func (g Game) HasShots() bool {
	return g.ShotsFor != nil && g.ShotsAgainst != nil
}

// GoalsAgainst is the opponent score, zero when not recorded.
func (g Game) GoalsAgainst() int {
	if g.Them == nil {
		return 0
	}
	return *g.Them
}

func (g Game) GoalsFor() int {
	if g.Us == nil {
		return 0
	}
	return *g.Us
}

// StatsFor returns the player's line for this game, if one was recorded.
func (g Game) StatsFor(name string) (PlayerGameStats, bool) {
	if g.Stats == nil {
		return PlayerGameStats{}, false
	}
	s, ok := g.Stats[name]
	return s, ok
}
