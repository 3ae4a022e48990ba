package loader

// Club data file: hand-maintained identities and seasons.

type clubFile struct {
	Players []playerDTO `json:"players" validate:"dive"`
	Leagues []leagueDTO `json:"leagues" validate:"dive"`
}

type playerDTO struct {
	Number *int   `json:"number"`
	Name   string `json:"name" validate:"required"`
	Bio    string `json:"bio"`
	Pos    string `json:"pos"`
	Shoots string `json:"shoots"`
	Ht     string `json:"ht"`
	Wt     *int   `json:"wt" validate:"omitempty,gt=0"`
	Born   *int   `json:"born" validate:"omitempty,gt=0"`
	Role   string `json:"role" validate:"omitempty,oneof=captain"`
}

type leagueDTO struct {
	Year        int       `json:"year" validate:"required,gt=0"`
	Season      string    `json:"season" validate:"required"`
	Level       string    `json:"level" validate:"required"`
	Playoffs    string    `json:"playoffs"`
	Roster      []string  `json:"roster" validate:"dive,required"`
	Wins        *int      `json:"wins" validate:"omitempty,gte=0"`
	Losses      *int      `json:"losses" validate:"omitempty,gte=0"`
	Ties        *int      `json:"ties" validate:"omitempty,gte=0"`
	Sidebar     string    `json:"sidebar"`
	Games       []gameDTO `json:"games" validate:"dive"`
	Description string    `json:"description"`
	Aside       string    `json:"aside"`
	Photos      []string  `json:"photos"`
	Videos      []string  `json:"videos"`
	Schedule    string    `json:"schedule"`
}

type gameDTO struct {
	Vs        string                 `json:"vs" validate:"required"`
	Us        *int                   `json:"us" validate:"omitempty,gte=0"`
	Them      *int                   `json:"them" validate:"omitempty,gte=0"`
	ShotsUs   *int                   `json:"shotsUs" validate:"omitempty,gte=0"`
	ShotsThem *int                   `json:"shotsThem" validate:"omitempty,gte=0"`
	EmptyNet  int                    `json:"emptyNet" validate:"gte=0"`
	Result    string                 `json:"result" validate:"omitempty,oneof=pending won lost lost-ot tied forfeited cancelled"`
	Sisu      string                 `json:"sisu"`
	Notable   string                 `json:"notable"`
	Date      string                 `json:"date"`
	Goalie    string                 `json:"goalie"`
	Stats     map[string]statLineDTO `json:"stats" validate:"dive"`
}

type statLineDTO struct {
	Goals     int `json:"goals" validate:"gte=0"`
	Assists   int `json:"assists" validate:"gte=0"`
	Penalties int `json:"penalties" validate:"gte=0"`
}

// Historical files: arena statistics keyed by season title.

type historicalSeasonDTO struct {
	Year      int               `json:"year" validate:"required,gt=0"`
	Season    string            `json:"season" validate:"required"`
	Level     *string           `json:"level"`
	Standings []standingDTO     `json:"standings" validate:"dive"`
	Players   []playerTotalsDTO `json:"players" validate:"dive"`
	Goalies   []goalieTotalsDTO `json:"goalies" validate:"dive"`
}

type standingDTO struct {
	TeamName         string `json:"team_name" validate:"required"`
	Points           int    `json:"points"`
	Wins             int    `json:"wins"`
	Losses           int    `json:"losses"`
	Ties             int    `json:"ties"`
	GamesPlayed      int    `json:"games_played"`
	OTL              int    `json:"otl"`
	GoalsFor         int    `json:"goals_for"`
	GoalsAgainst     int    `json:"goals_against"`
	GoalDifferential int    `json:"goal_differential"`
}

type playerTotalsDTO struct {
	Name           string `json:"name" validate:"required"`
	Number         string `json:"number"`
	GamesPlayed    int    `json:"games_played" validate:"gte=0"`
	Goals          int    `json:"goals" validate:"gte=0"`
	Assists        int    `json:"assists" validate:"gte=0"`
	Points         int    `json:"points" validate:"gte=0"`
	PenaltyMinutes int    `json:"penalty_minutes" validate:"gte=0"`
}

type goalieTotalsDTO struct {
	Name           string  `json:"name" validate:"required"`
	Number         string  `json:"number"`
	GamesPlayed    int     `json:"games_played" validate:"gte=0"`
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	OTLosses       int     `json:"ot_losses"`
	Saves          int     `json:"saves"`
	GoalsAgainst   int     `json:"goals_against"`
	GAA            float64 `json:"gaa"`
	SavePercentage float64 `json:"save_percentage"`
	Shutouts       int     `json:"shutouts"`
}
