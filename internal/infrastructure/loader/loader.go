// Package loader reads the club data file and the scraped arena statistics
// from disk and maps them onto domain values.
package loader

import (
	"context"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/sourcegraph/conc/pool"

	"github.com/suomipoikas/poikas-stats/internal/domain/historical"
	"github.com/suomipoikas/poikas-stats/internal/domain/player"
	"github.com/suomipoikas/poikas-stats/internal/domain/season"
	"github.com/suomipoikas/poikas-stats/internal/platform/logging"
)

// ErrInvalidData marks files that decode but fail validation.
var ErrInvalidData = crerr.New("invalid data")

type Options struct {
	DataFile        string
	HistoricalFiles []string
	Workers         int
}

type Loader struct {
	dataFile        string
	historicalFiles []string
	workers         int
	validate        *validator.Validate
	logger          *logging.Logger
}

// Club is the decoded content of the data file.
type Club struct {
	Players []player.Player
	Seasons []season.Season
}

func New(opts Options, logger *logging.Logger) *Loader {
	if logger == nil {
		logger = logging.Default()
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	return &Loader{
		dataFile:        strings.TrimSpace(opts.DataFile),
		historicalFiles: append([]string(nil), opts.HistoricalFiles...),
		workers:         workers,
		validate:        validator.New(),
		logger:          logger,
	}
}

func (l *Loader) LoadClub(ctx context.Context) (Club, error) {
	if err := ctx.Err(); err != nil {
		return Club{}, err
	}
	if l.dataFile == "" {
		return Club{}, crerr.Mark(crerr.New("data file is not configured"), ErrInvalidData)
	}

	var file clubFile
	if err := l.decode(l.dataFile, &file); err != nil {
		return Club{}, err
	}
	if err := l.check(l.dataFile, &file); err != nil {
		return Club{}, err
	}

	club := Club{
		Players: make([]player.Player, 0, len(file.Players)),
		Seasons: make([]season.Season, 0, len(file.Leagues)),
	}
	for _, p := range file.Players {
		club.Players = append(club.Players, mapPlayer(p))
	}
	for i, league := range file.Leagues {
		s, err := mapSeason(league)
		if err != nil {
			return Club{}, crerr.Mark(crerr.Wrapf(err, "%s: league %d", l.dataFile, i), ErrInvalidData)
		}
		club.Seasons = append(club.Seasons, s)
	}

	l.logger.DebugContext(ctx, "club data loaded",
		"file", l.dataFile,
		"players", len(club.Players),
		"seasons", len(club.Seasons),
	)
	return club, nil
}

type historicalFile struct {
	index int
	items []historical.SeasonStats
}

// LoadHistorical decodes every historical file concurrently. Records keep
// file order, then title order within a file.
func (l *Loader) LoadHistorical(ctx context.Context) ([]historical.SeasonStats, error) {
	if len(l.historicalFiles) == 0 {
		return nil, nil
	}

	p := pool.NewWithResults[historicalFile]().
		WithContext(ctx).
		WithCancelOnError().
		WithMaxGoroutines(l.workers)
	for i, path := range l.historicalFiles {
		p.Go(func(ctx context.Context) (historicalFile, error) {
			items, err := l.loadHistoricalFile(ctx, path)
			if err != nil {
				return historicalFile{}, err
			}
			return historicalFile{index: i, items: items}, nil
		})
	}

	files, err := p.Wait()
	if err != nil {
		return nil, err
	}
	sort.Slice(files, func(i, j int) bool { return files[i].index < files[j].index })

	out := make([]historical.SeasonStats, 0)
	for _, f := range files {
		out = append(out, f.items...)
	}
	return out, nil
}

func (l *Loader) loadHistoricalFile(ctx context.Context, path string) ([]historical.SeasonStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var file map[string]historicalSeasonDTO
	if err := l.decode(path, &file); err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(file))
	for title := range file {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	out := make([]historical.SeasonStats, 0, len(file))
	for _, title := range titles {
		dto := file[title]
		if err := l.check(path+": "+title, &dto); err != nil {
			return nil, err
		}
		if dto.Level == nil || strings.TrimSpace(*dto.Level) == "" {
			l.logger.WarnContext(ctx, "historical season has no league level", "file", path, "title", title)
			continue
		}
		out = append(out, mapHistorical(title, dto))
	}

	l.logger.DebugContext(ctx, "historical stats loaded", "file", path, "seasons", len(out))
	return out, nil
}

func (l *Loader) decode(path string, target any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return crerr.Wrapf(err, "read %s", path)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Mark(crerr.Wrapf(err, "decode %s", path), ErrInvalidData)
	}
	return nil
}

func (l *Loader) check(source string, target any) error {
	if err := l.validate.Struct(target); err != nil {
		return crerr.Mark(crerr.Wrapf(err, "validate %s", source), ErrInvalidData)
	}
	return nil
}

func mapPlayer(dto playerDTO) player.Player {
	p := player.Player{
		Name:     strings.TrimSpace(dto.Name),
		Number:   dto.Number,
		Bio:      dto.Bio,
		Position: player.Position(strings.TrimSpace(dto.Pos)),
		Shoots:   strings.TrimSpace(dto.Shoots),
		Height:   dto.Ht,
		Born:     dto.Born,
		Role:     dto.Role,
	}
	if dto.Wt != nil {
		p.Weight = strconv.Itoa(*dto.Wt)
	}
	return p
}

func mapSeason(dto leagueDTO) (season.Season, error) {
	s := season.Season{
		Year:        dto.Year,
		Name:        strings.TrimSpace(dto.Season),
		League:      strings.TrimSpace(dto.Level),
		Playoffs:    strings.TrimSpace(dto.Playoffs),
		Roster:      append([]string(nil), dto.Roster...),
		Wins:        dto.Wins,
		Losses:      dto.Losses,
		Ties:        dto.Ties,
		Description: dto.Description,
		Aside:       dto.Aside,
		Sidebar:     dto.Sidebar,
		Schedule:    dto.Schedule,
		Photos:      dto.Photos,
		Videos:      dto.Videos,
	}
	if len(dto.Games) > 0 {
		s.Games = make([]season.Game, 0, len(dto.Games))
	}
	for i, g := range dto.Games {
		game, err := mapGame(g)
		if err != nil {
			return season.Season{}, crerr.Wrapf(err, "game %d", i)
		}
		s.Games = append(s.Games, game)
	}
	return s, nil
}

func mapGame(dto gameDTO) (season.Game, error) {
	g := season.Game{
		Opponent:        strings.TrimSpace(dto.Vs),
		Us:              dto.Us,
		Them:            dto.Them,
		ShotsFor:        dto.ShotsUs,
		ShotsAgainst:    dto.ShotsThem,
		EmptyNetAgainst: dto.EmptyNet,
		Result:          season.Result(dto.Result),
		Sisu:            strings.TrimSpace(dto.Sisu),
		Notable:         dto.Notable,
		Goalie:          strings.TrimSpace(dto.Goalie),
	}
	if dto.Date != "" {
		date, err := parseDate(dto.Date)
		if err != nil {
			return season.Game{}, err
		}
		g.Date = &date
	}
	if len(dto.Stats) > 0 {
		g.Stats = make(map[string]season.PlayerGameStats, len(dto.Stats))
		for name, line := range dto.Stats {
			g.Stats[strings.TrimSpace(name)] = season.PlayerGameStats{
				Goals:     line.Goals,
				Assists:   line.Assists,
				Penalties: line.Penalties,
			}
		}
	}
	return g, nil
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, crerr.Newf("unrecognized date %q", value)
	}
	return t, nil
}

func mapHistorical(title string, dto historicalSeasonDTO) historical.SeasonStats {
	out := historical.SeasonStats{
		Key: season.Key{
			Year:   dto.Year,
			Name:   strings.TrimSpace(dto.Season),
			League: strings.TrimSpace(*dto.Level),
		},
		Title:     title,
		Standings: make([]historical.TeamStanding, 0, len(dto.Standings)),
		Players:   make([]historical.PlayerTotals, 0, len(dto.Players)),
		Goalies:   make([]historical.GoalieTotals, 0, len(dto.Goalies)),
	}
	for _, s := range dto.Standings {
		out.Standings = append(out.Standings, historical.TeamStanding{
			Team:           s.TeamName,
			Points:         s.Points,
			Wins:           s.Wins,
			Losses:         s.Losses,
			Ties:           s.Ties,
			GamesPlayed:    s.GamesPlayed,
			OvertimeLosses: s.OTL,
			GoalsFor:       s.GoalsFor,
			GoalsAgainst:   s.GoalsAgainst,
			GoalDiff:       s.GoalDifferential,
		})
	}
	for _, p := range dto.Players {
		out.Players = append(out.Players, historical.PlayerTotals{
			Name:           strings.TrimSpace(p.Name),
			Number:         p.Number,
			GamesPlayed:    p.GamesPlayed,
			Goals:          p.Goals,
			Assists:        p.Assists,
			Points:         p.Points,
			PenaltyMinutes: p.PenaltyMinutes,
		})
	}
	for _, g := range dto.Goalies {
		out.Goalies = append(out.Goalies, historical.GoalieTotals{
			Name:           strings.TrimSpace(g.Name),
			Number:         g.Number,
			GamesPlayed:    g.GamesPlayed,
			Wins:           g.Wins,
			Losses:         g.Losses,
			OvertimeLosses: g.OTLosses,
			Saves:          g.Saves,
			GoalsAgainst:   g.GoalsAgainst,
			GAA:            g.GAA,
			SavePercentage: g.SavePercentage,
			Shutouts:       g.Shutouts,
		})
	}
	return out
}
