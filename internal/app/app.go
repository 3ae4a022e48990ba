// Package app wires configuration, repositories and services together.
package app

import (
	"github.com/suomipoikas/poikas-stats/internal/config"
	"github.com/suomipoikas/poikas-stats/internal/domain/historical"
	"github.com/suomipoikas/poikas-stats/internal/domain/player"
	"github.com/suomipoikas/poikas-stats/internal/domain/season"
	"github.com/suomipoikas/poikas-stats/internal/infrastructure/loader"
	"github.com/suomipoikas/poikas-stats/internal/infrastructure/repository/cache"
	"github.com/suomipoikas/poikas-stats/internal/infrastructure/repository/memory"
	basecache "github.com/suomipoikas/poikas-stats/internal/platform/cache"
	idgen "github.com/suomipoikas/poikas-stats/internal/platform/id"
	"github.com/suomipoikas/poikas-stats/internal/platform/logging"
	"github.com/suomipoikas/poikas-stats/internal/usecase"
)

// App holds the services a command needs.
type App struct {
	Graphs *usecase.GraphCache
	Club   *usecase.ClubService
	Logger *logging.Logger
}

type repositories struct {
	players    player.Repository
	seasons    season.Repository
	historical historical.Repository
}

func New(cfg config.Config, logger *logging.Logger) *App {
	if logger == nil {
		logger = logging.Default()
	}

	repos := newRepositories(cfg, logger)
	graphSvc := usecase.NewGraphService(
		repos.players,
		repos.seasons,
		repos.historical,
		usecase.AggregatorOptions{
			ImageHost: cfg.ImageHost,
			Workers:   cfg.AggregateWorkers,
		},
		idgen.NewRandomGenerator(0),
		logger.Named("graph"),
	)
	graphs := usecase.NewGraphCache(graphSvc, cfg.CacheEnabled)

	return &App{
		Graphs: graphs,
		Club:   usecase.NewClubService(graphs),
		Logger: logger,
	}
}

func newRepositories(cfg config.Config, logger *logging.Logger) repositories {
	if cfg.UsesSeed() {
		logger.Info("no data file configured, serving the sample club")
		return repositories{
			players:    memory.NewPlayerRepository(memory.SeedPlayers()),
			seasons:    memory.NewSeasonRepository(memory.SeedSeasons()),
			historical: memory.NewHistoricalRepository(memory.SeedHistorical()),
		}
	}

	files := loader.New(loader.Options{
		DataFile:        cfg.DataFile,
		HistoricalFiles: cfg.HistoricalFiles,
		Workers:         cfg.LoaderWorkers,
	}, logger.Named("loader"))

	repos := repositories{
		players:    loader.NewPlayerRepository(files),
		seasons:    loader.NewSeasonRepository(files),
		historical: loader.NewHistoricalRepository(files),
	}
	if !cfg.CacheEnabled {
		return repos
	}

	return repositories{
		players:    cache.NewPlayerRepository(repos.players, basecache.NewStore[[]player.Player](cfg.CacheTTL)),
		seasons:    cache.NewSeasonRepository(repos.seasons, basecache.NewStore[[]season.Season](cfg.CacheTTL)),
		historical: cache.NewHistoricalRepository(repos.historical, basecache.NewStore[[]historical.SeasonStats](cfg.CacheTTL)),
	}
}
