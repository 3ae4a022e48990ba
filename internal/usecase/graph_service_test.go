package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/suomipoikas/poikas-stats/internal/domain/historical"
	"github.com/suomipoikas/poikas-stats/internal/domain/player"
	"github.com/suomipoikas/poikas-stats/internal/domain/season"
	historicalmock "github.com/suomipoikas/poikas-stats/internal/mocks/domain/historical"
	playermock "github.com/suomipoikas/poikas-stats/internal/mocks/domain/player"
	seasonmock "github.com/suomipoikas/poikas-stats/internal/mocks/domain/season"
	"github.com/suomipoikas/poikas-stats/internal/platform/logging"
)

func TestGraphService_BuildUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)
	seasonRepo := seasonmock.NewRepository(t)
	historyRepo := historicalmock.NewRepository(t)

	fall := scenarioSeason()
	spring := scenarioSeason()
	spring.Name = season.NameSpring
	ccSeason := scenarioSeason()
	ccSeason.League = season.LeagueCC
	ccSeason.Playoffs = season.PlayoffsPending
	cSeason := scenarioSeason()
	cSeason.League = season.LeagueC
	cSeason.Year = 2021

	playerRepo.On("List", mock.Anything).Return(identities("Bob", "Alice", "Zed"), nil).Once()
	seasonRepo.On("List", mock.Anything).Return([]season.Season{ccSeason, fall, cSeason, spring}, nil).Once()
	historyRepo.On("List", mock.Anything).Return([]historical.SeasonStats{}, nil).Once()
	historyRepo.On("Get", mock.Anything, mock.Anything).Return(historical.SeasonStats{}, false, nil).Times(4)

	service := NewGraphService(playerRepo, seasonRepo, historyRepo, AggregatorOptions{Workers: 2}, nil, nil)
	g, err := service.Build(ctx)
	require.NoError(t, err)

	titles := make([]string, 0, len(g.Seasons))
	for _, s := range g.Seasons {
		titles = append(titles, s.Title())
	}
	require.Equal(t, []string{"2021 Fall C", "2022 Spring Rec", "2022 Fall Rec", "2022 Fall CC"}, titles)
	require.Equal(t, []string{season.LeagueRec, season.LeagueC, season.LeagueCC}, g.LeagueNames)

	// Zed is on no roster.
	require.Len(t, g.Players, 2)
	require.Equal(t, "Alice", g.Players[0].Name)
	require.Equal(t, "Bob", g.Players[1].Name)
	_, ok := g.PlayerBySlug("zed")
	require.False(t, ok)

	require.Same(t, g.Seasons[3], g.Leagues[season.LeagueCC].Current)
	require.Nil(t, g.Leagues[season.LeagueRec].Current)

	alice, ok := g.PlayerBySlug("alice")
	require.True(t, ok)
	require.Equal(t, 8, alice.Career.Goals)
	require.True(t, alice.Active)

	vs := g.GamesAgainst("team-x")
	require.Len(t, vs[season.LeagueRec], 2)
	require.Len(t, vs[season.LeagueC], 1)
	require.Len(t, vs[season.LeagueCC], 1)
}

func TestGraphService_InvalidIdentityAbortsBuild(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	seasonRepo := seasonmock.NewRepository(t)
	historyRepo := historicalmock.NewRepository(t)

	playerRepo.On("List", mock.Anything).Return([]player.Player{{Name: "  "}}, nil).Once()
	seasonRepo.On("List", mock.Anything).Return([]season.Season{scenarioSeason()}, nil).Once()
	historyRepo.On("List", mock.Anything).Return(nil, nil).Once()

	_, err := NewGraphService(playerRepo, seasonRepo, historyRepo, AggregatorOptions{}, nil, nil).Build(context.Background())
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGraphService_RepositoryErrorIsWrapped(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk unavailable")
	playerRepo := playermock.NewRepository(t)
	seasonRepo := seasonmock.NewRepository(t)
	historyRepo := historicalmock.NewRepository(t)

	playerRepo.On("List", mock.Anything).Return(identities("Alice"), nil).Once()
	seasonRepo.On("List", mock.Anything).Return(nil, boom).Once()

	_, err := NewGraphService(playerRepo, seasonRepo, historyRepo, AggregatorOptions{}, nil, nil).Build(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}

func TestGraphService_SlugCollisionKeepsFirstByName(t *testing.T) {
	t.Parallel()

	raw := scenarioSeason()
	raw.Roster = []string{"John Smith", "John  Smith"}
	repos := &staticRepos{
		players: identities("John  Smith", "John Smith"),
		seasons: []season.Season{raw},
	}

	core, logs := observer.New(zapcore.DebugLevel)
	service := NewGraphService(
		repos.Players(), repos.Seasons(), repos.Historical(),
		AggregatorOptions{},
		&sequenceIDs{prefix: "build"},
		logging.FromZap(zap.New(core)),
	)

	g, err := service.Build(context.Background())
	require.NoError(t, err)
	require.Len(t, g.Players, 2)

	warnings := logs.FilterMessage("players share a slug").All()
	require.Len(t, warnings, 1)
	require.Equal(t, "build-1", warnings[0].ContextMap()["build_id"])
	require.Equal(t, "john-smith", warnings[0].ContextMap()["slug"])

	got, ok := g.PlayerBySlug("john-smith")
	require.True(t, ok)
	require.Equal(t, "John  Smith", got.Name)
}

func TestGraphService_HistoricalAttachedByKeyAndUnmatchedReported(t *testing.T) {
	t.Parallel()

	raw := scenarioSeason()
	orphan := season.Key{Year: 2015, Name: season.NameSpring, League: season.LeagueC}
	repos := &staticRepos{
		players: identities("Alice", "Bob"),
		seasons: []season.Season{raw},
		history: []historical.SeasonStats{
			{
				Key:     raw.Key(),
				Title:   "Fall 2022 Rec",
				Players: []historical.PlayerTotals{{Name: "Alice", Goals: 9}},
			},
			{Key: orphan, Title: "Spring 2015 C"},
		},
	}

	core, logs := observer.New(zapcore.WarnLevel)
	service := NewGraphService(
		repos.Players(), repos.Seasons(), repos.Historical(),
		AggregatorOptions{},
		&sequenceIDs{prefix: "build"},
		logging.FromZap(zap.New(core)),
	)

	g, err := service.Build(context.Background())
	require.NoError(t, err)

	built, ok := g.Season(raw.Key())
	require.True(t, ok)
	require.NotNil(t, built.Historical)
	require.Equal(t, "Fall 2022 Rec", built.Historical.Title)

	alice, ok := g.PlayerBySlug("alice")
	require.True(t, ok)
	require.Equal(t, 9, alice.Career.Goals)

	warnings := logs.FilterMessage("historical stats have no matching season").All()
	require.Len(t, warnings, 1)
	require.Equal(t, orphan.String(), warnings[0].ContextMap()["season"])
}
