package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/suomipoikas/poikas-stats/internal/app"
	"github.com/suomipoikas/poikas-stats/internal/config"
	"github.com/suomipoikas/poikas-stats/internal/platform/logging"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	load := func() (*app.App, error) {
		return app.New(config.Config{AggregateWorkers: 2, CacheEnabled: true}, logging.NewNop()), nil
	}
	cmd := newRootCmd(load)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_Player(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "player", "mikko-laine")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var got playerView
	if err := sonic.UnmarshalString(out, &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if got.Name != "Mikko Laine" || got.Position != "Goalie" {
		t.Fatalf("unexpected player: %+v", got)
	}
	if got.Career.Goalie == nil {
		t.Fatalf("expected goalie totals")
	}
	if got.Career.Goalie.Record != "2-0-1" || got.Career.Goalie.Shutouts != 1 {
		t.Fatalf("unexpected goalie totals: %+v", got.Career.Goalie)
	}
	if len(got.Seasons) != 2 {
		t.Fatalf("unexpected seasons: %d", len(got.Seasons))
	}
}

func TestRootCmd_Season(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "season", "2023", "fall", "rec", "--pretty")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "\n  \"title\": \"2023 Fall Rec\"") {
		t.Fatalf("expected indented season output, got:\n%s", out)
	}

	var got seasonView
	if err := sonic.UnmarshalString(out, &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if got.Record != "1-0-1" || got.Playoffs != "Champions!" {
		t.Fatalf("unexpected season: %+v", got)
	}
	if len(got.Games) != 2 || got.Games[0].Shots != "31-24" {
		t.Fatalf("unexpected games: %+v", got.Games)
	}
}

func TestRootCmd_SeasonMarksUpcomingGames(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "season", "2024", "fall", "rec")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var got seasonView
	if err := sonic.UnmarshalString(out, &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if !got.Current || len(got.Games) != 2 {
		t.Fatalf("unexpected season: %+v", got)
	}
	played, upcoming := got.Games[0], got.Games[1]
	if played.Upcoming || played.Score != "2-0" {
		t.Fatalf("unexpected played game: %+v", played)
	}
	if !upcoming.Upcoming || upcoming.Opponent != "Puck Dynasty" || upcoming.Score != "-" {
		t.Fatalf("unexpected upcoming game: %+v", upcoming)
	}
}

func TestRootCmd_VsAndSummary(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "vs", "ice-hogs")
	if err != nil {
		t.Fatalf("execute vs: %v", err)
	}
	var vs opponentView
	if err := sonic.UnmarshalString(out, &vs); err != nil {
		t.Fatalf("decode vs: %v", err)
	}
	if vs.Record != "2-0" || len(vs.Games["Rec"]) != 2 {
		t.Fatalf("unexpected opponent history: %+v", vs)
	}

	out, err = execute(t, "summary")
	if err != nil {
		t.Fatalf("execute summary: %v", err)
	}
	var summary summaryView
	if err := sonic.UnmarshalString(out, &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.Players != 4 || len(summary.Leagues) != 2 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestRootCmd_UnknownPlayer(t *testing.T) {
	t.Parallel()

	if _, err := execute(t, "player", "nobody"); err == nil {
		t.Fatalf("expected not found error")
	}
}
