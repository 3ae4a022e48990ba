// Command poikas builds the club statistics graph and prints views of it as
// JSON.
//
// Usage:
//
//	poikas summary
//	poikas player aki-virtanen
//	poikas season 2024 fall rec
//	poikas vs ice-hogs
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/bytedance/sonic"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/valyala/bytebufferpool"

	"github.com/suomipoikas/poikas-stats/internal/app"
	"github.com/suomipoikas/poikas-stats/internal/config"
	"github.com/suomipoikas/poikas-stats/internal/platform/logging"
)

func main() {
	_ = godotenv.Load(".env")

	if err := newRootCmd(loadApp).Execute(); err != nil {
		os.Exit(1)
	}
}

func loadApp() (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	if cfg.LogFormat == config.LogFormatConsole {
		logger = logging.NewConsole(cfg.LogLevel)
	}
	logger = logger.With("service", cfg.ServiceName, "env", cfg.AppEnv)
	logging.SetDefault(logger)

	return app.New(cfg, logger), nil
}

func newRootCmd(load func() (*app.App, error)) *cobra.Command {
	var pretty bool

	root := &cobra.Command{
		Use:          "poikas",
		Short:        "Club statistics for the Suomi Poikas hockey team",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&pretty, "pretty", false, "Indent JSON output")

	run := func(fn func(ctx context.Context, a *app.App, args []string) (any, error)) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			a, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = a.Logger.Sync() }()

			out, err := fn(ctx, a, args)
			if err != nil {
				a.Logger.ErrorContext(ctx, "command failed", "command", cmd.Name(), "error", err)
				return err
			}
			return writeJSON(cmd, out, pretty)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "summary",
			Short: "Print league totals and current seasons",
			Args:  cobra.NoArgs,
			RunE: run(func(ctx context.Context, a *app.App, _ []string) (any, error) {
				s, err := a.Club.Summary(ctx)
				if err != nil {
					return nil, err
				}
				return newSummaryView(s), nil
			}),
		},
		&cobra.Command{
			Use:   "player <slug>",
			Short: "Print a player's seasons and career totals",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(ctx context.Context, a *app.App, args []string) (any, error) {
				g, err := a.Graphs.Get(ctx)
				if err != nil {
					return nil, err
				}
				p, err := a.Club.PlayerBySlug(ctx, args[0])
				if err != nil {
					return nil, err
				}
				return newPlayerView(g, p), nil
			}),
		},
		&cobra.Command{
			Use:   "season <year> <season> <league>",
			Short: "Print a season's record, roster and games",
			Args:  cobra.ExactArgs(3),
			RunE: run(func(ctx context.Context, a *app.App, args []string) (any, error) {
				g, err := a.Graphs.Get(ctx)
				if err != nil {
					return nil, err
				}
				s, err := a.Club.Season(ctx, args[0], args[1], args[2])
				if err != nil {
					return nil, err
				}
				return newSeasonView(g, s), nil
			}),
		},
		&cobra.Command{
			Use:   "vs <opponent-slug>",
			Short: "Print every game against an opponent",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(ctx context.Context, a *app.App, args []string) (any, error) {
				h, err := a.Club.GamesAgainst(ctx, args[0])
				if err != nil {
					return nil, err
				}
				return newOpponentView(h), nil
			}),
		},
	)

	return root
}

func writeJSON(cmd *cobra.Command, v any, pretty bool) error {
	var (
		raw []byte
		err error
	)
	if pretty {
		raw, err = sonic.MarshalIndent(v, "", "  ")
	} else {
		raw, err = sonic.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.Write(raw)
	_ = buf.WriteByte('\n')
	_, err = buf.WriteTo(cmd.OutOrStdout())
	return err
}
