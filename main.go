package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"dominoes/engine"
	"dominoes/experiments"
	"dominoes/meta"
	"dominoes/player"
	"dominoes/ui"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", meta.CONFIG_NAME, "Path to the YAML configuration, created with defaults if missing")
	games := flag.Int("games", 0, "Number of games to simulate; 0 plays a single narrated game")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "Number of goroutines for batch games")
	seed := flag.Uint64("seed", 0, "Random seed, overrides the configuration when non-zero")
	out := flag.String("out", "experiments", "Directory for batch results")
	name := flag.String("name", "winners", "Batch experiment name")
	delay := flag.Duration("delay", 500*time.Millisecond, "Pause after each play in a narrated game")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := meta.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	log.Debug().Msgf("configuration %+v", cfg)

	if *games > 0 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		runBatch(ctx, cfg, *name, *out, *games, *goroutines)
		return
	}
	os.Exit(runSingle(cfg, *delay))
}

// runSingle plays one narrated game and returns the winner's order as the
// exit code, 0 when the human player quits.
func runSingle(cfg meta.Config, delay time.Duration) int {
	e, err := experiments.NewGame(cfg, cfg.Seed, player.NewHuman(os.Stdin, os.Stdout),
		engine.WithRecorder(engine.Recorders{
			ui.NewNarrator(os.Stdout, delay),
			engine.NewLogRecorder(log.Logger, zerolog.DebugLevel),
		}))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up game")
	}

	result, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Stringer("chain", e.Chain()).Msg("game aborted")
	}
	return result.Winner
}

func runBatch(ctx context.Context, cfg meta.Config, name, out string, games, goroutines int) {
	report, err := experiments.RunBatch(ctx, experiments.Batch{
		Name:       name,
		Games:      games,
		Goroutines: goroutines,
		Seed:       cfg.Seed,
		Config:     cfg,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("batch failed")
	}

	for order := 1; order <= cfg.Players; order++ {
		fmt.Printf("Player %d: %d wins (%.1f%%)\n", order, report.Wins[order], 100*float64(report.Wins[order])/float64(report.Games))
	}
	fmt.Printf("Completed: %d, blocked: %d\n", report.Endings[engine.Completed], report.Endings[engine.Blocked])

	dir, err := experiments.Store(out, name, report)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to store results")
	}
	log.Info().Msgf("results written to %s", dir)
}
