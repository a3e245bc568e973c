package experiments

import (
	"context"
	"fmt"
	"sync"

	"dominoes/engine"
	"dominoes/experiments/metrics"
	"dominoes/game"
	"dominoes/meta"
	"dominoes/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Batch describes a run of independent simulated games.
type Batch struct {
	Name       string
	Games      int
	Goroutines int
	Seed       uint64 // master seed; game seeds are drawn from it
	Config     meta.Config
}

type Report struct {
	Games   int
	Wins    map[int]int // player order -> games won
	Endings map[engine.Status]int
	Records []metrics.GameRecord
}

// NewGame shuffles and deals a fresh set and seats first-match players. When
// the configuration enables a human player and human is not nil, it takes the
// last seat.
func NewGame(cfg meta.Config, seed uint64, human game.Decider, options ...engine.Option) (*engine.Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tiles, err := game.NewSet(cfg.MaxPip)
	if err != nil {
		return nil, err
	}
	players, err := game.MakePlayers(cfg.Players)
	if err != nil {
		return nil, err
	}
	game.Deal(tiles, players, rand.New(rand.NewSource(seed)))

	deciders := make([]game.Decider, len(players))
	for i := range deciders {
		deciders[i] = player.NewFirstMatch()
	}
	if cfg.HumanPlayer && human != nil {
		deciders[len(deciders)-1] = human
	}

	options = append([]engine.Option{engine.WithMaxTurns(cfg.MaxTurns)}, options...)
	return engine.New(players, deciders, options...)
}

// RunBatch plays b.Games games on b.Goroutines workers and tallies the winners.
// Every game owns its state, so workers share nothing but the result slots.
func RunBatch(ctx context.Context, b Batch) (Report, error) {
	if b.Games < 0 {
		return Report{}, fmt.Errorf("%w: games must not be negative, got %d", game.ErrInvalidConfig, b.Games)
	}
	if err := b.Config.Validate(); err != nil {
		return Report{}, err
	}
	goroutines := b.Goroutines
	if goroutines < 1 {
		goroutines = 1
	}
	// Human input makes no sense in a batch.
	cfg := b.Config
	cfg.HumanPlayer = false

	master := rand.New(rand.NewSource(b.Seed))
	seeds := make([]uint64, b.Games)
	for i := range seeds {
		seeds[i] = master.Uint64()
	}

	log.Info().Msgf("starting %s experiment with %d games on %d goroutines...", b.Name, b.Games, goroutines)

	task := make(chan int, b.Games)
	for i := 0; i < b.Games; i++ {
		task <- i
	}
	close(task)

	records := make([]metrics.GameRecord, b.Games)
	errs := make([]error, b.Games)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				if ctx.Err() != nil {
					return
				}
				records[i], errs[i] = runGame(cfg, i+1, seeds[i])
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	for i, err := range errs {
		if err != nil {
			return Report{}, fmt.Errorf("game %d (seed %d): %w", i+1, seeds[i], err)
		}
	}

	report := Report{
		Games:   b.Games,
		Wins:    make(map[int]int),
		Endings: make(map[engine.Status]int),
		Records: records,
	}
	for _, record := range records {
		report.Wins[record.Winner]++
		report.Endings[record.Status]++
	}

	log.Info().Msgf("completed %s experiment", b.Name)
	return report, nil
}

func runGame(cfg meta.Config, id int, seed uint64) (metrics.GameRecord, error) {
	collector := metrics.NewCollector()
	e, err := NewGame(cfg, seed, nil,
		engine.WithRecorder(collector),
		engine.WithLogger(log.Logger.Level(zerolog.WarnLevel)))
	if err != nil {
		return metrics.GameRecord{}, err
	}

	collector.Start()
	result, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, err
	}
	log.Debug().Msgf("completed game %d with winner: %d (%s)", id, result.Winner, result.Status)

	return metrics.GameRecord{
		ID:         id,
		Seed:       seed,
		GameMetric: collector.Complete(),
	}, nil
}

// Store writes the records and the winner distribution of a report under root.
func Store(root, name string, report Report) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteGameRecords(report.Records)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteWinners(report.Wins)
	if err != nil {
		return "", fmt.Errorf("failed to write winners: %w", err)
	}
	log.Info().Msg("stored winners")

	return writer.Dir(), nil
}
