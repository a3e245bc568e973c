package engine

import (
	"errors"
	"fmt"

	"dominoes/game"
	"dominoes/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

func WithRecorder(r Recorder) Option {
	return func(e *Engine) {
		if r != nil {
			e.recorder = r
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMaxTurns bounds the number of turns Run will play. Zero means no bound.
func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns >= 0 {
			e.maxTurns = turns
		}
	}
}

// Engine runs one game: players take turns in order, each asking its decider
// for a move against the chain, until a hand is emptied or a full round passes
// without anyone playing.
type Engine struct {
	chain    *game.Chain
	players  []*game.Player
	deciders []game.Decider
	current  int // index into players
	skipped  int // consecutive passes across the table
	turns    int
	result   Result
	maxTurns int
	recorder Recorder
	logger   zerolog.Logger
}

func New(players []*game.Player, deciders []game.Decider, options ...Option) (*Engine, error) {
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: no players", game.ErrInvalidConfig)
	}
	if len(players) != len(deciders) {
		return nil, fmt.Errorf("%w: %d players but %d deciders", game.ErrInvalidConfig, len(players), len(deciders))
	}

	e := &Engine{
		chain:    game.NewChain(),
		players:  players,
		deciders: deciders,
		maxTurns: meta.MAX_TURNS,
		recorder: nopRecorder{},
		logger:   log.Logger,
	}
	for _, option := range options {
		option(e)
	}
	e.logger = e.logger.With().Str("component", "engine").Logger()
	return e, nil
}

func (e *Engine) Chain() *game.Chain {
	return e.chain
}

func (e *Engine) Players() []*game.Player {
	return e.players
}

func (e *Engine) Result() Result {
	return e.result
}

// Run plays turns until the game ends and returns the final result.
func (e *Engine) Run() (Result, error) {
	e.logger.Debug().Msgf("player %d is starting", e.players[e.current].Order())

	for e.result.Status == Playing {
		if e.maxTurns > 0 && e.turns >= e.maxTurns {
			return e.result, fmt.Errorf("%w: stopped after %d turns", ErrTurnLimit, e.turns)
		}
		if err := e.Step(); err != nil {
			return e.result, err
		}
	}
	return e.result, nil
}

// Step plays a single turn for the current player.
func (e *Engine) Step() error {
	if e.result.Status != Playing {
		return ErrGameOver
	}

	player := e.players[e.current]
	e.turns++
	e.result.Turns = e.turns

	move, ok, err := e.deciders[e.current].Decide(player.Hand(), e.chain)
	switch {
	case errors.Is(err, game.ErrQuit):
		e.result.Status = Quit
		e.logger.Info().Int("player", player.Order()).Msg("player quit")
		e.record(player, Ended, game.Move{})
		return nil
	case err != nil:
		return fmt.Errorf("player %d decide on %q: %w", player.Order(), e.chain, err)
	}

	if !ok {
		e.pass(player)
	} else if err := e.play(player, move); err != nil {
		return err
	}

	e.current = (e.current + 1) % len(e.players)
	return nil
}

func (e *Engine) play(player *game.Player, move game.Move) error {
	if err := player.Hand().Remove(move.Tile); err != nil {
		return fmt.Errorf("player %d play %s on %q: %w", player.Order(), move, e.chain, err)
	}
	if err := e.chain.Place(move); err != nil {
		return fmt.Errorf("player %d play %s on %q: %w", player.Order(), move, e.chain, err)
	}
	e.skipped = 0

	e.logger.Debug().Int("player", player.Order()).Stringer("move", move).Stringer("chain", e.chain).Msg("played")
	e.record(player, Played, move)

	if player.Hand().IsEmpty() {
		e.result.Status = Completed
		e.result.Winner = player.Order()
		e.result.Remaining = 0
		e.logger.Debug().Int("winner", player.Order()).Msg("hand completed")
		e.record(player, Ended, move)
	}
	return nil
}

func (e *Engine) pass(player *game.Player) {
	e.skipped++
	e.logger.Debug().Int("player", player.Order()).Int("skipped", e.skipped).Msg("passed")
	e.record(player, Passed, game.Move{})

	if e.skipped < len(e.players) {
		return
	}

	winner := e.players[0]
	for _, p := range e.players[1:] {
		if lessRemaining(p, winner) {
			winner = p
		}
	}
	e.result.Status = Blocked
	e.result.Winner = winner.Order()
	e.result.Remaining = winner.Hand().RemainingValue()
	e.logger.Debug().Int("winner", winner.Order()).Int("remaining", e.result.Remaining).Msg("board blocked")
	e.record(player, Ended, game.Move{})
}

// lessRemaining orders players by remaining pips, then by seat order.
func lessRemaining(a, b *game.Player) bool {
	av, bv := a.Hand().RemainingValue(), b.Hand().RemainingValue()
	if av != bv {
		return av < bv
	}
	return a.Order() < b.Order()
}

func (e *Engine) record(player *game.Player, kind EventKind, move game.Move) {
	e.recorder.Record(Event{
		Turn:   e.turns,
		Player: player.Order(),
		Kind:   kind,
		Move:   move,
		Chain:  e.chain.Tiles(),
		Result: e.result,
	})
}
