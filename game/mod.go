package game

import "errors"

var (
	ErrOutOfRange       = errors.New("out of range")
	ErrInvalidPlacement = errors.New("invalid placement")
	ErrNotFound         = errors.New("tile not found")
	ErrInvalidTile      = errors.New("invalid tile")
	ErrInvalidConfig    = errors.New("invalid configuration")

	// ErrQuit is returned by a Decider whose player abandons the game.
	ErrQuit = errors.New("player quit")
)

// Decider picks the move a player makes against the current chain.
// ok is false when the player cannot (or chooses not to) play this turn.
// Deciders must not mutate the hand or the chain; the engine applies the move.
type Decider interface {
	Decide(hand *Hand, chain *Chain) (move Move, ok bool, err error)
}
