package engine

import (
	"errors"
	"fmt"

	"dominoes/game"
)

var (
	// ErrTurnLimit is returned by Run when a game outlasts its turn budget.
	ErrTurnLimit = errors.New("turn limit reached")
	ErrGameOver  = errors.New("game is over")
)

type Status int

const (
	Playing Status = iota
	Completed
	Blocked
	Quit
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Completed:
		return "completed"
	case Blocked:
		return "blocked"
	case Quit:
		return "quit"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result describes a game. Winner is the winning player's order, 0 while
// playing or after a quit. Remaining is the winner's pip total left in hand.
type Result struct {
	Status    Status
	Winner    int
	Remaining int
	Turns     int
}

type EventKind int

const (
	Played EventKind = iota
	Passed
	Ended
)

// Event is a read-only snapshot of one turn.
type Event struct {
	Turn   int
	Player int
	Kind   EventKind
	Move   game.Move // set when Kind is Played
	Chain  []game.Tile
	Result Result
}

// Recorder observes a game. It must not affect play.
type Recorder interface {
	Record(Event)
}

// Recorders fans events out to every recorder in order.
type Recorders []Recorder

func (rs Recorders) Record(ev Event) {
	for _, r := range rs {
		r.Record(ev)
	}
}

type nopRecorder struct{}

func (nopRecorder) Record(Event) {}
