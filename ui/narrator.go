package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"dominoes/engine"
	"dominoes/game"

	"github.com/fatih/color"
)

var (
	boardColor = color.New(color.FgYellow)
	passColor  = color.New(color.FgHiBlack)
	winColor   = color.New(color.FgGreen, color.Bold)
	quitColor  = color.New(color.FgRed)
)

// Narrator prints a line for every turn of a game.
type Narrator struct {
	out   io.Writer
	delay time.Duration // pause after each play so a watcher can follow
}

func NewNarrator(out io.Writer, delay time.Duration) *Narrator {
	return &Narrator{out: out, delay: delay}
}

func (n *Narrator) Record(ev engine.Event) {
	switch ev.Kind {
	case engine.Played:
		fmt.Fprintf(n.out, "%d: %s\n", ev.Player, boardColor.Sprint(Board(ev.Chain)))
		if n.delay > 0 {
			time.Sleep(n.delay)
		}
	case engine.Passed:
		passColor.Fprintf(n.out, "Player %d skips their turn.\n", ev.Player)
	case engine.Ended:
		n.ended(ev.Result)
	}
}

func (n *Narrator) ended(result engine.Result) {
	switch result.Status {
	case engine.Completed:
		winColor.Fprintf(n.out, "Player %d has finished all their dominoes!\n", result.Winner)
	case engine.Blocked:
		winColor.Fprintf(n.out, "Player %d has finished with %d points remaining\n", result.Winner, result.Remaining)
	case engine.Quit:
		quitColor.Fprintln(n.out, "Game abandoned.")
	}
}

// Board renders placed tiles left to right.
func Board(tiles []game.Tile) string {
	var sb strings.Builder
	for _, t := range tiles {
		sb.WriteString(t.String())
	}
	return sb.String()
}
