package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dominoes/game"

	"github.com/fatih/color"
)

var (
	promptColor = color.New(color.FgCyan)
	errorColor  = color.New(color.FgRed)
)

// Human reads moves from a text stream, one per line:
//
//	<tile number> left|right
//	skip
//	quit
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (h *Human) Decide(hand *game.Hand, chain *game.Chain) (game.Move, bool, error) {
	tiles := hand.Tiles()

	promptColor.Fprintln(h.out, "Select the number of the domino you wish to play, followed by a space and either 'left' or 'right'.")
	promptColor.Fprintln(h.out, "Enter 'skip' to skip your turn or 'quit' to exit the game.")
	fmt.Fprintf(h.out, "Board: %s\n", chain)
	for i, tile := range tiles {
		fmt.Fprintf(h.out, "%d: %s\n", i+1, tile)
	}

	for {
		fmt.Fprint(h.out, "Enter answer here: ")
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return game.Move{}, false, fmt.Errorf("read move: %w", err)
			}
			return game.Move{}, false, game.ErrQuit
		}

		response := strings.ToLower(strings.TrimSpace(h.in.Text()))
		switch response {
		case "skip":
			return game.Move{}, false, nil
		case "quit":
			fmt.Fprintln(h.out, "Thanks for playing!")
			return game.Move{}, false, game.ErrQuit
		}

		fields := strings.Fields(response)
		if len(fields) != 2 {
			errorColor.Fprintln(h.out, "Invalid answer format. Please try again.")
			continue
		}

		num, err := strconv.Atoi(fields[0])
		if err != nil || num < 1 || num > len(tiles) {
			errorColor.Fprintln(h.out, "The domino position you've entered is invalid. Please try again.")
			continue
		}
		tile := tiles[num-1]

		var end game.End
		switch fields[1] {
		case "left":
			end = game.Left
		case "right":
			end = game.Right
		default:
			errorColor.Fprintln(h.out, "Invalid side. Please select either 'left' or 'right'.")
			continue
		}

		if move, ok := fit(tile, chain, end); ok {
			return move, true, nil
		}
		errorColor.Fprintln(h.out, "The domino you chose cannot be played in that location.")
	}
}

// fit orients tile against the chosen end, trying side 1 before side 2.
func fit(tile game.Tile, chain *game.Chain, end game.End) (game.Move, bool) {
	if chain.IsEmpty() {
		return game.Move{Tile: tile, Side: game.SideOne, End: end}, true
	}
	value, err := chain.End(end)
	if err != nil {
		return game.Move{}, false
	}
	for _, side := range []game.Side{game.SideOne, game.SideTwo} {
		if pip, _ := tile.Side(side); pip == value {
			return game.Move{Tile: tile, Side: side, End: end}, true
		}
	}
	return game.Move{}, false
}
