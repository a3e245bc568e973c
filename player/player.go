package player

import (
	"dominoes/game"
)

// FirstMatch plays the first tile in hand order that fits either end. It
// makes no attempt at strategy, so simulations built on it are reproducible.
type FirstMatch struct{}

func NewFirstMatch() FirstMatch {
	return FirstMatch{}
}

// Decide tests every tile in hand order against, in turn, side 1 on the left
// end, side 1 on the right end, side 2 on the left end and side 2 on the right
// end, and returns the first fit. On an empty chain the first tile is opened
// with side 1 on the left.
func (FirstMatch) Decide(hand *game.Hand, chain *game.Chain) (game.Move, bool, error) {
	tiles := hand.Tiles()
	if len(tiles) == 0 {
		return game.Move{}, false, nil
	}

	if chain.IsEmpty() {
		return game.Move{Tile: tiles[0], Side: game.SideOne, End: game.Left}, true, nil
	}

	left, err := chain.LeftEnd()
	if err != nil {
		return game.Move{}, false, err
	}
	right, err := chain.RightEnd()
	if err != nil {
		return game.Move{}, false, err
	}

	for _, tile := range tiles {
		if move, ok := match(tile, left, right); ok {
			return move, true, nil
		}
	}
	return game.Move{}, false, nil
}

func match(tile game.Tile, left, right int) (game.Move, bool) {
	for _, side := range []game.Side{game.SideOne, game.SideTwo} {
		pip, _ := tile.Side(side)
		switch pip {
		case left:
			return game.Move{Tile: tile, Side: side, End: game.Left}, true
		case right:
			return game.Move{Tile: tile, Side: side, End: game.Right}, true
		}
	}
	return game.Move{}, false
}
