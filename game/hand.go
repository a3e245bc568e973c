package game

import (
	"fmt"
	"slices"

	"dominoes/utils"
)

// Hand holds a player's unplayed tiles in the order they were dealt.
type Hand struct {
	tiles []Tile
}

func NewHand(tiles ...Tile) *Hand {
	h := &Hand{tiles: make([]Tile, 0, 7)}
	h.tiles = append(h.tiles, tiles...)
	return h
}

func (h *Hand) Add(t Tile) {
	h.tiles = append(h.tiles, t)
}

// Remove takes the first tile equal to t out of the hand, keeping the order
// of the others.
func (h *Hand) Remove(t Tile) error {
	i := utils.FindIndexFunc(h.tiles, t.Equal)
	if i < 0 {
		return fmt.Errorf("%w: %s not in hand %v", ErrNotFound, t, h.tiles)
	}
	h.tiles = slices.Delete(h.tiles, i, i+1)
	return nil
}

func (h *Hand) Tiles() []Tile {
	tiles := make([]Tile, len(h.tiles))
	copy(tiles, h.tiles)
	return tiles
}

func (h *Hand) IsEmpty() bool {
	return len(h.tiles) == 0
}

func (h *Hand) Len() int {
	return len(h.tiles)
}

// RemainingValue is the pip total left in the hand, used to settle a blocked game.
func (h *Hand) RemainingValue() int {
	sum := 0
	for _, t := range h.tiles {
		sum += t.Size()
	}
	return sum
}
