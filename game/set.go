package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// SetSize is the number of distinct tiles with pips in [0, maxPip].
func SetSize(maxPip int) int {
	return (maxPip + 1) * (maxPip + 2) / 2
}

// NewSet generates every tile (i, j) with 0 <= i <= j <= maxPip.
func NewSet(maxPip int) ([]Tile, error) {
	if maxPip < 0 {
		return nil, fmt.Errorf("%w: max pip %d is negative", ErrInvalidConfig, maxPip)
	}
	tiles := make([]Tile, 0, SetSize(maxPip))
	for i := 0; i <= maxPip; i++ {
		for j := i; j <= maxPip; j++ {
			tiles = append(tiles, Tile{a: i, b: j})
		}
	}
	return tiles, nil
}

// Deal gives every player, in order, len(tiles)/len(players) tiles drawn
// uniformly without replacement. The tiles left over are returned undealt.
// The tiles slice is not modified.
func Deal(tiles []Tile, players []*Player, rng *rand.Rand) []Tile {
	if len(players) == 0 {
		return tiles
	}
	pool := make([]Tile, len(tiles))
	copy(pool, tiles)

	handSize := len(pool) / len(players)
	for _, p := range players {
		for i := 0; i < handSize; i++ {
			j := rng.Intn(len(pool))
			p.hand.Add(pool[j])
			pool = append(pool[:j], pool[j+1:]...)
		}
	}
	return pool
}
