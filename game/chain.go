package game

import (
	"fmt"
	"strings"
)

// Chain is the board: tiles oriented left to right, so the left pip of the
// first tile and the right pip of the last tile are the exposed ends.
type Chain struct {
	tiles []Tile
}

func NewChain() *Chain {
	return &Chain{tiles: make([]Tile, 0, 28)}
}

func (c *Chain) IsEmpty() bool {
	return len(c.tiles) == 0
}

func (c *Chain) Len() int {
	return len(c.tiles)
}

// Tiles returns a copy of the placed tiles in board order.
func (c *Chain) Tiles() []Tile {
	tiles := make([]Tile, len(c.tiles))
	copy(tiles, c.tiles)
	return tiles
}

func (c *Chain) LeftEnd() (int, error) {
	if c.IsEmpty() {
		return 0, fmt.Errorf("%w: left end of an empty chain", ErrOutOfRange)
	}
	return c.tiles[0].a, nil
}

func (c *Chain) RightEnd() (int, error) {
	if c.IsEmpty() {
		return 0, fmt.Errorf("%w: right end of an empty chain", ErrOutOfRange)
	}
	return c.tiles[len(c.tiles)-1].b, nil
}

// End returns the pip exposed at e.
func (c *Chain) End(e End) (int, error) {
	switch e {
	case Left:
		return c.LeftEnd()
	case Right:
		return c.RightEnd()
	}
	return 0, fmt.Errorf("%w: chain end %d", ErrOutOfRange, e)
}

// Place extends the chain with m. The pip on m.Side is absorbed against the
// end it attaches to and the other pip becomes the new exposed value. On an
// empty chain the m.Side pip is exposed at m.End and the other pip at the
// opposite end.
func (c *Chain) Place(m Move) error {
	matching, err := m.Tile.Side(m.Side)
	if err != nil {
		return err
	}
	other, _ := m.Tile.Side(m.Side.Other())

	if c.IsEmpty() {
		switch m.End {
		case Left:
			c.tiles = append(c.tiles, Tile{a: matching, b: other})
		case Right:
			c.tiles = append(c.tiles, Tile{a: other, b: matching})
		default:
			return fmt.Errorf("%w: chain end %d", ErrOutOfRange, m.End)
		}
		return nil
	}

	end, err := c.End(m.End)
	if err != nil {
		return err
	}
	if end != matching {
		return fmt.Errorf("%w: %s does not match %d on the %s", ErrInvalidPlacement, m, end, m.End)
	}

	if m.End == Left {
		c.tiles = append([]Tile{{a: other, b: matching}}, c.tiles...)
	} else {
		c.tiles = append(c.tiles, Tile{a: matching, b: other})
	}
	return nil
}

func (c *Chain) String() string {
	var sb strings.Builder
	for _, t := range c.tiles {
		sb.WriteString(t.String())
	}
	return sb.String()
}
