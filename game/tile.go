package game

import "fmt"

// Side selects one of the two pips of a tile by position.
type Side int

const (
	SideOne Side = 1
	SideTwo Side = 2
)

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == SideOne {
		return SideTwo
	}
	return SideOne
}

// Tile is an immutable domino. (a, b) and (b, a) are the same piece.
type Tile struct {
	a, b int
}

func NewTile(a, b int) (Tile, error) {
	if a < 0 || b < 0 {
		return Tile{}, fmt.Errorf("%w: pips (%d, %d) must be non-negative", ErrInvalidTile, a, b)
	}
	return Tile{a: a, b: b}, nil
}

// MustTile is like NewTile but panics on a negative pip.
func MustTile(a, b int) Tile {
	t, err := NewTile(a, b)
	if err != nil {
		panic(err)
	}
	return t
}

// Side returns the pip at position s.
func (t Tile) Side(s Side) (int, error) {
	switch s {
	case SideOne:
		return t.a, nil
	case SideTwo:
		return t.b, nil
	}
	return 0, fmt.Errorf("%w: tile side %d", ErrOutOfRange, s)
}

func (t Tile) Size() int {
	return t.a + t.b
}

func (t Tile) IsDouble() bool {
	return t.a == t.b
}

// Equal compares the unordered pip pairs.
func (t Tile) Equal(o Tile) bool {
	return (t.a == o.a && t.b == o.b) || (t.a == o.b && t.b == o.a)
}

func (t Tile) Flip() Tile {
	return Tile{a: t.b, b: t.a}
}

func (t Tile) String() string {
	return fmt.Sprintf("[%d|%d]", t.a, t.b)
}
