package game

import "fmt"

// End names one of the two exposed ends of the chain.
type End int

const (
	Left End = iota
	Right
)

func (e End) String() string {
	switch e {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("End(%d)", int(e))
}

// Move places Tile at End with the pip on Side facing the chain.
type Move struct {
	Tile Tile
	Side Side
	End  End
}

func (m Move) String() string {
	return fmt.Sprintf("%s side %d on the %s", m.Tile, m.Side, m.End)
}
