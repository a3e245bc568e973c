package game

import "fmt"

// Player is a seat at the table. Order is fixed at creation and sets the turn sequence.
type Player struct {
	order int
	hand  *Hand
}

func NewPlayer(order int, tiles ...Tile) *Player {
	return &Player{
		order: order,
		hand:  NewHand(tiles...),
	}
}

// MakePlayers seats n players numbered 1..n.
func MakePlayers(n int) ([]*Player, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: need at least one player, got %d", ErrInvalidConfig, n)
	}
	players := make([]*Player, 0, n)
	for i := 1; i <= n; i++ {
		players = append(players, NewPlayer(i))
	}
	return players, nil
}

func (p *Player) Order() int {
	return p.order
}

func (p *Player) Hand() *Hand {
	return p.hand
}

func (p *Player) String() string {
	return fmt.Sprintf("Player %d", p.order)
}
