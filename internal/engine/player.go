package engine

import "github.com/lox/holdem-engine/internal/deck"

// player is the table's private view of one seat. Only a projection of this
// (state.PlayerPublicInfo) is ever handed to a bot.
type player struct {
	Seat   int
	Name   string
	Stack  int
	Busted bool

	// Per-hand state, reset at the start of every hand.
	HoleCards    []deck.Card
	CurrentBet   int // committed this street
	Contribution int // committed this hand, across all streets
	Folded       bool
	AllIn        bool
	ActedThisRound bool
}

func (p *player) resetForHand() {
	p.HoleCards = nil
	p.CurrentBet = 0
	p.Contribution = 0
	p.Folded = false
	p.AllIn = false
	p.ActedThisRound = false
}

func (p *player) resetForStreet() {
	p.CurrentBet = 0
	p.ActedThisRound = false
}

// active means still able to act or be dealt into the current hand: not
// folded, not all-in, and not busted out of the tournament.
func (p *player) active() bool {
	return !p.Busted && !p.Folded && !p.AllIn
}

// inHand means still contesting the pot, whether or not they can act again.
func (p *player) inHand() bool {
	return !p.Busted && !p.Folded
}
