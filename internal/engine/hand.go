package engine

import (
	"context"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/gameid"
	"github.com/lox/holdem-engine/internal/handeval"
	"github.com/lox/holdem-engine/internal/pot"
	"github.com/lox/holdem-engine/internal/state"
)

// PlayHand plays a single hand to completion: it deals hole cards, posts
// blinds, drives the four betting streets, reconciles the pot at showdown
// (or pays a single winner if everyone else folded), and rotates the button.
// The resulting record is appended to the table's history and also returned.
func (t *Table) PlayHand(ctx context.Context) (*state.HandRecord, error) {
	active := t.activeSeats()
	if len(active) < 2 {
		return nil, &InvariantError{Msg: "PlayHand requires at least two seats still in the tournament"}
	}

	for _, p := range t.players {
		p.resetForHand()
	}
	t.advanceButton()

	hs := t.newLiveHand(gameid.Generate())

	d := deck.New(t.rng)
	t.dealHoleCards(d)
	t.postBlinds(hs)

	t.playStreet(ctx, hs, state.Preflop, nil)
	if t.countInHand() > 1 {
		flop, _ := d.DealN(3)
		t.burnAndDeal(d, &hs.community, flop)
		t.playStreet(ctx, hs, state.Flop, hs.community)
	}
	if t.countInHand() > 1 {
		card, _ := d.Deal()
		t.burnAndDeal(d, &hs.community, []deck.Card{card})
		t.playStreet(ctx, hs, state.Turn, hs.community)
	}
	if t.countInHand() > 1 {
		card, _ := d.Deal()
		t.burnAndDeal(d, &hs.community, []deck.Card{card})
		t.playStreet(ctx, hs, state.River, hs.community)
	}

	t.settle(hs)

	t.roundNumber++
	t.history = append(t.history, hs.record)
	return hs.record, nil
}

// burnAndDeal discards the customary burn card before appending newCards to
// the community board.
func (t *Table) burnAndDeal(d *deck.Deck, community *[]deck.Card, newCards []deck.Card) {
	_, _ = d.Burn()
	*community = append(*community, newCards...)
}

// advanceButton moves the button to the next non-busted seat.
func (t *Table) advanceButton() {
	n := len(t.players)
	for i := 1; i <= n; i++ {
		seat := (t.button + i) % n
		if !t.players[seat].Busted {
			t.button = seat
			return
		}
	}
}

func (t *Table) dealHoleCards(d *deck.Deck) {
	for _, p := range t.players {
		if p.Busted {
			continue
		}
		cards, _ := d.DealN(2)
		p.HoleCards = cards
	}
}

// postBlinds posts the small and big blind for the hand, handling the
// heads-up special case (button posts the small blind) and short stacks
// (a blind larger than a player's stack goes all-in for less).
func (t *Table) postBlinds(hs *liveHand) {
	active := t.activeSeats()
	sbAmount, bbAmount := t.blindsForRound(t.roundNumber)

	if len(active) == 2 {
		hs.buttonSeat = t.button
		hs.sbSeat = t.button
		hs.bbSeat = t.otherSeat(t.button, active)
	} else {
		hs.buttonSeat = t.button
		hs.sbSeat = t.nextActiveSeat(t.button)
		hs.bbSeat = t.nextActiveSeat(hs.sbSeat)
	}

	hs.startStreet(state.Preflop, bbAmount)

	sb := t.players[hs.sbSeat]
	t.commit(sb, min(sbAmount, sb.Stack))
	hs.recordAction(sb.Seat, state.Action{Type: state.SmallBlind, Amount: sb.CurrentBet})

	bb := t.players[hs.bbSeat]
	t.commit(bb, min(bbAmount, bb.Stack))
	hs.recordAction(bb.Seat, state.Action{Type: state.BigBlind, Amount: bb.CurrentBet})

	hs.currentBet = bb.CurrentBet
}

func (t *Table) otherSeat(seat int, active []*player) int {
	for _, p := range active {
		if p.Seat != seat {
			return p.Seat
		}
	}
	return seat
}

func (t *Table) nextActiveSeat(from int) int {
	n := len(t.players)
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		if !t.players[seat].Busted {
			return seat
		}
	}
	return from
}

// playStreet resets per-street betting state, determines first-to-act, and
// runs the street if more than one player can still act. Preflop reuses the
// blinds already posted by postBlinds instead of starting a fresh street.
func (t *Table) playStreet(ctx context.Context, hs *liveHand, street state.Street, community []deck.Card) {
	if street != state.Preflop {
		_, bbAmount := t.blindsForRound(t.roundNumber)
		hs.startStreet(street, bbAmount)
		for _, p := range t.players {
			p.resetForStreet()
		}
	}

	var firstToAct int
	active := t.activeSeats()
	if street == state.Preflop {
		if len(active) == 2 {
			firstToAct = hs.sbSeat // heads-up: button/SB acts first preflop
		} else {
			firstToAct = t.nextActiveSeat(hs.bbSeat)
		}
	} else {
		if len(active) == 2 {
			firstToAct = t.otherSeat(t.button, active) // heads-up: BB acts first postflop
		} else {
			firstToAct = t.nextActiveSeat(t.button)
		}
	}

	t.runBettingStreet(ctx, hs, firstToAct)
}

// settle pays out the hand: if only one player remains, they win every
// contribution uncontested; otherwise every pot is reconciled and awarded to
// the best hand(s) among its eligible, non-folded contributors.
func (t *Table) settle(hs *liveHand) {
	contributions := t.contributions()
	pots, refunds := pot.Reconcile(contributions)

	for seat, amount := range refunds {
		t.players[seat].Stack += amount
	}

	winners := map[int]map[int]int{} // pot index -> seat -> amount won
	shown := map[int][]deck.Card{}
	uncontested := t.countInHand() == 1

	ranks := map[int]handeval.HandRank{}
	for _, p := range t.players {
		if !p.inHand() {
			continue
		}
		cards := append(append([]deck.Card(nil), p.HoleCards...), hs.community...)
		ranks[p.Seat] = handeval.Evaluate(cards)
		if !uncontested {
			shown[p.Seat] = p.HoleCards
		}
	}

	for i, pt := range pots {
		tied := handeval.DetermineWinners(ranks, pt.Eligible)
		winners[i] = t.splitPot(pt.Amount, tied, hs.buttonSeat)
		for seat, amount := range winners[i] {
			t.players[seat].Stack += amount
		}
	}

	potWins := make([]state.PotWin, 0, len(winners))
	for i, w := range winners {
		potWins = append(potWins, state.PotWin{PotIndex: i, Winners: w})
	}
	hs.record.Showdown = &state.ShowdownDetails{Shown: shown, PotWins: potWins}

	for _, p := range t.players {
		p.CurrentBet = 0 // every bet has now been paid out through the pots
		if !p.Busted && p.Stack == 0 {
			p.Busted = true
		}
	}
}

// splitPot divides amount evenly among winners, awarding the odd chips left
// over by integer division to whichever winners sit closest clockwise from
// the button, the standard poker-room rule for breaking a split-pot tie.
func (t *Table) splitPot(amount int, winners []int, buttonSeat int) map[int]int {
	ordered := t.orderFromButton(winners, buttonSeat)

	result := make(map[int]int, len(ordered))
	share := amount / len(ordered)
	remainder := amount % len(ordered)
	for i, seat := range ordered {
		result[seat] = share
		if i < remainder {
			result[seat]++
		}
	}
	return result
}

// orderFromButton returns seats, a subset of the table's seats, ordered by
// clockwise distance from the button -- the seat immediately to the button's
// left comes first.
func (t *Table) orderFromButton(seats []int, buttonSeat int) []int {
	inSeats := make(map[int]bool, len(seats))
	for _, s := range seats {
		inSeats[s] = true
	}

	ordered := make([]int, 0, len(seats))
	for _, seat := range t.actionOrderFrom((buttonSeat + 1) % len(t.players)) {
		if inSeats[seat] {
			ordered = append(ordered, seat)
		}
	}
	return ordered
}
