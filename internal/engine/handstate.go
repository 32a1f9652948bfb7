package engine

import (
	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/pot"
	"github.com/lox/holdem-engine/internal/state"
)

// liveHand is the in-progress state of the hand currently being played. It
// exists only for the duration of PlayHand; once the hand ends it is
// discarded and only its resulting state.HandRecord is retained.
type liveHand struct {
	record *state.HandRecord

	street    state.Street
	community []deck.Card

	currentBet int // chips a player must match this street
	minRaise   int // smallest legal raise increment this street

	buttonSeat int
	sbSeat     int
	bbSeat     int

	// callOnly marks seats who may only call or fold for the remainder of
	// this betting round, because the last raise to face them was a short
	// all-in that doesn't reopen the betting (SPEC_FULL.md open question 1).
	callOnly map[int]bool
}

func (t *Table) newLiveHand(handID string) *liveHand {
	return &liveHand{
		record: &state.HandRecord{
			HandID:    handID,
			Button:    t.button,
			PerStreet: map[state.Street]*state.StreetHistory{},
		},
	}
}

func (hs *liveHand) startStreet(street state.Street, minRaise int) {
	hs.street = street
	hs.currentBet = 0
	hs.minRaise = minRaise
	hs.callOnly = nil
	hs.record.PerStreet[street] = &state.StreetHistory{CommunityCards: append([]deck.Card(nil), hs.community...)}
}

func (hs *liveHand) recordAction(seat int, a state.Action) {
	a.PlayerIndex = seat
	sh := hs.record.PerStreet[hs.street]
	sh.Actions = append(sh.Actions, a)
}

// contributions builds the pot ledger's view of every seat still in the
// tournament, using each player's cumulative hand contribution.
func (t *Table) contributions() []pot.Contribution {
	var cs []pot.Contribution
	for _, p := range t.players {
		if p.Busted {
			continue
		}
		cs = append(cs, pot.Contribution{Seat: p.Seat, Amount: p.Contribution, Folded: p.Folded})
	}
	return cs
}

// livePots computes the pot layering for the hand as it currently stands,
// for display in state.PublicGameState. The authoritative reconciliation
// used to actually pay out winners happens once more at showdown.
func (t *Table) livePots() []pot.Pot {
	pots, _ := pot.Reconcile(t.contributions())
	return pots
}

// buildPublicState deep-copies everything a bot (or an observer) is allowed
// to see about the table into a fresh snapshot. Every pointer the Table
// itself still owns and mutates -- notably the in-progress hand's history --
// is copied rather than handed out by reference, so a bot cannot observe
// later mutations or write back into engine state through it.
func (t *Table) buildPublicState(hs *liveHand) state.PublicGameState {
	players := make([]state.PlayerPublicInfo, len(t.players))
	total := 0
	for i, p := range t.players {
		players[i] = state.PlayerPublicInfo{
			Name:       p.Name,
			Stack:      p.Stack,
			CurrentBet: p.CurrentBet,
			Active:     p.inHand(),
			Folded:     p.Folded,
			AllIn:      p.AllIn,
			Busted:     p.Busted,
		}
		total += p.Contribution
	}

	history := make([]*state.HandRecord, len(t.history))
	for i, hr := range t.history {
		history[i] = deepCopyHandRecord(hr)
	}

	sb, bb := t.blindsForRound(t.roundNumber)

	return state.PublicGameState{
		RoundNumber:           t.roundNumber,
		Players:               players,
		Button:                t.button,
		CommunityCards:        append([]deck.Card(nil), hs.community...),
		TotalPot:              total,
		Pots:                  t.livePots(),
		SmallBlind:            sb,
		BigBlind:              bb,
		BlindsSchedule:        append([]state.BlindLevel(nil), t.blindsSchedule...),
		MinimumRaise:          hs.minRaise,
		CurrentBet:            hs.currentBet,
		Street:                hs.street,
		CurrentHandHistory:    deepCopyHandRecord(hs.record),
		PreviousHandHistories: history,
	}
}

// deepCopyHandRecord copies a HandRecord and everything it points to, so the
// returned value shares no mutable state with the Table's own copy.
func deepCopyHandRecord(hr *state.HandRecord) *state.HandRecord {
	if hr == nil {
		return nil
	}

	cp := &state.HandRecord{
		HandID:    hr.HandID,
		Button:    hr.Button,
		PerStreet: make(map[state.Street]*state.StreetHistory, len(hr.PerStreet)),
	}
	for street, sh := range hr.PerStreet {
		cp.PerStreet[street] = &state.StreetHistory{
			CommunityCards: append([]deck.Card(nil), sh.CommunityCards...),
			Actions:        append([]state.Action(nil), sh.Actions...),
		}
	}

	if hr.Showdown != nil {
		shown := make(map[int][]deck.Card, len(hr.Showdown.Shown))
		for seat, cards := range hr.Showdown.Shown {
			shown[seat] = append([]deck.Card(nil), cards...)
		}
		potWins := make([]state.PotWin, len(hr.Showdown.PotWins))
		for i, pw := range hr.Showdown.PotWins {
			winners := make(map[int]int, len(pw.Winners))
			for seat, amount := range pw.Winners {
				winners[seat] = amount
			}
			potWins[i] = state.PotWin{PotIndex: pw.PotIndex, Winners: winners}
		}
		cp.Showdown = &state.ShowdownDetails{Shown: shown, PotWins: potWins}
	}

	return cp
}

// countInHand returns how many non-busted seats have not folded this hand.
func (t *Table) countInHand() int {
	n := 0
	for _, p := range t.players {
		if p.inHand() {
			n++
		}
	}
	return n
}

// countActionable returns how many seats can still voluntarily act this
// street (not folded, not all-in, not busted).
func (t *Table) countActionable() int {
	n := 0
	for _, p := range t.players {
		if p.active() {
			n++
		}
	}
	return n
}

// actionOrderFrom returns every seat index in table order starting at (and
// including) start, wrapping once around the table.
func (t *Table) actionOrderFrom(start int) []int {
	n := len(t.players)
	order := make([]int, n)
	for i := range order {
		order[i] = (start + i) % n
	}
	return order
}
