package engine

import (
	"context"

	"github.com/lox/holdem-engine/internal/bots"
	"github.com/lox/holdem-engine/internal/state"
)

// Tournament wraps a Table with the chip total established at creation, so
// every hand played can be audited for chip conservation without the caller
// having to re-derive the expected total itself.
type Tournament struct {
	*Table
	expectedTotal int
}

// NewTournament creates a Tournament over a fresh Table.
func NewTournament(seed int64, seatBots []bots.Bot, startingStack int, opts ...Option) *Tournament {
	t := NewTable(seed, seatBots, startingStack, opts...)
	return &Tournament{Table: t, expectedTotal: t.TotalChips()}
}

// PlayHand plays one hand and then audits that the tournament's total chip
// count hasn't drifted, returning an *InvariantError if it has.
func (tm *Tournament) PlayHand(ctx context.Context) (*state.HandRecord, error) {
	record, err := tm.Table.PlayHand(ctx)
	if err != nil {
		return record, err
	}
	if verr := tm.Table.ValidateChipConservation(tm.expectedTotal); verr != nil {
		return record, verr
	}
	return record, nil
}

// Finished reports whether the tournament has a winner (one non-busted
// seat remains).
func (tm *Tournament) Finished() bool {
	return len(tm.activeSeats()) <= 1
}

// Winner returns the seat index of the last player standing, if any.
func (tm *Tournament) Winner() (seat int, ok bool) {
	active := tm.activeSeats()
	if len(active) != 1 {
		return 0, false
	}
	return active[0].Seat, true
}
