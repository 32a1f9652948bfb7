package engine

import (
	"context"

	"github.com/lox/holdem-engine/internal/harness"
	"github.com/lox/holdem-engine/internal/state"
	"github.com/lox/holdem-engine/internal/validator"
)

// botDecision is the tuple a bots.Bot call returns, boxed up so it can flow
// through harness.Invoke's single-value generic contract.
type botDecision struct {
	Type   validator.ActionType
	Amount int
}

// runBettingStreet drives one betting round to completion: every actionable
// seat acts in turn starting at firstToAct, and any bet or raise reopens the
// action for seats that had already acted, except where the short-all-in
// rule says otherwise. It returns once no seat owes another action or only
// one player remains in the hand.
func (t *Table) runBettingStreet(ctx context.Context, hs *liveHand, firstToAct int) {
	if t.countActionable() < 2 {
		return
	}

	order := t.actionOrderFrom(firstToAct)
	toAct := make(map[int]bool, len(order))
	for _, seat := range order {
		if t.players[seat].active() {
			toAct[seat] = true
		}
	}

	for i := 0; len(toAct) > 0 && t.countInHand() > 1; i = (i + 1) % len(order) {
		seat := order[i]
		if !toAct[seat] {
			continue
		}
		p := t.players[seat]
		delete(toAct, seat)
		if !p.active() {
			continue
		}

		corrected := t.requestAction(ctx, hs, p)
		reopened, increment := t.applyAction(hs, p, corrected)

		if reopened {
			hs.minRaise = increment
			hs.callOnly = nil
			for _, s := range order {
				if s != seat && t.players[s].active() {
					toAct[s] = true
				}
			}
		} else if increment > 0 {
			// A short all-in raised the amount owed without reopening the
			// betting: seats who already acted may only call it off or fold.
			for _, s := range order {
				if s != seat && t.players[s].active() && !toAct[s] {
					toAct[s] = true
					if hs.callOnly == nil {
						hs.callOnly = map[int]bool{}
					}
					hs.callOnly[s] = true
				}
			}
		}
	}
}

// requestAction asks p's bot for a decision, supervised per t.supervisor,
// and corrects it against the legal actions available at this point in the
// hand. A seat marked call-only in hs may not bet or raise, regardless of
// what its bot requests.
func (t *Table) requestAction(ctx context.Context, hs *liveHand, p *player) validator.Action {
	gs := t.buildPublicState(hs)
	gs.ActingPlayer = p.Seat

	bot := t.bots[p.Seat]

	fallback := botDecision{Type: validator.Fold}
	decision := harness.Invoke(ctx, t.supervisor, p.Seat, func() botDecision {
		actType, amount := bot.GetAction(gs, p.HoleCards)
		return botDecision{Type: actType, Amount: amount}
	}, fallback)

	requested := validator.Action{Type: decision.Type, Amount: decision.Amount}
	if hs.callOnly[p.Seat] && (requested.Type == validator.Bet || requested.Type == validator.Raise) {
		requested = validator.Action{Type: validator.Call}
	}

	vp := validator.Player{Stack: p.Stack, CurrentBet: p.CurrentBet, Folded: p.Folded, AllIn: p.AllIn}
	vt := validator.Table{CurrentBet: hs.currentBet, MinRaise: hs.minRaise}
	corrected := validator.Correct(requested, vp, vt)

	if corrected != requested {
		t.logIllegal(p.Seat, requested, corrected)
	}
	return corrected
}

func (t *Table) logIllegal(seat int, requested, corrected validator.Action) {
	if t.supervisor == nil || t.supervisor.IllegalLog == nil {
		return
	}
	t.supervisor.IllegalLog.Warn().
		Int("seat", seat).
		Str("requested", requested.Type.String()).
		Str("corrected", corrected.Type.String()).
		Int("amount", corrected.Amount).
		Msg("bot action corrected")
}

// applyAction commits a corrected action to p's chip state and the hand
// history, and reports whether it was a full raise that reopens the betting
// (and if so, its increment over the previous bet).
func (t *Table) applyAction(hs *liveHand, p *player, a validator.Action) (reopened bool, increment int) {
	p.ActedThisRound = true

	switch a.Type {
	case validator.Fold:
		p.Folded = true
		hs.recordAction(p.Seat, state.Action{Type: state.Fold})
		return false, 0

	case validator.Check:
		hs.recordAction(p.Seat, state.Action{Type: state.Check})
		return false, 0

	case validator.Call:
		t.commit(p, a.Amount-p.CurrentBet)
		hs.recordAction(p.Seat, state.Action{Type: state.Call, Amount: a.Amount})
		return false, 0

	case validator.Bet:
		t.commit(p, a.Amount-p.CurrentBet)
		increment = a.Amount - hs.currentBet
		hs.currentBet = a.Amount
		hs.recordAction(p.Seat, state.Action{Type: state.Bet, Amount: a.Amount})
		return increment >= hs.minRaise, increment

	case validator.Raise:
		// a.Amount is the raise-by increment over hs.currentBet, not the
		// resulting total (see validator.Action).
		totalBet := hs.currentBet + a.Amount
		t.commit(p, totalBet-p.CurrentBet)
		increment = a.Amount
		hs.currentBet = totalBet
		hs.recordAction(p.Seat, state.Action{Type: state.Raise, Amount: totalBet})
		return increment >= hs.minRaise, increment

	case validator.AllIn:
		added := p.Stack
		t.commit(p, added)
		p.AllIn = true
		if p.CurrentBet > hs.currentBet {
			increment = p.CurrentBet - hs.currentBet
			hs.currentBet = p.CurrentBet
		}
		hs.recordAction(p.Seat, state.Action{Type: state.AllIn, Amount: p.CurrentBet})
		return increment >= hs.minRaise && increment > 0, increment
	}
	return false, 0
}

// commit moves amount chips from p's stack into its current-street and
// hand-total commitments.
func (t *Table) commit(p *player, amount int) {
	if amount <= 0 {
		return
	}
	if amount > p.Stack {
		amount = p.Stack
	}
	p.Stack -= amount
	p.CurrentBet += amount
	p.Contribution += amount
	if p.Stack == 0 {
		p.AllIn = true
	}
}
