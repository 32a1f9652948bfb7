// Package validator implements the ActionValidator: it takes whatever a bot
// returned and maps it onto one of the legal actions available at that
// point in the hand, correcting anything illegal rather than rejecting it
// outright. Bots are expected to misbehave occasionally (a stale action
// type, a raise below the minimum, a call that doesn't fit the stack) and
// the table keeps moving regardless.
package validator

// ActionType is one of the six decisions a player can make when it's their
// turn to act.
type ActionType int

const (
	Fold ActionType = iota
	Check
	Call
	Bet
	Raise
	AllIn
)

func (t ActionType) String() string {
	switch t {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Bet:
		return "bet"
	case Raise:
		return "raise"
	case AllIn:
		return "all-in"
	default:
		return "unknown"
	}
}

// Action is a requested or corrected player decision. For Bet, Amount is the
// total size of the wager (there's no existing bet to measure against). For
// Raise, Amount is the additional chips on top of what calling Table's
// CurrentBet already costs — a raise to 70 when CurrentBet is 50 is
// Amount: 20, not Amount: 70. In a requested action Amount is ignored for
// Fold/Check/Call/AllIn; a corrected Call or AllIn carries the total
// street commitment it brings the player to.
type Action struct {
	Type   ActionType
	Amount int
}

// Player is the minimal read-only view of a player's state the validator
// needs to judge an action.
type Player struct {
	Stack      int // chips not yet committed this street
	CurrentBet int // chips already committed this street
	Folded     bool
	AllIn      bool
}

// Table is the minimal read-only view of the current betting round.
type Table struct {
	CurrentBet int // the amount players must match to call
	MinRaise   int // the minimum legal raise increment
}

// TotalChips is what the player could put in if they shoved everything.
func (p Player) TotalChips() int {
	return p.Stack + p.CurrentBet
}

// owesToCall is how many more chips the player must add to match the table's
// current bet.
func (p Player) owesToCall(t Table) int {
	owed := t.CurrentBet - p.CurrentBet
	if owed < 0 {
		return 0
	}
	return owed
}

// Legal enumerates which action families are available and their bounds.
type Legal struct {
	CanFold  bool
	CanCheck bool
	CanCall  bool
	CallTo   int // total bet level a Call would bring the player to

	CanBet bool
	MinBet int
	MaxBet int // all-in amount, for a Bet when CurrentBet is 0

	CanRaise   bool
	MinRaiseBy int // smallest legal raise increment, on top of CurrentBet
	MaxRaiseBy int // largest legal raise increment (an all-in), on top of CurrentBet
}

// LegalActions computes the bundle of legal actions for a player to act.
func LegalActions(p Player, t Table) Legal {
	var l Legal
	l.CanFold = true

	owed := p.owesToCall(t)
	if owed == 0 {
		l.CanCheck = true
	} else {
		// A short call (owed > stack) is still legal; it just goes all-in.
		l.CanCall = true
		l.CallTo = min(t.CurrentBet, p.TotalChips())
	}

	total := p.TotalChips()
	if t.CurrentBet == 0 {
		if p.Stack > 0 {
			l.CanBet = true
			l.MinBet = min(t.MinRaise, total)
			l.MaxBet = total
		}
	} else if total > t.CurrentBet {
		l.CanRaise = true
		l.MaxRaiseBy = total - t.CurrentBet
		l.MinRaiseBy = min(t.MinRaise, l.MaxRaiseBy)
	}
	return l
}

// Correct maps a requested action onto the nearest legal action, applying
// the correction rules in order. Each rule only fires when the previous
// ones didn't already resolve the action.
func Correct(requested Action, p Player, t Table) Action {
	legal := LegalActions(p, t)
	owed := p.owesToCall(t)

	switch requested.Type {
	case Fold, Check, Call, Bet, Raise, AllIn:
		// known type, fall through to the specific rules below
	default:
		// Rule 1: unknown action type folds if there's something to call,
		// otherwise checks.
		if owed > 0 {
			return Action{Type: Fold}
		}
		return Action{Type: Check}
	}

	switch requested.Type {
	case Fold:
		// Rule 2: folding when there's nothing owed is corrected to a check.
		if owed == 0 {
			return Action{Type: Check}
		}
		return Action{Type: Fold}

	case Check:
		// Rule 3: checking when a bet is owed is corrected to a call.
		if owed > 0 {
			return correctedCall(p, t)
		}
		return Action{Type: Check}

	case Call:
		return correctedCall(p, t)

	case Bet:
		// Rule 5: betting when a bet already exists is corrected to a raise
		// (or a call/all-in, if the player can't raise at all).
		if t.CurrentBet > 0 {
			if !legal.CanRaise {
				return correctedCall(p, t)
			}
			return raiseOrAllIn(requested.Amount, legal, p)
		}
		if !legal.CanBet {
			return Action{Type: Check}
		}
		return betOrAllIn(requested.Amount, legal, p)

	case Raise:
		if t.CurrentBet == 0 {
			if !legal.CanBet {
				return Action{Type: Check}
			}
			return betOrAllIn(requested.Amount, legal, p)
		}
		if !legal.CanRaise {
			return correctedCall(p, t)
		}
		return raiseOrAllIn(requested.Amount, legal, p)

	case AllIn:
		return Action{Type: AllIn, Amount: p.TotalChips()}
	}

	return Action{Type: Fold}
}

func correctedCall(p Player, t Table) Action {
	owed := p.owesToCall(t)
	if owed >= p.Stack {
		return Action{Type: AllIn, Amount: p.TotalChips()}
	}
	return Action{Type: Call, Amount: t.CurrentBet}
}

// betOrAllIn pulls a requested bet amount (total, not incremental) into
// range: below the minimum bumps up to the minimum (or all-in, if the
// minimum itself exceeds the stack), above the stack goes all-in.
func betOrAllIn(amount int, legal Legal, p Player) Action {
	total := p.TotalChips()
	if amount >= legal.MaxBet || legal.MinBet >= total {
		return Action{Type: AllIn, Amount: total}
	}
	if amount < legal.MinBet {
		return Action{Type: Bet, Amount: legal.MinBet}
	}
	return Action{Type: Bet, Amount: amount}
}

// raiseOrAllIn is the raise equivalent of betOrAllIn, operating on raise
// increments rather than totals: a raise-by below the minimum increment is
// corrected up to the minimum, unless that minimum itself would shove the
// player all-in, in which case they go all-in instead.
func raiseOrAllIn(amountBy int, legal Legal, p Player) Action {
	total := p.TotalChips()
	if amountBy >= legal.MaxRaiseBy || legal.MinRaiseBy >= legal.MaxRaiseBy {
		return Action{Type: AllIn, Amount: total}
	}
	if amountBy < legal.MinRaiseBy {
		return Action{Type: Raise, Amount: legal.MinRaiseBy}
	}
	return Action{Type: Raise, Amount: amountBy}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
