package bots

import (
	"math/rand"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/handeval"
	"github.com/lox/holdem-engine/internal/state"
	"github.com/lox/holdem-engine/internal/validator"
)

// EquityBot estimates its win probability against a uniformly random
// opponent hand via Monte Carlo sampling and bets, raises, calls, or folds
// based on where that estimate falls against fixed thresholds.
type EquityBot struct {
	noopCloser
	rng     *rand.Rand
	samples int
}

// NewEquityBot builds an equity bot. samples controls the Monte Carlo
// sample count; higher is more accurate and slower.
func NewEquityBot(seed int64, samples int) *EquityBot {
	if samples <= 0 {
		samples = 1000
	}
	return &EquityBot{rng: rand.New(rand.NewSource(seed)), samples: samples}
}

func (b *EquityBot) GetAction(gs state.PublicGameState, hole []deck.Card) (validator.ActionType, int) {
	p, t := legalFromState(gs, gs.ActingPlayer)
	legal := validator.LegalActions(p, t)

	equity := handeval.EstimateEquity(hole, gs.CommunityCards, handeval.RandomRange{}, b.samples, b.rng)

	switch {
	case equity >= 0.70:
		if legal.CanRaise {
			return validator.Raise, legal.MinRaiseBy
		}
		if legal.CanBet {
			return validator.Bet, legal.MinBet
		}
		if legal.CanCall {
			return validator.Call, legal.CallTo
		}
		return validator.Check, 0
	case equity >= 0.45:
		if legal.CanCheck {
			return validator.Check, 0
		}
		if legal.CanCall {
			return validator.Call, legal.CallTo
		}
		return validator.Fold, 0
	default:
		if legal.CanCheck {
			return validator.Check, 0
		}
		return validator.Fold, 0
	}
}

// PercentileBot plays preflop off deck.GetHandPercentile, a static ranking
// of starting hands, which is far cheaper than Monte Carlo sampling and just
// as informative before any community cards narrow things down. Once a
// board is out it switches to the same equity-sampling approach as
// EquityBot, since a starting-hand ranking no longer accounts for what's on
// the board.
type PercentileBot struct {
	noopCloser
	rng        *rand.Rand
	samples    int
	raiseAbove float64
	callAbove  float64
}

// NewPercentileBot builds a percentile-ranking bot. samples controls the
// Monte Carlo sample count used postflop.
func NewPercentileBot(seed int64, samples int) *PercentileBot {
	if samples <= 0 {
		samples = 1000
	}
	return &PercentileBot{rng: rand.New(rand.NewSource(seed)), samples: samples, raiseAbove: 0.85, callAbove: 0.55}
}

func (b *PercentileBot) GetAction(gs state.PublicGameState, hole []deck.Card) (validator.ActionType, int) {
	p, t := legalFromState(gs, gs.ActingPlayer)
	legal := validator.LegalActions(p, t)

	var strength float64
	if len(gs.CommunityCards) == 0 {
		strength = deck.GetHandPercentile(hole)
	} else {
		strength = handeval.EstimateEquity(hole, gs.CommunityCards, handeval.RandomRange{}, b.samples, b.rng)
	}

	switch {
	case strength >= b.raiseAbove:
		if legal.CanRaise {
			return validator.Raise, legal.MinRaiseBy
		}
		if legal.CanBet {
			return validator.Bet, legal.MinBet
		}
		if legal.CanCall {
			return validator.Call, legal.CallTo
		}
		return validator.Check, 0
	case strength >= b.callAbove:
		if legal.CanCheck {
			return validator.Check, 0
		}
		if legal.CanCall {
			return validator.Call, legal.CallTo
		}
		return validator.Fold, 0
	default:
		if legal.CanCheck {
			return validator.Check, 0
		}
		return validator.Fold, 0
	}
}
