package bots

import (
	rand "math/rand/v2"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/state"
	"github.com/lox/holdem-engine/internal/validator"
)

// legalFromState derives validator-level legal-action bounds from the
// bot-facing public state for the given seat.
func legalFromState(gs state.PublicGameState, seat int) (validator.Player, validator.Table) {
	info := gs.Players[seat]
	return validator.Player{
			Stack:      info.Stack,
			CurrentBet: info.CurrentBet,
			Folded:     info.Folded,
			AllIn:      info.AllIn,
		}, validator.Table{
			CurrentBet: gs.CurrentBet,
			MinRaise:   gs.MinimumRaise,
		}
}

// FoldingBot always folds when there's a bet to call, otherwise checks. It
// exists mainly as a baseline opponent and a harness-timeout test fixture.
type FoldingBot struct{ noopCloser }

func NewFoldingBot() *FoldingBot { return &FoldingBot{} }

func (b *FoldingBot) GetAction(gs state.PublicGameState, _ []deck.Card) (validator.ActionType, int) {
	p, t := legalFromState(gs, gs.ActingPlayer)
	legal := validator.LegalActions(p, t)
	if legal.CanCheck {
		return validator.Check, 0
	}
	return validator.Fold, 0
}

// CallingStationBot calls any bet and never raises or folds voluntarily,
// short of an uncallable all-in, which it still calls for whatever it has.
type CallingStationBot struct{ noopCloser }

func NewCallingStationBot() *CallingStationBot { return &CallingStationBot{} }

func (b *CallingStationBot) GetAction(gs state.PublicGameState, _ []deck.Card) (validator.ActionType, int) {
	p, t := legalFromState(gs, gs.ActingPlayer)
	legal := validator.LegalActions(p, t)
	if legal.CanCheck {
		return validator.Check, 0
	}
	return validator.Call, legal.CallTo
}

// RandomBot picks uniformly among whichever of fold/check/call/bet-or-raise
// are currently legal, sizing any bet or raise to the minimum.
type RandomBot struct {
	noopCloser
	rng *rand.Rand
}

func NewRandomBot(rng *rand.Rand) *RandomBot {
	return &RandomBot{rng: rng}
}

func (b *RandomBot) GetAction(gs state.PublicGameState, _ []deck.Card) (validator.ActionType, int) {
	p, t := legalFromState(gs, gs.ActingPlayer)
	legal := validator.LegalActions(p, t)

	var options []func() (validator.ActionType, int)
	options = append(options, func() (validator.ActionType, int) { return validator.Fold, 0 })
	if legal.CanCheck {
		options = append(options, func() (validator.ActionType, int) { return validator.Check, 0 })
	}
	if legal.CanCall {
		options = append(options, func() (validator.ActionType, int) { return validator.Call, legal.CallTo })
	}
	if legal.CanBet {
		options = append(options, func() (validator.ActionType, int) { return validator.Bet, legal.MinBet })
	}
	if legal.CanRaise {
		options = append(options, func() (validator.ActionType, int) { return validator.Raise, legal.MinRaiseBy })
	}
	return options[b.rng.IntN(len(options))]()
}

// AggressiveBot raises or bets most of the time when it can, and otherwise
// calls; it never folds a free check.
type AggressiveBot struct {
	noopCloser
	rng          *rand.Rand
	aggression   float64
}

// NewAggressiveBot builds a bot that bets or raises with probability
// aggression (clamped to [0,1]) whenever betting is legal.
func NewAggressiveBot(rng *rand.Rand, aggression float64) *AggressiveBot {
	if aggression < 0 {
		aggression = 0
	}
	if aggression > 1 {
		aggression = 1
	}
	return &AggressiveBot{rng: rng, aggression: aggression}
}

func (b *AggressiveBot) GetAction(gs state.PublicGameState, _ []deck.Card) (validator.ActionType, int) {
	p, t := legalFromState(gs, gs.ActingPlayer)
	legal := validator.LegalActions(p, t)

	if b.rng.Float64() < b.aggression {
		if legal.CanRaise {
			return validator.Raise, legal.MinRaiseBy
		}
		if legal.CanBet {
			return validator.Bet, legal.MinBet
		}
	}
	if legal.CanCheck {
		return validator.Check, 0
	}
	if legal.CanCall {
		return validator.Call, legal.CallTo
	}
	return validator.Fold, 0
}
