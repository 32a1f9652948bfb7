package bots

import (
	rand "math/rand/v2"
	"testing"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/state"
	"github.com/lox/holdem-engine/internal/validator"
	"github.com/stretchr/testify/assert"
)

func headsUpState(actingBet, otherBet int) state.PublicGameState {
	return state.PublicGameState{
		Players: []state.PlayerPublicInfo{
			{Stack: 100, CurrentBet: actingBet},
			{Stack: 100, CurrentBet: otherBet},
		},
		ActingPlayer: 0,
		CurrentBet:   otherBet,
		MinimumRaise: 20,
	}
}

func TestFoldingBotChecksWhenFree(t *testing.T) {
	bot := NewFoldingBot()
	action, _ := bot.GetAction(headsUpState(20, 20), nil)
	assert.Equal(t, validator.Check, action)
}

func TestFoldingBotFoldsToABet(t *testing.T) {
	bot := NewFoldingBot()
	action, _ := bot.GetAction(headsUpState(0, 20), nil)
	assert.Equal(t, validator.Fold, action)
}

func TestCallingStationCallsABet(t *testing.T) {
	bot := NewCallingStationBot()
	action, amount := bot.GetAction(headsUpState(0, 20), nil)
	assert.Equal(t, validator.Call, action)
	assert.Equal(t, 20, amount)
}

func TestRandomBotAlwaysReturnsLegalAction(t *testing.T) {
	bot := NewRandomBot(rand.New(rand.NewPCG(1, 2)))
	for i := 0; i < 50; i++ {
		action, _ := bot.GetAction(headsUpState(0, 20), nil)
		assert.Contains(t, []validator.ActionType{validator.Fold, validator.Call, validator.Bet, validator.Raise}, action)
	}
}

func TestAggressiveBotNeverFoldsAFreeCheck(t *testing.T) {
	bot := NewAggressiveBot(rand.New(rand.NewPCG(1, 2)), 1.0)
	action, _ := bot.GetAction(headsUpState(20, 20), []deck.Card{})
	assert.NotEqual(t, validator.Fold, action)
}
