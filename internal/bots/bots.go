// Package bots defines the contract every player-seat strategy implements,
// plus a handful of reference bots used for tournament testing and as
// opponents for bots under development.
package bots

import (
	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/state"
	"github.com/lox/holdem-engine/internal/validator"
)

// Bot is the contract a seat's strategy must implement. GetAction is called
// once per decision point with a fresh deep copy of the public state and the
// bot's own two hole cards; it must not mutate either. Close is called once
// per bot at tournament end, after its final hand, so a bot backed by a
// subprocess or open file can release resources.
type Bot interface {
	GetAction(gs state.PublicGameState, hole []deck.Card) (validator.ActionType, int)
	Close() error
}

// noopCloser can be embedded by bots with nothing to release.
type noopCloser struct{}

func (noopCloser) Close() error { return nil }
