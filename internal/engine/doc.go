// Package engine implements the tournament's Table: it deals hands, drives
// each betting round to completion, reconciles pots at showdown, and keeps
// the hand-by-hand history a tournament accumulates.
//
// A Table owns one seat per bots.Bot and is played one hand at a time with
// PlayHand. Everything a bot is allowed to see is copied out into a
// state.PublicGameState before the bot is called; the Table's own fields,
// including every player's hole cards, are never shared directly.
package engine
