package handeval

import (
	"fmt"
	"strings"

	"github.com/lox/holdem-engine/internal/deck"
)

var rankChars = map[byte]deck.Rank{
	'2': deck.Two, '3': deck.Three, '4': deck.Four, '5': deck.Five,
	'6': deck.Six, '7': deck.Seven, '8': deck.Eight, '9': deck.Nine,
	'T': deck.Ten, 'J': deck.Jack, 'Q': deck.Queen, 'K': deck.King, 'A': deck.Ace,
}

var suitChars = map[byte]deck.Suit{
	's': deck.Spades, 'h': deck.Hearts, 'd': deck.Diamonds, 'c': deck.Clubs,
}

// ParseCards parses shorthand card notation such as "AsKsQsJsTs" into cards,
// each pair of characters giving a rank (A K Q J T 9-2, case-insensitive)
// and a suit (s h d c, case-insensitive).
func ParseCards(s string) ([]deck.Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length: %d (must be even)", len(s))
	}

	cards := make([]deck.Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		rank, err := parseRank(s[i])
		if err != nil {
			return nil, fmt.Errorf("invalid rank '%c' at position %d: %w", s[i], i, err)
		}
		suit, err := parseSuit(s[i+1])
		if err != nil {
			return nil, fmt.Errorf("invalid suit '%c' at position %d: %w", s[i+1], i+1, err)
		}
		cards = append(cards, deck.Card{Rank: rank, Suit: suit})
	}
	return cards, nil
}

// MustParseCards is ParseCards for callers (mainly tests) that would rather
// panic on malformed input than plumb the error through.
func MustParseCards(s string) []deck.Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parseRank(c byte) (deck.Rank, error) {
	if rank, ok := rankChars[upper(c)]; ok {
		return rank, nil
	}
	return 0, fmt.Errorf("unknown rank '%c'", c)
}

func parseSuit(c byte) (deck.Suit, error) {
	if suit, ok := suitChars[lower(c)]; ok {
		return suit, nil
	}
	return 0, fmt.Errorf("unknown suit '%c'", c)
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
