package deck

import (
	"errors"
	randv2 "math/rand/v2"
)

// ErrDeckExhausted is returned by Deal and Burn when no cards remain.
var ErrDeckExhausted = errors.New("deck: exhausted")

// Deck represents a shuffled deck of playing cards. A Deck is not safe for
// concurrent use; each hand should own its own Deck.
type Deck struct {
	cards []Card
	rng   *randv2.Rand
}

// New creates a standard 52-card deck and shuffles it using rng. Callers
// supply the *rand.Rand so hand-level determinism (see internal/randutil)
// flows down to every card dealt.
func New(rng *randv2.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	d.fill()
	d.Shuffle()
	return d
}

func (d *Deck) fill() {
	d.cards = d.cards[:0]
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
}

// Shuffle randomizes the order of the remaining cards in place.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card from the deck.
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckExhausted
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// DealN deals n cards from the deck, stopping early with ErrDeckExhausted if
// the deck runs out. Any cards dealt before the error are still returned.
func (d *Deck) DealN(n int) ([]Card, error) {
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		card, err := d.Deal()
		if err != nil {
			return cards, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Burn discards the top card of the deck, as is customary before dealing
// the flop, turn, and river.
func (d *Deck) Burn() (Card, error) {
	return d.Deal()
}

// Remaining returns the number of cards left in the deck.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left.
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Peek returns the top card without removing it from the deck.
func (d *Deck) Peek() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[0], true
}
