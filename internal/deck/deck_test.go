package deck

import (
	randv2 "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeck() *Deck {
	return New(randv2.New(randv2.NewPCG(1, 2)))
}

func TestNewProducesAFullShuffledDeck(t *testing.T) {
	d := newTestDeck()
	assert.Equal(t, 52, d.Remaining())
	assert.False(t, d.IsEmpty())
}

func TestDealRemovesCardsUntilExhausted(t *testing.T) {
	d := newTestDeck()
	seen := make(map[Card]bool, 52)
	for i := 0; i < 52; i++ {
		card, err := d.Deal()
		require.NoError(t, err)
		assert.False(t, seen[card], "card %v dealt twice", card)
		seen[card] = true
	}
	assert.True(t, d.IsEmpty())

	_, err := d.Deal()
	assert.ErrorIs(t, err, ErrDeckExhausted)
}

func TestDealNReturnsPartialResultOnExhaustion(t *testing.T) {
	d := newTestDeck()
	_, err := d.DealN(50)
	require.NoError(t, err)

	cards, err := d.DealN(5)
	assert.ErrorIs(t, err, ErrDeckExhausted)
	assert.Len(t, cards, 2)
}

func TestBurnDealsExactlyOneCard(t *testing.T) {
	d := newTestDeck()
	before := d.Remaining()
	_, err := d.Burn()
	require.NoError(t, err)
	assert.Equal(t, before-1, d.Remaining())
}

func TestPeekDoesNotRemoveTheCard(t *testing.T) {
	d := newTestDeck()
	top, ok := d.Peek()
	require.True(t, ok)

	dealt, err := d.Deal()
	require.NoError(t, err)
	assert.Equal(t, top, dealt)
}

func TestPeekOnEmptyDeckReturnsFalse(t *testing.T) {
	d := newTestDeck()
	_, err := d.DealN(52)
	require.NoError(t, err)

	_, ok := d.Peek()
	assert.False(t, ok)
}

func TestNewIsDeterministicForAFixedSeed(t *testing.T) {
	a := New(randv2.New(randv2.NewPCG(99, 100)))
	b := New(randv2.New(randv2.NewPCG(99, 100)))

	cardsA, err := a.DealN(52)
	require.NoError(t, err)
	cardsB, err := b.DealN(52)
	require.NoError(t, err)

	assert.Equal(t, cardsA, cardsB)
}
