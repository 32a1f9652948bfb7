package engine

import (
	"context"
	rand "math/rand/v2"
	"testing"

	"github.com/lox/holdem-engine/internal/bots"
	"github.com/lox/holdem-engine/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayHandAggressiveBotWinsUncontestedAgainstFoldingBot(t *testing.T) {
	// An AggressiveBot that always raises when it can, against a FoldingBot
	// that folds the instant anything is owed, ends the hand preflop no
	// matter which seat holds the button: whichever acts first either
	// raises (and the folder gives up facing it) or folds outright (if it's
	// the folder who's forced to act on the blind difference first).
	table := NewTable(42, []bots.Bot{bots.NewAggressiveBot(rand.New(rand.NewPCG(1, 2)), 1.0), bots.NewFoldingBot()}, 1000)
	before := table.TotalChips()

	record, err := table.PlayHand(context.Background())
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, before, table.TotalChips())
	require.NotNil(t, record.Showdown)
	require.Len(t, record.Showdown.PotWins, 1)

	winners := record.Showdown.PotWins[0].Winners
	_, won := winners[0]
	assert.True(t, won, "the aggressive bot should win every pot uncontested")
	assert.True(t, table.players[1].Folded)
}

func TestPlayHandChipConservationAcrossManyHands(t *testing.T) {
	table := NewTable(7, []bots.Bot{bots.NewCallingStationBot(), bots.NewCallingStationBot()}, 500)
	total := table.TotalChips()

	for i := 0; i < 25; i++ {
		_, err := table.PlayHand(context.Background())
		require.NoError(t, err)
		require.NoError(t, table.ValidateChipConservation(total))
	}
}

func TestPlayHandRecordsEveryStreetThatWasReached(t *testing.T) {
	table := NewTable(11, []bots.Bot{bots.NewCallingStationBot(), bots.NewCallingStationBot()}, 1000)

	record, err := table.PlayHand(context.Background())
	require.NoError(t, err)

	// two calling stations always see every street through to showdown.
	for _, street := range []state.Street{state.Preflop, state.Flop, state.Turn, state.River} {
		assert.Contains(t, record.PerStreet, street)
	}
	assert.Len(t, record.PerStreet[state.Flop].CommunityCards, 3)
	assert.Len(t, record.PerStreet[state.Turn].CommunityCards, 4)
	assert.Len(t, record.PerStreet[state.River].CommunityCards, 5)
}

func TestPlayHandButtonAdvancesEachHand(t *testing.T) {
	table := NewTable(3, []bots.Bot{bots.NewCallingStationBot(), bots.NewCallingStationBot(), bots.NewCallingStationBot()}, 1000)
	first := table.button

	_, err := table.PlayHand(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first, table.button)
}

func TestPlayHandRequiresAtLeastTwoActiveSeats(t *testing.T) {
	table := NewTable(1, []bots.Bot{bots.NewFoldingBot(), bots.NewCallingStationBot()}, 1000)
	table.players[0].Busted = true

	_, err := table.PlayHand(context.Background())
	assert.Error(t, err)
}

func TestTournamentPlayHandSucceedsWithoutChipDrift(t *testing.T) {
	tourn := NewTournament(5, []bots.Bot{bots.NewCallingStationBot(), bots.NewCallingStationBot()}, 200)

	_, err := tourn.PlayHand(context.Background())
	require.NoError(t, err)
	assert.False(t, tourn.Finished())
}
