package pot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileSinglePotNoAllIn(t *testing.T) {
	pots, refunds := Reconcile([]Contribution{
		{Seat: 0, Amount: 100},
		{Seat: 1, Amount: 100},
		{Seat: 2, Amount: 100, Folded: true},
	})

	require.Len(t, pots, 1)
	assert.Equal(t, 300, pots[0].Amount)
	assert.ElementsMatch(t, []int{0, 1}, pots[0].Eligible)
	assert.Empty(t, refunds)
}

func TestReconcileUncalledBetRefunded(t *testing.T) {
	pots, refunds := Reconcile([]Contribution{
		{Seat: 0, Amount: 500},
		{Seat: 1, Amount: 20, Folded: true},
		{Seat: 2, Amount: 20, Folded: true},
	})

	require.Len(t, pots, 1)
	assert.Equal(t, 60, pots[0].Amount)
	assert.Equal(t, []int{0}, pots[0].Eligible)
	assert.Equal(t, 480, refunds[0])
}

func TestReconcileWalkProducesNoObservableRefund(t *testing.T) {
	// Heads-up, everyone folds to the big blind: the refund/no-refund framing
	// is chip-neutral here, but both the pot and the refund should sum to
	// the winner's total entitlement.
	pots, refunds := Reconcile([]Contribution{
		{Seat: 0, Amount: 5, Folded: true},
		{Seat: 1, Amount: 10},
	})

	total := Total(pots) + refunds[1]
	assert.Equal(t, 15, total)
}

func TestReconcileThreeWayAllInSidePots(t *testing.T) {
	// Short stack all-in for 50, middle stack all-in for 150, two remaining
	// players both match a 300 bet, so nothing is uncalled.
	pots, refunds := Reconcile([]Contribution{
		{Seat: 0, Amount: 50},
		{Seat: 1, Amount: 150},
		{Seat: 2, Amount: 300},
		{Seat: 3, Amount: 300},
	})

	require.Len(t, pots, 3)
	assert.Equal(t, 200, pots[0].Amount) // 50 * 4
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, pots[0].Eligible)

	assert.Equal(t, 300, pots[1].Amount) // 100 * 3
	assert.ElementsMatch(t, []int{1, 2, 3}, pots[1].Eligible)

	assert.Equal(t, 300, pots[2].Amount) // 150 * 2
	assert.ElementsMatch(t, []int{2, 3}, pots[2].Eligible)
	assert.Empty(t, refunds)
}

func TestReconcileAllInPlayerCoveredByFoldedContribution(t *testing.T) {
	// A folded player's earlier contribution still counts toward the pot the
	// all-in player can win, even though the folded player can't win it.
	pots, _ := Reconcile([]Contribution{
		{Seat: 0, Amount: 80},
		{Seat: 1, Amount: 200, Folded: true},
		{Seat: 2, Amount: 200},
	})

	require.Len(t, pots, 2)
	assert.Equal(t, 240, pots[0].Amount) // 80 * 3
	assert.ElementsMatch(t, []int{0, 2}, pots[0].Eligible)
	assert.Equal(t, 240, pots[1].Amount) // 120 * 2
	assert.Equal(t, []int{2}, pots[1].Eligible)
}

func TestTotalChipConservation(t *testing.T) {
	contributions := []Contribution{
		{Seat: 0, Amount: 50},
		{Seat: 1, Amount: 150, Folded: true},
		{Seat: 2, Amount: 400},
	}
	pots, refunds := Reconcile(contributions)

	sumIn := 0
	for _, c := range contributions {
		sumIn += c.Amount
	}
	sumOut := Total(pots)
	for _, r := range refunds {
		sumOut += r
	}
	assert.Equal(t, sumIn, sumOut)
}
