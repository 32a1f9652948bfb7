package engine

import (
	"testing"

	"github.com/lox/holdem-engine/internal/bots"
	"github.com/stretchr/testify/assert"
)

func fourSeatTable() *Table {
	return NewTable(1, []bots.Bot{
		bots.NewFoldingBot(), bots.NewFoldingBot(), bots.NewFoldingBot(), bots.NewFoldingBot(),
	}, 1000)
}

func TestSplitPotOddChipGoesToClosestClockwiseFromButton(t *testing.T) {
	table := fourSeatTable()

	// button on seat 2; clockwise order starting left of the button is
	// 3, 0, 1, 2, so of the tied winners {0, 3}, seat 3 is closest and
	// should receive the extra chip from an odd 101-chip pot.
	result := table.splitPot(101, []int{0, 3}, 2)
	assert.Equal(t, 51, result[3])
	assert.Equal(t, 50, result[0])
}

func TestSplitPotEvenAmountNeedsNoOddChip(t *testing.T) {
	table := fourSeatTable()

	result := table.splitPot(100, []int{0, 3}, 2)
	assert.Equal(t, 50, result[0])
	assert.Equal(t, 50, result[3])
}

func TestSplitPotSingleWinnerTakesEverything(t *testing.T) {
	table := fourSeatTable()

	result := table.splitPot(75, []int{1}, 2)
	assert.Equal(t, 75, result[1])
	assert.Len(t, result, 1)
}

func TestOrderFromButtonStartsImmediatelyLeftOfButton(t *testing.T) {
	table := fourSeatTable()

	assert.Equal(t, []int{3, 0, 1, 2}, table.orderFromButton([]int{0, 1, 2, 3}, 2))
	assert.Equal(t, []int{3, 1}, table.orderFromButton([]int{1, 3}, 2))
}
