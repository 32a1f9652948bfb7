// Package pot reconciles player contributions into a main pot and any side
// pots required when one or more players are all-in for less than the rest
// of the table.
package pot

import "sort"

// Contribution is a single player's cumulative chip contribution to a hand,
// across all streets, as of the point the ledger is reconciled.
type Contribution struct {
	Seat   int
	Amount int
	Folded bool
}

// Pot is one pot (main or side) together with the seats entitled to win it.
type Pot struct {
	Amount   int
	Eligible []int
}

// Refund maps a seat to the uncalled excess returned to its stack before the
// pot was sealed.
type Refund map[int]int

// Reconcile turns per-player cumulative contributions into a list of pots,
// applying the uncalled-bet rule first: if exactly one player's contribution
// exceeds every other contribution, the excess above the next-highest
// contribution was never at risk to anyone and is returned to that player
// rather than placed in a pot.
//
// Pots are laid out as ascending contribution layers. Each layer's amount is
// its width (the gap to the previous layer) times the number of players who
// reached it; a layer's eligible seats are whichever of those players have
// not folded. This naturally produces one main pot when no one is short, and
// a chain of side pots when one or more all-ins cap what they can win.
func Reconcile(contributions []Contribution) ([]Pot, Refund) {
	amounts := make(map[int]int, len(contributions))
	folded := make(map[int]bool, len(contributions))
	for _, c := range contributions {
		amounts[c.Seat] = c.Amount
		folded[c.Seat] = c.Folded
	}

	refunds := Refund{}
	if seat, excess, ok := uncalledExcess(amounts); ok {
		amounts[seat] -= excess
		refunds[seat] = excess
	}

	levels := distinctPositiveLevels(amounts)
	sort.Ints(levels)

	var pots []Pot
	prev := 0
	for _, level := range levels {
		width := level - prev
		var eligible []int
		count := 0
		for seat, amt := range amounts {
			if amt >= level {
				count++
				if !folded[seat] {
					eligible = append(eligible, seat)
				}
			}
		}
		amount := width * count
		if amount <= 0 {
			prev = level
			continue
		}
		if len(eligible) == 0 {
			// Every contributor to this layer folded; the chips are dead
			// money that rolls into the pot below it.
			if len(pots) > 0 {
				pots[len(pots)-1].Amount += amount
			}
			prev = level
			continue
		}
		sort.Ints(eligible)
		pots = append(pots, Pot{Amount: amount, Eligible: eligible})
		prev = level
	}
	return pots, refunds
}

// uncalledExcess reports the seat and amount of an uncalled bet, if any: the
// unique highest contribution minus the next-highest contribution overall.
func uncalledExcess(amounts map[int]int) (seat int, excess int, ok bool) {
	if len(amounts) < 2 {
		return 0, 0, false
	}
	max, second := -1, -1
	maxSeat, maxCount := 0, 0
	for s, a := range amounts {
		if a > max {
			second = max
			max = a
			maxSeat = s
			maxCount = 1
		} else if a == max {
			maxCount++
		} else if a > second {
			second = a
		}
	}
	if maxCount != 1 || max <= second {
		return 0, 0, false
	}
	if second < 0 {
		second = 0
	}
	return maxSeat, max - second, true
}

func distinctPositiveLevels(amounts map[int]int) []int {
	seen := make(map[int]bool, len(amounts))
	levels := make([]int, 0, len(amounts))
	for _, a := range amounts {
		if a > 0 && !seen[a] {
			seen[a] = true
			levels = append(levels, a)
		}
	}
	return levels
}

// Total sums the amount across every pot.
func Total(pots []Pot) int {
	total := 0
	for _, p := range pots {
		total += p.Amount
	}
	return total
}
