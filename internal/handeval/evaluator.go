// Package handeval scores Texas Hold'em hands of 2 to 7 cards and resolves
// showdowns between them.
//
// Evaluate reduces a hand to a HandRank: an integer packing the hand's
// category (straight, two pair, ...) into its upper bits and a tiebreaker
// into its lower bits, so two hands can be ranked with a single integer
// comparison. Lower HandRank values beat higher ones.
package handeval

import (
	"math/bits"

	"github.com/lox/holdem-engine/internal/deck"
)

// Evaluate scores a hand of 2 to 7 cards (hole cards plus whatever community
// cards have been dealt so far) using the best 5-card combination available.
// With fewer than 5 cards the flush and straight checks simply never fire,
// so the same counting pass handles every street without special-casing.
func Evaluate(cards []deck.Card) HandRank {
	if len(cards) < 2 || len(cards) > 7 {
		panic("handeval: Evaluate requires between 2 and 7 cards")
	}

	var rankCounts [15]int // index 0 unused, ranks run 2-14
	var suitBits [4]uint32 // per-suit bitmap of ranks held in that suit
	var rankBits uint32

	for _, c := range cards {
		rankCounts[c.Rank]++
		suitBits[c.Suit] |= 1 << uint(c.Rank)
		rankBits |= 1 << uint(c.Rank)
	}

	if suit, ok := dominantFlushSuit(suitBits); ok {
		return evaluateFlush(suitBits[suit])
	}

	quads, trips, pairs := groupByCount(rankCounts)

	if len(quads) > 0 {
		kicker := topRanks(rankCounts, 1, quads[0])[0]
		return HandRank((FourOfAKindType << 20) | packRanks(quads[0], kicker))
	}

	if len(trips) > 0 && (len(pairs) > 0 || len(trips) > 1) {
		threeRank := trips[0]
		var pairRank int
		if len(trips) > 1 {
			pairRank = trips[1] // two trips: the lower one plays as the pair
		} else {
			pairRank = pairs[0]
		}
		return HandRank((FullHouseType << 20) | packRanks(threeRank, pairRank))
	}

	if high := straightHigh(rankBits); high > 0 {
		return HandRank((StraightType << 20) | packRanks(high))
	}

	if len(trips) > 0 {
		k := topRanks(rankCounts, 2, trips[0])
		return HandRank((ThreeOfAKindType << 20) | packRanks(trips[0], k[0], k[1]))
	}

	if len(pairs) >= 2 {
		kicker := topRanks(rankCounts, 1, pairs[0], pairs[1])[0]
		return HandRank((TwoPairType << 20) | packRanks(pairs[0], pairs[1], kicker))
	}

	if len(pairs) == 1 {
		k := topRanks(rankCounts, 3, pairs[0])
		return HandRank((OnePairType << 20) | packRanks(pairs[0], k[0], k[1], k[2]))
	}

	highs := topRanks(rankCounts, 5)
	return HandRank((HighCardType << 20) | packRanks(highs...))
}

// groupByCount buckets every rank holding 4, 3, or 2 cards into quads, trips,
// and pairs respectively, each ordered from highest rank to lowest. A 7-card
// hand can hold at most one quad, two trips, or three pairs.
func groupByCount(rankCounts [15]int) (quads, trips, pairs []int) {
	for rank := 14; rank >= 2; rank-- {
		switch rankCounts[rank] {
		case 4:
			quads = append(quads, rank)
		case 3:
			trips = append(trips, rank)
		case 2:
			pairs = append(pairs, rank)
		}
	}
	return quads, trips, pairs
}

// topRanks returns the n highest ranks holding at least one card, skipping
// any rank in exclude. Missing kickers are padded with 0, matching the "no
// kicker" case for short hands.
func topRanks(rankCounts [15]int, n int, exclude ...int) []int {
	out := make([]int, 0, n)
	for rank := 14; rank >= 2 && len(out) < n; rank-- {
		if rankCounts[rank] == 0 || containsRank(exclude, rank) {
			continue
		}
		out = append(out, rank)
	}
	for len(out) < n {
		out = append(out, 0)
	}
	return out
}

func containsRank(ranks []int, rank int) bool {
	for _, r := range ranks {
		if r == rank {
			return true
		}
	}
	return false
}

// dominantFlushSuit reports the first suit holding 5 or more cards, if any.
func dominantFlushSuit(suitBits [4]uint32) (suit int, ok bool) {
	for s, bitmap := range suitBits {
		if bits.OnesCount32(bitmap) >= 5 {
			return s, true
		}
	}
	return 0, false
}

// evaluateFlush scores a hand once a flush suit has been found: a straight
// within that suit outranks a plain flush of its 5 highest cards.
func evaluateFlush(flushRankBits uint32) HandRank {
	if high := straightHigh(flushRankBits); high > 0 {
		if high == 14 {
			return HandRank(RoyalFlushType << 20)
		}
		return HandRank((StraightFlushType << 20) | packRanks(high))
	}
	return HandRank((FlushType << 20) | packRanks(highestSetBits(flushRankBits, 5)...))
}

// straightHigh reports the high card of a 5-consecutive-rank run in rankBits,
// or 0 if there is none. The wheel (A-2-3-4-5) is the one run whose high
// card, 5, isn't the highest set bit.
func straightHigh(rankBits uint32) int {
	const wheel = uint32(1<<14 | 1<<5 | 1<<4 | 1<<3 | 1<<2)
	if rankBits&wheel == wheel {
		return 5
	}
	for high := 14; high >= 6; high-- {
		mask := uint32(0x1F) << uint(high-4)
		if rankBits&mask == mask {
			return high
		}
	}
	return 0
}

// highestSetBits returns the n highest rank values set in bitmap, highest
// first.
func highestSetBits(bitmap uint32, n int) []int {
	out := make([]int, 0, n)
	for bitmap != 0 && len(out) < n {
		rank := bits.Len32(bitmap) - 1
		out = append(out, rank)
		bitmap &^= 1 << uint(rank)
	}
	return out
}

// packRanks packs ranks into a tiebreaker, the first (most significant to
// poker rules) rank ending up in the most significant nibble. Every rank is
// mapped through 15-rank first, so that within a hand category, better ranks
// always produce a smaller tiebreaker -- matching HandRank's "lower beats
// higher" comparison at every priority level, not just the first.
func packRanks(ranks ...int) int {
	v := 0
	for _, r := range ranks {
		v = v<<4 | (15 - r)
	}
	return v
}
