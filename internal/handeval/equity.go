package handeval

import (
	"context"
	"math/rand"
	"runtime"
	"sync"

	"github.com/lox/holdem-engine/internal/deck"
	"golang.org/x/sync/errgroup"
)

// workerResult accumulates one worker's share of a Monte Carlo equity run.
type workerResult struct {
	wins         int
	ties         int
	validSamples int
}

func (r *workerResult) add(o sampleOutcome) {
	switch o {
	case sampleWin:
		r.wins++
		r.validSamples++
	case sampleTie:
		r.ties++
		r.validSamples++
	case sampleLoss:
		r.validSamples++
	}
}

// CardSet represents a set of cards using a bitset for fast operations
// Each card maps to a bit: index = (rank-2)*4 + suit
type CardSet uint64

// cardIndex converts a card to its bit index (0-51)
func cardIndex(card deck.Card) int {
	return int(card.Rank-deck.Two)*4 + int(card.Suit)
}

// Add adds a card to the set
func (cs *CardSet) Add(card deck.Card) {
	*cs |= 1 << cardIndex(card)
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card deck.Card) bool {
	return cs&(1<<cardIndex(card)) != 0
}

// NewCardSet creates a CardSet from a slice of cards
func NewCardSet(cards []deck.Card) CardSet {
	var cs CardSet
	for _, card := range cards {
		cs.Add(card)
	}
	return cs
}

// Slice pool for reusable boardCandidates allocation
var boardCandidatesPool = sync.Pool{
	New: func() interface{} {
		return make([]deck.Card, 0, 52)
	},
}

// Range represents a range of possible opponent hands
type Range interface {
	SampleHand(availableCards []deck.Card, rng *rand.Rand) ([]deck.Card, bool)
}

// RandomRange represents any random two cards
type RandomRange struct{}

func (r RandomRange) SampleHand(availableCards []deck.Card, rng *rand.Rand) ([]deck.Card, bool) {
	if len(availableCards) < 2 {
		return nil, false
	}

	// Pick 2 random cards without creating full permutation
	idx1 := rng.Intn(len(availableCards))
	idx2 := rng.Intn(len(availableCards) - 1)
	if idx2 >= idx1 {
		idx2++
	}

	return []deck.Card{availableCards[idx1], availableCards[idx2]}, true
}

// TightRange represents a tight opponent (good hands only)
type TightRange struct{}

func (r TightRange) SampleHand(availableCards []deck.Card, rng *rand.Rand) ([]deck.Card, bool) {
	if len(availableCards) < 2 {
		return nil, false
	}

	attempts := 0
	for attempts < 200 { // More attempts for better tight range
		// Pick 2 random cards without creating full permutation
		idx1 := rng.Intn(len(availableCards))
		idx2 := rng.Intn(len(availableCards) - 1)
		if idx2 >= idx1 {
			idx2++
		}
		hand := []deck.Card{availableCards[idx1], availableCards[idx2]}

		// Check if it's a tight range hand (pairs, suited connectors, high cards)
		if isTightHand(hand) {
			return hand, true
		}
		attempts++
	}

	// Fallback to medium range if we can't find a tight hand (not random)
	return MediumRange{}.SampleHand(availableCards, rng)
}

// MediumRange represents a medium opponent (moderate range between tight and loose)
type MediumRange struct{}

func (r MediumRange) SampleHand(availableCards []deck.Card, rng *rand.Rand) ([]deck.Card, bool) {
	// Medium range: looser than tight, tighter than random
	// Accept medium hands with some probability
	maxAttempts := 50
	attempts := 0

	for attempts < maxAttempts {
		hand, ok := RandomRange{}.SampleHand(availableCards, rng)
		if !ok {
			return hand, false
		}

		// Accept tight hands always
		if isTightHand(hand) {
			return hand, true
		}

		// Accept medium hands with 60% probability
		if isMediumHand(hand) && rng.Float64() < 0.6 {
			return hand, true
		}

		attempts++
	}

	// Fallback to random if we can't find a suitable hand
	return RandomRange{}.SampleHand(availableCards, rng)
}

// LooseRange represents a loose opponent that plays essentially any two
// cards, modeled identically to RandomRange. It exists as its own type so a
// bot's range choice (loose vs. truly unweighted random) stays legible in
// its own code, even though the sampling behavior happens to coincide.
type LooseRange struct{}

func (r LooseRange) SampleHand(availableCards []deck.Card, rng *rand.Rand) ([]deck.Card, bool) {
	return RandomRange{}.SampleHand(availableCards, rng)
}

func isTightHand(hand []deck.Card) bool {
	if len(hand) != 2 {
		return false
	}

	card1, card2 := hand[0], hand[1]

	// Pocket pairs (TT+)
	if card1.Rank == card2.Rank && card1.Rank >= deck.Ten {
		return true
	}

	// High cards (both Jack+)
	if card1.Rank >= deck.Jack && card2.Rank >= deck.Jack {
		return true
	}

	// Premium suited connectors (T9s+ only)
	if card1.Suit == card2.Suit {
		gap := abs(int(card1.Rank) - int(card2.Rank))
		if gap <= 1 && ((card1.Rank >= deck.Ten && card2.Rank >= deck.Nine) ||
			(card2.Rank >= deck.Ten && card1.Rank >= deck.Nine)) {
			return true
		}
	}

	// Ace with good kicker (AT+)
	if (card1.Rank == deck.Ace && card2.Rank >= deck.Ten) ||
		(card2.Rank == deck.Ace && card1.Rank >= deck.Ten) {
		return true
	}

	return false
}

func isMediumHand(hand []deck.Card) bool {
	if len(hand) != 2 {
		return false
	}

	// If it's already a tight hand, don't double count
	if isTightHand(hand) {
		return false
	}

	card1, card2 := hand[0], hand[1]

	// Medium pocket pairs (66-99)
	if card1.Rank == card2.Rank && card1.Rank >= 6 && card1.Rank <= 9 {
		return true
	}

	// One high card (8+) with decent kicker
	if (card1.Rank >= 8 && card2.Rank >= 6) || (card2.Rank >= 8 && card1.Rank >= 6) {
		return true
	}

	// Suited hands with one medium card
	if card1.Suit == card2.Suit {
		if card1.Rank >= 7 || card2.Rank >= 7 {
			return true
		}
	}

	// Ace with any kicker (not covered by tight)
	if card1.Rank == deck.Ace || card2.Rank == deck.Ace {
		return true
	}

	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sampleOutcome classifies a single Monte Carlo trial from the hero's side.
type sampleOutcome int

const (
	sampleInvalid sampleOutcome = iota
	sampleWin
	sampleTie
	sampleLoss
)

// usedCardSet builds the bitset of cards already accounted for by hole and
// board, and the slice of cards still available to be dealt.
func usedCardSet(hole, board []deck.Card) (CardSet, []deck.Card) {
	var used CardSet
	for _, card := range hole {
		used.Add(card)
	}
	for _, card := range board {
		used.Add(card)
	}

	available := make([]deck.Card, 0, 52-len(hole)-len(board))
	for suit := deck.Spades; suit <= deck.Clubs; suit++ {
		for rank := deck.Two; rank <= deck.Ace; rank++ {
			card := deck.Card{Suit: suit, Rank: rank}
			if !used.Contains(card) {
				available = append(available, card)
			}
		}
	}
	return used, available
}

// completeBoard fills board's remaining slots from candidates (every
// available card not already used by the sampled opponent hand), writing
// the result into dst, which must have length 5.
func completeBoard(dst []deck.Card, board, candidates []deck.Card, rng *rand.Rand) {
	copy(dst[:len(board)], board)
	needed := 5 - len(board)

	pooled := boardCandidatesPool.Get().([]deck.Card)
	pooled = pooled[:0]
	pooled = append(pooled, candidates...)

	for filled := 0; filled < needed && filled < len(pooled); filled++ {
		idx := rng.Intn(len(pooled) - filled)
		dst[len(board)+filled] = pooled[idx]
		pooled[idx], pooled[len(pooled)-1-filled] = pooled[len(pooled)-1-filled], pooled[idx]
	}

	boardCandidatesPool.Put(pooled)
}

// simulateSample runs one Monte Carlo trial: sample an opponent hand from
// opponentRange, deal the rest of the board, and evaluate hero against it.
// scratch slices (finalBoard len 5, heroHand/oppHand len 7) are supplied by
// the caller and reused across trials; the candidate slice and the sampled
// opponent hand are still allocated on every trial.
func simulateSample(hole, board, available []deck.Card, baseUsed CardSet, opponentRange Range, rng *rand.Rand, finalBoard, heroHand, oppHand []deck.Card) sampleOutcome {
	oppHole, ok := opponentRange.SampleHand(available, rng)
	if !ok {
		return sampleInvalid
	}

	tempUsed := baseUsed
	for _, card := range oppHole {
		tempUsed.Add(card)
	}

	candidates := make([]deck.Card, 0, len(available))
	for _, card := range available {
		if !tempUsed.Contains(card) {
			candidates = append(candidates, card)
		}
	}
	completeBoard(finalBoard, board, candidates, rng)

	copy(heroHand[:2], hole)
	copy(heroHand[2:], finalBoard)
	copy(oppHand[:2], oppHole)
	copy(oppHand[2:], finalBoard)

	switch Evaluate(heroHand).Compare(Evaluate(oppHand)) {
	case 1:
		return sampleWin
	case 0:
		return sampleTie
	default:
		return sampleLoss
	}
}

// EstimateEquity calculates hero's equity against opponentRange via Monte
// Carlo sampling, dispatching to a parallel worker pool once the sample
// count is large enough to amortize the setup cost.
func EstimateEquity(hole []deck.Card, board []deck.Card, opponentRange Range, numSamples int, rng *rand.Rand) float64 {
	if numSamples >= 500 {
		return EstimateEquityParallel(hole, board, opponentRange, numSamples, rng)
	}
	return EstimateEquitySequential(hole, board, opponentRange, numSamples, rng)
}

// EstimateEquitySequential runs every sample on the calling goroutine.
func EstimateEquitySequential(hole []deck.Card, board []deck.Card, opponentRange Range, numSamples int, rng *rand.Rand) float64 {
	if len(hole) != 2 || len(board) > 5 {
		return 0.0
	}

	baseUsed, available := usedCardSet(hole, board)
	finalBoard := make([]deck.Card, 5)
	heroHand := make([]deck.Card, 7)
	oppHand := make([]deck.Card, 7)

	var result workerResult
	for i := 0; i < numSamples; i++ {
		result.add(simulateSample(hole, board, available, baseUsed, opponentRange, rng, finalBoard, heroHand, oppHand))
	}

	if result.validSamples == 0 {
		return 0.0
	}
	return (float64(result.wins) + float64(result.ties)/2.0) / float64(result.validSamples)
}

// EstimateEquityParallel calculates win percentage using parallel Monte Carlo simulation
func EstimateEquityParallel(hole []deck.Card, board []deck.Card, opponentRange Range, numSamples int, rng *rand.Rand) float64 {
	if len(hole) != 2 || len(board) > 5 {
		return 0.0
	}

	// Determine optimal worker count (don't exceed CPU cores)
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8 // Cap at 8 for diminishing returns
	}

	// Divide samples among workers
	samplesPerWorker := numSamples / workers
	remainder := numSamples % workers

	_, availableCards := usedCardSet(hole, board)

	// Use errgroup to manage workers
	g, ctx := errgroup.WithContext(context.Background())
	results := make(chan workerResult, workers)

	// Launch workers
	for w := 0; w < workers; w++ {
		workerSamples := samplesPerWorker
		if w < remainder {
			workerSamples++ // Distribute remainder samples
		}

		// Create independent RNG for each worker to avoid contention
		workerSeed := rng.Int63()

		g.Go(func() error {
			workerRng := rand.New(rand.NewSource(workerSeed))
			result := runEquityWorker(hole, board, availableCards, opponentRange, workerSamples, workerRng)

			select {
			case results <- result:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	// Collect results
	totalWins := 0
	totalTies := 0
	totalValidSamples := 0

	go func() {
		defer close(results)
		g.Wait()
	}()

	for result := range results {
		totalWins += result.wins
		totalTies += result.ties
		totalValidSamples += result.validSamples
	}

	if err := g.Wait(); err != nil {
		// Fallback to sequential if parallel fails
		return EstimateEquitySequential(hole, board, opponentRange, numSamples, rng)
	}

	if totalValidSamples == 0 {
		return 0.0
	}

	return (float64(totalWins) + float64(totalTies)/2.0) / float64(totalValidSamples)
}

// runEquityWorker runs this worker's share of the Monte Carlo samples,
// sharing the same per-trial logic as EstimateEquitySequential.
func runEquityWorker(hole []deck.Card, board []deck.Card, availableCards []deck.Card,
	opponentRange Range, numSamples int, rng *rand.Rand) workerResult {

	var baseUsed CardSet
	for _, card := range hole {
		baseUsed.Add(card)
	}
	for _, card := range board {
		baseUsed.Add(card)
	}

	finalBoard := make([]deck.Card, 5)
	heroHand := make([]deck.Card, 7)
	oppHand := make([]deck.Card, 7)

	var result workerResult
	for i := 0; i < numSamples; i++ {
		result.add(simulateSample(hole, board, availableCards, baseUsed, opponentRange, rng, finalBoard, heroHand, oppHand))
	}
	return result
}

// EvaluateHandStrength converts equity to a score for AI decision making
func EvaluateHandStrength(hole []deck.Card, board []deck.Card, rng *rand.Rand) int {
	if len(hole) == 2 && len(board) >= 0 && len(board) <= 5 {
		// Calculate equity against random opponent
		equity := EstimateEquity(hole, board, RandomRange{}, 1000, rng)

		// Convert equity to a score where lower = better
		// 100% equity = score 1,000,000 (very strong)
		// 50% equity = score 5,500,000 (medium)
		// 0% equity = score 10,000,000 (very weak)
		score := int((1.0-equity)*9000000) + 1000000

		return score
	}

	// Fallback for invalid input
	return (HighCardType << 20) | 0xFFFFF
}
