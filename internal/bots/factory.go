package bots

import (
	"fmt"
	rand "math/rand/v2"
)

// New builds a reference Bot by strategy name, as used by the tournament
// launcher's seat configuration. rng drives the random and aggressive bots
// and seed seeds the equity and percentile bots' own sources; each seat
// should be given its own independently-seeded rng so tournament
// determinism doesn't depend on call order between seats.
func New(strategy string, rng *rand.Rand, seed int64) (Bot, error) {
	switch strategy {
	case "folding":
		return NewFoldingBot(), nil
	case "calling-station":
		return NewCallingStationBot(), nil
	case "random":
		return NewRandomBot(rng), nil
	case "aggressive":
		return NewAggressiveBot(rng, 0.65), nil
	case "equity":
		return NewEquityBot(seed, 1000), nil
	case "percentile":
		return NewPercentileBot(seed, 1000), nil
	default:
		return nil, fmt.Errorf("bots: unknown strategy %q", strategy)
	}
}
