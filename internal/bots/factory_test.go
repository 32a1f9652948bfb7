package bots

import (
	rand "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuildsEveryKnownStrategy(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, strategy := range []string{"folding", "calling-station", "random", "aggressive", "equity", "percentile"} {
		bot, err := New(strategy, rng, 7)
		require.NoError(t, err, strategy)
		assert.NotNil(t, bot, strategy)
	}
}

func TestNewRejectsUnknownStrategy(t *testing.T) {
	_, err := New("bluffmaster9000", rand.New(rand.NewPCG(1, 2)), 7)
	assert.Error(t, err)
}
