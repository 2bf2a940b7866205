package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGenConfig_LastOptionWins(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(1))
	cfg := newGenConfig(WithSeed(5), WithRand(r))
	assert.Same(t, r, cfg.rng)

	assert.Nil(t, newGenConfig().rng)
}

func TestRngFrom_DefaultIsFresh(t *testing.T) {
	t.Parallel()

	a := rngFrom(genConfig{})
	b := rngFrom(genConfig{})
	assert.NotSame(t, a, b)
}

func TestSequencePrimitives(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{0, 1, 2}, ascending(3))
	assert.Equal(t, []int{3, 2, 1}, descending(3))

	a := ascending(10)
	shuffleInPlace(a, rand.New(rand.NewSource(11)))
	assert.ElementsMatch(t, ascending(10), a)

	assert.NoError(t, validateSize(MethodBestCase, 0))
	assert.ErrorIs(t, validateSize(MethodBestCase, -1), ErrNegativeSize)
}
