package montecarlo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSeed_Decorrelates(t *testing.T) {
	seen := make(map[uint64]bool)
	for s := uint64(0); s < 64; s++ {
		x := deriveSeed(42, s)
		assert.False(t, seen[x], "collision at stream %d", s)
		seen[x] = true
	}
	assert.Equal(t, deriveSeed(42, 3), deriveSeed(42, 3))
	assert.NotEqual(t, deriveSeed(42, 3), deriveSeed(43, 3))
}

func TestNodeRNG_Reproducible(t *testing.T) {
	a, b := nodeRNG(7, 5), nodeRNG(7, 5)
	for i := 0; i < 8; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, nodeRNG(7, 5).Uint64(), nodeRNG(7, 6).Uint64())
}

func TestRunSeed(t *testing.T) {
	assert.Equal(t, RunSeed(9, 0), RunSeed(9, 0))
	assert.NotEqual(t, RunSeed(9, 0), RunSeed(9, 1))
}
