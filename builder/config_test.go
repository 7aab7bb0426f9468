// Package builder contains unit tests for builderConfig and BuilderOption.
package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng)
	assert.False(t, cfg.selfLoops)
}

func TestBuilderConfig_LastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithSelfLoops(true), WithSelfLoops(false))
	assert.False(t, cfg.selfLoops)

	a := newBuilderConfig(WithSeed(9))
	b := newBuilderConfig(WithSeed(9))
	if assert.NotNil(t, a.rng) && assert.NotNil(t, b.rng) {
		for i := 0; i < 5; i++ {
			assert.Equal(t, a.rng.Uint64(), b.rng.Uint64())
		}
	}
}
