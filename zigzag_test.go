package icx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZigzagDeltaRoundTrip(t *testing.T) {
	var nat [64]int
	for i := range nat {
		nat[i] = i*3 - 32
	}
	deltas := zigzagDeltaEncode(&nat)
	got := zigzagDeltaDecode(&deltas)
	require.Equal(t, nat, got)
}

func TestZigzagDeltaKeepsDCAbsolute(t *testing.T) {
	var nat [64]int
	nat[0] = 91 // DC, at natural index 0, which zigzag also visits first
	deltas := zigzagDeltaEncode(&nat)
	assert.Equal(t, 91, deltas[0])
}

func TestZigzagDeltaAllZeroBlock(t *testing.T) {
	var nat [64]int
	deltas := zigzagDeltaEncode(&nat)
	for _, d := range deltas {
		assert.Equal(t, 0, d)
	}
	got := zigzagDeltaDecode(&deltas)
	assert.Equal(t, nat, got)
}

func TestZigzagDeltaHasNoCrossBlockState(t *testing.T) {
	// Encoding the same block twice, independently, must give identical
	// results -- there is nothing threaded in from a previous call.
	var nat [64]int
	for i := range nat {
		nat[i] = i - 10
	}
	first := zigzagDeltaEncode(&nat)
	second := zigzagDeltaEncode(&nat)
	assert.Equal(t, first, second)
}
