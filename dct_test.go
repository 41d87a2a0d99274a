package icx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDCTRoundTripRecoversBlock(t *testing.T) {
	var b block
	for i := range b {
		b[i] = float64((i*7)%64) - 32
	}
	orig := b
	forwardDCT(&b)
	inverseDCT(&b)
	for i := range b {
		assert.InDelta(t, orig[i], b[i], 1e-6, "index %d", i)
	}
}

func TestDCTAllZeroBlockStaysZero(t *testing.T) {
	var b block
	forwardDCT(&b)
	for i := range b {
		assert.InDelta(t, 0, b[i], 1e-9)
	}
	inverseDCT(&b)
	for i := range b {
		assert.InDelta(t, 0, b[i], 1e-9)
	}
}

func TestDCTConstantBlockIsAllDC(t *testing.T) {
	var b block
	for i := range b {
		b[i] = 100
	}
	forwardDCT(&b)
	// The DC term carries the whole energy of a constant block; every
	// AC term should be ~0.
	for i := 1; i < 64; i++ {
		assert.InDelta(t, 0, b[i], 1e-6, "AC index %d", i)
	}
	assert.Greater(t, b[0], 0.0)
}
