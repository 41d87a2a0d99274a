package icx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockIndexRasterOrder(t *testing.T) {
	// A 16x8 image is 2 blocks wide, 1 block high.
	bi, within := blockIndex(2, 0, 0)
	assert.Equal(t, 0, bi)
	assert.Equal(t, 0, within)

	bi, within = blockIndex(2, 8, 0)
	assert.Equal(t, 1, bi)
	assert.Equal(t, 0, within)

	bi, within = blockIndex(2, 9, 1)
	assert.Equal(t, 1, bi)
	assert.Equal(t, blockDim+1, within)
}

func TestBlockAtSetRoundTrip(t *testing.T) {
	var b block
	b.set(3, 5, 42.5)
	assert.Equal(t, 42.5, b.at(3, 5))
}

func TestBlockIntConversionRoundTrip(t *testing.T) {
	var nat [64]int
	for i := range nat {
		nat[i] = i - 32
	}
	b := fromInts(&nat)
	got := b.toInts()
	assert.Equal(t, nat, got)
}
