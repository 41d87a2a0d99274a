package icx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorRoundTripNearLossless(t *testing.T) {
	samples := [][3]byte{
		{0, 0, 0},
		{255, 255, 255},
		{128, 64, 200},
		{10, 250, 30},
	}
	for _, s := range samples {
		y, cb, cr := rgbToYCbCr(s[0], s[1], s[2])
		r, g, b := yCbCrToRGB(y, cb, cr)
		assert.InDelta(t, s[0], r, 1)
		assert.InDelta(t, s[1], g, 1)
		assert.InDelta(t, s[2], b, 1)
	}
}

func TestClampByteSaturates(t *testing.T) {
	assert.Equal(t, byte(0), clampByte(-12))
	assert.Equal(t, byte(255), clampByte(999))
	assert.Equal(t, byte(42), clampByte(42))
}
