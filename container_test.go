package icx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWriteBitmapRoundTrip(t *testing.T) {
	bmp := buildBitmap(t, 16, 8, func(row, col int) (byte, byte, byte) {
		return byte(row * 10), byte(col * 5), byte(row + col)
	})

	img, err := ReadBitmap(bytes.NewReader(bmp))
	require.NoError(t, err)
	assert.Equal(t, 2, img.BlocksWide)
	assert.Equal(t, 1, img.BlocksHigh)

	var out bytes.Buffer
	require.NoError(t, WriteBitmap(&out, img))
	// The header is copied verbatim; pixels pass through the color
	// transform and its truncation, so each comes back within 1.
	got := out.Bytes()
	require.Equal(t, len(bmp), len(got))
	assert.Equal(t, bmp[:headerSize], got[:headerSize])
	for i := headerSize; i < len(bmp); i++ {
		assert.InDelta(t, bmp[i], got[i], 1, "byte %d", i)
	}
}

func TestReadBitmapRejectsBadSignature(t *testing.T) {
	bmp := buildBitmap(t, 8, 8, func(row, col int) (byte, byte, byte) { return 1, 2, 3 })
	bmp[0] = 'X'
	_, err := ReadBitmap(bytes.NewReader(bmp))
	require.Error(t, err)
	var icxErr *Error
	require.ErrorAs(t, err, &icxErr)
	assert.Equal(t, NotABitmap, icxErr.Kind)
}

func TestWriteBitmapRejectsNilImage(t *testing.T) {
	var out bytes.Buffer
	err := WriteBitmap(&out, nil)
	require.Error(t, err)
	var icxErr *Error
	require.ErrorAs(t, err, &icxErr)
	assert.Equal(t, MissingImage, icxErr.Kind)
}
