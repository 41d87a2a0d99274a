package icx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func packSingleCode(t *testing.T, code uint64, width int) []byte {
	t.Helper()
	var buf bytes.Buffer
	bp := newBitPacker(&buf)
	require.NoError(t, bp.emitCode(code, width))
	require.NoError(t, bp.endBlock())
	return buf.Bytes()
}

func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

func TestCategoryBijection(t *testing.T) {
	tests := []struct {
		v   int
		cat int
	}{
		{0, 0},
		{1, 1}, {-1, 1},
		{5, 3}, {-5, 3},
		{2047, 11}, {-2047, 11},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.cat, category(tt.v), "category(%d)", tt.v)
	}
}

// Scenarios A-E: encodeValue returns the complete codeword (fixed
// category prefix concatenated with the sign-coded payload).
func TestEncodeValueScenarios(t *testing.T) {
	cases := []struct {
		name  string
		v     int
		code  uint64
		width int
	}{
		{"A: zero", 0, 0b010, 3},
		{"B: one", 1, 0b0111, 4},
		{"C: minus one", -1, 0b0110, 4},
		{"D: five", 5, 0b00101, 5},
		{"E: minus five", -5, 0b00010, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code, width := encodeValue(c.v)
			assert.Equal(t, c.width, width)
			assert.Equal(t, c.code, code)
		})
	}
}

func TestEncodeDecodeValueRoundTrip(t *testing.T) {
	for v := -2047; v <= 2047; v++ {
		cat := category(v)
		code, width := encodeValue(v)
		require.Equal(t, prefixTable[cat].len+cat, width)
		payload := code & mask(cat)
		got := decodeValue(payload, cat)
		require.Equalf(t, v, got, "round trip failed for %d", v)
	}
}

func TestReadCategoryMatchesEncodeValue(t *testing.T) {
	for v := -2047; v <= 2047; v++ {
		code, width := encodeValue(v)
		buf := packSingleCode(t, code, width)
		u := newBitUnpacker(bytesReader(buf))
		got, err := u.nextValue()
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}
