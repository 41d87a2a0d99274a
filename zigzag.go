package icx

// zigZagRowCol lists the 64 natural-order (row-major) indices in zigzag
// traversal order: zigZagRowCol[k] is the natural index visited k-th.
// Same anti-diagonal layout the teacher uses for its own JPEG coefficient
// ordering.
var zigZagRowCol = [64]int{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// zigzagDeltaEncode reorders cur (natural order, post-quantization) into
// zigzag order and delta-codes it within this block only: position 0
// (the DC term) is kept as its own absolute value, unmodified, and every
// later position becomes its difference from the previous position's
// zigzag value in this same block. There is no state carried between
// blocks.
func zigzagDeltaEncode(cur *[64]int) (out [64]int) {
	var zz [64]int
	for k := 0; k < 64; k++ {
		zz[k] = cur[zigZagRowCol[k]]
	}
	out[0] = zz[0]
	prev := zz[0]
	for k := 1; k < 64; k++ {
		out[k] = zz[k] - prev
		prev = zz[k]
	}
	return out
}

// zigzagDeltaDecode inverts zigzagDeltaEncode within a single block:
// deltas[0] is the DC term's absolute value and every later position is
// reconstructed by accumulating it onto the previous zigzag value.
func zigzagDeltaDecode(deltas *[64]int) (out [64]int) {
	var zz [64]int
	zz[0] = deltas[0]
	prev := zz[0]
	for k := 1; k < 64; k++ {
		zz[k] = deltas[k] + prev
		prev = zz[k]
	}
	for k := 0; k < 64; k++ {
		out[zigZagRowCol[k]] = zz[k]
	}
	return out
}
