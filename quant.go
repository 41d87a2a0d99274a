package icx

// qLuma and qChroma are the two fixed quantization tables, in natural
// (row-major) order — indexed directly by block position, before the
// zigzag stage reorders anything. Values are the classic JPEG reference
// matrices; this codec uses them unconditionally, with no quality-factor
// scaling (Non-goals: quality-factor tuning is out of scope).
var qLuma = [64]int{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

var qChroma = [64]int{
	17, 18, 24, 47, 99, 99, 99, 99,
	18, 21, 26, 66, 99, 99, 99, 99,
	24, 26, 56, 99, 99, 99, 99, 99,
	47, 66, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
}

// roundHalfAwayFromZero rounds x to the nearest integer, ties away from
// zero. math.Round does the same for positive x but this spelling makes
// the tie-breaking rule explicit and keeps the quantizer free of a math
// import used only for one call.
func roundHalfAwayFromZero(x float64) int {
	if x >= 0 {
		return int(x + 0.5)
	}
	return -int(-x + 0.5)
}

// quantize divides each coefficient of b by the matching entry of q,
// rounding half away from zero, in place. b's 64 entries and q's 64
// entries are both in natural row-major order.
func quantize(b *block, q *[64]int) {
	for i := 0; i < 64; i++ {
		b[i] = float64(roundHalfAwayFromZero(b[i] / float64(q[i])))
	}
}

// dequantize multiplies each coefficient of b by the matching entry of q,
// in place, inverting quantize.
func dequantize(b *block, q *[64]int) {
	for i := 0; i < 64; i++ {
		b[i] = b[i] * float64(q[i])
	}
}
