package icx

// rgbToYCbCr converts one 24-bpp pixel to the float64 YCbCr domain used by
// every downstream stage. The constants are the classic ITU-R-derived
// JPEG color matrix, unchanged by the private codebook that follows it.
func rgbToYCbCr(r, g, b byte) (y, cb, cr float64) {
	rf, gf, bf := float64(r), float64(g), float64(b)
	y = 0.299*rf + 0.587*gf + 0.114*bf
	cb = 0.564 * (bf - y)
	cr = 0.713 * (rf - y)
	return y, cb, cr
}

// yCbCrToRGB inverts rgbToYCbCr, clamping each channel to [0,255] and
// truncating to the nearest integer below. No dithering is applied.
func yCbCrToRGB(y, cb, cr float64) (r, g, b byte) {
	rf := y + 1.402*cr
	gf := y - 0.344*cb - 0.714*cr
	bf := y + 1.772*cb
	return clampByte(rf), clampByte(gf), clampByte(bf)
}

func clampByte(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
