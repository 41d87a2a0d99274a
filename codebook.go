package icx

// category returns the smallest k such that |v| fits in k bits, i.e. |v|
// is in [2^(k-1), 2^k - 1], with category 0 reserved for v == 0. This is
// also the payload width (in bits) category k carries.
func category(v int) int {
	mag := v
	if mag < 0 {
		mag = -mag
	}
	k := 0
	for (1 << uint(k)) <= mag {
		k++
	}
	return k
}

// codePrefix is one category's fixed bit pattern and its length.
type codePrefix struct {
	bits uint64
	len  int
}

// prefixTable holds the fixed private prefix for each of the twelve
// categories, read MSB-first. Categories 0, 1 and 3 (and the unary chain
// for 5..9) are exactly the literal table this code book was designed
// against; categories 10 and 11 are redesigned by one bit each (see
// DESIGN.md) because the literal progression "eight ones then a zero"
// for category 11 collides with the eight-ones sentinel — no code may
// begin with the sentinel's full bit pattern. Splitting what would have
// been category 10's single leaf into two nine-bit leaves (one extra
// trailing bit apiece) restores a valid, uniquely decodable prefix code
// while leaving every other category's bit pattern untouched.
var prefixTable = [12]codePrefix{
	0:  {0b010, 3},
	1:  {0b011, 3},
	2:  {0b100, 3},
	3:  {0b00, 2},
	4:  {0b101, 3},
	5:  {0b110, 3},
	6:  {0b1110, 4},
	7:  {0b11110, 5},
	8:  {0b111110, 6},
	9:  {0b1111110, 7},
	10: {0b111111100, 9},
	11: {0b111111101, 9},
}

// sentinelCode is the reserved end-of-word marker: eight consecutive
// one-bits. No category prefix above begins with this exact pattern.
const sentinelCode uint64 = 0xFF
const sentinelWidth = 8

func mask(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(bits) - 1
}

// encodeValue returns the complete code (prefix concatenated with
// payload) for v and its total bit width. The payload for a non-zero v
// is the low k bits of |v| (k = category(v)); negative values use the
// bitwise complement of those k bits, within k bits — the high payload
// bit is therefore a sign flag (1 = positive, 0 = negative). Masking is
// explicit, never relying on shifting a signed value.
func encodeValue(v int) (code uint64, width int) {
	cat := category(v)
	p := prefixTable[cat]
	if cat == 0 {
		return p.bits, p.len
	}
	mag := v
	if mag < 0 {
		mag = -mag
	}
	payload := uint64(mag) & mask(cat)
	if v < 0 {
		payload = (^payload) & mask(cat)
	}
	return (p.bits << uint(cat)) | payload, p.len + cat
}

// decodeValue inverts the payload half of encodeValue given the category
// a prefix read already identified.
func decodeValue(payload uint64, cat int) int {
	if cat == 0 {
		return 0
	}
	if (payload>>uint(cat-1))&1 == 1 {
		return int(payload)
	}
	mag := (^payload) & mask(cat)
	return -int(mag)
}
