package icx

import (
	"encoding/binary"
	"io"
)

// maxRun is the largest zero-run a single run-length code can carry —
// the code book's largest representable magnitude (category 11).
// Longer runs are split into several (zero, run) pairs. An 8x8 block
// holds at most 63 coefficients after the DC, so this limit is never
// actually reached in this codec; it exists because nothing stops a
// future caller from handing emitCoeffs a longer coefficient stream.
const maxRun = 2047

// bitPacker accumulates variable-width codes into 64-bit words and
// writes each completed word, little-endian, to its underlying writer.
// acc holds already-packed bits right-justified in its low (64-free)
// bits; free counts the bits of the word still unused.
type bitPacker struct {
	w    io.Writer
	acc  uint64
	free int
}

func newBitPacker(w io.Writer) *bitPacker {
	return &bitPacker{w: w, free: 64}
}

// emitCode packs one complete code (prefix and payload already
// concatenated by the caller). If there is not enough room left to hold
// code and still reserve the sentinel's 8 bits, the current word is
// closed out first with a sentinel and zero padding.
func (p *bitPacker) emitCode(code uint64, width int) error {
	if p.free < width+sentinelWidth {
		if err := p.flushWithSentinel(); err != nil {
			return err
		}
	}
	p.acc = (p.acc << uint(width)) | (code & mask(width))
	p.free -= width
	return nil
}

// flushWithSentinel appends the sentinel, left-aligns the word's
// occupied bits to the top, writes it out, and resets the accumulator.
func (p *bitPacker) flushWithSentinel() error {
	p.acc = (p.acc << sentinelWidth) | sentinelCode
	p.free -= sentinelWidth
	word := p.acc << uint(p.free)
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], word)
	if _, err := p.w.Write(buf[:]); err != nil {
		return newError("bitPacker.flushWithSentinel", CreateFailure, err)
	}
	p.acc, p.free = 0, 64
	return nil
}

// emitValue packs v's full code book codeword (prefix and sign-coded
// payload), used both for real coefficient values and for run-length
// counts, which share the same code book.
func (p *bitPacker) emitValue(v int) error {
	code, width := encodeValue(v)
	return p.emitCode(code, width)
}

// endBlock terminates one block's entropy stream with the sentinel and
// flushes the partially filled word, zero-padded to 64 bits. Every
// block's encoding therefore occupies a whole number of 64-bit words.
func (p *bitPacker) endBlock() error {
	return p.flushWithSentinel()
}

// bitUnpacker is the mirror image of bitPacker: it reads 64-bit
// little-endian words and dispatches on their leading bits against the
// fixed prefix set, transparently skipping any sentinel it encounters
// while still expecting more codes (those occur whenever the packer had
// to close out a word early) and loading a fresh word to continue.
type bitUnpacker struct {
	r    io.Reader
	w    uint64
	left int // unconsumed bits remaining in w, counted from the MSB down
}

func newBitUnpacker(r io.Reader) *bitUnpacker {
	return &bitUnpacker{r: r, left: 0}
}

func (u *bitUnpacker) loadWord() error {
	var buf [8]byte
	if _, err := io.ReadFull(u.r, buf[:]); err != nil {
		return newError("bitUnpacker.loadWord", OpenFailure, err)
	}
	u.w = binary.LittleEndian.Uint64(buf[:])
	u.left = 64
	return nil
}

func (u *bitUnpacker) readBit() (byte, error) {
	if u.left == 0 {
		if err := u.loadWord(); err != nil {
			return 0, err
		}
	}
	bit := byte((u.w >> uint(u.left-1)) & 1)
	u.left--
	return bit, nil
}

func (u *bitUnpacker) readBits(n int) (uint64, error) {
	var v uint64
	for i := 0; i < n; i++ {
		b, err := u.readBit()
		if err != nil {
			return 0, err
		}
		v = (v << 1) | uint64(b)
	}
	return v, nil
}

// payloadWidth is the number of payload bits category cat carries; it
// equals the category index itself, 0 for category 0.
func payloadWidth(cat int) int { return cat }

// readCategory walks the fixed prefix tree bit by bit. If it reads the
// eight-one sentinel before settling on a category, that word ended
// early (the packer ran out of room for the next code); it discards the
// rest of that word, loads the next one, and keeps walking — the caller
// never sees these internal, mid-stream sentinels.
func (u *bitUnpacker) readCategory() (int, error) {
	for {
		b1, err := u.readBit()
		if err != nil {
			return 0, err
		}
		if b1 == 0 {
			b2, err := u.readBit()
			if err != nil {
				return 0, err
			}
			if b2 == 0 {
				return 3, nil // "00"
			}
			b3, err := u.readBit()
			if err != nil {
				return 0, err
			}
			if b3 == 0 {
				return 0, nil // "010"
			}
			return 1, nil // "011"
		}

		b2, err := u.readBit()
		if err != nil {
			return 0, err
		}
		if b2 == 0 {
			b3, err := u.readBit()
			if err != nil {
				return 0, err
			}
			if b3 == 0 {
				return 2, nil // "100"
			}
			return 4, nil // "101"
		}

		// "11" so far: count the run of ones until a terminating 0, or
		// until eight ones mark the sentinel.
		ones := 2
		gotSentinel := false
		cat := -1
	countOnes:
		for {
			bit, err := u.readBit()
			if err != nil {
				return 0, err
			}
			if bit == 0 {
				switch ones {
				case 2:
					cat = 5 // "110"
				case 3:
					cat = 6 // "1110"
				case 4:
					cat = 7 // "11110"
				case 5:
					cat = 8 // "111110"
				case 6:
					cat = 9 // "1111110"
				case 7:
					// "1111111" plus one more bit distinguishes 10 from 11.
					b, err := u.readBit()
					if err != nil {
						return 0, err
					}
					if b == 0 {
						cat = 10
					} else {
						cat = 11
					}
				default:
					return 0, newError("bitUnpacker.readCategory", NotABitmap, nil)
				}
				break countOnes
			}
			ones++
			if ones == 8 {
				gotSentinel = true
				break countOnes
			}
		}
		if gotSentinel {
			u.left = 0 // discard this word's zero padding
			if err := u.loadWord(); err != nil {
				return 0, err
			}
			continue
		}
		return cat, nil
	}
}

// nextValue reads one full codeword (prefix then payload) and decodes
// it, transparently absorbing any mid-stream sentinel along the way.
func (u *bitUnpacker) nextValue() (int, error) {
	cat, err := u.readCategory()
	if err != nil {
		return 0, err
	}
	payload, err := u.readBits(payloadWidth(cat))
	if err != nil {
		return 0, err
	}
	return decodeValue(payload, cat), nil
}

// skipSentinel consumes a block's explicit terminating sentinel, known
// by the caller's own coefficient count to be next in the stream, and
// discards the zero padding that follows it in the same word.
func (u *bitUnpacker) skipSentinel() error {
	v, err := u.readBits(sentinelWidth)
	if err != nil {
		return err
	}
	if v != sentinelCode {
		return newError("bitUnpacker.skipSentinel", NotABitmap, nil)
	}
	u.left = 0
	return nil
}
