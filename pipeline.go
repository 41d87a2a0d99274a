package icx

import "io"

// Pipeline drives one Encode or Decode invocation end to end, logging
// each stage transition under a shared run correlation id.
type Pipeline struct {
	logger *runLogger
}

// NewPipeline builds a Pipeline whose logging is configured by opts.
func NewPipeline(opts LogOptions) *Pipeline {
	return &Pipeline{logger: newRunLogger(opts)}
}

// Encode reads a 24-bpp bitmap from in and writes this codec's private
// compressed container to out. On any failure it returns a typed *Error
// and out has not received a complete, valid container.
func (p *Pipeline) Encode(in io.Reader, out io.Writer) error {
	var img *Image
	if err := p.logger.stage("container read", func() error {
		var err error
		img, err = ReadBitmap(in)
		return err
	}); err != nil {
		return err
	}

	raw := img.Header.RawBytes()
	if _, err := out.Write(raw[:]); err != nil {
		return newError("Pipeline.Encode", CreateFailure, err)
	}

	bp := newBitPacker(out)
	planes := []struct {
		name  string
		plane []block
		q     *[64]int
	}{
		{"Y", img.Y, &qLuma},
		{"Cb", img.Cb, &qChroma},
		{"Cr", img.Cr, &qChroma},
	}
	for _, pl := range planes {
		pl := pl
		if err := p.logger.stage("encode "+pl.name, func() error {
			return encodeChannel(bp, pl.plane, pl.q)
		}); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads this codec's private compressed container from in and
// writes a reconstructed 24-bpp bitmap to out.
func (p *Pipeline) Decode(in io.Reader, out io.Writer) error {
	var hdr Header
	var raw [headerSize]byte
	if err := p.logger.stage("container read", func() error {
		if _, err := io.ReadFull(in, raw[:]); err != nil {
			return newError("Pipeline.Decode", OpenFailure, err)
		}
		return hdr.SetRawBytes(raw)
	}); err != nil {
		return err
	}
	if hdr.Signature != bmpSignature {
		return newError("Pipeline.Decode", NotABitmap, nil)
	}

	width, height := int(hdr.Width), int(hdr.Height)
	if width <= 0 || height <= 0 || width%8 != 0 || height%8 != 0 {
		return newError("Pipeline.Decode", AllocationFailure, nil)
	}
	blocksWide, blocksHigh := width/8, height/8
	numBlocks := blocksWide * blocksHigh

	bu := newBitUnpacker(in)
	img := &Image{Header: hdr, BlocksWide: blocksWide, BlocksHigh: blocksHigh}

	planes := []struct {
		name string
		q    *[64]int
		dst  *[]block
	}{
		{"Y", &qLuma, &img.Y},
		{"Cb", &qChroma, &img.Cb},
		{"Cr", &qChroma, &img.Cr},
	}
	for _, pl := range planes {
		pl := pl
		if err := p.logger.stage("decode "+pl.name, func() error {
			blocks, err := decodeChannel(bu, numBlocks, pl.q)
			if err != nil {
				return err
			}
			*pl.dst = blocks
			return nil
		}); err != nil {
			return err
		}
	}

	return p.logger.stage("container write", func() error {
		return WriteBitmap(out, img)
	})
}

// encodeChannel runs forward DCT, quantization and within-block
// zigzag+delta coding over every block of plane, in block-row-major
// order, and emits each block's 64 coefficients through bp as its own
// self-contained, sentinel-terminated entropy unit.
func encodeChannel(bp *bitPacker, plane []block, q *[64]int) error {
	for bi := range plane {
		b := plane[bi]
		forwardDCT(&b)
		quantize(&b, q)
		nat := b.toInts()
		coeffs := zigzagDeltaEncode(&nat)
		if err := emitCoeffs(bp, coeffs[:]); err != nil {
			return err
		}
	}
	return nil
}

// emitCoeffs packs one block's 64 coefficients as a run-length-zero
// coded entropy unit: a run of consecutive zeros is emitted as a zero
// codeword immediately followed by a codeword carrying the run's
// length, splitting any run longer than maxRun across multiple pairs.
// Non-zero coefficients are emitted directly. The unit is closed with
// the block's terminating sentinel.
func emitCoeffs(bp *bitPacker, coeffs []int) error {
	n := len(coeffs)
	i := 0
	for i < n {
		if coeffs[i] == 0 {
			run := 1
			for i+run < n && coeffs[i+run] == 0 {
				run++
			}
			for run > 0 {
				chunk := run
				if chunk > maxRun {
					chunk = maxRun
				}
				if err := bp.emitValue(0); err != nil {
					return err
				}
				if err := bp.emitValue(chunk); err != nil {
					return err
				}
				run -= chunk
				i += chunk
			}
			continue
		}
		if err := bp.emitValue(coeffs[i]); err != nil {
			return err
		}
		i++
	}
	return bp.endBlock()
}

// decodeChannel reads numBlocks entropy units from bu, each expanding to
// exactly 64 coefficients via the run-length-zero convention, and
// reconstructs the corresponding blocks via zigzag+delta decode,
// dequantize and inverse DCT.
func decodeChannel(bu *bitUnpacker, numBlocks int, q *[64]int) ([]block, error) {
	blocks := make([]block, numBlocks)
	for bi := range blocks {
		var coeffs [64]int
		i := 0
		for i < 64 {
			v, err := bu.nextValue()
			if err != nil {
				return nil, err
			}
			if v == 0 {
				run, err := bu.nextValue()
				if err != nil {
					return nil, err
				}
				for k := 0; k < run; k++ {
					coeffs[i+k] = 0
				}
				i += run
				continue
			}
			coeffs[i] = v
			i++
		}
		if err := bu.skipSentinel(); err != nil {
			return nil, err
		}

		nat := zigzagDeltaDecode(&coeffs)
		b := fromInts(&nat)
		dequantize(&b, q)
		inverseDCT(&b)
		blocks[bi] = b
	}
	return blocks, nil
}

// Encode is the package-level convenience entry point: a default
// Pipeline with stderr-only, Info-level logging.
func Encode(in io.Reader, out io.Writer) error {
	return NewPipeline(LogOptions{}).Encode(in, out)
}

// Decode is the package-level convenience entry point mirroring Encode.
func Decode(in io.Reader, out io.Writer) error {
	return NewPipeline(LogOptions{}).Decode(in, out)
}
