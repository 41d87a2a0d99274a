package icx

import (
	"encoding/binary"
	"io"
)

// headerSize is the fixed BMP file+info header length this codec
// understands: 14 bytes of file header plus 40 bytes of DIB header.
const headerSize = 54

const bmpSignature = 0x4D42

// Header carries the bitmap container fields verbatim, byte for byte, so
// that a compress-then-decompress round trip reproduces the original
// header exactly (spec.md §8.8). raw holds the untouched 54 header bytes;
// the named fields are parsed out of raw for the pipeline's own use and
// are never the source of truth for re-serialization.
type Header struct {
	raw [headerSize]byte

	Signature      uint16
	FileSize       uint32
	Reserved1      uint16
	Reserved2      uint16
	PixelOffset    uint32
	DIBHeaderSize  uint32
	Width          int32
	Height         int32
	Planes         uint16
	BitsPerPixel   uint16
	Compression    uint32
	ImageSize      uint32
	XPixelsPerM    int32
	YPixelsPerM    int32
	PaletteColors  uint32
	PaletteImport  uint32
}

// Image is the pipeline's owned descriptor: the container header plus
// three block streams, one per channel, in raster order of block
// positions. The owning driver holds the only reference to an Image for
// the lifetime of one Encode/Decode call; blocks are released with it.
type Image struct {
	Header Header

	// BlocksWide/BlocksHigh are the block-grid dimensions, identical
	// across channels (invariant (ii) of spec.md §3).
	BlocksWide, BlocksHigh int

	Y, Cb, Cr []block
}

// ReadBitmap reads a standard uncompressed 24-bpp little-endian bitmap and
// returns an Image with the header preserved verbatim and the pixel data
// converted to Y/Cb/Cr block streams. Row data is read bottom-up per
// spec.md §6; rows whose byte width is not a multiple of 4 are not
// required to round-trip and are read without padding skip.
func ReadBitmap(r io.Reader) (*Image, error) {
	var hdr Header
	if _, err := io.ReadFull(r, hdr.raw[:]); err != nil {
		return nil, newError("ContainerIO.ReadBitmap", OpenFailure, err)
	}
	if err := hdr.parse(); err != nil {
		return nil, err
	}
	if hdr.Signature != bmpSignature {
		return nil, newError("ContainerIO.ReadBitmap", NotABitmap, nil)
	}

	width, height := int(hdr.Width), int(hdr.Height)
	if width <= 0 || height <= 0 || width%8 != 0 || height%8 != 0 {
		// spec.md §1: behavior on non-multiple-of-8 images is undefined;
		// we still surface it as a structural error rather than panic.
		return nil, newError("ContainerIO.ReadBitmap", AllocationFailure, nil)
	}

	rowSize := width * 3
	pixels := make([]byte, rowSize*height)
	if _, err := io.ReadFull(r, pixels); err != nil {
		return nil, newError("ContainerIO.ReadBitmap", OpenFailure, err)
	}

	img := &Image{
		Header:     hdr,
		BlocksWide: width / 8,
		BlocksHigh: height / 8,
	}
	img.Y = make([]block, img.BlocksWide*img.BlocksHigh)
	img.Cb = make([]block, img.BlocksWide*img.BlocksHigh)
	img.Cr = make([]block, img.BlocksWide*img.BlocksHigh)

	// Bitmap rows are stored bottom-up; the block streams are laid out
	// top-down, so row r of the image corresponds to stored row (height-1-r).
	for row := 0; row < height; row++ {
		storedRow := height - 1 - row
		base := storedRow * rowSize
		for col := 0; col < width; col++ {
			o := base + col*3
			b, g, r8 := pixels[o], pixels[o+1], pixels[o+2]
			y, cb, cr := rgbToYCbCr(r8, g, b)
			bi, within := blockIndex(img.BlocksWide, col, row)
			img.Y[bi][within] = y
			img.Cb[bi][within] = cb
			img.Cr[bi][within] = cr
		}
	}
	return img, nil
}

// WriteBitmap writes img back out as a standard uncompressed 24-bpp
// bitmap, with the header copied verbatim from the original and the
// Y/Cb/Cr planes converted back to RGB.
func WriteBitmap(w io.Writer, img *Image) error {
	if img == nil {
		return newError("ContainerIO.WriteBitmap", MissingImage, nil)
	}
	if _, err := w.Write(img.Header.raw[:]); err != nil {
		return newError("ContainerIO.WriteBitmap", CreateFailure, err)
	}

	width := int(img.Header.Width)
	height := int(img.Header.Height)
	rowSize := width * 3
	pixels := make([]byte, rowSize*height)

	for row := 0; row < height; row++ {
		storedRow := height - 1 - row
		base := storedRow * rowSize
		for col := 0; col < width; col++ {
			bi, within := blockIndex(img.BlocksWide, col, row)
			r8, g, b := yCbCrToRGB(img.Y[bi][within], img.Cb[bi][within], img.Cr[bi][within])
			o := base + col*3
			pixels[o], pixels[o+1], pixels[o+2] = b, g, r8
		}
	}
	if _, err := w.Write(pixels); err != nil {
		return newError("ContainerIO.WriteBitmap", CreateFailure, err)
	}
	return nil
}

// parse decodes the named fields out of the raw 54-byte header. raw
// itself remains the byte-identical source used on write.
func (h *Header) parse() error {
	b := h.raw[:]
	h.Signature = binary.LittleEndian.Uint16(b[0:2])
	h.FileSize = binary.LittleEndian.Uint32(b[2:6])
	h.Reserved1 = binary.LittleEndian.Uint16(b[6:8])
	h.Reserved2 = binary.LittleEndian.Uint16(b[8:10])
	h.PixelOffset = binary.LittleEndian.Uint32(b[10:14])
	h.DIBHeaderSize = binary.LittleEndian.Uint32(b[14:18])
	h.Width = int32(binary.LittleEndian.Uint32(b[18:22]))
	h.Height = int32(binary.LittleEndian.Uint32(b[22:26]))
	h.Planes = binary.LittleEndian.Uint16(b[26:28])
	h.BitsPerPixel = binary.LittleEndian.Uint16(b[28:30])
	h.Compression = binary.LittleEndian.Uint32(b[30:34])
	h.ImageSize = binary.LittleEndian.Uint32(b[34:38])
	h.XPixelsPerM = int32(binary.LittleEndian.Uint32(b[38:42]))
	h.YPixelsPerM = int32(binary.LittleEndian.Uint32(b[42:46]))
	h.PaletteColors = binary.LittleEndian.Uint32(b[46:50])
	h.PaletteImport = binary.LittleEndian.Uint32(b[50:54])
	return nil
}

// RawBytes returns the untouched 54 header bytes, as read from (or to be
// written to) the container, for callers that need byte-identical access
// (e.g. the compressed-container path, which copies this verbatim).
func (h *Header) RawBytes() [headerSize]byte { return h.raw }

// SetRawBytes installs b as the header's verbatim byte image and
// re-parses the named fields from it.
func (h *Header) SetRawBytes(b [headerSize]byte) error {
	h.raw = b
	return h.parse()
}
