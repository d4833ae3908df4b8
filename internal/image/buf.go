// Package image holds the decoded picture shown by imgview.
//
// A Buf is a tightly packed, row-major, non-premultiplied RGBA8 pixel
// buffer. Buffers are produced by the decoders in io.go and replaced
// wholesale by the transforms in transform.go; nothing mutates a Buf
// that is already on screen.
package image

import (
	"errors"
)

// BytesPerPixel is the size of one RGBA8 pixel.
const BytesPerPixel = 4

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// Buf is an RGBA8 pixel buffer.
//
// Buf is not safe for concurrent mutation.
type Buf struct {
	data   []byte
	width  int
	height int
}

// NewBuf creates a zeroed buffer with the given dimensions.
func NewBuf(width, height int) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Buf{
		data:   make([]byte, width*height*BytesPerPixel),
		width:  width,
		height: height,
	}, nil
}

// FromRaw wraps existing RGBA8 data without copying.
// The caller must not modify data afterwards except through the Buf.
func FromRaw(data []byte, width, height int) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	n := width * height * BytesPerPixel
	if len(data) < n {
		return nil, ErrDataTooSmall
	}
	return &Buf{
		data:   data[:n],
		width:  width,
		height: height,
	}, nil
}

// Clone creates a deep copy of the buffer.
func (b *Buf) Clone() *Buf {
	data := make([]byte, len(b.data))
	copy(data, b.data)
	return &Buf{
		data:   data,
		width:  b.width,
		height: b.height,
	}
}

// Width returns the image width in pixels.
func (b *Buf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *Buf) Height() int {
	return b.height
}

// Stride returns the number of bytes per row.
func (b *Buf) Stride() int {
	return b.width * BytesPerPixel
}

// Bounds returns the image dimensions as (width, height).
func (b *Buf) Bounds() (int, int) {
	return b.width, b.height
}

// Data returns the raw pixel data slice.
func (b *Buf) Data() []byte {
	return b.data
}

// ByteSize returns the length of the pixel data in bytes.
func (b *Buf) ByteSize() int {
	return len(b.data)
}

// RowBytes returns the pixel data for row y, or nil if y is out of bounds.
func (b *Buf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.Stride()
	return b.data[start : start+b.Stride()]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *Buf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.Stride() + x*BytesPerPixel
}

// GetRGBA returns the color at (x, y). Out of bounds reads return zeros.
func (b *Buf) GetRGBA(x, y int) (r, g, bl, a uint8) {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return 0, 0, 0, 0
	}
	p := b.data[off : off+BytesPerPixel]
	return p[0], p[1], p[2], p[3]
}

// SetRGBA sets the color at (x, y).
func (b *Buf) SetRGBA(x, y int, r, g, bl, a uint8) error {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return ErrOutOfBounds
	}
	b.data[off] = r
	b.data[off+1] = g
	b.data[off+2] = bl
	b.data[off+3] = a
	return nil
}
