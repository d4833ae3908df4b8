package imgview

import (
	"fmt"

	"github.com/gogpu/gg"

	intImage "github.com/gogpu/imgview/internal/image"
)

// FrameBuffer is the GPU-side mirror of the displayed image: same
// dimensions, same RGBA byte order. It is stored as a gg.ImageBuf so the
// presenter can blit it onto a surface of any size.
type FrameBuffer struct {
	buf *gg.ImageBuf
}

// NewFrameBuffer creates a zeroed frame buffer.
func NewFrameBuffer(width, height int) (*FrameBuffer, error) {
	buf, err := gg.NewImageBuf(width, height, gg.FormatRGBA8)
	if err != nil {
		return nil, fmt.Errorf("imgview: frame buffer %dx%d: %w", width, height, err)
	}
	return &FrameBuffer{buf: buf}, nil
}

// Width returns the frame width in pixels.
func (f *FrameBuffer) Width() int {
	return f.buf.Width()
}

// Height returns the frame height in pixels.
func (f *FrameBuffer) Height() int {
	return f.buf.Height()
}

// Size returns the frame dimensions.
func (f *FrameBuffer) Size() Size {
	return Size{Width: f.buf.Width(), Height: f.buf.Height()}
}

// Data returns the raw RGBA bytes.
func (f *FrameBuffer) Data() []byte {
	return f.buf.Data()
}

// Len returns the length of the frame in bytes.
func (f *FrameBuffer) Len() int {
	return len(f.buf.Data())
}

// Image returns the backing gg image for drawing.
func (f *FrameBuffer) Image() *gg.ImageBuf {
	return f.buf
}

// CopyFrom copies src into the frame one pixel (4 bytes) at a time.
// Both buffers must have the same length.
func (f *FrameBuffer) CopyFrom(src *intImage.Buf) error {
	dst := f.buf.Data()
	img := src.Data()
	if len(img) != len(dst) {
		return fmt.Errorf("%w: image %d bytes, frame %d bytes", ErrSizeMismatch, len(img), len(dst))
	}
	for i := 0; i+intImage.BytesPerPixel <= len(img); i += intImage.BytesPerPixel {
		px := dst[i : i+4 : i+4]
		px[0] = img[i]
		px[1] = img[i+1]
		px[2] = img[i+2]
		px[3] = img[i+3]
	}
	f.buf.InvalidatePremulCache()
	return nil
}
