package image

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
)

// FlipHorizontal returns a new buffer mirrored left to right.
func FlipHorizontal(b *Buf) *Buf {
	return fromRGBA(transform.FlipH(b.asRGBA()))
}

// FlipVertical returns a new buffer mirrored top to bottom.
func FlipVertical(b *Buf) *Buf {
	return fromRGBA(transform.FlipV(b.asRGBA()))
}

// Rotate180 returns a new buffer turned half a revolution.
// It is composed from the two flips so every pixel is moved, never resampled.
func Rotate180(b *Buf) *Buf {
	return fromRGBA(transform.FlipV(transform.FlipH(b.asRGBA())))
}

// asRGBA views the buffer as an *image.RGBA without copying.
// The bytes are not premultiplied; bild only moves whole pixels around,
// so the channel values come out untouched.
func (b *Buf) asRGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    b.data,
		Stride: b.Stride(),
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

func fromRGBA(img *image.RGBA) *Buf {
	return &Buf{
		data:   img.Pix,
		width:  img.Rect.Dx(),
		height: img.Rect.Dy(),
	}
}
