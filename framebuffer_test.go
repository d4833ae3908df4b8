package imgview

import (
	"bytes"
	"errors"
	"testing"

	intImage "github.com/gogpu/imgview/internal/image"
)

func TestNewFrameBuffer(t *testing.T) {
	fb, err := NewFrameBuffer(6, 4)
	if err != nil {
		t.Fatalf("NewFrameBuffer() error = %v", err)
	}
	if fb.Size() != (Size{Width: 6, Height: 4}) {
		t.Errorf("Size() = %v, want 6x4", fb.Size())
	}
	if fb.Len() != 6*4*4 {
		t.Errorf("Len() = %d, want %d", fb.Len(), 6*4*4)
	}
	if _, err := NewFrameBuffer(0, 4); err == nil {
		t.Error("NewFrameBuffer(0, 4) should fail")
	}
}

func TestFrameBuffer_CopyFrom(t *testing.T) {
	img, _ := intImage.NewBuf(3, 2)
	for i := range img.Data() {
		img.Data()[i] = byte(i * 3)
	}
	fb, _ := NewFrameBuffer(3, 2)

	if err := fb.CopyFrom(img); err != nil {
		t.Fatalf("CopyFrom() error = %v", err)
	}
	if !bytes.Equal(fb.Data(), img.Data()) {
		t.Error("frame does not mirror the image bytes")
	}

	img.Data()[0] = 255
	if fb.Data()[0] == 255 {
		t.Error("frame shares memory with the image")
	}
}

func TestFrameBuffer_CopyFromMismatch(t *testing.T) {
	img, _ := intImage.NewBuf(3, 3)
	fb, _ := NewFrameBuffer(3, 2)

	err := fb.CopyFrom(img)
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("CopyFrom() error = %v, want ErrSizeMismatch", err)
	}
}

func TestFrameBuffer_CopyInvalidatesPremulCache(t *testing.T) {
	img, _ := intImage.NewBuf(1, 1)
	_ = img.SetRGBA(0, 0, 200, 100, 50, 255)
	fb, _ := NewFrameBuffer(1, 1)

	_ = fb.Image().PremultipliedData()
	if err := fb.CopyFrom(img); err != nil {
		t.Fatalf("CopyFrom() error = %v", err)
	}
	if fb.Image().IsPremulCached() {
		t.Error("premultiplied cache should be invalidated after a copy")
	}
	if got := fb.Image().PremultipliedData()[0]; got != 200 {
		t.Errorf("premultiplied red = %d, want 200", got)
	}
}
