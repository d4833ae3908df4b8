package image

import (
	"errors"
	"testing"
)

func TestNewBuf(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantErr error
	}{
		{"valid", 100, 50, nil},
		{"1x1 minimum", 1, 1, nil},
		{"zero width", 0, 100, ErrInvalidDimensions},
		{"zero height", 100, 0, ErrInvalidDimensions},
		{"negative width", -1, 100, ErrInvalidDimensions},
		{"negative height", 100, -1, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := NewBuf(tt.width, tt.height)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewBuf() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}
			if buf.Width() != tt.width || buf.Height() != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", buf.Width(), buf.Height(), tt.width, tt.height)
			}
			if buf.Stride() != tt.width*4 {
				t.Errorf("Stride() = %d, want %d", buf.Stride(), tt.width*4)
			}
			if buf.ByteSize() != tt.width*tt.height*4 {
				t.Errorf("ByteSize() = %d, want %d", buf.ByteSize(), tt.width*tt.height*4)
			}
		})
	}
}

func TestFromRaw(t *testing.T) {
	valid := make([]byte, 10*10*4)

	tests := []struct {
		name    string
		data    []byte
		width   int
		height  int
		wantErr error
	}{
		{"valid data", valid, 10, 10, nil},
		{"longer data is trimmed", make([]byte, 500), 10, 10, nil},
		{"data too small", make([]byte, 100), 10, 10, ErrDataTooSmall},
		{"invalid dimensions", valid, 0, 10, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := FromRaw(tt.data, tt.width, tt.height)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("FromRaw() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && buf.ByteSize() != tt.width*tt.height*4 {
				t.Errorf("ByteSize() = %d, want %d", buf.ByteSize(), tt.width*tt.height*4)
			}
		})
	}
}

func TestBuf_Clone(t *testing.T) {
	original, err := NewBuf(10, 10)
	if err != nil {
		t.Fatalf("NewBuf: %v", err)
	}
	_ = original.SetRGBA(5, 5, 255, 128, 64, 200)

	clone := original.Clone()
	if &clone.Data()[0] == &original.Data()[0] {
		t.Error("Clone shares data with original")
	}

	_ = clone.SetRGBA(5, 5, 0, 0, 0, 0)
	r, g, b, a := original.GetRGBA(5, 5)
	if r != 255 || g != 128 || b != 64 || a != 200 {
		t.Error("modifying clone affected original")
	}
}

func TestBuf_RowBytes(t *testing.T) {
	buf, _ := NewBuf(10, 3)

	if row := buf.RowBytes(2); len(row) != 40 {
		t.Errorf("RowBytes(2) length = %d, want 40", len(row))
	}
	if buf.RowBytes(-1) != nil {
		t.Error("RowBytes(-1) should return nil")
	}
	if buf.RowBytes(3) != nil {
		t.Error("RowBytes(3) should return nil")
	}
}

func TestBuf_PixelOffset(t *testing.T) {
	buf, _ := NewBuf(10, 10)

	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 0},
		{1, 0, 4},
		{0, 1, 40},
		{5, 5, 220},
		{-1, 0, -1},
		{10, 0, -1},
		{0, -1, -1},
		{0, 10, -1},
	}

	for _, tt := range tests {
		if got := buf.PixelOffset(tt.x, tt.y); got != tt.want {
			t.Errorf("PixelOffset(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestBuf_SetRGBAOutOfBounds(t *testing.T) {
	buf, _ := NewBuf(2, 2)
	if err := buf.SetRGBA(2, 0, 1, 2, 3, 4); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SetRGBA(2, 0) error = %v, want ErrOutOfBounds", err)
	}
	if r, g, b, a := buf.GetRGBA(-1, 0); r|g|b|a != 0 {
		t.Errorf("GetRGBA(-1, 0) = (%d, %d, %d, %d), want zeros", r, g, b, a)
	}
}
