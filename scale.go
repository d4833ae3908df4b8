package imgview

import "fmt"

// DefaultScreenPercent is the share of the screen a new window may cover.
const DefaultScreenPercent = 90

// Size is a width and height in physical pixels.
type Size struct {
	Width  int
	Height int
}

// String returns the size as WxH.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// CalcScale returns the integer factor an image of currSize pixels must be
// divided by to fit into maxSize pixels: 1 when it already fits, otherwise
// the ceiling of currSize/maxSize. A non-positive maxSize counts as 1.
func CalcScale(maxSize, currSize int) int {
	if maxSize >= currSize {
		return 1
	}
	if maxSize < 1 {
		maxSize = 1
	}
	return (currSize + maxSize - 1) / maxSize
}

// MaxScreenSize returns percent of screen on each axis.
func MaxScreenSize(screen Size, percent int) Size {
	return Size{
		Width:  screen.Width * percent / 100,
		Height: screen.Height * percent / 100,
	}
}

// WindowSize returns the inner window size for an image of size img that
// must fit into bound, together with the scale used. The same scale is
// applied to both axes so the aspect ratio is kept.
func WindowSize(img, bound Size) (Size, int) {
	scale := max(CalcScale(bound.Width, img.Width), CalcScale(bound.Height, img.Height))
	win := Size{
		Width:  max(img.Width/scale, 1),
		Height: max(img.Height/scale, 1),
	}
	return win, scale
}

// Fit returns the largest rectangle with the aspect ratio of src that fits
// in dst, centred. It is used to letterbox the frame on a resized surface.
func Fit(src, dst Size) (x, y, w, h float64) {
	if src.Empty() || dst.Empty() {
		return 0, 0, 0, 0
	}
	sx := float64(dst.Width) / float64(src.Width)
	sy := float64(dst.Height) / float64(src.Height)
	s := min(sx, sy)
	w = float64(src.Width) * s
	h = float64(src.Height) * s
	return (float64(dst.Width) - w) / 2, (float64(dst.Height) - h) / 2, w, h
}
