package imgview

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path/filepath"

	intImage "github.com/gogpu/imgview/internal/image"
)

// Orientation records the flips applied since the image was loaded.
// A 180 degree rotation is both flips at once.
type Orientation struct {
	FlippedH bool
	FlippedV bool
}

// String describes the orientation for the info overlay.
func (o Orientation) String() string {
	switch {
	case o.FlippedH && o.FlippedV:
		return "rotated 180°"
	case o.FlippedH:
		return "flipped horizontally"
	case o.FlippedV:
		return "flipped vertically"
	default:
		return "original"
	}
}

// Viewer holds the displayed image, its frame buffer and the size of the
// surface it is shown on.
//
// Viewer is not safe for concurrent use; the event loop owns it.
type Viewer struct {
	name   string
	path   string
	format string

	img   *intImage.Buf
	frame *FrameBuffer

	surface Size
	bound   Size
	scale   int
	orient  Orientation

	showInfo bool
	opts     viewerOptions
}

// Open reads and decodes the image at path.
// A failed read is ErrIO, undecodable content is ErrDecode.
func Open(path string, opts ...Option) (*Viewer, error) {
	buf, format, err := intImage.Load(path)
	if err != nil {
		return nil, classifyLoadError(err)
	}
	return newViewer(filepath.Base(path), path, format, buf, opts)
}

// FromImage builds a viewer for an in-memory image. Reload is a no-op for
// such viewers.
func FromImage(name string, img image.Image, opts ...Option) (*Viewer, error) {
	buf, err := intImage.FromStdImage(img)
	if err != nil {
		return nil, wrap(ErrDecode, err)
	}
	return newViewer(name, "", "memory", buf, opts)
}

func newViewer(name, path, format string, buf *intImage.Buf, opts []Option) (*Viewer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	frame, err := NewFrameBuffer(buf.Width(), buf.Height())
	if err != nil {
		return nil, wrap(ErrSurface, err)
	}
	if err := frame.CopyFrom(buf); err != nil {
		return nil, wrap(ErrSurface, err)
	}

	Logger().Info("image loaded", "name", name, "format", format,
		"width", buf.Width(), "height", buf.Height())

	return &Viewer{
		name:     name,
		path:     path,
		format:   format,
		img:      buf,
		frame:    frame,
		surface:  frame.Size(),
		scale:    1,
		showInfo: o.showInfo,
		opts:     o,
	}, nil
}

// newFrameBuffer is replaced in tests.
var newFrameBuffer = NewFrameBuffer

func classifyLoadError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return wrap(ErrIO, err)
	}
	if errors.Is(err, intImage.ErrEmptyData) ||
		errors.Is(err, intImage.ErrUnsupportedFormat) ||
		errors.Is(err, intImage.ErrDecode) {
		return wrap(ErrDecode, err)
	}
	return wrap(ErrIO, err)
}

// Name returns the display name of the image.
func (v *Viewer) Name() string { return v.name }

// Format returns the decoder that read the image.
func (v *Viewer) Format() string { return v.format }

// ImageSize returns the dimensions of the decoded image.
func (v *Viewer) ImageSize() Size {
	return Size{Width: v.img.Width(), Height: v.img.Height()}
}

// Frame returns the frame buffer mirroring the image.
func (v *Viewer) Frame() *FrameBuffer { return v.frame }

// Surface returns the current surface size.
func (v *Viewer) Surface() Size { return v.surface }

// Scale returns the divisor chosen for the initial window.
func (v *Viewer) Scale() int { return v.scale }

// Orientation returns the flips applied so far.
func (v *Viewer) Orientation() Orientation { return v.orient }

// ShowInfo reports whether the info overlay is visible.
func (v *Viewer) ShowInfo() bool { return v.showInfo }

// WindowSize computes the initial inner window size for a monitor of the
// given size and adopts it as the surface size.
func (v *Viewer) WindowSize(screen Size) (Size, int) {
	bound := MaxScreenSize(screen, v.opts.screenPercent)
	win, scale := WindowSize(v.ImageSize(), bound)
	v.surface = win
	v.bound = bound
	v.scale = scale
	Logger().Debug("window size", "screen", screen, "bound", bound,
		"image", v.ImageSize(), "window", win, "scale", scale)
	return win, scale
}

// Resize records a new surface size. The image and the frame buffer are
// left alone; the frame is scaled onto the surface when drawn.
// It reports whether the size changed.
func (v *Viewer) Resize(width, height int) bool {
	s := Size{Width: width, Height: height}
	if s.Empty() || s == v.surface {
		return false
	}
	Logger().Debug("surface resized", "from", v.surface, "to", s)
	v.surface = s
	return true
}

// HandleKey logs the key press and runs the bound command.
func (v *Viewer) HandleKey(k Key) Action {
	Logger().Info(fmt.Sprintf("[%s] Pressed", k))
	return v.Do(v.opts.keymap[k])
}

// Do runs a command.
func (v *Viewer) Do(c Command) Action {
	switch c {
	case CommandFlipHorizontal:
		return v.transform(intImage.FlipHorizontal, Orientation{FlippedH: true})
	case CommandFlipVertical:
		return v.transform(intImage.FlipVertical, Orientation{FlippedV: true})
	case CommandRotate180:
		return v.transform(intImage.Rotate180, Orientation{FlippedH: true, FlippedV: true})
	case CommandReload:
		return v.reload()
	case CommandToggleInfo:
		v.showInfo = !v.showInfo
		return Action{Redraw: true}
	case CommandQuit:
		return Action{Quit: true}
	default:
		return Action{}
	}
}

// Close logs that the window is going away.
func (v *Viewer) Close() {
	Logger().Info("close requested", "name", v.name)
}

// Info returns the caption drawn by the info overlay.
func (v *Viewer) Info() string {
	return fmt.Sprintf("%s  %s  %v  1:%d  %s", v.name, v.format, v.ImageSize(), v.scale, v.orient)
}

// transform applies fn to the image and, once the frame holds the result,
// toggles the flips named by flip.
func (v *Viewer) transform(fn func(*intImage.Buf) *intImage.Buf, flip Orientation) Action {
	act := v.replace(fn(v.img))
	if act.Err != nil {
		return act
	}
	v.orient.FlippedH = v.orient.FlippedH != flip.FlippedH
	v.orient.FlippedV = v.orient.FlippedV != flip.FlippedV
	return act
}

func (v *Viewer) reload() Action {
	if v.path == "" {
		Logger().Debug("reload skipped, image has no file", "name", v.name)
		return Action{}
	}
	buf, format, err := intImage.Load(v.path)
	if err != nil {
		err = classifyLoadError(err)
		Logger().Warn("reload failed", "path", v.path, "err", err)
		return Action{Err: err}
	}
	act := v.replace(buf)
	if act.Err != nil {
		return act
	}
	v.format = format
	v.orient = Orientation{}
	v.scale = 1
	if !v.bound.Empty() {
		_, v.scale = WindowSize(v.ImageSize(), v.bound)
	}
	return act
}

// replace swaps in a new image and mirrors it into the frame buffer,
// recreating the frame only when the dimensions differ.
func (v *Viewer) replace(buf *intImage.Buf) Action {
	frame := v.frame
	if frame.Width() != buf.Width() || frame.Height() != buf.Height() {
		var err error
		frame, err = newFrameBuffer(buf.Width(), buf.Height())
		if err != nil {
			return Action{Err: wrap(ErrSurface, err)}
		}
	}
	if err := frame.CopyFrom(buf); err != nil {
		return Action{Err: wrap(ErrSurface, err)}
	}
	v.img = buf
	v.frame = frame
	Logger().Debug("frame updated", "size", frame.Size(), "bytes", frame.Len())
	return Action{Redraw: true}
}
