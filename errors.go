package imgview

import (
	"errors"
	"fmt"
)

// Failures that end the program. Each is joined with its cause using
// [wrap], so both errors.Is(err, ErrIO) and errors.Is(err, fs.ErrNotExist)
// hold for a missing file.
var (
	// ErrWindow is returned when the main window cannot be created.
	ErrWindow = errors.New("unable to create the main window")

	// ErrIO is returned when the image file cannot be read.
	ErrIO = errors.New("unable to load the image")

	// ErrDecode is returned when the file content is not a decodable image.
	ErrDecode = errors.New("unable to decode image")

	// ErrNoPrimaryMonitor is returned when the screen size cannot be determined.
	ErrNoPrimaryMonitor = errors.New("unable to calculate maximum screen size on your primary monitor")

	// ErrSurface is returned when the GPU surface for the pixels cannot be created.
	ErrSurface = errors.New("unable to view image pixels")

	// ErrConfig is returned when the configuration is invalid.
	ErrConfig = errors.New("invalid configuration")
)

// ErrSizeMismatch is returned when a copy between buffers of different
// lengths is attempted.
var ErrSizeMismatch = errors.New("imgview: buffer size mismatch")

var kinds = []error{ErrWindow, ErrIO, ErrDecode, ErrNoPrimaryMonitor, ErrSurface, ErrConfig}

// Kind returns the top-level failure err belongs to, or nil if it is not
// one of them.
func Kind(err error) error {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// Wrap joins a top-level failure with its cause. A nil cause yields nil.
func Wrap(kind, cause error) error {
	if cause == nil {
		return nil
	}
	return wrap(kind, cause)
}

func wrap(kind, cause error) error {
	return fmt.Errorf("%w: %w", kind, cause)
}
