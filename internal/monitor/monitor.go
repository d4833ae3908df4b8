// Package monitor finds the size of the screen a new window opens on.
package monitor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	// ErrNoPrimary is returned when GLFW reports no primary monitor or the
	// monitor has no usable video mode.
	ErrNoPrimary = errors.New("monitor: no primary monitor")

	// ErrBadSize is returned by ParseSize for malformed input.
	ErrBadSize = errors.New("monitor: size must look like 1920x1080")
)

// probe is replaced in tests.
var probe = primaryGLFW

// Primary returns the resolution of the primary monitor in pixels.
// GLFW must be driven from the main thread; callers lock it in init.
func Primary() (width, height int, err error) {
	return probe()
}

func primaryGLFW() (int, int, error) {
	if err := glfw.Init(); err != nil {
		return 0, 0, fmt.Errorf("monitor: init glfw: %w", err)
	}
	defer glfw.Terminate()

	pm := glfw.GetPrimaryMonitor()
	if pm == nil {
		return 0, 0, ErrNoPrimary
	}
	vm := pm.GetVideoMode()
	if vm == nil || vm.Width == 0 || vm.Height == 0 {
		return 0, 0, fmt.Errorf("%w: %s has no video mode", ErrNoPrimary, pm.GetName())
	}
	return vm.Width, vm.Height, nil
}

// Resolve returns the parsed override when one is given and the primary
// monitor's size otherwise.
func Resolve(override string) (width, height int, err error) {
	if override != "" {
		return ParseSize(override)
	}
	return Primary()
}

// ParseSize parses WxH, e.g. "2560x1440".
func ParseSize(s string) (width, height int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadSize, s)
	}
	width, err = strconv.Atoi(ws)
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadSize, s)
	}
	height, err = strconv.Atoi(hs)
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadSize, s)
	}
	return width, height, nil
}
