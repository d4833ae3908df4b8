// Package imgview is a minimal image viewer built on gogpu.
//
// # Overview
//
// A Viewer decodes one image file, sizes a window so the image fits on the
// primary monitor, copies the pixels into a frame buffer and reacts to a
// few keys. Rendering and the event loop live in integration/gogpuview;
// this package holds everything that does not need a GPU.
//
// # Quick Start
//
//	v, err := imgview.Open("grades.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	win, scale := v.WindowSize(imgview.Size{Width: 1920, Height: 1080})
//
// # Buffers
//
// The decoded image and the frame buffer always have the same dimensions,
// the same byte length and the same RGBA channel order. Flips and rotations
// replace the image wholesale and copy it into the frame buffer again.
// Resizing the window only changes the surface size; the image and the
// frame buffer are scaled onto the surface at draw time.
//
// # Keys
//
//	H       flip horizontally
//	V       flip vertically
//	R       rotate 180 degrees
//	L       reload the file from disk
//	I       toggle the info overlay
//	Q, Esc  quit
package imgview

// Version is the current version of imgview.
const Version = "0.1.0"
