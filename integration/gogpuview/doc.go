// Package gogpuview shows an imgview.Viewer in a gogpu window.
//
// The frame buffer is drawn into a ggcanvas.Canvas the size of the
// window, letterboxed to keep its aspect ratio, and the canvas is uploaded
// to the GPU surface. Rendering is event driven: a frame is produced when
// the window needs one or after a key changed the picture.
//
//	gogpu.App ──OnDraw──▶ session ──▶ presenter ──▶ ggcanvas.Canvas ──▶ surface
//	    │                    ▲
//	    └──OnKeyPress────────┘ (imgview.Viewer.HandleKey)
//
// Usage:
//
//	v, _ := imgview.Open("grades.png")
//	win, _ := v.WindowSize(screen)
//	err := gogpuview.Run(v, gogpuview.Options{Title: "Img Viewer", Window: win})
package gogpuview
