package gogpuview

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/imgview"
)

// Options configures the window.
type Options struct {
	// Title is the window title.
	Title string

	// Window is the initial inner size, usually from Viewer.WindowSize.
	Window imgview.Size

	// Interpolation selects how the frame is sampled when scaled.
	Interpolation gg.InterpolationMode

	// Background fills the area outside the letterboxed frame.
	Background gg.RGBA
}

// DefaultOptions returns the options used by the command.
func DefaultOptions() Options {
	return Options{
		Title:         "Img Viewer",
		Window:        imgview.Size{Width: 800, Height: 600},
		Interpolation: gg.InterpBilinear,
		Background:    gg.RGB(0.08, 0.08, 0.08),
	}
}

// Run opens a window showing v and blocks until it is closed.
//
// A failure of the window system is ErrWindow and a failure to set up the
// canvas is ErrSurface. Errors from reload are logged and the window stays
// open.
func Run(v *imgview.Viewer, opts Options) error {
	if opts.Title == "" {
		opts.Title = DefaultOptions().Title
	}
	if opts.Window.Empty() {
		opts.Window = v.Surface()
	}

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(opts.Title).
		WithSize(opts.Window.Width, opts.Window.Height).
		WithContinuousRender(false))

	var token *gogpu.AnimationToken
	s := &session{
		viewer:    v,
		presenter: newPresenter(opts),
		quit:      app.Quit,
		redraw: func() {
			if token == nil {
				token = app.StartAnimation()
			}
		},
	}
	s.newCanvas = func(w, h int) (canvas, error) {
		provider := app.GPUContextProvider()
		if provider == nil {
			return nil, nil
		}
		return ggcanvas.New(provider, w, h)
	}

	app.OnDraw(func(dc *gogpu.Context) {
		s.draw(dc.Width(), dc.Height(), dc.AsTextureDrawer())
		if token != nil {
			token.Stop()
			token = nil
		}
	})

	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		s.key(mapKey(key))
	})

	app.OnClose(func() {
		if token != nil {
			token.Stop()
			token = nil
		}
		s.close()
	})

	if err := app.Run(); err != nil {
		return imgview.Wrap(imgview.ErrWindow, err)
	}
	return s.err
}

// session connects window events to the viewer. It is driven from the
// window's event loop only.
type session struct {
	viewer    *imgview.Viewer
	presenter *presenter
	canvas    canvas

	// newCanvas returns a nil canvas while the GPU is not ready yet.
	newCanvas func(w, h int) (canvas, error)
	redraw    func()
	quit      func()

	err error
}

func (s *session) draw(w, h int, dc gpucontext.TextureDrawer) {
	if w <= 0 || h <= 0 || s.err != nil {
		return
	}

	if s.canvas == nil {
		c, err := s.newCanvas(w, h)
		if err != nil {
			s.fail(imgview.Wrap(imgview.ErrSurface, err))
			return
		}
		if c == nil {
			return
		}
		s.canvas = c
		imgview.Logger().Debug("canvas created", "width", w, "height", h)
	}

	s.viewer.Resize(w, h)
	if cw, ch := s.canvas.Size(); cw != w || ch != h {
		if err := s.canvas.Resize(w, h); err != nil {
			s.fail(imgview.Wrap(imgview.ErrSurface, err))
			return
		}
	}

	if err := s.presenter.present(s.canvas, s.viewer, dc); err != nil {
		imgview.Logger().Warn("present failed", "err", err)
	}
}

func (s *session) key(k imgview.Key) {
	act := s.viewer.HandleKey(k)
	if act.Err != nil {
		imgview.Logger().Warn("key action failed", "key", k, "err", act.Err)
	}
	if act.Quit {
		s.quit()
		return
	}
	if act.Redraw {
		s.redraw()
	}
}

func (s *session) close() {
	s.viewer.Close()
	if s.canvas != nil {
		if err := s.canvas.Close(); err != nil {
			imgview.Logger().Warn("canvas close failed", "err", err)
		}
		s.canvas = nil
	}
}

func (s *session) fail(err error) {
	imgview.Logger().Error("surface setup failed", "err", err)
	s.err = err
	s.quit()
}
