package gogpuview

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/gpucontext"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/imgview"
)

// infoFontSize is the caption size of the info overlay in pixels.
const infoFontSize = 14

// canvas is the part of ggcanvas.Canvas the presenter needs.
type canvas interface {
	Size() (width, height int)
	Resize(width, height int) error
	Draw(fn func(*gg.Context)) error
	RenderTo(dc gpucontext.TextureDrawer) error
	Close() error
}

// presenter paints the viewer's frame buffer onto a canvas.
type presenter struct {
	background gg.RGBA
	interp     gg.InterpolationMode
	face       text.Face
}

func newPresenter(opts Options) *presenter {
	p := &presenter{background: opts.Background, interp: opts.Interpolation}
	face, err := loadFace()
	if err != nil {
		imgview.Logger().Warn("info overlay disabled", "err", err)
	}
	p.face = face
	return p
}

func loadFace() (text.Face, error) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return source.Face(infoFontSize), nil
}

// present draws the current frame into c and uploads it to dc.
func (p *presenter) present(c canvas, v *imgview.Viewer, dc gpucontext.TextureDrawer) error {
	if err := c.Draw(func(cc *gg.Context) { p.compose(cc, v) }); err != nil {
		return err
	}
	return c.RenderTo(dc)
}

// compose letterboxes the frame onto cc and adds the overlay when enabled.
func (p *presenter) compose(cc *gg.Context, v *imgview.Viewer) {
	cc.ClearWithColor(p.background)

	frame := v.Frame()
	surface := imgview.Size{Width: cc.Width(), Height: cc.Height()}
	x, y, w, h := imgview.Fit(frame.Size(), surface)
	cc.DrawImageEx(frame.Image(), gg.DrawImageOptions{
		X:             x,
		Y:             y,
		DstWidth:      w,
		DstHeight:     h,
		Interpolation: p.interp,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})

	if v.ShowInfo() && p.face != nil {
		p.overlay(cc, v.Info())
	}
}

func (p *presenter) overlay(cc *gg.Context, caption string) {
	const pad = 6
	bar := float64(infoFontSize + 2*pad)

	cc.SetRGBA(0, 0, 0, 0.6)
	cc.DrawRectangle(0, 0, float64(cc.Width()), bar)
	if err := cc.Fill(); err != nil {
		imgview.Logger().Debug("overlay fill failed", "err", err)
		return
	}

	cc.SetFont(p.face)
	cc.SetRGB(1, 1, 1)
	cc.DrawString(caption, pad, pad+infoFontSize)
}
