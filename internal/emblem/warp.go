package emblem

import (
	"context"
	"errors"
	"image"
	"image/color"
	"math"

	"emblem/internal/canvas"
	"emblem/internal/config"
	"emblem/internal/logging"
	"emblem/internal/path"
	"emblem/internal/shapes"
	"emblem/internal/stroke"
	"emblem/internal/warp"
)

// WarpRenderer draws the logo into the navbar canvas and pulls it through
// the radial warp. Minimized, it shows one link label per arrow direction
// and concentrates the warp toward the hovered one.
type WarpRenderer struct {
	layout config.Layout
	warp   config.Warp
	opts   warp.Options
	reg    *shapes.Registry
	logo   image.Image
	fill   color.Color
	dirs   []shapes.Direction
	links  []shapes.Link
}

func NewWarp(cfg config.Config, reg *shapes.Registry, logo image.Image) (*WarpRenderer, error) {
	if reg == nil && logo == nil {
		return nil, errors.New("emblem: warp renderer needs a logo or a registry")
	}
	fill, err := canvas.ParseColor(cfg.Colors.Fill)
	if err != nil {
		return nil, err
	}
	dirs := shapes.Directions(cfg.Layout.ArrowCount)
	links := cfg.Links
	if len(links) > len(dirs) {
		links = links[:len(dirs)]
	}
	return &WarpRenderer{
		layout: cfg.Layout,
		warp:   cfg.Warp,
		opts: warp.Options{
			Window:          cfg.Warp.Window,
			WindowFrequency: cfg.Warp.WindowFrequency,
			Ripple:          cfg.Warp.Ripple,
			Workers:         cfg.Warp.Workers,
		},
		reg:   reg,
		logo:  logo,
		fill:  fill,
		dirs:  dirs,
		links: links,
	}, nil
}

func (r *WarpRenderer) Name() string { return config.RendererWarp }

// logoSquare is the logo's square in navbar units.
func (r *WarpRenderer) logoSquare(m Mode) (x, y, size float64) {
	size = r.layout.LogoSizeExpanded
	y = r.layout.CanvasHeight/2 - size/2
	if m == Minimized {
		size = r.layout.LogoSizeMinimized
		y = r.layout.LogoTopMinimized
	}
	return r.layout.CanvasWidth/2 - size/2, y, size
}

func (r *WarpRenderer) fit(w, h int) transform {
	s, dx, dy := canvas.FitTransform(w, h, r.layout.CanvasWidth, r.layout.CanvasHeight)
	return transform{s, dx, dy}
}

// Spec returns the warp applied to a frame drawn at the given scale.
// Strength is in navbar units and grows with the scale so the distortion
// looks the same at every frame size.
func (r *WarpRenderer) Spec(st State, scale float64) warp.Spec {
	strength := r.warp.StrengthExpanded
	if st.Mode == Minimized {
		strength = r.warp.StrengthMinimized
	}
	s := warp.Spec{Strength: strength * scale}
	if i := r.linkIndex(st.Hovered); i >= 0 {
		s.Focus = r.dirs[i].Focus()
		s.HasFocus = true
	}
	return s
}

func (r *WarpRenderer) linkIndex(name string) int {
	if name == "" {
		return -1
	}
	for i, l := range r.links {
		if l.Name == name {
			return i
		}
	}
	return -1
}

func (r *WarpRenderer) Frame(st State, w, h int) *image.RGBA {
	c := canvas.New(w, h)
	c.Fit(r.layout.CanvasWidth, r.layout.CanvasHeight)
	x, y, size := r.logoSquare(st.Mode)
	if r.logo != nil {
		px := int(math.Round(size * c.Scale()))
		img, off := canvas.FitSquare(r.logo, px)
		c.DrawImage(img, x+float64(off.X)/c.Scale(), y+float64(off.Y)/c.Scale())
	} else {
		r.drawEmblem(c, x, y, size)
	}
	spec := r.Spec(st, c.Scale())
	logging.Logger().Debug("warp frame", "w", w, "h", h, "mode", st.Mode, "strength", spec.Strength, "focus", spec.HasFocus)
	out, err := warp.Warp(context.Background(), c.Image(), spec, r.opts)
	if err != nil {
		logging.Logger().Warn("warp failed, drawing unwarped frame", "err", err)
		return c.Image()
	}
	return out
}

// drawEmblem fills every registry shape into the logo square.
func (r *WarpRenderer) drawEmblem(c *canvas.Canvas, x, y, size float64) {
	scale := c.Scale()
	dx, dy := c.ToPixel(0, 0)
	px, py := c.ToPixel(x, y)
	c.SetTransform(scale*size/r.layout.VectorSize, px, py)
	defer c.SetTransform(scale, dx, dy)
	c.SetColor(r.fill)
	for _, s := range r.reg.Shapes() {
		stroke.Render(s.Path(), c)
	}
}

// Labels places the link labels around the minimized logo, in direction
// order. The expanded layout has none.
func (r *WarpRenderer) Labels(st State, w, h int) []Label {
	if st.Mode != Minimized {
		return nil
	}
	t := r.fit(w, h)
	x, y, size := r.logoSquare(st.Mode)
	cx, cy := x+size/2, y+size/2
	reach := size/2 + r.layout.LabelDistance
	bw, bh := r.layout.ButtonWidth/2, r.layout.ButtonHeight/2

	out := make([]Label, 0, len(r.links))
	for i, l := range r.links {
		d := r.dirs[i]
		lx, ly := cx+reach*d.X, cy+reach*d.Y
		px, py := t.toPixel(lx, ly)
		out = append(out, Label{
			Name:    l.Name,
			Target:  l.Path,
			X:       px,
			Y:       py,
			Box:     t.rect(path.Rect(lx-bw, ly-bh, lx+bw, ly+bh)),
			Hovered: l.Name == st.Hovered,
		})
	}
	return out
}

// Pick returns the link whose label button contains the pixel. The first
// label in direction order wins where buttons overlap.
func (r *WarpRenderer) Pick(st State, x, y float64, w, h int) (string, bool) {
	for _, l := range r.Labels(st, w, h) {
		if l.Box.Contains(x, y) {
			return l.Name, true
		}
	}
	return "", false
}
