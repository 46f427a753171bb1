package emblem

import (
	"errors"
	"image"
	"image/color"
	"sync"

	"emblem/internal/canvas"
	"emblem/internal/config"
	"emblem/internal/logging"
	"emblem/internal/path"
	"emblem/internal/shapes"
	"emblem/internal/stroke"
)

// StretchRenderer fills the vector emblem and redraws the hovered arrow
// with the scaling stroke on top of it.
type StretchRenderer struct {
	layout    config.Layout
	opts      stroke.Options
	reg       *shapes.Registry
	fill      color.Color
	highlight color.Color
	targets   []path.Named

	// the scaled outline of the last hovered shape, in logical units
	mu     sync.Mutex
	hlName string
	hlOps  stroke.Recorder
	hlErr  error
}

func NewStretch(cfg config.Config, reg *shapes.Registry) (*StretchRenderer, error) {
	if reg == nil {
		return nil, errors.New("emblem: stretch renderer needs a registry")
	}
	fill, err := canvas.ParseColor(cfg.Colors.Fill)
	if err != nil {
		return nil, err
	}
	hl, err := canvas.ParseColor(cfg.Colors.Highlight)
	if err != nil {
		return nil, err
	}
	arrows := reg.Arrows()
	targets := make([]path.Named, len(arrows))
	for i, a := range arrows {
		targets[i] = a.Named()
	}
	return &StretchRenderer{
		layout: cfg.Layout,
		opts: stroke.Options{
			Subdivisions: cfg.Stretch.Subdivisions,
			Base:         cfg.Stretch.Base,
			Coefficient:  cfg.Stretch.Coefficient,
		},
		reg:       reg,
		fill:      fill,
		highlight: hl,
		targets:   targets,
	}, nil
}

func (r *StretchRenderer) Name() string { return config.RendererStretch }

// fit maps the vector square to pixels. Minimized, the square shrinks by
// the ratio of the two logo sizes and moves to the top.
func (r *StretchRenderer) fit(m Mode, w, h int) transform {
	v := r.layout.VectorSize
	s, dx, dy := canvas.FitTransform(w, h, v, v)
	if m != Minimized {
		return transform{s, dx, dy}
	}
	k := r.layout.LogoSizeMinimized / r.layout.LogoSizeExpanded
	top := r.layout.LogoTopMinimized * v / r.layout.CanvasHeight
	return transform{
		scale: s * k,
		dx:    dx + v*(1-k)/2*s,
		dy:    dy + top*s,
	}
}

func (r *StretchRenderer) Frame(st State, w, h int) *image.RGBA {
	c := canvas.New(w, h)
	t := r.fit(st.Mode, w, h)
	c.SetTransform(t.scale, t.dx, t.dy)
	c.SetColor(r.fill)
	for _, s := range r.reg.Shapes() {
		stroke.Render(s.Path(), c)
	}
	if st.Hovered == "" {
		return c.Image()
	}
	s, ok := r.reg.Get(st.Hovered)
	if !ok {
		return c.Image()
	}
	c.SetColor(r.highlight)
	if err := r.highlightOps(s, c); err != nil {
		logging.Logger().Debug("stretch skipped", "shape", s.Name(), "err", err)
	}
	return c.Image()
}

// highlightOps replays the scaled outline of s onto c. The outline does
// not depend on the frame size, so it is recorded once per hovered shape.
func (r *StretchRenderer) highlightOps(s shapes.Shape, c stroke.Surface) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hlName != s.Name() {
		r.hlOps.Reset()
		r.hlName = s.Name()
		r.hlErr = stroke.RenderScaled(s.Path(), s.Bounds(), &r.hlOps, r.opts)
	}
	if r.hlErr != nil {
		return r.hlErr
	}
	r.hlOps.Replay(c)
	return nil
}

// Pick hit-tests the arrows. The octagon is not a target.
func (r *StretchRenderer) Pick(st State, x, y float64, w, h int) (string, bool) {
	lx, ly := r.fit(st.Mode, w, h).toLogical(x, y)
	return path.HitTest(lx, ly, r.targets)
}

func (r *StretchRenderer) Labels(State, int, int) []Label { return nil }
