package stroke

import (
	"math"

	"emblem/internal/path"
)

// Render fills an absolute sequence as drawn: curves are true cubics,
// arcs are approximated by a straight line to their endpoint.
func Render(seq path.Sequence, s Surface) {
	path.Pen(seq, func(c path.Command, _, _, x, y float64) {
		switch c.Kind {
		case path.MoveTo:
			s.MoveTo(x, y)
		case path.LineTo, path.HorizontalLineTo, path.VerticalLineTo, path.ArcTo:
			s.LineTo(x, y)
		case path.CubicCurveTo:
			a := c.Args
			s.CubeTo(a[0], a[1], a[2], a[3], a[4], a[5])
		case path.ClosePath:
			s.ClosePath()
		}
	})
	s.Fill()
}

// Options shapes the stretch of RenderScaled. The horizontal scale at
// relative height t (0 at the box top, 1 at the bottom) is Base + Coefficient*t.
type Options struct {
	Subdivisions int
	Base         float64
	Coefficient  float64
}

func DefaultOptions() Options {
	return Options{Subdivisions: 100, Base: 1, Coefficient: 2}
}

// RenderScaled redraws an absolute sequence with every straight segment
// (L, H, V) cut into Subdivisions steps, each point pushed away from the
// box's vertical center line by a factor growing with its height in the
// box. Curves and arcs become unscaled straight lines to their endpoint.
//
// A box without height cannot be scaled: nothing is drawn and
// path.ErrDegenerate is returned.
func RenderScaled(seq path.Sequence, box path.BBox, s Surface, o Options) error {
	height := box.MaxY - box.MinY
	if box.Empty() || height == 0 || math.IsInf(height, 0) || math.IsNaN(box.CenterX) {
		return path.ErrDegenerate
	}
	n := o.Subdivisions
	if n < 1 {
		n = 1
	}
	scale := func(x, y float64) float64 {
		k := o.Base + o.Coefficient*((y-box.MinY)/height)
		return box.CenterX + (x-box.CenterX)*k
	}
	path.Pen(seq, func(c path.Command, x0, y0, x1, y1 float64) {
		switch c.Kind {
		case path.MoveTo:
			s.MoveTo(x1, y1)
		case path.LineTo, path.HorizontalLineTo, path.VerticalLineTo:
			for i := 0; i <= n; i++ {
				t := float64(i) / float64(n)
				x := x0 + (x1-x0)*t
				y := y0 + (y1-y0)*t
				s.LineTo(scale(x, y), y)
			}
		case path.CubicCurveTo, path.ArcTo:
			s.LineTo(x1, y1)
		case path.ClosePath:
			s.ClosePath()
		}
	})
	s.Fill()
	return nil
}
