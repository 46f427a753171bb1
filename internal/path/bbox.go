package path

import "math"

// BBox is an axis-aligned box. CenterX/CenterY are the box midpoint, not a
// polygon centroid.
type BBox struct {
	MinX    float64
	MinY    float64
	MaxX    float64
	MaxY    float64
	CenterX float64
	CenterY float64
}

// Bounds computes the box over the anchor points of seq.
//
// Only MoveTo, LineTo and CubicCurveTo contribute, and for curves only the
// endpoint counts: control points, H, V, arcs and close are ignored, so the
// box may be tighter than the drawn shape. Without any qualifying command
// the box is inverted (Min = +Inf, Max = -Inf) and Empty reports true.
func Bounds(seq Sequence) BBox {
	b := BBox{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	add := func(x, y float64) {
		b.MinX = math.Min(b.MinX, x)
		b.MinY = math.Min(b.MinY, y)
		b.MaxX = math.Max(b.MaxX, x)
		b.MaxY = math.Max(b.MaxY, y)
	}
	for _, c := range seq {
		switch c.Kind {
		case MoveTo, LineTo:
			for i := 0; i+1 < len(c.Args); i += 2 {
				add(c.Args[i], c.Args[i+1])
			}
		case CubicCurveTo:
			for i := 0; i+6 <= len(c.Args); i += 6 {
				add(c.Args[i+4], c.Args[i+5])
			}
		}
	}
	b.CenterX = (b.MinX + b.MaxX) / 2
	b.CenterY = (b.MinY + b.MaxY) / 2
	return b
}

// Rect builds a box from its corners.
func Rect(minX, minY, maxX, maxY float64) BBox {
	return BBox{
		MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY,
		CenterX: (minX + maxX) / 2,
		CenterY: (minY + maxY) / 2,
	}
}

// Empty reports whether the box encloses no area at all (inverted or NaN).
func (b BBox) Empty() bool {
	return !(b.MinX <= b.MaxX && b.MinY <= b.MaxY)
}

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Contains is inclusive on all four edges. An empty box contains nothing.
func (b BBox) Contains(x, y float64) bool {
	if b.Empty() {
		return false
	}
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}
