// Package canvas is a raster drawing surface for path fills and images.
package canvas

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Canvas fills paths into an RGBA raster. Coordinates passed to the path
// methods are logical; the transform maps them to pixels.
type Canvas struct {
	img   *image.RGBA
	ras   *vector.Rasterizer
	paint image.Image

	scale  float64
	dx, dy float64
}

// New returns a transparent w x h canvas with an identity transform.
func New(w, h int) *Canvas {
	w, h = max(w, 0), max(h, 0)
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		ras:   vector.NewRasterizer(w, h),
		paint: image.NewUniform(color.Black),
		scale: 1,
	}
}

func (c *Canvas) Image() *image.RGBA { return c.img }
func (c *Canvas) Width() int         { return c.img.Bounds().Dx() }
func (c *Canvas) Height() int        { return c.img.Bounds().Dy() }

// SetTransform maps logical (x, y) to pixel (x*scale+dx, y*scale+dy).
func (c *Canvas) SetTransform(scale, dx, dy float64) {
	c.scale, c.dx, c.dy = scale, dx, dy
}

// Fit scales a logical w x h area uniformly into the canvas, centered.
func (c *Canvas) Fit(w, h float64) {
	c.SetTransform(FitTransform(c.Width(), c.Height(), w, h))
}

// FitTransform returns the scale and offset that center a logical w x h
// area in a pw x ph pixel area.
func FitTransform(pw, ph int, w, h float64) (scale, dx, dy float64) {
	if w <= 0 || h <= 0 {
		return 1, 0, 0
	}
	cw, ch := float64(pw), float64(ph)
	scale = math.Min(cw/w, ch/h)
	return scale, (cw - w*scale) / 2, (ch - h*scale) / 2
}

// Scale is the number of pixels per logical unit.
func (c *Canvas) Scale() float64 { return c.scale }

// ToPixel maps a logical point to pixel space.
func (c *Canvas) ToPixel(x, y float64) (float64, float64) {
	return x*c.scale + c.dx, y*c.scale + c.dy
}

// ToLogical maps a pixel point back to logical space.
func (c *Canvas) ToLogical(px, py float64) (float64, float64) {
	if c.scale == 0 {
		return 0, 0
	}
	return (px - c.dx) / c.scale, (py - c.dy) / c.scale
}

func (c *Canvas) SetColor(col color.Color) { c.paint = image.NewUniform(col) }

func (c *Canvas) pt(x, y float64) (float32, float32) {
	px, py := c.ToPixel(x, y)
	return float32(px), float32(py)
}

// MoveTo closes the open sub-path before starting a new one; the
// rasterizer only closes the last sub-path on Draw.
func (c *Canvas) MoveTo(x, y float64) {
	c.ras.ClosePath()
	c.ras.MoveTo(c.pt(x, y))
}

func (c *Canvas) LineTo(x, y float64) { c.ras.LineTo(c.pt(x, y)) }

func (c *Canvas) CubeTo(x1, y1, x2, y2, x, y float64) {
	ax, ay := c.pt(x1, y1)
	bx, by := c.pt(x2, y2)
	ex, ey := c.pt(x, y)
	c.ras.CubeTo(ax, ay, bx, by, ex, ey)
}

func (c *Canvas) ClosePath() { c.ras.ClosePath() }

// Fill paints the accumulated path with the current color and clears it.
func (c *Canvas) Fill() {
	c.ras.ClosePath()
	c.ras.Draw(c.img, c.img.Bounds(), c.paint, image.Point{})
	c.ras.Reset(c.Width(), c.Height())
}

// DrawImage composites src over the canvas with its top-left corner at
// logical (x, y). src must already be at pixel size.
func (c *Canvas) DrawImage(src image.Image, x, y float64) {
	px, py := c.ToPixel(x, y)
	r := src.Bounds().Sub(src.Bounds().Min).Add(image.Pt(int(math.Round(px)), int(math.Round(py))))
	draw.Draw(c.img, r, src, src.Bounds().Min, draw.Over)
}
