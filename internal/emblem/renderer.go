package emblem

import (
	"fmt"
	"image"

	"emblem/internal/config"
	"emblem/internal/path"
	"emblem/internal/shapes"
)

// Renderer turns a state into pixels. Frame must not keep or schedule
// anything; the host calls it once per tick.
type Renderer interface {
	Name() string
	// Frame draws st into a new w x h raster.
	Frame(st State, w, h int) *image.RGBA
	// Pick reports the target under pixel (x, y) of a w x h frame.
	Pick(st State, x, y float64, w, h int) (string, bool)
	// Labels lists the text to place over a w x h frame.
	Labels(st State, w, h int) []Label
}

// Label is a piece of text over the frame. X, Y is its center and Box its
// hit area, both in pixels.
type Label struct {
	Name    string
	Target  string
	X, Y    float64
	Box     path.BBox
	Hovered bool
}

// New picks the renderer named by cfg.Renderer. logo may be nil, in which
// case the warp renderer rasterises the registry's emblem.
func New(cfg config.Config, reg *shapes.Registry, logo image.Image) (Renderer, error) {
	switch cfg.Renderer {
	case config.RendererWarp:
		return NewWarp(cfg, reg, logo)
	case config.RendererStretch:
		return NewStretch(cfg, reg)
	default:
		return nil, fmt.Errorf("emblem: unknown renderer %q", cfg.Renderer)
	}
}

// transform maps logical coordinates of a fitted area to pixels.
type transform struct {
	scale, dx, dy float64
}

func (t transform) toPixel(x, y float64) (float64, float64) {
	return x*t.scale + t.dx, y*t.scale + t.dy
}

func (t transform) toLogical(px, py float64) (float64, float64) {
	if t.scale == 0 {
		return 0, 0
	}
	return (px - t.dx) / t.scale, (py - t.dy) / t.scale
}

func (t transform) rect(b path.BBox) path.BBox {
	x0, y0 := t.toPixel(b.MinX, b.MinY)
	x1, y1 := t.toPixel(b.MaxX, b.MaxY)
	return path.Rect(x0, y0, x1, y1)
}
