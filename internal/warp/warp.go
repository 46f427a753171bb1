// Package warp resamples a raster through a radial (polar) remapping.
package warp

import (
	"context"
	"image"
	"math"

	"golang.org/x/sync/errgroup"
)

// Spec selects the distortion. With HasFocus the warp only applies inside
// an angular window around Focus; otherwise a ripple runs around the disc.
type Spec struct {
	Strength float64
	Focus    float64
	HasFocus bool
}

// Identity reports whether the spec leaves every pixel in place.
func (s Spec) Identity() bool { return s.Strength == 0 && !s.HasFocus }

// Options holds the constants of the remapping.
type Options struct {
	// Window is the half-width, in radians, of the focused region.
	Window float64
	// WindowFrequency multiplies the angular offset inside the window.
	WindowFrequency float64
	// Ripple is the number of lobes of the unfocused ripple.
	Ripple float64
	// Workers > 1 splits rows into bands rendered concurrently.
	Workers int
}

func DefaultOptions() Options {
	return Options{
		Window:          math.Pi / 8,
		WindowFrequency: 8,
		Ripple:          4,
		Workers:         1,
	}
}

// Radius returns the warped radius for a destination pixel at the given
// distance and angle from the center of a raster w pixels wide.
func (o Options) Radius(s Spec, distance, angle float64, w int) float64 {
	falloff := distance / (float64(w) / 2)
	if s.HasFocus {
		diff := math.Abs(angle - s.Focus)
		if diff < o.Window {
			return distance + s.Strength*math.Cos(diff*o.WindowFrequency)*falloff
		}
		return distance
	}
	return distance + s.Strength*math.Sin(angle*o.Ripple)*falloff
}

// Source returns the source pixel sampled for destination pixel (x, y),
// relative to the raster origin. The result may lie outside the raster.
func (o Options) Source(s Spec, x, y, w, h int) (int, int) {
	cx, cy := float64(w)/2, float64(h)/2
	dx, dy := float64(x)-cx, float64(y)-cy
	distance := math.Sqrt(dx*dx + dy*dy)
	angle := math.Atan2(dy, dx)
	r := o.Radius(s, distance, angle, w)
	return round(cx + r*math.Cos(angle)), round(cy + r*math.Sin(angle))
}

// round rounds half toward positive infinity.
func round(v float64) int { return int(math.Floor(v + 0.5)) }

// Warp returns a new raster the size of src. Each destination pixel copies
// the nearest source pixel found by inverse polar mapping; when that falls
// outside src the pixel stays transparent. src is not modified.
//
// Rows are split into bands across o.Workers goroutines. Cancelling ctx
// stops the bands at the next row and returns ctx's error with no raster.
func Warp(ctx context.Context, src *image.RGBA, s Spec, o Options) (*image.RGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(b)
	if w == 0 || h == 0 {
		return dst, nil
	}
	if s.Identity() {
		for y := 0; y < h; y++ {
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+w*4], src.Pix[y*src.Stride:y*src.Stride+w*4])
		}
		return dst, nil
	}
	rows := func(ctx context.Context, y0, y1 int) error {
		for y := y0; y < y1; y++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			di := y * dst.Stride
			for x := 0; x < w; x, di = x+1, di+4 {
				sx, sy := o.Source(s, x, y, w, h)
				if sx < 0 || sx >= w || sy < 0 || sy >= h {
					continue
				}
				si := sy*src.Stride + sx*4
				copy(dst.Pix[di:di+4], src.Pix[si:si+4])
			}
		}
		return nil
	}
	workers := min(o.Workers, h)
	if workers <= 1 {
		if err := rows(ctx, 0, h); err != nil {
			return nil, err
		}
		return dst, nil
	}
	g, gctx := errgroup.WithContext(ctx)
	band := (h + workers - 1) / workers
	for y0 := 0; y0 < h; y0 += band {
		y0, y1 := y0, min(y0+band, h)
		g.Go(func() error {
			return rows(gctx, y0, y1)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dst, nil
}
