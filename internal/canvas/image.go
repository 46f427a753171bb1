package canvas

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// LoadImage reads a PNG, JPEG or BMP file.
func LoadImage(path string) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	return img, nil
}

// FitSquare scales img to fit a size x size square keeping its aspect
// ratio, and returns the scaled image with its offset inside the square.
func FitSquare(img image.Image, size int) (*image.RGBA, image.Point) {
	b := img.Bounds()
	if size <= 0 || b.Empty() {
		return image.NewRGBA(image.Rectangle{}), image.Point{}
	}
	w, h := size, size
	aspect := float64(b.Dx()) / float64(b.Dy())
	if aspect > 1 {
		h = int(math.Round(float64(size) / aspect))
	} else {
		w = int(math.Round(float64(size) * aspect))
	}
	w, h = max(w, 1), max(h, 1)
	return transform.Resize(img, w, h, transform.Linear), image.Pt((size-w)/2, (size-h)/2)
}

// ParseColor reads a "#rrggbb" color.
func ParseColor(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("color %q: %w", s, err)
	}
	return c, nil
}

// Blend mixes a toward b by t in Lab space.
func Blend(a, b color.Color, t float64) color.Color {
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	return ca.BlendLab(cb, t).Clamped()
}
