package canvas

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emblem/internal/path"
	"emblem/internal/stroke"
)

func TestFillSquare(t *testing.T) {
	c := New(20, 20)
	c.SetColor(color.RGBA{R: 255, A: 255})
	seq, err := path.ParseAbsolute("M 5,5 H 15 V 15 H 5 Z")
	require.NoError(t, err)
	stroke.Render(seq, c)

	img := c.Image()
	assert.Equal(t, uint8(255), img.RGBAAt(10, 10).A)
	assert.Equal(t, uint8(255), img.RGBAAt(10, 10).R)
	assert.Equal(t, uint8(0), img.RGBAAt(2, 2).A)
	assert.Equal(t, uint8(0), img.RGBAAt(17, 17).A)
}

func TestFillOpenSubpaths(t *testing.T) {
	c := New(60, 60)
	c.SetColor(color.RGBA{G: 255, A: 255})
	seq, err := path.ParseAbsolute("M 5,5 L 15,5 L 15,15 M 30,30 L 40,30 L 40,40")
	require.NoError(t, err)
	stroke.Render(seq, c)

	img := c.Image()
	assert.Equal(t, uint8(255), img.RGBAAt(13, 7).A, "first triangle")
	assert.Equal(t, uint8(255), img.RGBAAt(38, 32).A, "second triangle")
	assert.Equal(t, uint8(0), img.RGBAAt(25, 10).A)
	assert.Equal(t, uint8(0), img.RGBAAt(50, 10).A)
	assert.Equal(t, uint8(0), img.RGBAAt(55, 35).A)
}

func TestFitAndInverse(t *testing.T) {
	c := New(200, 100)
	c.Fit(600, 600)
	assert.InDelta(t, 100.0/600, c.Scale(), 1e-12)

	px, py := c.ToPixel(300, 300)
	assert.InDelta(t, 100, px, 1e-9)
	assert.InDelta(t, 50, py, 1e-9)

	x, y := c.ToLogical(px, py)
	assert.InDelta(t, 300, x, 1e-9)
	assert.InDelta(t, 300, y, 1e-9)
}

func TestTransformedFill(t *testing.T) {
	c := New(60, 60)
	c.Fit(600, 600)
	c.SetColor(color.White)
	seq, err := path.ParseAbsolute("M 100,100 L 500,100 L 500,500 L 100,500 Z")
	require.NoError(t, err)
	stroke.Render(seq, c)
	assert.Equal(t, uint8(255), c.Image().RGBAAt(30, 30).A)
	assert.Equal(t, uint8(0), c.Image().RGBAAt(5, 5).A)
}

func TestDrawImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 200
	}
	c := New(10, 10)
	c.DrawImage(src, 3, 3)
	assert.NotZero(t, c.Image().RGBAAt(4, 4).A)
	assert.Zero(t, c.Image().RGBAAt(1, 1).A)
	assert.Zero(t, c.Image().RGBAAt(8, 8).A)
}

func TestLoadAndFitSquare(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	p := filepath.Join(t.TempDir(), "logo.png")
	f, err := os.Create(p)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	img, err := LoadImage(p)
	require.NoError(t, err)

	scaled, off := FitSquare(img, 20)
	assert.Equal(t, 20, scaled.Bounds().Dx())
	assert.Equal(t, 10, scaled.Bounds().Dy())
	assert.Equal(t, image.Pt(0, 5), off)

	_, err = LoadImage(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestColors(t *testing.T) {
	c, err := ParseColor("#4B0082")
	require.NoError(t, err)
	r, g, b, _ := c.RGBA()
	assert.Equal(t, uint32(0x4B), r>>8)
	assert.Equal(t, uint32(0x00), g>>8)
	assert.Equal(t, uint32(0x82), b>>8)

	_, err = ParseColor("indigo")
	assert.Error(t, err)

	mid := Blend(color.Black, color.White, 0)
	mr, _, _, _ := mid.RGBA()
	assert.Zero(t, mr>>8)
}
