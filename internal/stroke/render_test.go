package stroke

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emblem/internal/path"
)

func abs(t *testing.T, s string) path.Sequence {
	t.Helper()
	seq, err := path.ParseAbsolute(s)
	require.NoError(t, err)
	return seq
}

func names(ops []Op) []string {
	out := make([]string, len(ops))
	for i, o := range ops {
		out[i] = o.Name
	}
	return out
}

func TestRender(t *testing.T) {
	var rec Recorder
	Render(abs(t, "M 0,0 H 10 V 10 C 1,2 3,4 5,6 A 1 1 0 0 1 7,8 Z"), &rec)
	assert.Equal(t, []string{"MoveTo", "LineTo", "LineTo", "CubeTo", "LineTo", "ClosePath", "Fill"}, names(rec.Ops))
	assert.Equal(t, []float64{10, 0}, rec.Ops[1].Args)
	assert.Equal(t, []float64{10, 10}, rec.Ops[2].Args)
	assert.Equal(t, []float64{7, 8}, rec.Ops[4].Args)
}

func TestRenderScaledDegenerate(t *testing.T) {
	seq := abs(t, "M 0,5 L 10,5")
	box := path.Bounds(seq)
	require.Equal(t, box.MinY, box.MaxY)

	var rec Recorder
	err := RenderScaled(seq, box, &rec, DefaultOptions())
	assert.ErrorIs(t, err, path.ErrDegenerate)
	assert.Empty(t, rec.Ops)

	err = RenderScaled(abs(t, "H 5"), path.Bounds(abs(t, "H 5")), &rec, DefaultOptions())
	assert.ErrorIs(t, err, path.ErrDegenerate)
	assert.Empty(t, rec.Ops)
}

func TestRenderScaledStretch(t *testing.T) {
	// a vertical edge away from the center line bends outward as y grows
	seq := abs(t, "M 0,0 L 10,0 L 10,10 Z")
	box := path.Bounds(seq)
	require.Equal(t, path.Rect(0, 0, 10, 10), box)

	var rec Recorder
	require.NoError(t, RenderScaled(seq, box, &rec, DefaultOptions()))

	// MoveTo + 2 segments of 101 samples + ClosePath + Fill
	require.Len(t, rec.Ops, 1+2*101+2)
	assert.Equal(t, "MoveTo", rec.Ops[0].Name)
	assert.Equal(t, "Fill", rec.Ops[len(rec.Ops)-1].Name)

	// second segment runs from (10,0) to (10,10)
	seg := rec.Ops[1+101 : 1+2*101]
	for i, op := range seg {
		y := float64(i) / 100 * 10
		k := 1 + 2*(y/10)
		assert.InDelta(t, 5+5*k, op.Args[0], 1e-9)
		assert.InDelta(t, y, op.Args[1], 1e-9)
	}
	assert.InDelta(t, 20, seg[len(seg)-1].Args[0], 1e-9)

	for _, op := range rec.Ops {
		for _, a := range op.Args {
			assert.False(t, math.IsNaN(a) || math.IsInf(a, 0))
		}
	}
}

func TestRenderScaledCurvesUnscaled(t *testing.T) {
	// curves and arcs are not stretched, only joined to their endpoints
	seq := abs(t, "M 0,0 C 1,1 2,2 3,10 A 1 1 0 0 1 9,10")
	box := path.Rect(0, 0, 10, 10)

	var rec Recorder
	require.NoError(t, RenderScaled(seq, box, &rec, DefaultOptions()))
	assert.Equal(t, []string{"MoveTo", "LineTo", "LineTo", "Fill"}, names(rec.Ops))
	assert.Equal(t, []float64{3, 10}, rec.Ops[1].Args)
	assert.Equal(t, []float64{9, 10}, rec.Ops[2].Args)
}

func TestRenderScaledHorizontalRelative(t *testing.T) {
	seq := abs(t, "M 2,10 h 4")
	box := path.Rect(0, 0, 10, 10)
	o := DefaultOptions()
	o.Subdivisions = 2

	var rec Recorder
	require.NoError(t, RenderScaled(seq, box, &rec, o))
	// bottom row: k = 3 around center x = 5
	require.Len(t, rec.Ops, 1+3+1)
	assert.InDelta(t, 5+(2-5)*3.0, rec.Ops[1].Args[0], 1e-9)
	assert.InDelta(t, 5+(4-5)*3.0, rec.Ops[2].Args[0], 1e-9)
	assert.InDelta(t, 5+(6-5)*3.0, rec.Ops[3].Args[0], 1e-9)
}

func TestRecorderReplay(t *testing.T) {
	var a, b Recorder
	Render(abs(t, "M 0,0 L 1,1 C 1,2 3,4 5,6 Z"), &a)
	a.Replay(&b)
	assert.Equal(t, a.Ops, b.Ops)
	b.Reset()
	assert.Empty(t, b.Ops)
	assert.Equal(t, "MoveTo(0.000, 0.000)", a.Ops[0].String())
}
