package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAbs(t *testing.T, s string) Sequence {
	t.Helper()
	seq, err := ParseAbsolute(s)
	require.NoError(t, err)
	return seq
}

func TestHitTestBoundary(t *testing.T) {
	square := mustAbs(t, "M 10,20 L 30,20 L 30,40 L 10,40 Z")
	box := Bounds(square)
	shapes := []Named{{Name: "square", Path: square}}

	name, ok := HitTest(box.MinX, box.MinY, shapes)
	assert.True(t, ok)
	assert.Equal(t, "square", name)

	_, ok = HitTest(box.MinX-1, box.MinY, shapes)
	assert.False(t, ok)

	_, ok = HitTest(box.MaxX, box.MaxY, shapes)
	assert.True(t, ok)
}

func TestHitTestFirstMatchWins(t *testing.T) {
	big := mustAbs(t, "M 0,0 L 100,100")
	small := mustAbs(t, "M 40,40 L 60,60")

	name, ok := HitTest(50, 50, []Named{{"small", small}, {"big", big}})
	require.True(t, ok)
	assert.Equal(t, "small", name)

	name, ok = HitTest(50, 50, []Named{{"big", big}, {"small", small}})
	require.True(t, ok)
	assert.Equal(t, "big", name)
}

func TestHitTestSkipsEmpty(t *testing.T) {
	empty := mustAbs(t, "H 10 V 10")
	name, ok := HitTest(0, 0, []Named{{"empty", empty}, {"dot", mustAbs(t, "M 0,0")}})
	require.True(t, ok)
	assert.Equal(t, "dot", name)

	_, ok = HitTest(0, 0, nil)
	assert.False(t, ok)
}
