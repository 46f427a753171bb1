package path

// Named pairs a shape name with its commands.
type Named struct {
	Name string
	Path Sequence
}

// HitTest returns the first shape, in slice order, whose bounding box
// contains (x, y). Boxes are recomputed on every call and empty boxes are
// skipped. Containment is by box, not by outline.
func HitTest(x, y float64, shapes []Named) (string, bool) {
	for _, s := range shapes {
		if Bounds(s.Path).Contains(x, y) {
			return s.Name, true
		}
	}
	return "", false
}
