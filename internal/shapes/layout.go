package shapes

import "math"

// Direction is one arrow position around the emblem. X and Y form a unit
// vector in screen space (y grows downward); Angle is measured clockwise
// from north.
type Direction struct {
	Index int
	Angle float64
	X, Y  float64
}

// Directions spaces n arrows evenly, clockwise from north. The navbar
// uses 8; the compact layout uses 5.
func Directions(n int) []Direction {
	if n <= 0 {
		return nil
	}
	out := make([]Direction, n)
	for i := range out {
		a := 2 * math.Pi * float64(i) / float64(n)
		out[i] = Direction{Index: i, Angle: a, X: math.Sin(a), Y: -math.Cos(a)}
	}
	return out
}

// Focus is the screen-space angle of the direction, as atan2 reports it
// for a pixel lying along it.
func (d Direction) Focus() float64 { return math.Atan2(d.Y, d.X) }

// Link is a navigation target shown next to an arrow.
type Link struct {
	Name string `toml:"name" yaml:"name"`
	Path string `toml:"path" yaml:"path"`
}

// DefaultLinks are the navbar entries, one per arrow of the 8-way layout.
func DefaultLinks() []Link {
	return []Link{
		{Name: "Home", Path: "/"},
		{Name: "Projects", Path: "/projects"},
		{Name: "Team", Path: "/team"},
		{Name: "Store", Path: "/store"},
		{Name: "Blog", Path: "/blog"},
		{Name: "About", Path: "/about"},
		{Name: "Contact", Path: "/contact"},
		{Name: "Gallery", Path: "/gallery"},
	}
}
