// Package stroke turns path commands into drawing operations.
package stroke

import (
	"fmt"
	"strconv"
	"strings"
)

// Surface receives drawing operations. Fill paints every sub-path
// accumulated since the previous Fill using the nonzero winding rule and
// starts a new path.
type Surface interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubeTo(x1, y1, x2, y2, x, y float64)
	ClosePath()
	Fill()
}

// Op is one recorded operation.
type Op struct {
	Name string
	Args []float64
}

func (o Op) String() string {
	parts := make([]string, len(o.Args))
	for i, a := range o.Args {
		parts[i] = strconv.FormatFloat(a, 'f', 3, 64)
	}
	return fmt.Sprintf("%s(%s)", o.Name, strings.Join(parts, ", "))
}

// Recorder is a Surface that keeps the operations it receives.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) add(name string, args ...float64) {
	r.Ops = append(r.Ops, Op{Name: name, Args: args})
}

func (r *Recorder) MoveTo(x, y float64) { r.add("MoveTo", x, y) }
func (r *Recorder) LineTo(x, y float64) { r.add("LineTo", x, y) }
func (r *Recorder) CubeTo(x1, y1, x2, y2, x, y float64) {
	r.add("CubeTo", x1, y1, x2, y2, x, y)
}
func (r *Recorder) ClosePath() { r.add("ClosePath") }
func (r *Recorder) Fill()      { r.add("Fill") }

// Replay sends the recorded operations to s.
func (r *Recorder) Replay(s Surface) {
	for _, op := range r.Ops {
		a := op.Args
		switch op.Name {
		case "MoveTo":
			s.MoveTo(a[0], a[1])
		case "LineTo":
			s.LineTo(a[0], a[1])
		case "CubeTo":
			s.CubeTo(a[0], a[1], a[2], a[3], a[4], a[5])
		case "ClosePath":
			s.ClosePath()
		case "Fill":
			s.Fill()
		}
	}
}

// Reset drops every recorded operation.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
