package path

// Resolve converts a raw sequence into absolute commands.
//
// A running pen position is tracked to apply relative commands. Every
// returned command carries exactly Kind.Arity() arguments: runs holding
// several argument groups are split, and extra pairs after a MoveTo become
// LineTo. H and V keep their single (now absolute) coordinate. A run whose
// length is not a multiple of the arity is an ErrArity error.
func Resolve(seq Sequence) (Sequence, error) {
	out := make(Sequence, 0, len(seq))
	var x, y, sx, sy float64 // pen and sub-path start
	for i, c := range seq {
		n := c.Kind.Arity()
		if n == 0 {
			if len(c.Args) != 0 {
				return nil, &Error{Index: i, Token: c.String(), Err: ErrArity}
			}
			out = append(out, Command{Kind: ClosePath})
			x, y = sx, sy
			continue
		}
		if len(c.Args) == 0 || len(c.Args)%n != 0 {
			return nil, &Error{Index: i, Token: c.String(), Err: ErrArity}
		}
		kind := c.Kind
		for j := 0; j < len(c.Args); j += n {
			a := append([]float64(nil), c.Args[j:j+n]...)
			switch kind {
			case MoveTo, LineTo:
				if c.Relative {
					a[0] += x
					a[1] += y
				}
				x, y = a[0], a[1]
				if kind == MoveTo {
					sx, sy = x, y
				}
			case HorizontalLineTo:
				if c.Relative {
					a[0] += x
				}
				x = a[0]
			case VerticalLineTo:
				if c.Relative {
					a[0] += y
				}
				y = a[0]
			case CubicCurveTo:
				if c.Relative {
					for k := 0; k < 6; k += 2 {
						a[k] += x
						a[k+1] += y
					}
				}
				x, y = a[4], a[5]
			case ArcTo:
				// only the endpoint is positional
				if c.Relative {
					a[5] += x
					a[6] += y
				}
				x, y = a[5], a[6]
			}
			out = append(out, Command{Kind: kind, Args: a})
			if kind == MoveTo {
				kind = LineTo
			}
		}
	}
	return out, nil
}

// Pen walks an absolute sequence and reports the pen position before and
// after each command. ClosePath returns the pen to the sub-path start.
func Pen(seq Sequence, fn func(c Command, x0, y0, x1, y1 float64)) {
	var x, y, sx, sy float64
	for _, c := range seq {
		nx, ny := x, y
		switch c.Kind {
		case MoveTo:
			nx, ny = c.Args[0], c.Args[1]
			sx, sy = nx, ny
		case LineTo:
			nx, ny = c.Args[0], c.Args[1]
		case HorizontalLineTo:
			nx = c.Args[0]
		case VerticalLineTo:
			ny = c.Args[0]
		case CubicCurveTo:
			nx, ny = c.Args[4], c.Args[5]
		case ArcTo:
			nx, ny = c.Args[5], c.Args[6]
		case ClosePath:
			nx, ny = sx, sy
		}
		fn(c, x, y, nx, ny)
		x, y = nx, ny
	}
}
