// Package shapes holds the named emblem shapes and their layout.
package shapes

import (
	"errors"
	"fmt"
	"strings"

	"emblem/internal/logging"
	"emblem/internal/path"
)

// Shape is a named, parsed path. Shapes are built by a Registry and never
// change afterwards; Path must be treated as read-only.
type Shape struct {
	name   string
	source string
	path   path.Sequence
}

func (s Shape) Name() string        { return s.name }
func (s Shape) Source() string      { return s.source }
func (s Shape) Path() path.Sequence { return s.path }
func (s Shape) Bounds() path.BBox   { return path.Bounds(s.path) }

// Named adapts the shape for hit testing.
func (s Shape) Named() path.Named { return path.Named{Name: s.name, Path: s.path} }

// Registry is an ordered set of shapes.
type Registry struct {
	shapes []Shape
	index  map[string]int
}

// New builds the registry from the builtin emblem paths.
func New() (*Registry, error) {
	return NewFrom(Builtin)
}

// NewFrom parses and resolves every definition. The first broken one
// aborts construction.
func NewFrom(defs []Def) (*Registry, error) {
	r := &Registry{index: make(map[string]int, len(defs))}
	for _, d := range defs {
		if err := r.add(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// With returns a copy of r where defs replace shapes of the same name and
// new names are appended.
func (r *Registry) With(defs ...Def) (*Registry, error) {
	out := &Registry{
		shapes: append([]Shape(nil), r.shapes...),
		index:  make(map[string]int, len(r.index)+len(defs)),
	}
	for k, v := range r.index {
		out.index[k] = v
	}
	for _, d := range defs {
		if err := out.add(d); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *Registry) add(d Def) error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return errors.New("shape: empty name")
	}
	seq, err := path.ParseAbsolute(d.Path)
	if err != nil {
		return fmt.Errorf("shape %q: %w", name, err)
	}
	s := Shape{name: name, source: d.Path, path: seq}
	if i, ok := r.index[name]; ok {
		r.shapes[i] = s
	} else {
		r.index[name] = len(r.shapes)
		r.shapes = append(r.shapes, s)
	}
	logging.Logger().Debug("shape registered", "name", name, "commands", len(seq))
	return nil
}

// Shapes returns every shape in registration order.
func (r *Registry) Shapes() []Shape {
	return append([]Shape(nil), r.shapes...)
}

func (r *Registry) Get(name string) (Shape, bool) {
	i, ok := r.index[name]
	if !ok {
		return Shape{}, false
	}
	return r.shapes[i], true
}

// Arrows returns every shape except the octagon.
func (r *Registry) Arrows() []Shape {
	var out []Shape
	for _, s := range r.shapes {
		if s.name != Octagon {
			out = append(out, s)
		}
	}
	return out
}

// Targets returns hit-test targets for the named shapes, in the given
// order, or for all shapes when no name is given. Unknown names are skipped.
func (r *Registry) Targets(names ...string) []path.Named {
	if len(names) == 0 {
		out := make([]path.Named, len(r.shapes))
		for i, s := range r.shapes {
			out[i] = s.Named()
		}
		return out
	}
	var out []path.Named
	for _, n := range names {
		if s, ok := r.Get(n); ok {
			out = append(out, s.Named())
		}
	}
	return out
}

// Len is the number of shapes.
func (r *Registry) Len() int { return len(r.shapes) }
