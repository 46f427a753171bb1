// Package emblem is the widget kernel: the mode and hover state, and the
// renderers that turn that state into a frame.
package emblem

// Mode is the layout of the widget.
type Mode int

const (
	Expanded Mode = iota
	Minimized
)

func (m Mode) String() string {
	if m == Minimized {
		return "minimized"
	}
	return "expanded"
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Minimized {
		return Expanded
	}
	return Minimized
}

// State is everything a frame depends on besides configuration.
// Hovered names a link for the warp renderer and a shape for the stretch
// renderer; it is empty when nothing is hovered.
type State struct {
	Mode    Mode
	Hovered string
}

// SetMode returns st in mode m.
func (st State) SetMode(m Mode) State {
	st.Mode = m
	return st
}

// Highlighter gives a named target its extended look and takes it away
// again. Implementations decide what extended means.
type Highlighter interface {
	Extend(name string)
	Reset(name string)
}

// Hover moves the hover to name, or clears it when name is empty. The
// target being left is reset before the new one is extended; hovering the
// current target again calls nothing. hl may be nil.
func Hover(st State, name string, hl Highlighter) State {
	if st.Hovered == name {
		return st
	}
	if hl != nil {
		if st.Hovered != "" {
			hl.Reset(st.Hovered)
		}
		if name != "" {
			hl.Extend(name)
		}
	}
	st.Hovered = name
	return st
}
