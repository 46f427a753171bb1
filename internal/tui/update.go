package tui

import (
	"fmt"
	"strings"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"emblem/internal/emblem"
	"emblem/internal/logging"
	"emblem/internal/path"
	"emblem/internal/shapes"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
	customShape  = "custom"
)

type frameMsg struct{ gen int }

type minimizeMsg struct{ token int }

// NavigateMsg reports a clicked or selected link.
type NavigateMsg struct{ Link shapes.Link }

func frameTick(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return frameMsg{gen: gen} })
}

func minimizeAfter(token int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return minimizeMsg{token: token} })
}

func navigate(l shapes.Link) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Link: l} }
}

// layout returns the origin and size, in cells, of the emblem area.
func (m Model) layout() (x, y, w, h int) {
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)
	w = contentWidth
	if m.showSidebar {
		w -= sidebarWidth + 1
		x = sidebarWidth + 1
	}
	return x, headerHeight, max(10, w), contentHeight
}

// redraw renders the current state for the emblem area.
func (m *Model) redraw() {
	_, _, w, h := m.layout()
	m.mapW, m.mapH = w, h
	m.frame = m.renderer.Frame(m.state, w*2, h*4)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-headerHeight-footerHeight-2)
		}
		m.redraw()
		return m, nil
	case frameMsg:
		if msg.gen != m.frameGen || m.paused {
			return m, nil
		}
		if m.width > 0 && m.height > 0 {
			m.redraw()
		}
		return m, frameTick(m.frameGen, m.cfg.Timing.FrameInterval.Duration)
	case minimizeMsg:
		if msg.token != m.minimizeToken || m.state.Mode == emblem.Minimized {
			return m, nil
		}
		m.setMode(emblem.Minimized)
		return m, nil
	case NavigateMsg:
		m.status = fmt.Sprintf("navigate: %s %s", msg.Link.Name, msg.Link.Path)
		logging.Logger().Info("navigate", "link", msg.Link.Name, "path", msg.Link.Path)
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// If list is visible and filtering, send keys to list and ignore global commands
	if m.showSidebar && m.l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	if m.pasteMode {
		switch msg.String() {
		case "esc":
			m.pasteMode = false
			m.ta.Blur()
			return m, nil
		case "enter":
			m.addPasted(strings.TrimSpace(m.ta.Value()))
			return m, nil
		}
		var cmd tea.Cmd
		m.ta, cmd = m.ta.Update(msg)
		return m, cmd
	}
	switch msg.String() {
	case "ctrl+c", "q":
		// stale ticks still in flight are dropped
		m.frameGen++
		m.minimizeToken++
		return m, tea.Quit
	case "e":
		m.minimizeToken++
		m.setMode(m.state.Mode.Toggle())
	case " ":
		m.paused = !m.paused
		if m.paused {
			m.frameGen++
			m.status = "paused"
			return m, nil
		}
		m.frameGen++
		m.status = "running"
		return m, frameTick(m.frameGen, m.cfg.Timing.FrameInterval.Duration)
	case "tab":
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshLinks()
			m.l.SetSize(sidebarWidth-2, m.height-headerHeight-footerHeight-2)
		}
		m.redraw()
	case "p":
		m.pasteMode = true
		// start from the current custom shape so it can be edited
		prev := ""
		if s, ok := m.reg.Get(customShape); ok {
			prev = s.Source()
		}
		m.ta.SetValue(prev)
		m.status = "paste mode"
		return m, m.ta.Focus()
	case "h":
		m.helpVisible = !m.helpVisible
	case "a":
		m.showAttrs = !m.showAttrs
		if m.showAttrs {
			m.refreshShapeTable()
		}
	case "enter":
		if m.showSidebar {
			if it, ok := m.l.SelectedItem().(linkItem); ok {
				return m, navigate(it.link)
			}
		}
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	if m.showAttrs {
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ox, oy, w, h := m.layout()
	name := ""
	cx, cy := msg.X-ox, msg.Y-oy
	if cx >= 0 && cx < w && cy >= 0 && cy < h && !m.showAttrs && !m.pasteMode {
		// center of the cell in frame pixels
		px, py := float64(cx*2)+1, float64(cy*4)+2
		name, _ = m.renderer.Pick(m.state, px, py, w*2, h*4)
	}
	if name != m.state.Hovered {
		m.state = emblem.Hover(m.state, name, m.highlights)
		logging.Logger().Debug("hover", "target", name)
		if m.showSidebar {
			m.refreshLinks()
		}
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && name != "" {
		if l, ok := m.link(name); ok {
			return m, navigate(l)
		}
		m.status = "picked: " + name
	}
	return m, nil
}

func (m *Model) setMode(mode emblem.Mode) {
	m.state = m.state.SetMode(mode)
	m.status = "mode: " + mode.String()
	logging.Logger().Info("mode changed", "mode", mode.String())
	if m.width > 0 && m.height > 0 {
		m.redraw()
	}
}

func (m Model) link(name string) (shapes.Link, bool) {
	for _, l := range m.cfg.Links {
		if l.Name == name {
			return l, true
		}
	}
	return shapes.Link{}, false
}

// addPasted parses pasted path data and adds it to the registry as the
// custom shape, replacing an earlier one.
func (m *Model) addPasted(src string) {
	if src == "" {
		m.status = "paste: empty"
		return
	}
	reg, err := m.reg.With(shapes.Def{Name: customShape, Path: src})
	if err != nil {
		m.status = "path error: " + err.Error()
		logging.Logger().Warn("pasted path rejected", "err", err)
		return
	}
	r, err := emblem.New(m.cfg, reg, m.logo)
	if err != nil {
		m.status = "renderer error: " + err.Error()
		logging.Logger().Warn("renderer rebuild failed", "err", err)
		return
	}
	m.reg, m.renderer = reg, r
	s, _ := reg.Get(customShape)
	b := s.Bounds()
	m.status = fmt.Sprintf("custom: %d commands  bbox %s", len(s.Path()), formatBox(b))
	m.pasteMode = false
	m.ta.Blur()
	if m.showAttrs {
		m.refreshShapeTable()
	}
	if m.width > 0 && m.height > 0 {
		m.redraw()
	}
}

func formatBox(b path.BBox) string {
	if b.Empty() {
		return "empty"
	}
	return fmt.Sprintf("[%.2f, %.2f, %.2f, %.2f]", b.MinX, b.MinY, b.MaxX, b.MaxY)
}
