package tui

import (
	"image"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"emblem/internal/config"
	"emblem/internal/emblem"
	"emblem/internal/shapes"
)

// Model hosts the emblem in the terminal. It owns the frame loop and the
// minimize timer; the renderer only turns state into pixels.
type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string

	cfg      config.Config
	reg      *shapes.Registry
	logo     image.Image
	renderer emblem.Renderer

	state      emblem.State
	highlights highlights
	pal        palette

	// last rendered frame and the cell area it was rendered for
	frame *image.RGBA
	mapW  int
	mapH  int

	// frameGen invalidates scheduled frames; minimizeToken the pending
	// minimize. A message carrying a stale value is dropped.
	frameGen      int
	paused        bool
	minimizeToken int

	// links sidebar
	l list.Model

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// shape inspector
	showAttrs bool
	tbl       table.Model
}

// New builds the host around an already constructed renderer. logo is
// kept so the renderer can be rebuilt when a pasted shape is added.
func New(cfg config.Config, reg *shapes.Registry, r emblem.Renderer, logo image.Image) Model {
	m := Model{
		helpVisible: true,
		status:      "emblem ready",
		cfg:         cfg,
		reg:         reg,
		logo:        logo,
		renderer:    r,
		highlights:  highlights{},
		pal:         newPalette(cfg.Colors),
	}
	// list setup
	d := list.NewDefaultDelegate()
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Links"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.refreshLinks()
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste SVG path data (M, L, H, V, C, A, Z). Press Enter to add it as \"custom\"; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// inspector table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		frameTick(m.frameGen, m.cfg.Timing.FrameInterval.Duration),
		minimizeAfter(m.minimizeToken, m.cfg.Timing.MinimizeDelay.Duration),
	)
}

// State is the kernel state currently shown.
func (m Model) State() emblem.State { return m.state }

// Status is the footer message.
func (m Model) Status() string { return m.status }

// highlights records which targets are extended; label styling reads it.
type highlights map[string]bool

func (h highlights) Extend(name string) { h[name] = true }
func (h highlights) Reset(name string)  { delete(h, name) }
