package tui

import (
	"image/color"
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emblem/internal/config"
	"emblem/internal/emblem"
	"emblem/internal/shapes"
)

func newModel(t *testing.T, renderer string) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Renderer = renderer
	reg, err := shapes.New()
	require.NoError(t, err)
	r, err := emblem.New(cfg, reg, nil)
	require.NoError(t, err)
	return New(cfg, reg, r, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestInitSchedulesFrameAndMinimize(t *testing.T) {
	m := newModel(t, config.RendererWarp)
	assert.NotNil(t, m.Init())
	assert.Equal(t, emblem.Expanded, m.State().Mode)
}

func TestMinimizeTimer(t *testing.T) {
	m := newModel(t, config.RendererWarp)
	m, _ = update(t, m, minimizeMsg{token: 0})
	assert.Equal(t, emblem.Minimized, m.State().Mode)
	assert.Equal(t, "mode: minimized", m.Status())
}

func TestManualToggleCancelsMinimize(t *testing.T) {
	m := newModel(t, config.RendererWarp)
	m, _ = update(t, m, runes("e"))
	assert.Equal(t, emblem.Minimized, m.State().Mode)
	m, _ = update(t, m, runes("e"))
	assert.Equal(t, emblem.Expanded, m.State().Mode)

	// the timer armed at start fires late and is ignored
	m, _ = update(t, m, minimizeMsg{token: 0})
	assert.Equal(t, emblem.Expanded, m.State().Mode)
}

func TestFrameLoop(t *testing.T) {
	m := newModel(t, config.RendererWarp)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 23})
	require.NotNil(t, m.frame)
	assert.Equal(t, 120, m.frame.Bounds().Dx())
	assert.Equal(t, 80, m.frame.Bounds().Dy())

	m, cmd := update(t, m, frameMsg{gen: 0})
	assert.NotNil(t, cmd, "a live frame schedules the next one")

	m, cmd = update(t, m, runes(" "))
	assert.True(t, m.paused)
	assert.Nil(t, cmd)
	_, cmd = update(t, m, frameMsg{gen: 0})
	assert.Nil(t, cmd, "frames stop while paused")

	m, cmd = update(t, m, runes(" "))
	assert.False(t, m.paused)
	assert.NotNil(t, cmd)
	_, cmd = update(t, m, frameMsg{gen: m.frameGen})
	assert.NotNil(t, cmd)
}

func TestQuitRevokesScheduledWork(t *testing.T) {
	m := newModel(t, config.RendererWarp)
	m, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)

	m, cmd = update(t, m, frameMsg{gen: 0})
	assert.Nil(t, cmd)
	m, _ = update(t, m, minimizeMsg{token: 0})
	assert.Equal(t, emblem.Expanded, m.State().Mode)
}

func TestHoverAndClickLink(t *testing.T) {
	m := newModel(t, config.RendererWarp)
	// 200x100 cells of emblem area: a 400x400 pixel frame
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 103})
	m, _ = update(t, m, minimizeMsg{token: 0})

	// Team's label sits at pixel (255, 130): cell (127, 32) below the header
	m, _ = update(t, m, tea.MouseMsg{X: 127, Y: 33, Action: tea.MouseActionMotion})
	assert.Equal(t, "Team", m.State().Hovered)
	assert.True(t, m.highlights["Team"])

	m, cmd := update(t, m, tea.MouseMsg{X: 127, Y: 33, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd)
	nav, ok := cmd().(NavigateMsg)
	require.True(t, ok)
	assert.Equal(t, "/team", nav.Link.Path)

	m, _ = update(t, m, nav)
	assert.Contains(t, m.Status(), "/team")

	m, _ = update(t, m, tea.MouseMsg{X: 0, Y: 1, Action: tea.MouseActionMotion})
	assert.Equal(t, "", m.State().Hovered)
	assert.Empty(t, m.highlights)
}

func TestHoverArrowStretch(t *testing.T) {
	m := newModel(t, config.RendererStretch)
	// 150x75 cells: a 300x300 pixel frame at half the vector size
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 150, Height: 78})
	m, _ = update(t, m, tea.MouseMsg{X: 77, Y: 13, Action: tea.MouseActionMotion})
	assert.Equal(t, "arrow-n", m.State().Hovered)

	m, cmd := update(t, m, tea.MouseMsg{X: 77, Y: 13, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd)
	assert.Equal(t, "picked: arrow-n", m.Status())
}

func TestLinksSidebar(t *testing.T) {
	m := newModel(t, config.RendererWarp)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.showSidebar)
	assert.Len(t, m.l.Items(), 8)
	assert.Equal(t, 100-sidebarWidth-1, m.mapW)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	nav, ok := cmd().(NavigateMsg)
	require.True(t, ok)
	assert.Equal(t, "Home", nav.Link.Name)
}

func TestPasteAddsCustomShape(t *testing.T) {
	m := newModel(t, config.RendererStretch)
	before := m.reg.Len()

	m, _ = update(t, m, runes("p"))
	require.True(t, m.pasteMode)
	m.ta.SetValue("M 10,abc")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.pasteMode)
	assert.True(t, strings.HasPrefix(m.Status(), "path error"), m.Status())

	m.ta.SetValue("M 0,0 L 10,20 L 0,20 Z")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.pasteMode)
	assert.Equal(t, "custom: 4 commands  bbox [0.00, 0.00, 10.00, 20.00]", m.Status())
	assert.Equal(t, before+1, m.reg.Len())
	_, ok := m.reg.Get(customShape)
	assert.True(t, ok)

	// reopening the box starts from the stored source
	m, _ = update(t, m, runes("p"))
	assert.Equal(t, "M 0,0 L 10,20 L 0,20 Z", m.ta.Value())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.pasteMode)
}

func TestShapeInspector(t *testing.T) {
	m := newModel(t, config.RendererWarp)
	m, _ = update(t, m, runes("a"))
	require.True(t, m.showAttrs)
	rows := m.tbl.Rows()
	require.Len(t, rows, m.reg.Len())
	assert.Equal(t, shapes.Octagon, rows[0][1])
	assert.Equal(t, "208.07", rows[0][5])
	// one drawing op per command plus the fill
	cmds, err := strconv.Atoi(rows[0][2])
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(cmds+1), rows[0][4])
}

func TestViewDrawsEmblem(t *testing.T) {
	m := newModel(t, config.RendererWarp)
	assert.Equal(t, "", m.View())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	v := m.View()
	assert.Contains(t, v, "emblem")
	assert.Contains(t, v, "warp renderer")
	braille := strings.IndexFunc(v, func(r rune) bool { return r > 0x2800 && r <= 0x28FF })
	assert.GreaterOrEqual(t, braille, 0)
}

func TestBrailleBuf(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.paint(0, 0, colorOf(255, 0, 0))
	b.paint(1, 3, colorOf(0, 0, 255))
	assert.Equal(t, '⢁', b.glyph(0, 0))
	assert.Equal(t, ' ', b.glyph(1, 0))

	c, ok := b.cellColor(0, 0)
	require.True(t, ok)
	assert.InDelta(t, 0.5, c.R, 1e-9)
	assert.InDelta(t, 0.5, c.B, 1e-9)
	_, ok = b.cellColor(1, 0)
	assert.False(t, ok)

	// out of range dots are dropped
	b.paint(-1, 0, colorOf(0, 0, 0))
	b.paint(4, 0, colorOf(0, 0, 0))
	assert.Equal(t, 2, b.n[0][0])
}

func colorOf(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 255} }
