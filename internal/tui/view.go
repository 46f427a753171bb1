package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	ox, _, mapWidth, mapHeight := m.layout()
	contentWidth := max(10, m.width)
	contentHeight := mapHeight

	// Header
	header := titleStyle.Render(fmt.Sprintf(" emblem ─ %s renderer ", m.renderer.Name()))
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, contentHeight-2)
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var mainView string
	switch {
	case m.showAttrs:
		// Render the shape inspector centered in the emblem area
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		if colW == 0 {
			colW = min(60, contentWidth-6)
		}
		maxW := min(mapWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(mapHeight-2, 20))
		attrsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		mainView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, attrsBox)
	case m.pasteMode:
		m.ta.SetWidth(mapWidth)
		m.ta.SetHeight(min(mapHeight, 12))
		mainView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.ta.View())
	default:
		w, h := m.mapW, m.mapH
		if w == 0 || h == 0 {
			w, h = mapWidth, mapHeight
		}
		mainView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.renderEmblem(w, h))
	}

	// Body row
	body := mainView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, strings.Repeat(" ", ox-sidebarWidth), mainView)
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	state := dimStyle.Render(fmt.Sprintf("  %s  ", m.state.Mode))
	if m.state.Hovered != "" {
		state = dimStyle.Render(fmt.Sprintf("  %s  hover=%s  ", m.state.Mode, m.state.Hovered))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(state))
	right := lipgloss.Place(spacerW+lipgloss.Width(state), 1, lipgloss.Right, lipgloss.Center, state)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"e expand/minimize",
		"space pause",
		"Tab links",
		"Enter open",
		"p paste",
		"a shapes",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
