package tui

import (
	list "github.com/charmbracelet/bubbles/list"

	"emblem/internal/shapes"
)

type linkItem struct {
	link   shapes.Link
	active bool
}

func (i linkItem) Title() string {
	if i.active {
		return "▸ " + i.link.Name
	}
	return i.link.Name
}

func (i linkItem) Description() string { return i.link.Path }
func (i linkItem) FilterValue() string { return i.link.Name }

// refreshLinks lists the configured links in arrow order, marking the
// hovered one.
func (m *Model) refreshLinks() {
	items := make([]list.Item, 0, len(m.cfg.Links))
	for _, l := range m.cfg.Links {
		items = append(items, linkItem{link: l, active: m.highlights[l.Name]})
	}
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no links configured"
	}
}
