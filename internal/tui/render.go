package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// dots with less coverage than this stay blank
const alphaThreshold = 128

const (
	keyNone  = ""
	keyLabel = "label"
	keyHover = "hover"
)

type cell struct {
	r   rune
	key string // style: a hex colour or one of the key constants
}

// renderEmblem composites the last frame as braille cells, one colour per
// cell, with the renderer's labels written over it.
func (m Model) renderEmblem(w, h int) string {
	br := newBrailleBuf(w, h)
	if m.frame != nil {
		b := m.frame.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if c := m.frame.RGBAAt(x, y); c.A >= alphaThreshold {
					br.paint(x-b.Min.X, y-b.Min.Y, c)
				}
			}
		}
	}
	labels := m.renderer.Labels(m.state, w*2, h*4)
	for _, l := range labels {
		if m.highlights[l.Name] {
			br.rect(int(l.Box.MinX), int(l.Box.MinY), int(l.Box.MaxX), int(l.Box.MaxY), m.pal.highlight)
		}
	}

	grid := make([][]cell, h)
	for y := range grid {
		grid[y] = make([]cell, w)
		for x := range grid[y] {
			c := cell{r: br.glyph(x, y)}
			if col, ok := br.cellColor(x, y); ok {
				c.key = col.Hex()
			}
			grid[y][x] = c
		}
	}
	for _, l := range labels {
		cy := int(l.Y / 4)
		if cy < 0 || cy >= h {
			continue
		}
		key := keyLabel
		if m.highlights[l.Name] {
			key = keyHover
		}
		x := int(l.X/2) - runewidth.StringWidth(l.Name)/2
		for _, r := range l.Name {
			if x >= 0 && x < w {
				grid[cy][x] = cell{r: r, key: key}
			}
			x++
		}
	}

	styles := map[string]lipgloss.Style{}
	lines := make([]string, h)
	for y, row := range grid {
		var sb strings.Builder
		// consecutive cells of one style are rendered together
		for i := 0; i < len(row); {
			j := i
			var run []rune
			for j < len(row) && row[j].key == row[i].key {
				run = append(run, row[j].r)
				j++
			}
			sb.WriteString(m.styleFor(styles, row[i].key).Render(string(run)))
			i = j
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func (m Model) styleFor(cache map[string]lipgloss.Style, key string) lipgloss.Style {
	switch key {
	case keyNone:
		return lipgloss.NewStyle()
	case keyLabel:
		return m.pal.label
	case keyHover:
		return m.pal.hover
	}
	s, ok := cache[key]
	if !ok {
		s = lipgloss.NewStyle().Foreground(lipgloss.Color(key))
		cache[key] = s
	}
	return s
}
