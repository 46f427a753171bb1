package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"emblem/internal/path"
	"emblem/internal/stroke"
)

// refreshShapeTable rebuilds the inspector rows from the registry.
func (m *Model) refreshShapeTable() {
	cols, rows := m.buildShapeRows()
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 3})
	for _, c := range cols {
		w := max(len(c)+2, 9)
		tcols = append(tcols, table.Column{Title: c, Width: w})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		row := make([]string, 0, len(r)+1)
		row = append(row, fmt.Sprintf("%d", i+1))
		row = append(row, r...)
		trows = append(trows, table.Row(row))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
	m.status = fmt.Sprintf("inspecting %d shapes", len(rows))
}

// buildShapeRows returns one row per shape with its command counts, the
// number of drawing operations its fill takes, and its bounding box.
func (m *Model) buildShapeRows() ([]string, [][]string) {
	cols := []string{"name", "cmds", "curves", "ops", "min x", "min y", "max x", "max y", "center"}
	var rows [][]string
	var rec stroke.Recorder
	for _, s := range m.reg.Shapes() {
		counts := s.Path().Count()
		b := s.Bounds()
		rec.Reset()
		stroke.Render(s.Path(), &rec)
		row := []string{
			s.Name(),
			fmt.Sprintf("%d", len(s.Path())),
			fmt.Sprintf("%d", counts[path.CubicCurveTo]+counts[path.ArcTo]),
			fmt.Sprintf("%d", len(rec.Ops)),
		}
		if b.Empty() {
			row = append(row, "-", "-", "-", "-", "-")
		} else {
			row = append(row,
				fmt.Sprintf("%.2f", b.MinX),
				fmt.Sprintf("%.2f", b.MinY),
				fmt.Sprintf("%.2f", b.MaxX),
				fmt.Sprintf("%.2f", b.MaxY),
				fmt.Sprintf("%.1f,%.1f", b.CenterX, b.CenterY),
			)
		}
		rows = append(rows, row)
	}
	return cols, rows
}
