package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dreambig/appgen/internal/document"
)

// RenderDocumentTable renders a document table as a bordered terminal table.
// Spanned cells are padded with empty cells so columns stay aligned with
// the grid. Header-shaded cells are highlighted.
func RenderDocumentTable(t *document.Table) string {
	cols := len(t.Columns)
	rows := make([][]string, 0, len(t.Rows))
	header := make(map[[2]int]bool)

	for r, row := range t.Rows {
		cells := make([]string, 0, cols)
		for _, c := range row.Cells {
			if c.Shading == document.HeaderFill {
				header[[2]int{r, len(cells)}] = true
			}
			cells = append(cells, c.Text())
			for i := 1; i < c.GridSpan(); i++ {
				cells = append(cells, "")
			}
		}
		for len(cells) < cols {
			cells = append(cells, "")
		}
		rows = append(rows, cells)
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		BorderRow(true).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if header[[2]int{row, col}] {
				return cell.Foreground(ColorHeader).Bold(true)
			}
			return cell.Foreground(ColorFg)
		}).
		String()
}
