package mapper

import (
	"strings"

	"github.com/dreambig/appgen/internal/application"
	"github.com/dreambig/appgen/internal/document"
)

// splitLines breaks text on any line ending. Empty text yields a single
// empty line so every cell keeps at least one paragraph.
func splitLines(text string) []string {
	if text == "" {
		return []string{""}
	}
	return strings.Split(application.CleanText(text), "\n")
}

func cellParagraphs(text string, bold bool, align document.Alignment) []*document.Paragraph {
	lines := splitLines(text)
	paras := make([]*document.Paragraph, len(lines))
	for i, line := range lines {
		paras[i] = &document.Paragraph{
			Alignment: align,
			Runs: []document.Run{{
				Text: line,
				Bold: bold,
				Size: document.CellTextSize,
				Font: document.FormFont,
			}},
		}
	}
	return paras
}

// headerCell is a shaded label cell with bold text.
func headerCell(text string, width int) document.Cell {
	return document.Cell{
		Width:      width,
		Borders:    document.AllThinBorders,
		Shading:    document.HeaderFill,
		Margins:    document.CellMargins,
		Paragraphs: cellParagraphs(text, true, document.AlignDefault),
	}
}

// contentCell is a plain value cell; each line of text becomes a paragraph.
func contentCell(text string, width int) document.Cell {
	return document.Cell{
		Width:      width,
		Borders:    document.AllThinBorders,
		Shading:    document.ContentFill,
		Margins:    document.CellMargins,
		Paragraphs: cellParagraphs(text, false, document.AlignDefault),
	}
}

// spanned returns c widened to cover span grid columns.
func spanned(c document.Cell, span int) document.Cell {
	c.Span = span
	return c
}

func textParagraph(text string, size int, bold bool, spacing document.Spacing) *document.Paragraph {
	return &document.Paragraph{
		Spacing: spacing,
		Runs:    []document.Run{{Text: text, Bold: bold, Size: size}},
	}
}

func sectionHeading(text string) *document.Paragraph {
	return textParagraph(text, 28, true, document.Spacing{Before: 400, After: 200})
}

func fullWidthTable(columns []int, rows []document.Row) *document.Table {
	return &document.Table{WidthPercent: 100, Columns: columns, Rows: rows}
}

func sum(vals ...int) int {
	total := 0
	for _, v := range vals {
		total += v
	}
	return total
}
