package formatter

import (
	"fmt"
	"strings"

	"github.com/dreambig/appgen/internal/document"
)

const outlineTextWidth = 36

// OutlineItems lists the top-level blocks of doc as tree items.
func OutlineItems(doc *document.Document) []TreeItem {
	items := make([]TreeItem, 0, len(doc.Body)+1)
	items = append(items, TreeItem{Title: Bold(doc.Title)})

	for i, blk := range doc.Body {
		item := TreeItem{Level: 1, IsLast: i == len(doc.Body)-1, Kind: document.BlockKind(blk)}
		switch v := blk.(type) {
		case *document.Paragraph:
			item.Title = truncate(v.Text(), outlineTextWidth)
			item.Detail = v.Style
		case *document.Table:
			item.Title = truncate(tableCaption(v), outlineTextWidth)
			item.Detail = fmt.Sprintf("%d×%d", len(v.Rows), len(v.Columns))
		default:
			item.Title = "page break"
		}
		items = append(items, item)
	}
	return items
}

// tableCaption is the text of a table's first cell.
func tableCaption(t *document.Table) string {
	if len(t.Rows) == 0 || len(t.Rows[0].Cells) == 0 {
		return "table"
	}
	return strings.ReplaceAll(t.Rows[0].Cells[0].Text(), "\n", " ")
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

// FormatOutline renders the block structure of doc.
func FormatOutline(doc *document.Document) string {
	return Header("Document outline") + "\n" + RenderTree(OutlineItems(doc))
}

// FormatTables renders every table in doc in body order.
func FormatTables(doc *document.Document) string {
	var parts []string
	n := 0
	for _, blk := range doc.Body {
		t, ok := blk.(*document.Table)
		if !ok {
			continue
		}
		n++
		parts = append(parts, Header(fmt.Sprintf("Table %d", n))+"\n"+RenderDocumentTable(t))
	}
	return strings.Join(parts, "\n\n")
}

// PreviewSummary holds the figures shown under a preview.
type PreviewSummary struct {
	ProjectName  string
	Organization string
	BudgetItems  int
	BudgetTotal  string
	SDGs         int
	Tables       int
	PageBreaks   int
}

// FormatPreviewSummary renders s in a box.
func FormatPreviewSummary(s PreviewSummary) string {
	orBlank := func(v string) string {
		if v == "" {
			return Dim("(blank)")
		}
		return v
	}
	return RenderBox("Summary", KeyValues([][2]string{
		{"Project", orBlank(s.ProjectName)},
		{"Organization", orBlank(s.Organization)},
		{"SDGs selected", fmt.Sprint(s.SDGs)},
		{"Budget items", fmt.Sprint(s.BudgetItems)},
		{"Budget total", s.BudgetTotal},
		{"Tables", fmt.Sprint(s.Tables)},
		{"Pages", fmt.Sprint(s.PageBreaks + 1)},
	}))
}
