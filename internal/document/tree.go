// Package document defines the format-neutral document tree produced by the
// field mapper and consumed by encoders. Widths and spacing are in twentieths
// of a point (DXA); font sizes are in half-points.
package document

import "strings"

// Alignment is the horizontal justification of a paragraph.
type Alignment string

const (
	AlignDefault Alignment = ""
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
)

// BorderStyle names a line style for table cell edges.
type BorderStyle string

const (
	BorderSingle BorderStyle = "single"
	BorderNone   BorderStyle = "none"
)

// Block is a top-level body element: *Paragraph, *Table or PageBreak.
type Block interface {
	blockKind() string
}

// Document is an ordered sequence of blocks plus page and style setup.
// Title is package metadata only; it is not rendered.
type Document struct {
	Title  string
	Page   PageSetup
	Styles Styles
	Body   []Block
}

// Append adds blocks to the end of the body.
func (d *Document) Append(blocks ...Block) {
	d.Body = append(d.Body, blocks...)
}

// PageSetup is the page size and margins.
type PageSetup struct {
	Width  int
	Height int
	Margin Margins
}

// Margins holds four edge distances.
type Margins struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Styles is the default run formatting and the named paragraph styles.
type Styles struct {
	DefaultFont string
	DefaultSize int
	Paragraph   []ParagraphStyle
}

// ParagraphStyle is a named style layered on a base style.
type ParagraphStyle struct {
	ID        string
	Name      string
	BasedOn   string
	Font      string
	Size      int
	Bold      bool
	Alignment Alignment
	Spacing   Spacing
}

// Spacing is the space before and after a paragraph.
type Spacing struct {
	Before int
	After  int
}

// Paragraph is a run sequence with optional style and layout.
type Paragraph struct {
	Style     string
	Alignment Alignment
	Spacing   Spacing
	Runs      []Run
}

func (*Paragraph) blockKind() string { return "paragraph" }

// Text returns the concatenated text of all runs.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Run is a span of uniformly formatted text. Zero Size or empty Font
// inherit from the paragraph style or document defaults.
type Run struct {
	Text string
	Bold bool
	Size int
	Font string
}

// PageBreak forces the following content onto a new page.
type PageBreak struct{}

func (PageBreak) blockKind() string { return "page_break" }

// Table is a grid of rows. Columns carries the grid column widths; Width of
// 0 with WidthPercent set means a percentage of the text area.
type Table struct {
	WidthPercent int
	Columns      []int
	Rows         []Row
}

func (*Table) blockKind() string { return "table" }

// Row is an ordered set of cells.
type Row struct {
	Cells []Cell
}

// Cell is one table cell. Span is the number of grid columns it covers
// (1 when zero).
type Cell struct {
	Width      int
	Span       int
	Borders    Borders
	Shading    string
	Margins    Margins
	Paragraphs []*Paragraph
}

// Text returns the cell's paragraph texts joined with newlines.
func (c Cell) Text() string {
	lines := make([]string, len(c.Paragraphs))
	for i, p := range c.Paragraphs {
		lines[i] = p.Text()
	}
	return strings.Join(lines, "\n")
}

// GridSpan returns the effective column span.
func (c Cell) GridSpan() int {
	if c.Span < 1 {
		return 1
	}
	return c.Span
}

// Border is one edge of a cell.
type Border struct {
	Style BorderStyle
	Size  int
	Color string
}

// Borders is the four edges of a cell.
type Borders struct {
	Top    Border
	Bottom Border
	Left   Border
	Right  Border
}

// BlockKind reports the kind name of b, used by outline renderers.
func BlockKind(b Block) string {
	if b == nil {
		return ""
	}
	return b.blockKind()
}
