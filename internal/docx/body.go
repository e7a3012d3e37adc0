package docx

import (
	"fmt"
	"strings"

	"github.com/dreambig/appgen/internal/document"
)

const nsMain = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// documentPart renders word/document.xml.
func documentPart(doc *document.Document) ([]byte, error) {
	var b xmlBuf
	b.WriteString(xmlHeader)
	b.open("w:document",
		a("xmlns:w", nsMain),
		a("xmlns:r", "http://schemas.openxmlformats.org/officeDocument/2006/relationships"),
	)
	b.open("w:body")

	for i, blk := range doc.Body {
		switch v := blk.(type) {
		case *document.Paragraph:
			writeParagraph(&b, v)
		case *document.Table:
			writeTable(&b, v)
		case document.PageBreak, *document.PageBreak:
			b.WriteString(`<w:p><w:r><w:br w:type="page"/></w:r></w:p>`)
		default:
			return nil, fmt.Errorf("block %d: unsupported block type %T", i, blk)
		}
	}

	writeSection(&b, doc.Page)
	b.close("w:body")
	b.close("w:document")
	return b.Bytes(), nil
}

func writeSection(b *xmlBuf, page document.PageSetup) {
	b.open("w:sectPr")
	b.empty("w:pgSz", ai("w:w", page.Width), ai("w:h", page.Height))
	b.empty("w:pgMar",
		ai("w:top", page.Margin.Top),
		ai("w:right", page.Margin.Right),
		ai("w:bottom", page.Margin.Bottom),
		ai("w:left", page.Margin.Left),
		a("w:header", "720"),
		a("w:footer", "720"),
		a("w:gutter", "0"),
	)
	b.close("w:sectPr")
}

func writeParagraph(b *xmlBuf, p *document.Paragraph) {
	b.open("w:p")
	if p.Style != "" || p.Alignment != document.AlignDefault || p.Spacing != (document.Spacing{}) {
		b.open("w:pPr")
		if p.Style != "" {
			b.empty("w:pStyle", a("w:val", p.Style))
		}
		writeSpacing(b, p.Spacing)
		writeJustification(b, p.Alignment)
		b.close("w:pPr")
	}
	for _, r := range p.Runs {
		writeRun(b, r)
	}
	b.close("w:p")
}

func writeSpacing(b *xmlBuf, s document.Spacing) {
	if s == (document.Spacing{}) {
		return
	}
	b.empty("w:spacing", ai("w:before", s.Before), ai("w:after", s.After))
}

func writeJustification(b *xmlBuf, al document.Alignment) {
	if al == document.AlignDefault {
		return
	}
	b.empty("w:jc", a("w:val", string(al)))
}

func writeRunProps(b *xmlBuf, font string, bold bool, size int) {
	if font == "" && !bold && size == 0 {
		return
	}
	b.open("w:rPr")
	if font != "" {
		b.empty("w:rFonts",
			a("w:ascii", font),
			a("w:hAnsi", font),
			a("w:eastAsia", font),
			a("w:cs", font),
		)
	}
	if bold {
		b.empty("w:b")
		b.empty("w:bCs")
	}
	if size > 0 {
		b.empty("w:sz", ai("w:val", size))
		b.empty("w:szCs", ai("w:val", size))
	}
	b.close("w:rPr")
}

// writeRun emits one run. Embedded newlines and tabs become w:br and w:tab
// so no text is silently collapsed by Word.
func writeRun(b *xmlBuf, r document.Run) {
	b.open("w:r")
	writeRunProps(b, r.Font, r.Bold, r.Size)
	for i, line := range strings.Split(r.Text, "\n") {
		if i > 0 {
			b.empty("w:br")
		}
		for j, seg := range strings.Split(line, "\t") {
			if j > 0 {
				b.empty("w:tab")
			}
			if seg != "" {
				b.element("w:t", seg, a("xml:space", "preserve"))
			}
		}
	}
	b.close("w:r")
}

func writeTable(b *xmlBuf, t *document.Table) {
	b.open("w:tbl")
	b.open("w:tblPr")
	if t.WidthPercent > 0 {
		// pct widths are in fiftieths of a percent.
		b.empty("w:tblW", ai("w:w", t.WidthPercent*50), a("w:type", "pct"))
	} else {
		b.empty("w:tblW", a("w:w", "0"), a("w:type", "auto"))
	}
	b.empty("w:tblLayout", a("w:type", "fixed"))
	b.close("w:tblPr")

	b.open("w:tblGrid")
	for _, w := range t.Columns {
		b.empty("w:gridCol", ai("w:w", w))
	}
	b.close("w:tblGrid")

	for _, row := range t.Rows {
		b.open("w:tr")
		for _, c := range row.Cells {
			writeCell(b, c)
		}
		b.close("w:tr")
	}
	b.close("w:tbl")
}

func writeCell(b *xmlBuf, c document.Cell) {
	b.open("w:tc")
	b.open("w:tcPr")
	if c.Width > 0 {
		b.empty("w:tcW", ai("w:w", c.Width), a("w:type", "dxa"))
	}
	if span := c.GridSpan(); span > 1 {
		b.empty("w:gridSpan", ai("w:val", span))
	}
	writeBorders(b, c.Borders)
	if c.Shading != "" {
		b.empty("w:shd", a("w:val", "clear"), a("w:color", "auto"), a("w:fill", c.Shading))
	}
	if c.Margins != (document.Margins{}) {
		b.open("w:tcMar")
		b.empty("w:top", ai("w:w", c.Margins.Top), a("w:type", "dxa"))
		b.empty("w:left", ai("w:w", c.Margins.Left), a("w:type", "dxa"))
		b.empty("w:bottom", ai("w:w", c.Margins.Bottom), a("w:type", "dxa"))
		b.empty("w:right", ai("w:w", c.Margins.Right), a("w:type", "dxa"))
		b.close("w:tcMar")
	}
	b.close("w:tcPr")

	// A cell must hold at least one paragraph.
	if len(c.Paragraphs) == 0 {
		b.empty("w:p")
	}
	for _, p := range c.Paragraphs {
		writeParagraph(b, p)
	}
	b.close("w:tc")
}

func writeBorders(b *xmlBuf, bs document.Borders) {
	if bs == (document.Borders{}) {
		return
	}
	b.open("w:tcBorders")
	for _, edge := range []struct {
		name   string
		border document.Border
	}{
		{"w:top", bs.Top},
		{"w:left", bs.Left},
		{"w:bottom", bs.Bottom},
		{"w:right", bs.Right},
	} {
		writeBorder(b, edge.name, edge.border)
	}
	b.close("w:tcBorders")
}

func writeBorder(b *xmlBuf, name string, br document.Border) {
	style := br.Style
	if style == "" {
		style = document.BorderNone
	}
	color := br.Color
	if color == "" {
		color = "auto"
	}
	b.empty(name,
		a("w:val", string(style)),
		ai("w:sz", br.Size),
		a("w:space", "0"),
		a("w:color", color),
	)
}
