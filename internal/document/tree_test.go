package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellText_JoinsParagraphs(t *testing.T) {
	c := Cell{Paragraphs: []*Paragraph{
		{Runs: []Run{{Text: "a"}, {Text: "b"}}},
		{Runs: []Run{{Text: "c"}}},
	}}
	assert.Equal(t, "ab\nc", c.Text())
}

func TestCellGridSpan_DefaultsToOne(t *testing.T) {
	assert.Equal(t, 1, Cell{}.GridSpan())
	assert.Equal(t, 3, Cell{Span: 3}.GridSpan())
}

func TestBlockKind(t *testing.T) {
	assert.Equal(t, "paragraph", BlockKind(&Paragraph{}))
	assert.Equal(t, "table", BlockKind(&Table{}))
	assert.Equal(t, "page_break", BlockKind(PageBreak{}))
	assert.Equal(t, "", BlockKind(nil))
}

func TestNew_UsesFormSetup(t *testing.T) {
	d := New()
	assert.Equal(t, 11906, d.Page.Width)
	assert.Equal(t, 16838, d.Page.Height)
	assert.Equal(t, Margins{Top: 1134, Right: 1134, Bottom: 1134, Left: 1134}, d.Page.Margin)
	assert.Equal(t, FormFont, d.Styles.DefaultFont)
	assert.Equal(t, 24, d.Styles.DefaultSize)
	assert.Len(t, d.Styles.Paragraph, 2)
	assert.Empty(t, d.Body)

	d.Append(&Paragraph{}, PageBreak{})
	assert.Len(t, d.Body, 2)
}
