package docx

import (
	"bytes"
	"encoding/xml"
	"strconv"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// xmlBuf accumulates a WordprocessingML part. Element and attribute names
// are written verbatim; only text and attribute values are escaped.
type xmlBuf struct {
	bytes.Buffer
}

type attr struct {
	name  string
	value string
}

func a(name, value string) attr { return attr{name: name, value: value} }

func ai(name string, value int) attr { return attr{name: name, value: strconv.Itoa(value)} }

func (b *xmlBuf) open(name string, attrs ...attr) {
	b.WriteByte('<')
	b.WriteString(name)
	b.attrs(attrs)
	b.WriteByte('>')
}

func (b *xmlBuf) close(name string) {
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
}

// empty writes a self-closing element.
func (b *xmlBuf) empty(name string, attrs ...attr) {
	b.WriteByte('<')
	b.WriteString(name)
	b.attrs(attrs)
	b.WriteString("/>")
}

func (b *xmlBuf) text(s string) {
	_ = xml.EscapeText(b, []byte(s))
}

func (b *xmlBuf) element(name, text string, attrs ...attr) {
	b.open(name, attrs...)
	b.text(text)
	b.close(name)
}

func (b *xmlBuf) attrs(attrs []attr) {
	for _, at := range attrs {
		b.WriteByte(' ')
		b.WriteString(at.name)
		b.WriteString(`="`)
		_ = xml.EscapeText(b, []byte(at.value))
		b.WriteByte('"')
	}
}
