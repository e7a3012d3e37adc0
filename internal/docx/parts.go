package docx

import (
	"github.com/dreambig/appgen/internal/document"
)

const (
	ctDocument = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ctStyles   = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	ctSettings = "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"
	ctCore     = "application/vnd.openxmlformats-package.core-properties+xml"
	ctApp      = "application/vnd.openxmlformats-officedocument.extended-properties+xml"

	relOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relSettings       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings"
	relCore           = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relApp            = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"

	nsRels = "http://schemas.openxmlformats.org/package/2006/relationships"
)

// Application is written into docProps/app.xml.
const Application = "dreambig"

func contentTypesPart() []byte {
	var b xmlBuf
	b.WriteString(xmlHeader)
	b.open("Types", a("xmlns", "http://schemas.openxmlformats.org/package/2006/content-types"))
	b.empty("Default", a("Extension", "rels"), a("ContentType", "application/vnd.openxmlformats-package.relationships+xml"))
	b.empty("Default", a("Extension", "xml"), a("ContentType", "application/xml"))
	for _, o := range []struct{ part, ct string }{
		{"/word/document.xml", ctDocument},
		{"/word/styles.xml", ctStyles},
		{"/word/settings.xml", ctSettings},
		{"/docProps/core.xml", ctCore},
		{"/docProps/app.xml", ctApp},
	} {
		b.empty("Override", a("PartName", o.part), a("ContentType", o.ct))
	}
	b.close("Types")
	return b.Bytes()
}

type relationship struct {
	id, typ, target string
}

func relationshipsPart(rels ...relationship) []byte {
	var b xmlBuf
	b.WriteString(xmlHeader)
	b.open("Relationships", a("xmlns", nsRels))
	for _, r := range rels {
		b.empty("Relationship", a("Id", r.id), a("Type", r.typ), a("Target", r.target))
	}
	b.close("Relationships")
	return b.Bytes()
}

func packageRelsPart() []byte {
	return relationshipsPart(
		relationship{"rId1", relOfficeDocument, "word/document.xml"},
		relationship{"rId2", relCore, "docProps/core.xml"},
		relationship{"rId3", relApp, "docProps/app.xml"},
	)
}

func documentRelsPart() []byte {
	return relationshipsPart(
		relationship{"rId1", relStyles, "styles.xml"},
		relationship{"rId2", relSettings, "settings.xml"},
	)
}

func settingsPart() []byte {
	var b xmlBuf
	b.WriteString(xmlHeader)
	b.open("w:settings", a("xmlns:w", nsMain))
	b.empty("w:defaultTabStop", a("w:val", "720"))
	b.empty("w:characterSpacingControl", a("w:val", "doNotCompress"))
	b.empty("w:compat")
	b.close("w:settings")
	return b.Bytes()
}

// corePart carries no timestamps so equal documents encode to equal bytes.
func corePart(doc *document.Document) []byte {
	var b xmlBuf
	b.WriteString(xmlHeader)
	b.open("cp:coreProperties",
		a("xmlns:cp", "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"),
		a("xmlns:dc", "http://purl.org/dc/elements/1.1/"),
		a("xmlns:dcterms", "http://purl.org/dc/terms/"),
		a("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance"),
	)
	if doc.Title != "" {
		b.element("dc:title", doc.Title)
	}
	b.element("dc:creator", Application)
	b.close("cp:coreProperties")
	return b.Bytes()
}

func appPart() []byte {
	var b xmlBuf
	b.WriteString(xmlHeader)
	b.open("Properties", a("xmlns", "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"))
	b.element("Application", Application)
	b.close("Properties")
	return b.Bytes()
}

func stylesPart(st document.Styles) []byte {
	var b xmlBuf
	b.WriteString(xmlHeader)
	b.open("w:styles", a("xmlns:w", nsMain))

	b.open("w:docDefaults")
	b.open("w:rPrDefault")
	writeRunProps(&b, st.DefaultFont, false, st.DefaultSize)
	b.close("w:rPrDefault")
	b.open("w:pPrDefault")
	b.empty("w:pPr")
	b.close("w:pPrDefault")
	b.close("w:docDefaults")

	b.open("w:style", a("w:type", "paragraph"), a("w:default", "1"), a("w:styleId", "Normal"))
	b.empty("w:name", a("w:val", "Normal"))
	b.empty("w:qFormat")
	b.close("w:style")

	b.open("w:style", a("w:type", "table"), a("w:default", "1"), a("w:styleId", "TableNormal"))
	b.empty("w:name", a("w:val", "Normal Table"))
	b.open("w:tblPr")
	b.empty("w:tblInd", a("w:w", "0"), a("w:type", "dxa"))
	b.close("w:tblPr")
	b.close("w:style")

	for _, ps := range st.Paragraph {
		b.open("w:style", a("w:type", "paragraph"), a("w:styleId", ps.ID))
		b.empty("w:name", a("w:val", ps.Name))
		if ps.BasedOn != "" {
			b.empty("w:basedOn", a("w:val", ps.BasedOn))
		}
		b.empty("w:next", a("w:val", "Normal"))
		b.empty("w:qFormat")
		b.open("w:pPr")
		writeSpacing(&b, ps.Spacing)
		writeJustification(&b, ps.Alignment)
		b.close("w:pPr")
		writeRunProps(&b, ps.Font, ps.Bold, ps.Size)
		b.close("w:style")
	}

	b.close("w:styles")
	return b.Bytes()
}
