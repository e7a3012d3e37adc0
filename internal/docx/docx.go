// Package docx encodes a document tree as an Office Open XML
// WordprocessingML package.
package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dreambig/appgen/internal/document"
)

// ErrNilDocument is returned when there is nothing to encode.
var ErrNilDocument = errors.New("docx: nil document")

// All entries carry this timestamp so output depends only on the tree.
var epoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// part is one ZIP entry in package order.
type part struct {
	name string
	data []byte
}

// Encode writes doc to w as a .docx package.
func Encode(w io.Writer, doc *document.Document) error {
	if doc == nil {
		return ErrNilDocument
	}

	body, err := documentPart(doc)
	if err != nil {
		return fmt.Errorf("rendering document part: %w", err)
	}

	parts := []part{
		{"[Content_Types].xml", contentTypesPart()},
		{"_rels/.rels", packageRelsPart()},
		{"docProps/core.xml", corePart(doc)},
		{"docProps/app.xml", appPart()},
		{"word/document.xml", body},
		{"word/styles.xml", stylesPart(doc.Styles)},
		{"word/settings.xml", settingsPart()},
		{"word/_rels/document.xml.rels", documentRelsPart()},
	}

	zw := zip.NewWriter(w)
	for _, p := range parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     p.name,
			Method:   zip.Deflate,
			Modified: epoch,
		})
		if err != nil {
			return fmt.Errorf("creating %s: %w", p.name, err)
		}
		if _, err := fw.Write(p.data); err != nil {
			return fmt.Errorf("writing %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing package: %w", err)
	}
	return nil
}

// Bytes encodes doc into memory.
func Bytes(doc *document.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile encodes doc and writes it to path. The package is written to a
// temporary sibling first and renamed into place, so a failed write never
// leaves a truncated file at path. It returns the number of bytes written.
func WriteFile(path string, doc *document.Document) (int, error) {
	data, err := Bytes(doc)
	if err != nil {
		return 0, err
	}

	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("writing %s: %w", path, err)
	}
	return len(data), nil
}
