// Package extract turns uploaded resume files into plain text. Supported
// inputs are PDF, DOCX, legacy DOC and plain text; anything else is rejected
// before extraction starts.
package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MimePDF   = "application/pdf"
	MimeDOC   = "application/msword"
	MimeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimePlain = "text/plain"
)

// ErrUnsupportedType marks a mime type outside the accepted set.
var ErrUnsupportedType = errors.New("unsupported file type")

// Supported reports whether the declared mime type is accepted for upload.
func Supported(mimeType string) bool {
	switch cleanMimeType(mimeType) {
	case MimePDF, MimeDOC, MimeDOCX, MimePlain, "application/zip":
		return true
	}
	return false
}

// Text extracts plain text from an in-memory upload. The declared mime type
// is normalized first: browsers report DOCX uploads as application/zip often
// enough that the container is sniffed before dispatch.
func Text(ctx context.Context, data []byte, mimeType string, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch normalizeMimeType(mimeType, fileName, data) {
	case MimePDF:
		return extractPDF(data)
	case MimeDOCX:
		return extractDOCX(data)
	case MimeDOC:
		// Legacy .doc files are frequently DOCX containers with the wrong
		// extension. A real OLE2 binary fails the zip open and is rejected.
		text, err := extractDOCX(data)
		if err != nil {
			return "", fmt.Errorf("%w: legacy doc format", ErrUnsupportedType)
		}
		return text, nil
	case MimePlain:
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, cleanMimeType(mimeType))
	}
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()
	return stripDocxXML(doc.Editable().GetContent()), nil
}

// stripDocxXML flattens WordprocessingML to text, keeping paragraph and line
// breaks as newlines.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func cleanMimeType(mimeType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
}

func normalizeMimeType(mimeType string, fileName string, data []byte) string {
	clean := cleanMimeType(mimeType)
	if clean != "application/zip" {
		return clean
	}
	if isDocxContainer(data) {
		return MimeDOCX
	}
	if strings.ToLower(filepath.Ext(fileName)) == ".docx" {
		return MimeDOCX
	}
	return clean
}

func isDocxContainer(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			return true
		}
	}
	return false
}
