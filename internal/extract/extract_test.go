package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"
)

func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"word/document.xml":            body.String(),
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestTextDocx(t *testing.T) {
	data := buildDocx(t, "Jane Smith", "Senior Engineer")

	text, err := Text(context.Background(), data, MimeDOCX, "resume.docx")
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}
	want := "Jane Smith\nSenior Engineer"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

func TestTextZipDocxNormalizes(t *testing.T) {
	data := buildDocx(t, "hello")

	if _, err := Text(context.Background(), data, "application/zip", "resume.docx"); err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
}

func TestTextRealZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = Text(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected unsupported type error, got: %v", err)
	}
}

func TestTextPlainPassthrough(t *testing.T) {
	text, err := Text(context.Background(), []byte("plain resume text"), "text/plain; charset=utf-8", "resume.txt")
	if err != nil {
		t.Fatalf("extract plain text: %v", err)
	}
	if text != "plain resume text" {
		t.Errorf("text = %q", text)
	}
}

func TestTextLegacyDocRejectedWhenNotZip(t *testing.T) {
	// OLE2 magic bytes stand in for a real binary .doc file.
	data := []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	_, err := Text(context.Background(), data, MimeDOC, "resume.doc")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected unsupported type error, got: %v", err)
	}
}

func TestTextLegacyDocAcceptedWhenDocxContainer(t *testing.T) {
	data := buildDocx(t, "mislabeled upload")

	text, err := Text(context.Background(), data, MimeDOC, "resume.doc")
	if err != nil {
		t.Fatalf("expected mislabeled docx to extract: %v", err)
	}
	if text != "mislabeled upload" {
		t.Errorf("text = %q", text)
	}
}

func TestSupported(t *testing.T) {
	tests := []struct {
		mime string
		want bool
	}{
		{MimePDF, true},
		{MimeDOCX, true},
		{MimeDOC, true},
		{MimePlain, true},
		{"text/plain; charset=utf-8", true},
		{"application/zip", true},
		{"image/png", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Supported(tt.mime); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.mime, got, tt.want)
		}
	}
}

func TestStripDocxXMLKeepsBreaks(t *testing.T) {
	raw := `<w:document><w:body><w:p><w:r><w:t>one</w:t></w:r></w:p><w:p><w:r><w:t>two</w:t><w:br/></w:r><w:r><w:t>three</w:t></w:r></w:p></w:body></w:document>`
	got := stripDocxXML(raw)
	want := "one\ntwo\nthree"
	if got != want {
		t.Errorf("stripDocxXML = %q, want %q", got, want)
	}
}
