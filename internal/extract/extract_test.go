package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

const minimalDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>John Smith</w:t></w:r></w:p>
<w:p><w:r><w:t>Software Engineer at Acme</w:t></w:r></w:p>
</w:body>
</w:document>`

const minimalRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

func buildDocx(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entries := map[string]string{
		"word/document.xml":            minimalDocumentXML,
		"word/_rels/document.xml.rels": minimalRelsXML,
	}
	for name, body := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("write zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestTextFromBytesDocx(t *testing.T) {
	data := buildDocx(t)

	text, err := TextFromBytes(context.Background(), data, mimeDOCX, "resume.docx")
	if err != nil {
		t.Fatalf("TextFromBytes: %v", err)
	}
	if !strings.Contains(text, "John Smith") || !strings.Contains(text, "Software Engineer at Acme") {
		t.Fatalf("unexpected text: %q", text)
	}
	// Paragraphs become separate lines for the line scanners.
	if !strings.Contains(text, "John Smith\n") {
		t.Fatalf("expected newline after first paragraph, got %q", text)
	}
}

func TestTextFromBytesZipMimeNormalizes(t *testing.T) {
	data := buildDocx(t)
	if _, err := TextFromBytes(context.Background(), data, "application/zip", "resume.docx"); err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
}

func TestTextFromBytesRealZipRejected(t *testing.T) {
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

	_, err = TextFromBytes(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestTextFromBytesPlainText(t *testing.T) {
	text, err := TextFromBytes(context.Background(), []byte("raw resume text"), "text/plain", "resume.txt")
	if err != nil {
		t.Fatalf("TextFromBytes: %v", err)
	}
	if text != "raw resume text" {
		t.Fatalf("text = %q", text)
	}
}

func TestTextFromBytesOctetStreamUsesExtension(t *testing.T) {
	text, err := TextFromBytes(context.Background(), []byte("raw resume text"), "application/octet-stream", "resume.txt")
	if err != nil {
		t.Fatalf("TextFromBytes: %v", err)
	}
	if text != "raw resume text" {
		t.Fatalf("text = %q", text)
	}
}

func TestTextFromBytesCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := TextFromBytes(ctx, []byte("x"), "text/plain", "a.txt"); err == nil {
		t.Fatal("expected context error")
	}
}

func TestFlattenDocxXMLFallsBackOnBadXML(t *testing.T) {
	raw := "<w:document><unclosed"
	if got := flattenDocxXML(raw); got != raw {
		t.Fatalf("expected raw passthrough, got %q", got)
	}
}
