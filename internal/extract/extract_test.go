package extract

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func TestTextFromTxt(t *testing.T) {
	got, err := Text("resume.txt", []byte("ten years of Go"))
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "ten years of Go" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestTextFromTxtInvalidUTF8(t *testing.T) {
	if _, err := Text("resume.txt", []byte{0xff, 0xfe, 0xfd}); err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
}

func TestTextUnsupportedExtension(t *testing.T) {
	if _, err := Text("resume.odt", []byte("x")); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestTextFromDocx(t *testing.T) {
	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Senior Backend Engineer</w:t></w:r></w:p>
    <w:p><w:r><w:t>Go, </w:t></w:r><w:r><w:t>Postgres</w:t></w:r></w:p>
  </w:body>
</w:document>`

	got, err := Text("resume.docx", buildDocx(t, doc))
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if !strings.Contains(got, "Senior Backend Engineer") {
		t.Fatalf("missing first paragraph in %q", got)
	}
	if !strings.Contains(got, "Go, Postgres") {
		t.Fatalf("split runs not joined in %q", got)
	}
	if !strings.Contains(got, "Engineer\n") {
		t.Fatalf("paragraphs not separated by newline in %q", got)
	}
}

func TestTextFromDocxMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if _, err := Text("resume.docx", buf.Bytes()); err == nil {
		t.Fatal("expected error for docx without document.xml")
	}
}

func TestTextFromBrokenPDF(t *testing.T) {
	if _, err := Text("resume.pdf", []byte("not a pdf")); err == nil {
		t.Fatal("expected error for malformed pdf")
	}
}
