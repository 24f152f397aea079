package advisor

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

type fakePDF struct {
	pages []string
	err   error
	calls int
}

func (f *fakePDF) ExtractPages(_ []byte) ([]string, error) {
	f.calls++
	return f.pages, f.err
}

func TestNormalize_PDFPreservesPageOrder(t *testing.T) {
	pdf := &fakePDF{pages: []string{"page one nitrogen", "page two phosphorus", "page three potassium"}}
	n := NewNormalizer(pdf)

	in, err := n.Normalize("application/pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if in.Kind != InputText {
		t.Fatalf("kind = %q, want text", in.Kind)
	}
	i1 := strings.Index(in.Payload, "page one")
	i2 := strings.Index(in.Payload, "page two")
	i3 := strings.Index(in.Payload, "page three")
	if i1 < 0 || i2 < 0 || i3 < 0 {
		t.Fatalf("missing page text in %q", in.Payload)
	}
	if !(i1 < i2 && i2 < i3) {
		t.Fatalf("page order not preserved: %d %d %d", i1, i2, i3)
	}
	if !strings.Contains(in.Payload, "nitrogen\n") {
		t.Fatalf("pages must be newline-separated: %q", in.Payload)
	}
}

func TestNormalize_ImageIsBase64(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	n := NewNormalizer(&fakePDF{})

	in, err := n.Normalize("image/png", raw)
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if in.Kind != InputImage {
		t.Fatalf("kind = %q, want image", in.Kind)
	}
	if in.Payload != base64.StdEncoding.EncodeToString(raw) {
		t.Fatalf("payload is not the base64 of the raw bytes")
	}
}

func TestNormalize_UnsupportedTypeFailsFast(t *testing.T) {
	pdf := &fakePDF{}
	n := NewNormalizer(pdf)

	_, err := n.Normalize("application/zip", []byte("PK"))
	var unsupported *UnsupportedInputError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error = %v, want UnsupportedInputError", err)
	}
	if unsupported.MediaType != "application/zip" {
		t.Fatalf("MediaType = %q", unsupported.MediaType)
	}
	if pdf.calls != 0 {
		t.Fatalf("extractor must not run for unsupported types")
	}
}
