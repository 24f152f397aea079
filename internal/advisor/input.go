package advisor

import (
	"encoding/base64"
	"strings"
)

// InputKind tags how NormalizedInput.Payload must be interpreted. No
// downstream component may inspect payload bytes to guess the kind.
type InputKind string

const (
	InputText  InputKind = "text"
	InputImage InputKind = "image"
)

// NormalizedInput is the uniform text-or-base64 representation of an
// uploaded document. It is owned by the single in-flight request that
// created it and is discarded after the model call.
type NormalizedInput struct {
	Kind    InputKind
	Payload string
}

// PDFExtractor returns a document's text one page at a time, in page order.
type PDFExtractor interface {
	ExtractPages(data []byte) ([]string, error)
}

// Normalizer converts an uploaded artifact into a NormalizedInput.
type Normalizer struct {
	pdf PDFExtractor
}

// NewNormalizer builds a Normalizer. A nil extractor selects the default
// PDF reader.
func NewNormalizer(pdf PDFExtractor) *Normalizer {
	if pdf == nil {
		pdf = pdfReader{}
	}
	return &Normalizer{pdf: pdf}
}

// Normalize maps a declared media type plus raw bytes to a NormalizedInput.
// PDFs become one text blob with each page's text followed by a newline,
// page order preserved. image/* payloads are base64-encoded without
// decoding or validating image structure. Anything else fails fast with
// UnsupportedInputError so no external call is wasted.
func (n *Normalizer) Normalize(mediaType string, data []byte) (NormalizedInput, error) {
	switch {
	case mediaType == "application/pdf":
		pages, err := n.pdf.ExtractPages(data)
		if err != nil {
			return NormalizedInput{}, err
		}
		var b strings.Builder
		for _, page := range pages {
			b.WriteString(page)
			b.WriteString("\n")
		}
		return NormalizedInput{Kind: InputText, Payload: b.String()}, nil
	case strings.HasPrefix(mediaType, "image/"):
		return NormalizedInput{
			Kind:    InputImage,
			Payload: base64.StdEncoding.EncodeToString(data),
		}, nil
	default:
		return NormalizedInput{}, &UnsupportedInputError{MediaType: mediaType}
	}
}
