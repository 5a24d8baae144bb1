package extract

import (
	"context"
	"time"

	"github.com/Alan-K-Biju-7/waresys-mvp/constants"
)

// RawDocument is the immutable input to text acquisition: the uploaded bytes
// plus the declared media type. It is consumed once and never mutated.
type RawDocument struct {
	Data   []byte
	Format constants.DocFormat
}

// Rect is a token bounding box in page coordinates (origin top-left).
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Token is one positioned text token in reading order.
type Token struct {
	Value string
	Page  int
	Line  int
	BBox  *Rect   // nil when the backend reports no geometry
	Conf  float32 // recognition confidence 0..1; 1.0 for text-layer tokens
}

// DocumentText is the acquisition output: an ordered token stream with
// per-document metadata.
type DocumentText struct {
	Tokens     []Token
	Pages      int
	Method     string // "pdf-text" | "pdf-ocr" | "image-ocr"
	Confidence float32
	Duration   time.Duration
	Warnings   []string
}

// PageChars returns the mean number of extracted characters per page,
// used for the text-layer density check.
func (d DocumentText) PageChars() int {
	if d.Pages == 0 {
		return 0
	}
	n := 0
	for _, t := range d.Tokens {
		n += len(t.Value)
	}
	return n / d.Pages
}

// TextExtractor is the narrow text-acquisition capability the pipeline
// depends on. The two methods keep the concrete engines swappable and
// stubbed in tests.
type TextExtractor interface {
	// ExtractTextLayer reads the embedded text layer with exact positions.
	ExtractTextLayer(ctx context.Context, doc RawDocument) (DocumentText, error)
	// ExtractViaOCR rasterizes pages and runs optical character recognition,
	// attaching per-token recognition confidence.
	ExtractViaOCR(ctx context.Context, doc RawDocument) (DocumentText, error)
}
