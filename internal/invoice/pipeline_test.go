package invoice

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alan-K-Biju-7/waresys-mvp/constants"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/extract"
)

// stubExtractor serves canned token streams and records which backend ran.
type stubExtractor struct {
	textLayer extract.DocumentText
	textErr   error
	ocr       extract.DocumentText
	ocrErr    error

	textCalls int
	ocrCalls  int
}

func (s *stubExtractor) ExtractTextLayer(context.Context, extract.RawDocument) (extract.DocumentText, error) {
	s.textCalls++
	return s.textLayer, s.textErr
}

func (s *stubExtractor) ExtractViaOCR(context.Context, extract.RawDocument) (extract.DocumentText, error) {
	s.ocrCalls++
	return s.ocr, s.ocrErr
}

type stubReference struct {
	vendors  map[string]VendorRecord
	products []ProductRecord
}

func (s stubReference) FindVendorByGSTIN(_ context.Context, gstin string) (*VendorRecord, bool) {
	if rec, ok := s.vendors[gstin]; ok {
		return &rec, true
	}
	return nil, false
}

func (s stubReference) FindProductByName(_ context.Context, name string) (*ProductRecord, bool) {
	for _, rec := range s.products {
		if strings.Contains(strings.ToLower(name), strings.ToLower(rec.Name)) {
			return &rec, true
		}
	}
	return nil, false
}

func textDoc(method string, conf float32, texts ...string) extract.DocumentText {
	toks := tokensFor(texts...)
	for i := range toks {
		toks[i].Conf = conf
	}
	return extract.DocumentText{Tokens: toks, Pages: 1, Method: method, Confidence: conf}
}

func fixedNow() time.Time { return testNow }

func TestExtractCleanDigitalInvoice(t *testing.T) {
	stub := &stubExtractor{textLayer: textDoc("pdf-text", 1.0, sampleInvoice...)}
	p := NewPipeline(Config{Now: fixedNow}, stub, NopReference{}, slog.Default())

	x, err := p.Extract(context.Background(), extract.RawDocument{Data: []byte("%PDF"), Format: constants.PDF})
	require.NoError(t, err)

	require.NotNil(t, x.Vendor)
	assert.Equal(t, "ACME TRADERS PVT LTD", x.Vendor.Name)
	assert.Equal(t, "INV-1001", x.Header.InvoiceNo)
	assert.Len(t, x.LineItems, 2)
	assert.False(t, x.NeedsReview)
	assert.Empty(t, x.ReviewReasons)
	assert.Greater(t, x.OverallConfidence, 0.9)
	assert.Equal(t, "pdf-text", x.Method)
	assert.Equal(t, 1, stub.textCalls)
	assert.Equal(t, 0, stub.ocrCalls, "dense text layer must not trigger ocr")
}

func TestExtractSparseTextLayerFallsBackToOCR(t *testing.T) {
	stub := &stubExtractor{
		textLayer: textDoc("pdf-text", 1.0, "a"),
		ocr:       textDoc("pdf-ocr", 0.92, sampleInvoice...),
	}
	p := NewPipeline(Config{Now: fixedNow}, stub, NopReference{}, slog.Default())

	x, err := p.Extract(context.Background(), extract.RawDocument{Data: []byte("%PDF"), Format: constants.PDF})
	require.NoError(t, err)

	assert.Equal(t, "pdf-ocr", x.Method)
	assert.Equal(t, 1, stub.ocrCalls)
}

func TestExtractImageSkipsTextLayer(t *testing.T) {
	stub := &stubExtractor{ocr: textDoc("image-ocr", 0.9, sampleInvoice...)}
	p := NewPipeline(Config{Now: fixedNow}, stub, NopReference{}, slog.Default())

	x, err := p.Extract(context.Background(), extract.RawDocument{Data: []byte{0xFF, 0xD8}, Format: constants.IMAGE})
	require.NoError(t, err)

	assert.Equal(t, 0, stub.textCalls)
	assert.Equal(t, "image-ocr", x.Method)
}

func TestExtractEmptyDocumentIsTerminal(t *testing.T) {
	stub := &stubExtractor{ocr: extract.DocumentText{Pages: 1, Method: "image-ocr"}}
	p := NewPipeline(Config{Now: fixedNow}, stub, NopReference{}, slog.Default())

	_, err := p.Extract(context.Background(), extract.RawDocument{Format: constants.IMAGE})
	require.Error(t, err)
	ae, ok := extract.IsAcquisitionError(err)
	require.True(t, ok)
	assert.Equal(t, extract.ReasonEmptyDocument, ae.Reason)
}

func TestExtractCancellationReturnsPartialResult(t *testing.T) {
	stub := &stubExtractor{textLayer: textDoc("pdf-text", 1.0, sampleInvoice...)}
	p := NewPipeline(Config{Now: fixedNow}, stub, NopReference{}, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	x, err := p.Extract(ctx, extract.RawDocument{Data: []byte("%PDF"), Format: constants.PDF})
	require.NoError(t, err)
	require.NotNil(t, x)
	assert.True(t, x.NeedsReview)
	assert.Contains(t, x.ReviewReasons, ReasonProcessingCancelled)
}

func TestExtractKnownVendorRaisesConfidence(t *testing.T) {
	run := func(ref ReferenceLookup) *InvoiceExtraction {
		stub := &stubExtractor{textLayer: textDoc("pdf-text", 1.0, sampleInvoice...)}
		p := NewPipeline(Config{Now: fixedNow}, stub, ref, slog.Default())
		x, err := p.Extract(context.Background(), extract.RawDocument{Data: []byte("%PDF"), Format: constants.PDF})
		require.NoError(t, err)
		return x
	}

	unknown := run(NopReference{})
	known := run(stubReference{vendors: map[string]VendorRecord{
		"32AAAAA0000A1Z5": {Name: "Acme Traders Private Limited", GSTIN: "32AAAAA0000A1Z5"},
	}})

	assert.GreaterOrEqual(t, known.OverallConfidence, unknown.OverallConfidence)
	assert.True(t, known.Vendor.KnownVendor)
	assert.Equal(t, "Acme Traders Private Limited", known.Vendor.Name, "reference name wins")
}

func TestExtractCatalogMatchPinsSKU(t *testing.T) {
	doc := []string{
		"ACME TRADERS PVT LTD",
		"GSTIN: 32AAAAA0000A1Z5",
		"Invoice No: INV-9 Dated: 12-Apr-2025",
		"Sl Description HSN Qty Rate Amount",
		"1 Hex Bolt 7318 12 8.50",
		"Grand Total 102.00",
	}
	run := func(ref ReferenceLookup) *InvoiceExtraction {
		stub := &stubExtractor{textLayer: textDoc("pdf-text", 1.0, doc...)}
		p := NewPipeline(Config{Now: fixedNow}, stub, ref, slog.Default())
		x, err := p.Extract(context.Background(), extract.RawDocument{Data: []byte("%PDF"), Format: constants.PDF})
		require.NoError(t, err)
		require.Len(t, x.LineItems, 1)
		return x
	}

	plain := run(NopReference{})
	assert.Empty(t, plain.LineItems[0].MatchedSKU)
	assert.Less(t, plain.LineItems[0].RowConfidence, 0.8, "amount was solved, not read")

	matched := run(stubReference{products: []ProductRecord{{SKU: "HB-7318", Name: "Hex Bolt"}}})
	assert.Equal(t, "HB-7318", matched.LineItems[0].MatchedSKU)
	assert.InDelta(t, 0.9, matched.LineItems[0].RowConfidence, 0.001, "catalog hit lifts a solved row")

	data, err := json.Marshal(matched)
	require.NoError(t, err)
	assert.NoError(t, ValidateExtractionJSON(data))
}

func TestExtractIsDeterministic(t *testing.T) {
	run := func() *InvoiceExtraction {
		stub := &stubExtractor{textLayer: textDoc("pdf-text", 1.0, sampleInvoice...)}
		p := NewPipeline(Config{Now: fixedNow}, stub, NopReference{}, slog.Default())
		x, err := p.Extract(context.Background(), extract.RawDocument{Data: []byte("%PDF"), Format: constants.PDF})
		require.NoError(t, err)
		return x
	}

	a, _ := json.Marshal(run())
	b, _ := json.Marshal(run())
	assert.JSONEq(t, string(a), string(b))
}

func TestExtractLowOCRConfidenceIsFlagged(t *testing.T) {
	stub := &stubExtractor{ocr: textDoc("image-ocr", 0.4, sampleInvoice...)}
	p := NewPipeline(Config{Now: fixedNow}, stub, NopReference{}, slog.Default())

	x, err := p.Extract(context.Background(), extract.RawDocument{Format: constants.IMAGE})
	require.NoError(t, err)

	assert.Contains(t, x.ReviewReasons, ReasonLowOCRConfidence)
	assert.True(t, x.NeedsReview)
}

func TestExtractOutputMatchesContract(t *testing.T) {
	stub := &stubExtractor{textLayer: textDoc("pdf-text", 1.0, sampleInvoice...)}
	p := NewPipeline(Config{Now: fixedNow}, stub, NopReference{}, slog.Default())

	x, err := p.Extract(context.Background(), extract.RawDocument{Data: []byte("%PDF"), Format: constants.PDF})
	require.NoError(t, err)

	data, err := json.Marshal(x)
	require.NoError(t, err)
	assert.NoError(t, ValidateExtractionJSON(data))
}
