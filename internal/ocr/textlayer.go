package ocr

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/Alan-K-Biju-7/waresys-mvp/constants"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/extract"
)

// wordGapFactor: chunks closer than this fraction of the font size are
// considered part of the same word.
const wordGapFactor = 0.35

// ExtractTextLayer reads the embedded PDF text layer and emits tokens with
// exact positions. It does not fall back to OCR; the caller decides based on
// character density.
func (e *Extractor) ExtractTextLayer(ctx context.Context, doc extract.RawDocument) (res extract.DocumentText, err error) {
	start := time.Now()
	if doc.Format != constants.PDF {
		return res, fmt.Errorf("text layer: not a PDF document")
	}

	// The pdf library panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			err = extract.NewAcquisitionError(extract.ReasonCorruptDocument, fmt.Errorf("pdf parse panic: %v", r))
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(doc.Data), int64(len(doc.Data)))
	if err != nil {
		return res, extract.NewAcquisitionError(extract.ReasonCorruptDocument, err)
	}

	var tokens []extract.Token
	pages := r.NumPage()
	for pageNo := 1; pageNo <= pages; pageNo++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if e.cfg.MaxPages > 0 && pageNo > e.cfg.MaxPages {
			pages = e.cfg.MaxPages
			break
		}
		page := r.Page(pageNo)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			e.logger.Warn("text layer row extraction failed", "page", pageNo, "error", err)
			continue
		}
		// Rows top-to-bottom: PDF y grows upward, so sort by descending position.
		sort.Slice(rows, func(i, j int) bool { return rows[i].Position > rows[j].Position })
		for lineIdx, row := range rows {
			tokens = append(tokens, rowToTokens(row, pageNo, lineIdx)...)
		}
	}

	res = extract.DocumentText{
		Tokens:     tokens,
		Pages:      pages,
		Method:     "pdf-text",
		Confidence: 1.0,
		Duration:   time.Since(start),
	}
	return res, nil
}

// rowToTokens merges the row's character chunks into word tokens. Chunks are
// already ordered left-to-right within a row.
func rowToTokens(row *pdf.Row, pageNo, lineIdx int) []extract.Token {
	var out []extract.Token
	var cur []byte
	var x0, y0, x1, y1 float64

	flush := func() {
		if len(cur) == 0 {
			return
		}
		word := string(cur)
		out = append(out, extract.Token{
			Value: word,
			Page:  pageNo,
			Line:  lineIdx,
			BBox:  &extract.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1},
			Conf:  1.0,
		})
		cur = cur[:0]
	}

	var prevEnd float64
	for _, ch := range row.Content {
		if ch.S == " " || ch.S == "\t" {
			flush()
			prevEnd = ch.X + ch.W
			continue
		}
		gap := ch.X - prevEnd
		if len(cur) > 0 && gap > wordGapFactor*ch.FontSize {
			flush()
		}
		if len(cur) == 0 {
			x0, y0 = ch.X, ch.Y
			x1, y1 = ch.X+ch.W, ch.Y+ch.FontSize
		} else {
			if ch.X+ch.W > x1 {
				x1 = ch.X + ch.W
			}
		}
		cur = append(cur, ch.S...)
		prevEnd = ch.X + ch.W
	}
	flush()
	return out
}
