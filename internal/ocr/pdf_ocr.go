package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/Alan-K-Biju-7/waresys-mvp/constants"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/extract"
)

// ExtractViaOCR rasterizes the document and runs tesseract per page,
// attaching per-token recognition confidence.
func (e *Extractor) ExtractViaOCR(ctx context.Context, doc extract.RawDocument) (extract.DocumentText, error) {
	start := time.Now()
	switch doc.Format {
	case constants.PDF:
		res, err := e.pdfOCR(ctx, doc.Data)
		res.Duration = time.Since(start)
		return res, err
	case constants.IMAGE:
		res, err := e.imageOCR(ctx, doc.Data)
		res.Duration = time.Since(start)
		return res, err
	default:
		return extract.DocumentText{}, extract.NewAcquisitionError(
			extract.ReasonUnsupportedFormat, fmt.Errorf("format %q", doc.Format))
	}
}

func (e *Extractor) pdfOCR(ctx context.Context, data []byte) (extract.DocumentText, error) {
	tmpDir, err := os.MkdirTemp("", "ws-pp-*")
	if err != nil {
		return extract.DocumentText{}, err
	}
	defer func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			e.logger.Warn("failed to remove temp dir", "dir", tmpDir, "error", rerr)
		}
	}()

	in := filepath.Join(tmpDir, "in.pdf")
	if err := os.WriteFile(in, data, 0o600); err != nil {
		return extract.DocumentText{}, err
	}

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", in, prefix)
	if err != nil {
		return extract.DocumentText{Warnings: []string{string(errb)}},
			extract.NewAcquisitionError(extract.ReasonCorruptDocument, err)
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return extract.DocumentText{},
			extract.NewAcquisitionError(extract.ReasonCorruptDocument, fmt.Errorf("no pages rendered"))
	}

	var tokens []extract.Token
	var warns []string
	var confSum float32
	var confPages int
	for i, img := range matches {
		pageTokens, conf, w, err := e.tesseractTokens(ctx, img, i+1)
		if err != nil {
			warns = append(warns, err.Error())
			continue
		}
		tokens = append(tokens, pageTokens...)
		warns = append(warns, w...)
		if conf > 0 {
			confSum += conf
			confPages++
		}
	}

	var conf float32
	if confPages > 0 {
		conf = confSum / float32(confPages)
	}
	return extract.DocumentText{
		Tokens:     tokens,
		Pages:      len(matches),
		Method:     "pdf-ocr",
		Confidence: conf,
		Warnings:   warns,
	}, nil
}
