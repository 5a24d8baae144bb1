package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Alan-K-Biju-7/waresys-mvp/internal/extract"
)

func (e *Extractor) imageOCR(ctx context.Context, data []byte) (extract.DocumentText, error) {
	tmpDir, err := os.MkdirTemp("", "ws-img-*")
	if err != nil {
		return extract.DocumentText{}, err
	}
	defer func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			e.logger.Warn("failed to remove temp dir", "dir", tmpDir, "error", rerr)
		}
	}()

	in := filepath.Join(tmpDir, "page.png")
	if err := os.WriteFile(in, data, 0o600); err != nil {
		return extract.DocumentText{}, err
	}

	tokens, conf, warns, err := e.tesseractTokens(ctx, in, 1)
	if err != nil {
		return extract.DocumentText{Warnings: warns},
			extract.NewAcquisitionError(extract.ReasonCorruptDocument, err)
	}

	return extract.DocumentText{
		Tokens:     tokens,
		Pages:      1,
		Method:     "image-ocr",
		Confidence: conf,
		Warnings:   warns,
	}, nil
}

// tesseractTokens runs tesseract in TSV mode on a single rendered page and
// returns word tokens with positions plus the mean word confidence.
func (e *Extractor) tesseractTokens(ctx context.Context, path string, pageNo int) ([]extract.Token, float32, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	args = append(args, "tsv")

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return nil, 0, []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}

	tokens, conf := parseTSVTokens(string(out), pageNo)
	return tokens, conf, nil, nil
}
