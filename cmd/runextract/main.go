// Command runextract runs the extraction pipeline against a single local
// document and prints the structured result, without touching the database.
// Useful for tuning heuristics against a problem invoice.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Alan-K-Biju-7/waresys-mvp/constants"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/extract"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/invoice"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/ocr"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runextract <invoice.pdf|image>")
		os.Exit(2)
	}
	path := os.Args[1]

	format := constants.MapExtToFormat(filepath.Ext(path))
	if format == "" {
		logger.Error("unsupported file extension", "path", path)
		os.Exit(2)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read file", "path", path, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	extractor := ocr.NewExtractor(ocr.Config{
		TessdataDir: os.Getenv("TESSDATA_PREFIX"),
	}, logger)
	pipeline := invoice.NewPipeline(invoice.Config{}, extractor, invoice.NopReference{}, logger)

	start := time.Now()
	x, err := pipeline.Extract(ctx, extract.RawDocument{Data: data, Format: format})
	dur := time.Since(start)

	if err != nil {
		logger.Error("extraction failed", "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	out, err := json.MarshalIndent(x, "", "  ")
	if err != nil {
		logger.Error("marshal result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	logger.Info("extraction OK",
		"method", x.Method,
		"line_items", len(x.LineItems),
		"confidence", x.OverallConfidence,
		"needs_review", x.NeedsReview,
		"duration_ms", dur.Milliseconds(),
	)
}
