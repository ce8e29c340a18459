package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/zawlinnaung/slip-tracker/internal/common"
	"github.com/zawlinnaung/slip-tracker/internal/extract"
	"github.com/zawlinnaung/slip-tracker/internal/ocr"
)

// Debug tool: OCR one slip image and print the extracted record as JSON.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runocr <image-path>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	recognizer := ocr.NewRecognizer(ocr.Config{
		Tesseract:   cfg.OCR.Tesseract,
		Lang:        cfg.OCR.Lang,
		TessdataDir: cfg.OCR.TessdataDir,
		PSM:         cfg.OCR.PSM,
	}, logger)

	res, err := recognizer.Recognize(ctx, path)
	if err != nil {
		logger.Error("recognition failed", "path", path, "error", err)
		os.Exit(1)
	}
	logger.Info("recognition OK",
		"duration_ms", res.Duration.Milliseconds(),
		"confidence", res.Confidence,
		"text_bytes", len(res.Text),
	)

	strategy, err := extract.ParseStrategy(cfg.Extract.Strategy)
	if err != nil {
		logger.Error("invalid EXTRACT_STRATEGY", "error", err)
		os.Exit(1)
	}
	extractor, err := extract.NewExtractor(strategy, nil, logger)
	if err != nil {
		logger.Error("build extractor", "error", err)
		os.Exit(1)
	}

	rec := extractor.Extract(filepath.Base(path), res.Text)
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		logger.Error("marshal record", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
