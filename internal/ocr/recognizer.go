// Package ocr is the tesseract-backed text recognizer for slip images. The
// core treats it as an opaque collaborator: an image goes in, UTF-8 text or
// a failure comes out, and any failure means "no text" upstream.
package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/zawlinnaung/slip-tracker/internal/common"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	Lang        string // default "eng"
	TessdataDir string
	PSM         int // e.g., 6 is good for a uniform block of text; 0 = default
}

// Result carries the recognized text plus recognition metadata.
type Result struct {
	Text       string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}

// Recognizer shells out to tesseract for one image at a time.
type Recognizer struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewRecognizer(cfg Config, logger *slog.Logger) *Recognizer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Lang == "" {
		cfg.Lang = "eng"
	}
	return &Recognizer{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Recognize OCRs one slip image into raw text. The text is cleaned of OCR
// whitespace noise but otherwise untouched; field extraction happens
// elsewhere.
func (r *Recognizer) Recognize(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	args := []string{path, "stdout", "-l", r.cfg.Lang}
	if r.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", r.cfg.TessdataDir)
	}
	if r.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(r.cfg.PSM))
	}

	out, errb, err := r.runner.Run(ctx, r.cfg.Tesseract, args...)
	dur := time.Since(start)
	if err != nil {
		return Result{Duration: dur, Warnings: []string{string(errb)}}, fmt.Errorf("tesseract: %w", err)
	}

	txt := Cleanup(string(out))
	if txt == "" {
		return Result{Duration: dur}, fmt.Errorf("recognize %s: %w", path, common.ErrNoText)
	}
	res := Result{
		Text:       txt,
		Duration:   dur,
		Confidence: heuristicConfidence(txt),
	}
	r.logger.Debug("ocr.recognize.ok",
		"path", path,
		"duration_ms", dur.Milliseconds(),
		"text_bytes", len(txt),
		"confidence", res.Confidence,
	)
	return res, nil
}
