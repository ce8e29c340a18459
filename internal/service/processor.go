// Package service coordinates recognition, extraction and aggregation for a
// batch of slip documents.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/zawlinnaung/slip-tracker/internal/common"
	"github.com/zawlinnaung/slip-tracker/internal/dataset"
	"github.com/zawlinnaung/slip-tracker/internal/extract"
	"github.com/zawlinnaung/slip-tracker/internal/ocr"
	"github.com/zawlinnaung/slip-tracker/internal/store"
)

// Recognizer is the external text-recognizer boundary: image in, UTF-8 text
// or failure out. The processor never inspects a failure's internal cause;
// any failure means the document is skipped with a warning.
type Recognizer interface {
	Recognize(ctx context.Context, path string) (ocr.Result, error)
}

// Status classifies the outcome of processing one document.
type Status string

const (
	StatusExtracted Status = "EXTRACTED"
	StatusDuplicate Status = "DUPLICATE"
	StatusSkipped   Status = "SKIPPED"
)

// ProcessResult reports what happened to one document.
type ProcessResult struct {
	DocumentID string                     `json:"document_id"`
	Status     Status                     `json:"status"`
	Record     *extract.TransactionRecord `json:"record,omitempty"`
	Warning    string                     `json:"warning,omitempty"`
}

// Warning is a per-document message surfaced to the caller; the batch itself
// never fails because of one document.
type Warning struct {
	DocumentID string `json:"document_id"`
	Reason     string `json:"reason"`
}

// Processor runs the recognize → extract → aggregate pipeline. It owns one
// aggregator for its lifetime; construct a processor per batch or session.
// Ingestion is serialized internally so documents may be processed
// concurrently, but projections must only be read after the batch's ingests
// complete.
type Processor struct {
	recognizer Recognizer
	extractor  *extract.Extractor
	store      *store.Store // optional history, nil to disable
	logger     *slog.Logger

	mu       sync.Mutex
	agg      *dataset.Aggregator
	warnings []Warning
}

func NewProcessor(rec Recognizer, ex *extract.Extractor, st *store.Store, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		recognizer: rec,
		extractor:  ex,
		store:      st,
		logger:     logger,
		agg:        dataset.NewAggregator(),
	}
}

// ProcessImage recognizes one slip image and feeds the text through
// extraction. A recognition failure or empty OCR output skips the document
// with a warning rather than producing a zero-valued record.
func (p *Processor) ProcessImage(ctx context.Context, documentID, path string) ProcessResult {
	res, err := p.recognizer.Recognize(ctx, path)
	if err != nil {
		p.logger.Warn("processor.recognize.failed", "document_id", documentID, "error", err)
		if errors.Is(err, common.ErrNoText) {
			return p.skip(documentID, "no text recognized")
		}
		return p.skip(documentID, "failed to extract text from image")
	}
	return p.ProcessText(ctx, documentID, res.Text)
}

// ProcessText extracts one document's record from already-recognized text
// and ingests it. Total over any text input; empty text takes the
// skip-with-warning path.
func (p *Processor) ProcessText(ctx context.Context, documentID, text string) ProcessResult {
	if text == "" {
		return p.skip(documentID, "no text recognized")
	}

	rec := p.extractor.Extract(documentID, text)

	p.mu.Lock()
	result := p.agg.Ingest(rec)
	p.mu.Unlock()

	if result == dataset.Duplicate {
		p.logger.Info("processor.ingest.duplicate", "document_id", documentID)
		return ProcessResult{DocumentID: documentID, Status: StatusDuplicate}
	}

	if p.store != nil {
		if _, err := p.store.Save(ctx, &rec); err != nil {
			// history is best-effort; the in-batch record stands
			p.logger.Error("processor.store.failed", "document_id", documentID, "error", err)
		}
	}

	p.logger.Info("processor.extracted", "document_id", documentID)
	return ProcessResult{DocumentID: documentID, Status: StatusExtracted, Record: &rec}
}

func (p *Processor) skip(documentID, reason string) ProcessResult {
	p.mu.Lock()
	p.warnings = append(p.warnings, Warning{DocumentID: documentID, Reason: reason})
	p.mu.Unlock()
	return ProcessResult{DocumentID: documentID, Status: StatusSkipped, Warning: reason}
}

// Warnings returns the per-document warnings accumulated so far.
func (p *Processor) Warnings() []Warning {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Warning, len(p.warnings))
	copy(out, p.warnings)
	return out
}

// Table materializes the current dataset projection.
func (p *Processor) Table() *dataset.Table {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.agg.Table()
}

// TotalAmount sums the parseable amounts in the current dataset.
func (p *Processor) TotalAmount() decimal.Decimal {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.agg.TotalAmount()
}

// Size returns the number of distinct documents ingested.
func (p *Processor) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.agg.Len()
}
