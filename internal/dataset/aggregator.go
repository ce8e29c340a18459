// Package dataset owns the growing collection of extracted records across a
// batch. One aggregator is constructed per batch or session and discarded
// with it; there is no ambient shared state.
package dataset

import (
	"github.com/shopspring/decimal"

	"github.com/zawlinnaung/slip-tracker/internal/extract"
)

// Result reports the outcome of one ingest.
type Result string

const (
	Inserted  Result = "INSERTED"
	Duplicate Result = "DUPLICATE"
)

// Aggregator collects records in arrival order, at most one per document.
// Identity is DocumentID equality only, not content equality. Not safe for
// concurrent use; callers processing documents in parallel must serialize
// Ingest and read projections only after all ingests complete.
type Aggregator struct {
	records []extract.TransactionRecord
	seen    map[string]struct{}
}

func NewAggregator() *Aggregator {
	return &Aggregator{seen: make(map[string]struct{})}
}

// Ingest appends the record unless one with the same DocumentID already
// exists, in which case it is a no-op and the first record's values stand.
func (a *Aggregator) Ingest(rec extract.TransactionRecord) Result {
	if _, ok := a.seen[rec.DocumentID]; ok {
		return Duplicate
	}
	a.seen[rec.DocumentID] = struct{}{}
	a.records = append(a.records, rec)
	return Inserted
}

// Len returns the number of distinct documents ingested.
func (a *Aggregator) Len() int {
	return len(a.records)
}

// Records returns the ingested records in arrival order. The returned slice
// is shared; callers must not mutate it.
func (a *Aggregator) Records() []extract.TransactionRecord {
	return a.records
}

// TotalAmount sums the amounts that parsed as numbers. Absent or unparsable
// amounts are excluded from the sum, not counted as zero. Zero for an empty
// dataset.
func (a *Aggregator) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for i := range a.records {
		if v := a.records[i].AmountValue(); v != nil {
			total = total.Add(*v)
		}
	}
	return total
}
