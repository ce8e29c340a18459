// Package store persists extracted transaction records across runs. It is
// deliberately thin: the aggregator owns batch semantics, the store only
// keeps history, with the same one-record-per-document invariant enforced by
// a unique index.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/zawlinnaung/slip-tracker/internal/extract"
)

const schema = `
CREATE TABLE IF NOT EXISTS transactions (
	id          TEXT PRIMARY KEY,
	document_id TEXT NOT NULL UNIQUE,
	tx_date     TEXT,
	tx_time     TEXT,
	tx_number   TEXT,
	tx_type     TEXT,
	amount      TEXT,
	raw_amount  TEXT,
	sender      TEXT,
	receiver    TEXT,
	note        TEXT,
	created_at  TIMESTAMP NOT NULL
);
`

// Store wraps a sqlite database holding extracted records.
type Store struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// Open opens (creating if needed) the sqlite database at path and ensures
// the schema exists. Use ":memory:" for an ephemeral store.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	logger.Info("store opened", "path", path)
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// row is the sqlx binding for one stored record.
type row struct {
	ID         string         `db:"id"`
	DocumentID string         `db:"document_id"`
	TxDate     sql.NullString `db:"tx_date"`
	TxTime     sql.NullString `db:"tx_time"`
	TxNumber   sql.NullString `db:"tx_number"`
	TxType     sql.NullString `db:"tx_type"`
	Amount     sql.NullString `db:"amount"`
	RawAmount  sql.NullString `db:"raw_amount"`
	Sender     sql.NullString `db:"sender"`
	Receiver   sql.NullString `db:"receiver"`
	Note       sql.NullString `db:"note"`
	CreatedAt  time.Time      `db:"created_at"`
}

// Save inserts the record, keyed by DocumentID. Returns false without error
// when a record for the same document already exists; the first record's
// values stand, matching the aggregator's dedup semantics.
func (s *Store) Save(ctx context.Context, rec *extract.TransactionRecord) (bool, error) {
	res, err := s.db.NamedExecContext(ctx, `
		INSERT INTO transactions
			(id, document_id, tx_date, tx_time, tx_number, tx_type,
			 amount, raw_amount, sender, receiver, note, created_at)
		VALUES
			(:id, :document_id, :tx_date, :tx_time, :tx_number, :tx_type,
			 :amount, :raw_amount, :sender, :receiver, :note, :created_at)
		ON CONFLICT(document_id) DO NOTHING`,
		toRow(rec))
	if err != nil {
		return false, fmt.Errorf("insert transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		s.logger.Debug("store.save.duplicate", "document_id", rec.DocumentID)
		return false, nil
	}
	return true, nil
}

// List returns all stored records ordered by insertion time.
func (s *Store) List(ctx context.Context) ([]extract.TransactionRecord, error) {
	var rows []row
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, document_id, tx_date, tx_time, tx_number, tx_type,
		       amount, raw_amount, sender, receiver, note, created_at
		FROM transactions
		ORDER BY created_at, document_id`)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	recs := make([]extract.TransactionRecord, 0, len(rows))
	for i := range rows {
		recs = append(recs, fromRow(&rows[i]))
	}
	return recs, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM transactions`); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}

func toRow(rec *extract.TransactionRecord) row {
	return row{
		ID:         uuid.NewString(),
		DocumentID: rec.DocumentID,
		TxDate:     toNull(rec.Date),
		TxTime:     toNull(rec.Time),
		TxNumber:   toNull(rec.Number),
		TxType:     toNull(rec.Type),
		Amount:     toNull(rec.Amount),
		RawAmount:  toNull(rec.RawAmount),
		Sender:     toNull(rec.Sender),
		Receiver:   toNull(rec.Receiver),
		Note:       toNull(rec.Note),
		CreatedAt:  time.Now().UTC(),
	}
}

func fromRow(r *row) extract.TransactionRecord {
	return extract.TransactionRecord{
		DocumentID: r.DocumentID,
		Date:       fromNull(r.TxDate),
		Time:       fromNull(r.TxTime),
		Number:     fromNull(r.TxNumber),
		Type:       fromNull(r.TxType),
		Amount:     fromNull(r.Amount),
		RawAmount:  fromNull(r.RawAmount),
		Sender:     fromNull(r.Sender),
		Receiver:   fromNull(r.Receiver),
		Note:       fromNull(r.Note),
	}
}

func toNull(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func fromNull(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	v := n.String
	return &v
}
