package store

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zawlinnaung/slip-tracker/internal/extract"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:", slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func strptr(s string) *string { return &s }

func TestStore_SaveAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec := extract.TransactionRecord{
		DocumentID: "slip-001.png",
		Date:       strptr("2024/06/12"),
		Time:       strptr("14:30:00"),
		Number:     strptr("TX12345"),
		Amount:     strptr("1500.00"),
		RawAmount:  strptr("1,500.00 MMK"),
		Sender:     strptr("Jane Doe"),
	}
	inserted, err := s.Save(ctx, &rec)
	require.NoError(t, err)
	assert.True(t, inserted)

	recs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	got := recs[0]
	assert.Equal(t, "slip-001.png", got.DocumentID)
	require.NotNil(t, got.Date)
	assert.Equal(t, "2024/06/12", *got.Date)
	require.NotNil(t, got.Amount)
	assert.Equal(t, "1500.00", *got.Amount)
	require.NotNil(t, got.RawAmount)
	assert.Equal(t, "1,500.00 MMK", *got.RawAmount)

	// absent fields stay absent through storage
	assert.Nil(t, got.Type)
	assert.Nil(t, got.Receiver)
	assert.Nil(t, got.Note)
}

func TestStore_SaveDuplicate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := extract.TransactionRecord{DocumentID: "dup.png", Sender: strptr("Alice")}
	inserted, err := s.Save(ctx, &first)
	require.NoError(t, err)
	assert.True(t, inserted)

	second := extract.TransactionRecord{DocumentID: "dup.png", Sender: strptr("Bob")}
	inserted, err = s.Save(ctx, &second)
	require.NoError(t, err)
	assert.False(t, inserted)

	recs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.NotNil(t, recs[0].Sender)
	assert.Equal(t, "Alice", *recs[0].Sender)
}

func TestStore_Count(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	for _, id := range []string{"a.png", "b.png", "a.png"} {
		_, err := s.Save(ctx, &extract.TransactionRecord{DocumentID: id})
		require.NoError(t, err)
	}

	n, err = s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
