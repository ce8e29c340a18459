package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "slip.png")

	rec := &fakeRecognizer{texts: map[string]string{
		path: "Amount: 1,500.00 MMK",
	}}
	p := newTestProcessor(t, rec)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := make(chan ProcessResult, 4)
	done := make(chan error, 1)
	go func() {
		done <- p.WatchDirectory(ctx, WatchConfig{
			Root:     dir,
			Debounce: 10 * time.Millisecond,
			OnResult: func(res ProcessResult) { results <- res },
		})
	}()

	// give the watcher a moment to register the directory
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("img"), 0o644))

	select {
	case res := <-results:
		assert.Equal(t, StatusExtracted, res.Status)
		assert.Equal(t, "slip.png", res.DocumentID)
	case <-time.After(5 * time.Second):
		t.Fatal("no result before timeout")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}

	assert.Equal(t, "1500.00", p.TotalAmount().StringFixed(2))
}

func TestWatchDirectory_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()

	p := newTestProcessor(t, &fakeRecognizer{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- p.WatchDirectory(ctx, WatchConfig{Root: dir})
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	time.Sleep(200 * time.Millisecond)

	assert.Equal(t, 0, p.Size())
	assert.Empty(t, p.Warnings())

	cancel()
	<-done
}
