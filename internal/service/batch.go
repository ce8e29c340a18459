package service

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/zawlinnaung/slip-tracker/constants"
)

// BatchStats summarizes a directory run.
type BatchStats struct {
	Scanned    int `json:"scanned"`
	Extracted  int `json:"extracted"`
	Duplicates int `json:"duplicates"`
	Skipped    int `json:"skipped"`
}

// ProcessDirectory walks root and processes every slip image in it, in name
// order. The document identifier is the file's base name. Per-document
// failures are independent: one bad image never aborts the batch.
func (p *Processor) ProcessDirectory(ctx context.Context, root string) (BatchStats, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if constants.IsAllowedExtension(filepath.Ext(path)) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return BatchStats{}, fmt.Errorf("walk %s: %w", root, err)
	}
	sort.Strings(paths)

	stats := BatchStats{Scanned: len(paths)}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		res := p.ProcessImage(ctx, filepath.Base(path), path)
		switch res.Status {
		case StatusExtracted:
			stats.Extracted++
		case StatusDuplicate:
			stats.Duplicates++
		case StatusSkipped:
			stats.Skipped++
		}
	}

	p.logger.Info("processor.batch.done",
		"root", root,
		"scanned", stats.Scanned,
		"extracted", stats.Extracted,
		"duplicates", stats.Duplicates,
		"skipped", stats.Skipped,
	)
	return stats, nil
}
