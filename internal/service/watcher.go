package service

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zawlinnaung/slip-tracker/constants"
)

// WatchConfig controls directory watching.
type WatchConfig struct {
	Root     string
	Debounce time.Duration // coalesce rapid write/rename bursts per file
	OnResult func(ProcessResult)
}

// WatchDirectory processes slip images as they appear under root, including
// subdirectories created while watching. It blocks until ctx is cancelled.
// Files already present are not reprocessed here; run ProcessDirectory first
// for the initial scan. Re-writes of an already-ingested file surface as
// duplicates, so an image that fires several events is harmless.
func (p *Processor) WatchDirectory(ctx context.Context, cfg WatchConfig) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	err = filepath.WalkDir(cfg.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", cfg.Root, err)
	}

	p.logger.Info("processor.watch.started", "root", cfg.Root)

	var timer *time.Timer
	var timerC <-chan time.Time
	pending := map[string]struct{}{}

	flush := func() {
		for path := range pending {
			delete(pending, path)
			res := p.ProcessImage(ctx, filepath.Base(path), path)
			p.logger.Info("processor.watch.processed",
				"path", path, "status", res.Status)
			if cfg.OnResult != nil {
				cfg.OnResult(res)
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()
		case <-timerC:
			timerC = nil
			flush()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op.Has(fsnotify.Create) {
				// new subdirectories join the watch set
				if info, serr := os.Stat(ev.Name); serr == nil && info.IsDir() {
					if aerr := w.Add(ev.Name); aerr != nil {
						p.logger.Warn("processor.watch.add.failed", "path", ev.Name, "error", aerr)
					}
					continue
				}
			}
			if !constants.IsAllowedExtension(filepath.Ext(ev.Name)) {
				continue
			}
			if !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			pending[ev.Name] = struct{}{}
			if cfg.Debounce > 0 {
				if timer != nil {
					timer.Stop()
				}
				timer = time.NewTimer(cfg.Debounce)
				timerC = timer.C
			} else {
				flush()
			}
		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			p.logger.Error("processor.watch.error", "error", werr)
		}
	}
}
