package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/zawlinnaung/slip-tracker/internal/common"
	"github.com/zawlinnaung/slip-tracker/internal/dataset"
	"github.com/zawlinnaung/slip-tracker/internal/export"
	"github.com/zawlinnaung/slip-tracker/internal/extract"
	"github.com/zawlinnaung/slip-tracker/internal/ocr"
	"github.com/zawlinnaung/slip-tracker/internal/service"
	"github.com/zawlinnaung/slip-tracker/internal/store"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir      = flag.String("dir", "", "directory of slip images to process (required)")
		out      = flag.String("out", "", "output file path (defaults to <dir>/../transactions.xlsx)")
		format   = flag.String("format", "xlsx", "output format: xlsx or csv")
		strategy = flag.String("strategy", "", "extraction strategy: anywhere or line (default from env)")
		rules    = flag.String("rules", "", "label-synonym overrides JSON file (default from env)")
		watch    = flag.Bool("watch", false, "keep watching the directory and re-export on new slips")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *format != "xlsx" && *format != "csv" {
		printError("Error: --format must be xlsx or csv\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "transactions."+*format)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := common.LoadConfig()
	if *strategy == "" {
		*strategy = cfg.Extract.Strategy
	}
	if *rules == "" {
		*rules = cfg.Extract.RulesPath
	}

	strat, err := extract.ParseStrategy(*strategy)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	ruleset := extract.DefaultRuleSet()
	if *rules != "" {
		if ruleset, err = extract.LoadRuleSet(*rules); err != nil {
			printError("Error: %v\n", err)
			os.Exit(1)
		}
	}

	extractor, err := extract.NewExtractor(strat, ruleset, logger)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	var st *store.Store
	if cfg.Store.Path != "" {
		if st, err = store.Open(ctx, cfg.Store.Path, logger); err != nil {
			printError("Error: open store: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = st.Close() }()
	}

	recognizer := ocr.NewRecognizer(ocr.Config{
		Tesseract:   cfg.OCR.Tesseract,
		Lang:        cfg.OCR.Lang,
		TessdataDir: cfg.OCR.TessdataDir,
		PSM:         cfg.OCR.PSM,
	}, logger)

	processor := service.NewProcessor(recognizer, extractor, st, logger)
	stats, err := processor.ProcessDirectory(ctx, *dir)
	if err != nil {
		logger.Error("batch failed", "error", err)
		os.Exit(1)
	}

	for _, w := range processor.Warnings() {
		printError("Warning: %s: %s\n", w.DocumentID, w.Reason)
	}

	if err := writeOutput(*format, *out, processor.Table()); err != nil {
		logger.Error("write output", "path", *out, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Processed %d file(s): %d extracted, %d duplicate(s), %d skipped\n",
		stats.Scanned, stats.Extracted, stats.Duplicates, stats.Skipped)
	fmt.Printf("Total amount: %s\n", processor.TotalAmount().StringFixed(2))
	fmt.Printf("Wrote %s\n", *out)

	if !*watch {
		return
	}

	fmt.Printf("Watching %s for new slips (Ctrl-C to stop)\n", *dir)
	err = processor.WatchDirectory(ctx, service.WatchConfig{
		Root:     *dir,
		Debounce: 500 * time.Millisecond,
		OnResult: func(res service.ProcessResult) {
			if res.Status != service.StatusExtracted {
				return
			}
			if err := writeOutput(*format, *out, processor.Table()); err != nil {
				logger.Error("write output", "path", *out, "error", err)
				return
			}
			fmt.Printf("Extracted %s, total now %s\n",
				res.DocumentID, processor.TotalAmount().StringFixed(2))
		},
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("watch failed", "error", err)
		os.Exit(1)
	}
}

func writeOutput(format, path string, table *dataset.Table) error {
	switch format {
	case "xlsx":
		data, err := export.WriteXLSX(table)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0o644)
	default:
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if _, err := f.Write(export.BOM); err != nil {
			_ = f.Close()
			return err
		}
		w := export.NewCSVWriter(f)
		if err := w.WriteTable(table); err != nil {
			_ = f.Close()
			return err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}
}
