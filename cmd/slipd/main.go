package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/zawlinnaung/slip-tracker/internal/common"
	"github.com/zawlinnaung/slip-tracker/internal/extract"
	"github.com/zawlinnaung/slip-tracker/internal/ocr"
	"github.com/zawlinnaung/slip-tracker/internal/server"
	"github.com/zawlinnaung/slip-tracker/internal/service"
	"github.com/zawlinnaung/slip-tracker/internal/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	strategy, err := extract.ParseStrategy(cfg.Extract.Strategy)
	if err != nil {
		logger.Error("invalid EXTRACT_STRATEGY", "value", cfg.Extract.Strategy, "error", err)
		os.Exit(1)
	}

	rules := extract.DefaultRuleSet()
	if cfg.Extract.RulesPath != "" {
		rules, err = extract.LoadRuleSet(cfg.Extract.RulesPath)
		if err != nil {
			logger.Error("load ruleset", "path", cfg.Extract.RulesPath, "error", err)
			os.Exit(1)
		}
	}

	extractor, err := extract.NewExtractor(strategy, rules, logger)
	if err != nil {
		logger.Error("build extractor", "error", err)
		os.Exit(1)
	}

	var st *store.Store
	if cfg.Store.Path != "" {
		st, err = store.Open(ctx, cfg.Store.Path, logger)
		if err != nil {
			logger.Error("open store", "path", cfg.Store.Path, "error", err)
			os.Exit(1)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logger.Error("close store", "error", cerr)
			}
		}()
	}

	recognizer := ocr.NewRecognizer(ocr.Config{
		Tesseract:   cfg.OCR.Tesseract,
		Lang:        cfg.OCR.Lang,
		TessdataDir: cfg.OCR.TessdataDir,
		PSM:         cfg.OCR.PSM,
	}, logger)

	processor := service.NewProcessor(recognizer, extractor, st, logger)
	handler := server.NewSlipHandler(processor, cfg.Server.MaxUploadSize, logger)
	router := server.NewRouter(handler, logger)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.Addr, "strategy", string(strategy))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
}
