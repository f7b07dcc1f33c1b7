package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vedanth-raj/sectionize/internal/analyzer"
	"github.com/vedanth-raj/sectionize/internal/api"
	"github.com/vedanth-raj/sectionize/internal/config"
	"github.com/vedanth-raj/sectionize/internal/pipeline"
	"github.com/vedanth-raj/sectionize/internal/store"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	analyzerCfg := cfg.Analyzer()
	if cfg.PatternsFile != "" {
		custom, err := analyzer.LoadPatternsFile(cfg.PatternsFile)
		if err != nil {
			log.Error("failed to load patterns file", "path", cfg.PatternsFile, "error", err)
			os.Exit(1)
		}
		analyzerCfg.Custom = custom
		log.Info("loaded custom patterns", "path", cfg.PatternsFile, "entries", len(custom))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := store.Open(cfg.DataDir, log)
	if err != nil {
		log.Error("failed to open document store", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}

	// Initialize pipeline.
	orch := pipeline.NewOrchestrator(cfg, analyzerCfg, st, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(orch, log, cfg, analyzerCfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting sectionize", "port", cfg.Port, "data_dir", cfg.DataDir)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
