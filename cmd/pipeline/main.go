package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/nguyentantai21042004/podsum/internal/config"
	"github.com/nguyentantai21042004/podsum/internal/generator"
	"github.com/nguyentantai21042004/podsum/internal/inbox"
	"github.com/nguyentantai21042004/podsum/internal/logger"
	"github.com/nguyentantai21042004/podsum/internal/summarizer"
	"github.com/nguyentantai21042004/podsum/internal/transcript"
	"github.com/nguyentantai21042004/podsum/internal/watcher"
	"github.com/nguyentantai21042004/podsum/pkg/executor"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (defaults are used when empty)")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Podcast Summary Inbox")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Provider: %s (%s)", cfg.Provider, cfg.Model())
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

	if err := cfg.RequireAPIKey(); err != nil {
		log.Error(ctx, "%v", err)
		os.Exit(1)
	}

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	gen, err := generator.New(cfg, cfg.APIKey())
	if err != nil {
		log.Error(ctx, "Failed to create generator: %v", err)
		os.Exit(1)
	}
	exec := executor.New()
	if cfg.Transcript.YTDLP.Enabled {
		if v, err := transcript.YTDLPVersion(ctx, exec, cfg.Transcript.YTDLP.BinaryPath); err != nil {
			log.Warn(ctx, "yt-dlp fallback enabled but %v", err)
		} else {
			log.Info(ctx, "yt-dlp fallback: %s %s", cfg.Transcript.YTDLP.BinaryPath, v)
		}
	}
	provider := transcript.New(cfg.Transcript, exec, log)
	proc := inbox.New(cfg, summarizer.New(provider, gen, log), log)

	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- err
		}
	}()

	log.Info(ctx, "Drop .txt or .url files with YouTube links into: %s", cfg.Paths.Input)
	log.Info(ctx, "Summaries: %s (docx: %t)", cfg.Paths.Output, cfg.Output.Docx)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()
	// Start returns once running summaries are done
	<-stopped

	log.Info(ctx, "Inbox stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
