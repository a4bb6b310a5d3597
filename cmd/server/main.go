package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/podsum/internal/config"
	"github.com/nguyentantai21042004/podsum/internal/generator"
	"github.com/nguyentantai21042004/podsum/internal/httpapi"
	"github.com/nguyentantai21042004/podsum/internal/logger"
	"github.com/nguyentantai21042004/podsum/internal/summarizer"
	"github.com/nguyentantai21042004/podsum/internal/transcript"
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
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
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
	factory := func(apiKey string) (summarizer.Summarizer, error) {
		gen, err := generator.New(cfg, apiKey)
		if err != nil {
			return nil, err
		}
		return summarizer.New(provider, gen, log), nil
	}

	if cfg.APIKey() == "" {
		log.Warn(ctx, "%s not set; requests must send %s", cfg.APIKeyEnv(), httpapi.KeyHeader(cfg.Provider))
	}

	api := httpapi.New(cfg.Server, cfg.Provider, cfg.APIKey(), factory, log)
	httpServer := &http.Server{
		Addr:        ":" + strconv.Itoa(cfg.Server.Port),
		Handler:     api.Handler(),
		ReadTimeout: 15 * time.Second,
		// Summaries can take minutes; the generator has its own timeout.
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info(ctx, "Podcast summariser listening on %s (provider %s, model %s)", httpServer.Addr, cfg.Provider, cfg.Model())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "Server error: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "Forced shutdown: %v", err)
	}
	log.Info(ctx, "Server stopped")
}
