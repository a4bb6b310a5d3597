package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/nguyentantai21042004/podsum/internal/config"
	"github.com/nguyentantai21042004/podsum/internal/export"
	"github.com/nguyentantai21042004/podsum/internal/generator"
	"github.com/nguyentantai21042004/podsum/internal/logger"
	"github.com/nguyentantai21042004/podsum/internal/summarizer"
	"github.com/nguyentantai21042004/podsum/internal/transcript"
	"github.com/nguyentantai21042004/podsum/internal/videoid"
	"github.com/nguyentantai21042004/podsum/pkg/executor"
)

const rule = "============================================================"

func main() {
	configPath := flag.String("config", "", "path to config.yaml (defaults are used when empty)")
	docxPath := flag.String("docx", "", "also write the summary to this .docx file")
	logLevel := flag.String("log-level", "", "override logging.level (debug, info, warn, error)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: podsum [flags] <podcast_url>\n")
		fmt.Fprintf(os.Stderr, "Example: podsum 'https://youtube.com/watch?v=dQw4w9WgXcQ'\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	sourceURL := flag.Arg(0)

	if err := run(sourceURL, *configPath, *docxPath, *logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sourceURL, configPath, docxPath, logLevel string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if err := cfg.RequireAPIKey(); err != nil {
		return err
	}

	// Logs go to stderr so stdout carries only the summary.
	log := logger.NewWithWriter(os.Stderr, cfg.Logging.Level)

	gen, err := generator.New(cfg, cfg.APIKey())
	if err != nil {
		return err
	}
	s := summarizer.New(transcript.New(cfg.Transcript, executor.New(), log), gen, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := s.Run(ctx, sourceURL)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(rule)
	fmt.Println("PODCAST SUMMARY")
	fmt.Println(rule)
	fmt.Println()
	fmt.Println(summary)

	if docxPath != "" {
		if !strings.HasSuffix(strings.ToLower(docxPath), ".docx") {
			docxPath += ".docx"
		}
		title := "Podcast Summary"
		if id, err := videoid.Extract(sourceURL); err == nil {
			title += " " + id
		}
		if err := export.WriteDocx(title, summary, docxPath); err != nil {
			return fmt.Errorf("write docx: %w", err)
		}
		log.Info(ctx, "Saved %s", docxPath)
	}
	return nil
}
