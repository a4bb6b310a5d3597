package summarizer

import (
	"github.com/nguyentantai21042004/podsum/internal/generator"
	"github.com/nguyentantai21042004/podsum/internal/logger"
	"github.com/nguyentantai21042004/podsum/internal/transcript"
)

type implSummarizer struct {
	transcripts transcript.Provider
	generator   generator.Generator
	logger      logger.Logger
}

// New creates a Summarizer fetching transcripts from provider and
// summaries from gen.
func New(provider transcript.Provider, gen generator.Generator, log logger.Logger) Summarizer {
	return &implSummarizer{
		transcripts: provider,
		generator:   gen,
		logger:      log,
	}
}
