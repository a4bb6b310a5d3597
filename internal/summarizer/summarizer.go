package summarizer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/podsum/internal/videoid"
)

// Run extracts the video ID, fetches the transcript, and asks the model for
// a summary. The steps run strictly in that order and nothing is retried.
func (s *implSummarizer) Run(ctx context.Context, sourceURL string) (string, error) {
	startTime := time.Now()
	sourceURL = strings.TrimSpace(sourceURL)
	s.logger.Info(ctx, "Processing: %s", sourceURL)

	// Step 1: Extract video ID
	videoID, err := videoid.Extract(sourceURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	s.logger.Info(ctx, "Video ID: %s", videoID)

	// Step 2: Fetch transcript
	t, err := s.transcripts.Fetch(ctx, videoID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTranscriptUnavailable, err)
	}
	text := t.Text()
	if text == "" {
		return "", fmt.Errorf("%w: transcript for %s is empty", ErrTranscriptUnavailable, videoID)
	}
	s.logger.Info(ctx, "Extracted transcript (%d chars, %s, language %q, auto-generated=%t)", len(text), t.Length().Round(time.Second), t.Language, t.Generated)

	// Step 3: Build prompt and call the model
	prompt := buildPrompt(sourceURL, text)
	s.logger.Debug(ctx, "Calling %s with %d prompt chars", s.generator.Model(), len(prompt.System)+len(prompt.User))

	summary, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstreamService, err)
	}

	s.logger.Info(ctx, "Summary generated for %s in %s (%d chars)", videoID, time.Since(startTime).Round(time.Millisecond), len(summary))
	return summary, nil
}
