package summarizer

import "context"

// Summarizer turns a podcast or video URL into a structured text summary.
type Summarizer interface {
	// Run resolves the transcript behind sourceURL and returns the model's
	// summary verbatim.
	Run(ctx context.Context, sourceURL string) (string, error)
}
