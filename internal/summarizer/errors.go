package summarizer

import "errors"

// Every error returned by Run wraps exactly one of these.
var (
	// ErrInvalidURL: no video ID could be extracted. No network call was made.
	ErrInvalidURL = errors.New("invalid URL")
	// ErrTranscriptUnavailable: the transcript provider had nothing. The
	// model was not called.
	ErrTranscriptUnavailable = errors.New("transcript unavailable")
	// ErrUpstreamService: the generation call failed or returned nothing.
	ErrUpstreamService = errors.New("upstream service error")
)
