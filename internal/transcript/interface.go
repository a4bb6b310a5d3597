package transcript

import (
	"context"
	"errors"
)

// ErrNoTranscript means the provider has no transcript for the video:
// captions disabled, private video, or no speech.
var ErrNoTranscript = errors.New("no transcript available")

// Provider fetches the transcript of a video by its ID.
type Provider interface {
	Fetch(ctx context.Context, videoID string) (*Transcript, error)
	Name() string
}
