package transcript

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/podsum/internal/logger"
)

type chainProvider struct {
	providers []Provider
	logger    logger.Logger
}

// NewChain returns a Provider that tries each provider in order and returns
// the first transcript found. When every provider fails the errors are joined.
func NewChain(log logger.Logger, providers ...Provider) Provider {
	if len(providers) == 1 {
		return providers[0]
	}
	return &chainProvider{providers: providers, logger: log}
}

func (c *chainProvider) Name() string {
	names := make([]string, 0, len(c.providers))
	for _, p := range c.providers {
		names = append(names, p.Name())
	}
	return strings.Join(names, "+")
}

func (c *chainProvider) Fetch(ctx context.Context, videoID string) (*Transcript, error) {
	if len(c.providers) == 0 {
		return nil, fmt.Errorf("%w: no transcript providers configured", ErrNoTranscript)
	}

	var errs []error
	for _, p := range c.providers {
		t, err := p.Fetch(ctx, videoID)
		if err == nil {
			return t, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Warn(ctx, "Transcript provider %s failed for %s: %v", p.Name(), videoID, err)
		errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
	}
	return nil, errors.Join(errs...)
}
