package watcher

import "context"

// Watcher reports link files dropped into the inbox directory.
type Watcher interface {
	// Start blocks until ctx is done, handing each new link file to the
	// EventHandler.
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one link file. Errors are logged, not retried.
type EventHandler func(ctx context.Context, linkFile string) error
