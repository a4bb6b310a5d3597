package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/podsum/internal/logger"
)

var linkExtensions = []string{".txt", ".url", ".links"}

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	sem           *semaphore
	settleDelay   time.Duration
	wg            sync.WaitGroup

	mu     sync.Mutex
	active map[string]bool
}

// Start monitors the input directory until ctx is done, then waits for
// running handlers to finish.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)
	w.logger.Info(ctx, "Supported formats: %s", strings.Join(linkExtensions, ", "))

	w.dispatchPending(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing summaries to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !isLinkFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-link file: %s", event.Name)
				continue
			}
			w.logger.Info(ctx, "New link file detected: %s", event.Name)

			// let the writer finish
			time.Sleep(w.settleDelay)
			w.dispatch(ctx, event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// dispatchPending hands over link files left in the inbox by an earlier run
// that was stopped before archiving them.
func (w *implWatcher) dispatchPending(ctx context.Context) {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		w.logger.Warn(ctx, "Cannot list %s: %v", w.inputDir, err)
		return
	}
	for _, e := range entries {
		if e.IsDir() || !isLinkFile(e.Name()) {
			continue
		}
		path := filepath.Join(w.inputDir, e.Name())
		w.logger.Info(ctx, "Pending link file: %s", path)
		w.dispatch(ctx, path)
	}
}

// dispatch runs the handler for filePath once a slot is free. A file that is
// already being handled, or is gone, is skipped.
func (w *implWatcher) dispatch(ctx context.Context, filePath string) {
	if !w.claim(filePath) {
		w.logger.Debug(ctx, "Skipping %s: already handled", filePath)
		return
	}
	if err := w.sem.acquire(ctx); err != nil {
		w.unclaim(filePath)
		return
	}
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.sem.release()
		defer w.unclaim(filePath)

		if err := w.handler(ctx, filePath); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
		}
	}()
}

func (w *implWatcher) claim(filePath string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.active[filePath] {
		return false
	}
	if _, err := os.Stat(filePath); err != nil {
		return false
	}
	w.active[filePath] = true
	return true
}

func (w *implWatcher) unclaim(filePath string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.active, filePath)
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isLinkFile reports whether path looks like a file of links. Hidden and
// partial files are skipped.
func isLinkFile(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(base))
	for _, e := range linkExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
