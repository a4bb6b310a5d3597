package inbox

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/podsum/internal/videoid"
)

// Process reads linkFile, summarizes each YouTube link in it and writes one
// markdown file per link. A failing link does not stop the others. The link
// file is archived once every link has been tried, unless ctx was cancelled.
func (p *implProcessor) Process(ctx context.Context, linkFile string) error {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting link file: %s", linkFile)
	p.logger.Info(ctx, "========================================")

	links, err := readLinks(linkFile)
	if err != nil {
		return fmt.Errorf("read links: %w", err)
	}
	if len(links) == 0 {
		return fmt.Errorf("no YouTube links in %s", linkFile)
	}

	base := strings.TrimSuffix(filepath.Base(linkFile), filepath.Ext(linkFile))
	successCount, failCount := 0, 0

	for i, link := range links {
		name := outputName(base, link, i, len(links))
		p.logger.Info(ctx, "[%d/%d] Summarizing: %s", i+1, len(links), link)

		summary, err := p.summarizer.Run(ctx, link)
		if err != nil {
			p.logger.Error(ctx, "Failed to summarize %s: %v", link, err)
			failCount++
			continue
		}

		mdPath, err := p.writeOutputs(ctx, name, summary)
		if err != nil {
			p.logger.Error(ctx, "Failed to write summary for %s: %v", link, err)
			failCount++
			continue
		}

		p.logger.Info(ctx, "[DONE] %s -> %s", link, mdPath)
		successCount++
	}

	// Cut short by shutdown: leave the file in the inbox for the next start.
	if ctx.Err() != nil {
		p.logger.Warn(ctx, "Stopped before finishing %s (%d success, %d failed); left in inbox", linkFile, successCount, failCount)
		return fmt.Errorf("process %s: %w", linkFile, ctx.Err())
	}

	if err := p.moveToArchived(ctx, linkFile); err != nil {
		p.logger.Warn(ctx, "Failed to move link file to archived folder: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Link file complete: %d success, %d failed", successCount, failCount)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime).Round(time.Millisecond))
	p.logger.Info(ctx, "========================================")

	if successCount == 0 {
		return fmt.Errorf("all %d links in %s failed", failCount, linkFile)
	}
	return nil
}

// readLinks returns the YouTube links in path, one per line. Blank lines and
// lines starting with # are skipped, as are lines without a YouTube link.
func readLinks(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var links []string
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		link, ok := videoid.FindURL(line)
		if !ok || seen[link] {
			continue
		}
		seen[link] = true
		links = append(links, link)
	}
	return links, scanner.Err()
}

// outputName is the file's base name, suffixed with the video ID when the
// file holds more than one link.
func outputName(base, link string, index, total int) string {
	if total == 1 {
		return base
	}
	if id, err := videoid.Extract(link); err == nil {
		return base + "-" + id
	}
	return fmt.Sprintf("%s-%d", base, index+1)
}
