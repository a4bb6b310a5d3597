package inbox

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/podsum/internal/export"
)

// writeOutputs writes <name>.md, and <name>.docx when enabled, into the
// output folder. It returns the markdown path.
func (p *implProcessor) writeOutputs(ctx context.Context, name, summary string) (string, error) {
	if err := os.MkdirAll(p.paths.Output, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	mdPath := filepath.Join(p.paths.Output, name+".md")
	md := export.Markdown(name, summary, p.now())
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return "", fmt.Errorf("write markdown: %w", err)
	}

	if p.writeDocx {
		docxPath := filepath.Join(p.paths.Output, name+".docx")
		if err := export.WriteDocx(name, summary, docxPath); err != nil {
			p.logger.Warn(ctx, "Failed to write docx %s: %v", docxPath, err)
		} else {
			p.logger.Debug(ctx, "Wrote %s", docxPath)
		}
	}

	return mdPath, nil
}

// moveToArchived moves the processed link file out of the inbox
func (p *implProcessor) moveToArchived(ctx context.Context, linkFile string) error {
	if err := os.MkdirAll(p.paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	dest := filepath.Join(p.paths.Archived, filepath.Base(linkFile))
	p.logger.Info(ctx, "Archiving link file: %s -> %s", linkFile, dest)

	if err := os.Rename(linkFile, dest); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
