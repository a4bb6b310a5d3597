// Package export renders summaries for callers that keep them around.
// The summarizer itself never writes files.
package export

import (
	"fmt"
	"strings"
	"time"
)

// Markdown wraps a summary in a document with a title and a timestamp line.
func Markdown(title, summary string, at time.Time) string {
	return fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
		title,
		at.Format("2006-01-02 15:04"),
		strings.TrimSpace(summary),
	)
}
