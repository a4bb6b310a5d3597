package transcript

import (
	"strings"
	"time"
)

// Segment is one timed piece of caption text.
type Segment struct {
	Text     string
	Start    time.Duration
	Duration time.Duration
}

// Transcript is the ordered caption text of one video.
type Transcript struct {
	VideoID   string
	Language  string
	Generated bool
	Segments  []Segment
}

// Text joins the segment texts with single spaces. Segments that are only
// whitespace are dropped.
func (t *Transcript) Text() string {
	if t == nil {
		return ""
	}
	parts := make([]string, 0, len(t.Segments))
	for _, s := range t.Segments {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " ")
}

// Empty reports whether the transcript carries no text at all.
func (t *Transcript) Empty() bool {
	return t.Text() == ""
}

// Length is the end of the last segment.
func (t *Transcript) Length() time.Duration {
	if t == nil || len(t.Segments) == 0 {
		return 0
	}
	last := t.Segments[len(t.Segments)-1]
	return last.Start + last.Duration
}
