// Package videoid turns YouTube links into the video IDs transcript providers expect.
package videoid

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ErrNoVideoID is returned when no video ID can be found in the input.
var ErrNoVideoID = errors.New("could not extract video ID from URL")

const watchURLTemplate = "https://youtube.com/watch?v=%s"

var (
	idPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:v=|/v/|youtu\.be/)([A-Za-z0-9_-]{11})`),
		regexp.MustCompile(`(?:embed/|shorts/|live/)([A-Za-z0-9_-]{11})`),
		regexp.MustCompile(`^([A-Za-z0-9_-]{11})$`),
	}
	reIDChars = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	reBareID  = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

	urlPatterns = []*regexp.Regexp{
		regexp.MustCompile(`https?://(?:www\.|m\.)?youtube\.com/watch\?v=[A-Za-z0-9_-]+(?:&[^\s]*)?`),
		regexp.MustCompile(`https?://youtu\.be/[A-Za-z0-9_-]+(?:\?[^\s]*)?`),
		regexp.MustCompile(`https?://(?:www\.|m\.)?youtube\.com/(?:embed|shorts|live)/[A-Za-z0-9_-]+`),
	}
)

// Extract returns the video ID referenced by raw. It accepts watch, short,
// embed, shorts and live links as well as a bare 11-character ID. As a last
// resort the v query parameter is used as-is.
func Extract(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrNoVideoID
	}

	for _, re := range idPatterns {
		if m := re.FindStringSubmatch(raw); m != nil {
			return m[1], nil
		}
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.RawQuery == "" {
		return "", fmt.Errorf("%w: %s", ErrNoVideoID, raw)
	}
	if v := parsed.Query().Get("v"); v != "" && reIDChars.MatchString(v) {
		return v, nil
	}

	return "", fmt.Errorf("%w: %s", ErrNoVideoID, raw)
}

// FindURL picks the first YouTube link out of free text such as
// "summarize https://youtu.be/...". Text that is just a video ID becomes a
// watch URL.
func FindURL(text string) (string, bool) {
	text = strings.TrimSpace(text)
	for _, re := range urlPatterns {
		if m := re.FindString(text); m != "" {
			return m, true
		}
	}
	if reBareID.MatchString(text) {
		return WatchURL(text), true
	}
	return "", false
}

// WatchURL builds the canonical watch URL for id.
func WatchURL(id string) string {
	return fmt.Sprintf(watchURLTemplate, id)
}
