package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/nguyentantai21042004/podsum/internal/logger"
	"github.com/nguyentantai21042004/podsum/internal/videoid"
	"github.com/nguyentantai21042004/podsum/pkg/executor"
)

type ytdlpProvider struct {
	executor  executor.Executor
	binary    string
	languages []string
	logger    logger.Logger
}

// NewYTDLP creates a Provider that asks the yt-dlp binary for subtitles in
// json3 format.
func NewYTDLP(exec executor.Executor, binary string, languages []string, log logger.Logger) Provider {
	return &ytdlpProvider{
		executor:  exec,
		binary:    binary,
		languages: languages,
		logger:    log,
	}
}

// YTDLPVersion reports the version of the yt-dlp binary, failing when it
// cannot be run.
func YTDLPVersion(ctx context.Context, exec executor.Executor, binary string) (string, error) {
	out, err := exec.Execute(ctx, binary, "--version")
	if err != nil {
		return "", fmt.Errorf("yt-dlp not usable: %w", err)
	}
	return strings.TrimSpace(out), nil
}

func (p *ytdlpProvider) Name() string {
	return "yt-dlp"
}

func (p *ytdlpProvider) Fetch(ctx context.Context, videoID string) (*Transcript, error) {
	dir, err := os.MkdirTemp("", "podsum-subs-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	// --skip-download: captions only, never the media
	// --write-subs/--write-auto-subs: manual tracks win when both exist
	// -o: one file per language, <id>.<lang>.json3
	args := []string{
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-langs", strings.Join(p.languages, ","),
		"--sub-format", "json3",
		"--no-warnings",
		"-o", "%(id)s.%(ext)s",
		videoid.WatchURL(videoID),
	}

	p.logger.Debug(ctx, "Running %s for %s in %s", p.binary, videoID, dir)
	if _, err := p.executor.ExecuteInDir(ctx, dir, p.binary, args...); err != nil {
		return nil, fmt.Errorf("yt-dlp subtitles: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json3"))
	if err != nil {
		return nil, fmt.Errorf("list subtitles: %w", err)
	}
	path, lang, ok := pickSubtitleFile(files, p.languages)
	if !ok {
		return nil, fmt.Errorf("%w: yt-dlp wrote no subtitles for %s", ErrNoTranscript, videoID)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read subtitles: %w", err)
	}
	segments, err := parseJSON3(data)
	if err != nil {
		return nil, err
	}

	t := &Transcript{VideoID: videoID, Language: lang, Segments: segments}
	if t.Empty() {
		return nil, fmt.Errorf("%w: subtitles for %s are empty", ErrNoTranscript, videoID)
	}
	return t, nil
}

// pickSubtitleFile returns the file whose language comes first in languages,
// or the alphabetically first file when none match.
func pickSubtitleFile(files []string, languages []string) (string, string, bool) {
	if len(files) == 0 {
		return "", "", false
	}
	sort.Strings(files)

	langOf := func(path string) string {
		name := strings.TrimSuffix(filepath.Base(path), ".json3")
		if i := strings.LastIndex(name, "."); i >= 0 {
			return name[i+1:]
		}
		return ""
	}

	for _, want := range languages {
		for _, f := range files {
			if strings.EqualFold(langOf(f), want) {
				return f, langOf(f), true
			}
		}
	}
	return files[0], langOf(files[0]), true
}

type json3Doc struct {
	Events []struct {
		StartMs    int64 `json:"tStartMs"`
		DurationMs int64 `json:"dDurationMs"`
		Segs       []struct {
			UTF8 string `json:"utf8"`
		} `json:"segs"`
	} `json:"events"`
}

// parseJSON3 converts the YouTube json3 timed text format into segments.
// Events without text (window setup, bare newlines) are skipped.
func parseJSON3(data []byte) ([]Segment, error) {
	var doc json3Doc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse json3: %w", err)
	}

	segments := make([]Segment, 0, len(doc.Events))
	for _, ev := range doc.Events {
		var sb strings.Builder
		for _, s := range ev.Segs {
			sb.WriteString(s.UTF8)
		}
		text := strings.Join(strings.Fields(sb.String()), " ")
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Text:     text,
			Start:    time.Duration(ev.StartMs) * time.Millisecond,
			Duration: time.Duration(ev.DurationMs) * time.Millisecond,
		})
	}
	return segments, nil
}
