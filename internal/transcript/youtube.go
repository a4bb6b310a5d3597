package transcript

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kkdai/youtube/v2"

	"github.com/nguyentantai21042004/podsum/internal/logger"
)

// kindAuto is the caption track kind YouTube uses for speech recognition.
const kindAuto = "asr"

// captionClient is the part of youtube.Client the provider uses.
type captionClient interface {
	GetVideoContext(ctx context.Context, id string) (*youtube.Video, error)
	GetTranscriptCtx(ctx context.Context, video *youtube.Video, lang string) (youtube.VideoTranscript, error)
}

type youtubeProvider struct {
	newClient func() captionClient
	languages []string
	logger    logger.Logger
}

// NewYouTube creates a Provider that reads captions straight from YouTube.
// languages lists caption languages in order of preference.
func NewYouTube(languages []string, log logger.Logger) Provider {
	return &youtubeProvider{
		newClient: newYouTubeClient,
		languages: languages,
		logger:    log,
	}
}

// youtube.Client mutates itself while it works (client kind, consent
// cookie), so every Fetch gets its own.
func newYouTubeClient() captionClient {
	return &youtube.Client{}
}

func (p *youtubeProvider) Name() string {
	return "youtube"
}

// Fetch prefers manual captions in the preferred languages, then
// auto-generated ones, then whatever track the video has.
func (p *youtubeProvider) Fetch(ctx context.Context, videoID string) (*Transcript, error) {
	client := p.newClient()

	video, err := client.GetVideoContext(ctx, videoID)
	if err != nil {
		if errors.Is(err, youtube.ErrVideoPrivate) || errors.Is(err, youtube.ErrLoginRequired) {
			return nil, fmt.Errorf("%w: %w", ErrNoTranscript, err)
		}
		return nil, fmt.Errorf("get video %s: %w", videoID, err)
	}

	track, ok := pickTrack(video.CaptionTracks, p.languages)
	if !ok {
		return nil, fmt.Errorf("%w: video %s has no caption tracks", ErrNoTranscript, videoID)
	}
	p.logger.Debug(ctx, "Using %s caption track (auto=%v) for %s", track.LanguageCode, track.Kind == kindAuto, videoID)

	segments, err := client.GetTranscriptCtx(ctx, video, track.LanguageCode)
	if err != nil {
		if errors.Is(err, youtube.ErrTranscriptDisabled) {
			return nil, fmt.Errorf("%w: %w", ErrNoTranscript, err)
		}
		return nil, fmt.Errorf("get transcript %s: %w", videoID, err)
	}

	t := &Transcript{
		VideoID:   videoID,
		Language:  track.LanguageCode,
		Generated: track.Kind == kindAuto,
		Segments:  make([]Segment, 0, len(segments)),
	}
	for _, s := range segments {
		t.Segments = append(t.Segments, Segment{
			Text:     s.Text,
			Start:    time.Duration(s.StartMs) * time.Millisecond,
			Duration: time.Duration(s.Duration) * time.Millisecond,
		})
	}
	if t.Empty() {
		return nil, fmt.Errorf("%w: transcript for %s is empty", ErrNoTranscript, videoID)
	}
	return t, nil
}

// pickTrack chooses a caption track: manual in a preferred language, then
// auto-generated in a preferred language, then the first manual track, then
// the first track of any kind.
func pickTrack(tracks []youtube.CaptionTrack, languages []string) (youtube.CaptionTrack, bool) {
	if len(tracks) == 0 {
		return youtube.CaptionTrack{}, false
	}

	for _, auto := range []bool{false, true} {
		for _, lang := range languages {
			for _, t := range tracks {
				if (t.Kind == kindAuto) == auto && strings.EqualFold(t.LanguageCode, lang) {
					return t, true
				}
			}
		}
	}

	for _, t := range tracks {
		if t.Kind != kindAuto {
			return t, true
		}
	}
	return tracks[0], true
}
