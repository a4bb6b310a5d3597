package summarizer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/podsum/internal/generator"
	"github.com/nguyentantai21042004/podsum/internal/logger"
	"github.com/nguyentantai21042004/podsum/internal/transcript"
)

// callLog records the order in which the fakes were called.
type callLog []string

type fakeProvider struct {
	log        *callLog
	transcript *transcript.Transcript
	err        error
	gotID      string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Fetch(ctx context.Context, videoID string) (*transcript.Transcript, error) {
	*f.log = append(*f.log, "transcript")
	f.gotID = videoID
	return f.transcript, f.err
}

type fakeGenerator struct {
	log       *callLog
	response  string
	err       error
	gotPrompt generator.Prompt
}

func (f *fakeGenerator) Model() string { return "fake-model" }

func (f *fakeGenerator) Generate(ctx context.Context, prompt generator.Prompt) (string, error) {
	*f.log = append(*f.log, "generate")
	f.gotPrompt = prompt
	return f.response, f.err
}

func textTranscript(id, text string) *transcript.Transcript {
	return &transcript.Transcript{VideoID: id, Language: "en", Segments: []transcript.Segment{{Text: text}}}
}

func newFakes(t *transcript.Transcript, providerErr error, response string, genErr error) (*callLog, *fakeProvider, *fakeGenerator, Summarizer) {
	calls := &callLog{}
	p := &fakeProvider{log: calls, transcript: t, err: providerErr}
	g := &fakeGenerator{log: calls, response: response, err: genErr}
	return calls, p, g, New(p, g, logger.Discard())
}

func TestRunEndToEnd(t *testing.T) {
	const stubResponse = "Title: Test\nTopics: greeting\nTakeaways: none\nQuotes: none"
	calls, p, g, s := newFakes(textTranscript("abc123", "Hello world, this is a test."), nil, stubResponse, nil)

	got, err := s.Run(context.Background(), "https://youtube.com/watch?v=abc123")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != stubResponse {
		t.Errorf("Run() = %q, want %q", got, stubResponse)
	}
	if strings.Join(*calls, ",") != "transcript,generate" {
		t.Errorf("calls = %v, want exactly one transcript then one generate", *calls)
	}
	if p.gotID != "abc123" {
		t.Errorf("provider got ID %q, want abc123", p.gotID)
	}
	if !strings.Contains(g.gotPrompt.User, "Hello world, this is a test.") {
		t.Errorf("prompt does not carry the transcript: %q", g.gotPrompt.User)
	}
	if !strings.Contains(g.gotPrompt.User, "Source URL: https://youtube.com/watch?v=abc123") {
		t.Errorf("prompt does not carry the source URL: %q", g.gotPrompt.User)
	}
}

func TestRunReturnsResponseVerbatim(t *testing.T) {
	responses := []string{
		"  leading and trailing whitespace \n\n",
		"no sections at all",
		"## Title & Overview\n- **bold**\n",
	}

	for _, resp := range responses {
		_, _, _, s := newFakes(textTranscript("dQw4w9WgXcQ", "some words"), nil, resp, nil)
		got, err := s.Run(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if got != resp {
			t.Errorf("Run() = %q, want %q unmodified", got, resp)
		}
	}
}

func TestRunInvalidURL(t *testing.T) {
	inputs := []string{"", "https://example.com/episode/12", "not a url at all", "https://www.youtube.com/@channel"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			calls, _, _, s := newFakes(textTranscript("x", "y"), nil, "summary", nil)

			_, err := s.Run(context.Background(), input)
			if !errors.Is(err, ErrInvalidURL) {
				t.Errorf("Run(%q) error = %v, want ErrInvalidURL", input, err)
			}
			if len(*calls) != 0 {
				t.Errorf("Run(%q) made calls %v, want none", input, *calls)
			}
		})
	}
}

func TestRunTranscriptUnavailable(t *testing.T) {
	tests := []struct {
		name       string
		transcript *transcript.Transcript
		err        error
	}{
		{"provider reports none", nil, transcript.ErrNoTranscript},
		{"provider network failure", nil, errors.New("dial tcp: timeout")},
		{"empty transcript", &transcript.Transcript{VideoID: "dQw4w9WgXcQ"}, nil},
		{"nil transcript", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls, _, _, s := newFakes(tt.transcript, tt.err, "summary", nil)

			_, err := s.Run(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
			if !errors.Is(err, ErrTranscriptUnavailable) {
				t.Fatalf("Run() error = %v, want ErrTranscriptUnavailable", err)
			}
			if tt.err != nil && !errors.Is(err, tt.err) {
				t.Errorf("Run() error = %v, want cause %v kept", err, tt.err)
			}
			if strings.Join(*calls, ",") != "transcript" {
				t.Errorf("calls = %v, generator must not be called", *calls)
			}
		})
	}
}

func TestRunUpstreamFailure(t *testing.T) {
	apiErr := &generator.APIError{Provider: "openrouter", StatusCode: 400, Message: "maximum context length exceeded"}
	tests := []struct {
		name string
		err  error
	}{
		{"api error", apiErr},
		{"empty response", generator.ErrEmptyResponse},
		{"timeout", context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls, _, _, s := newFakes(textTranscript("dQw4w9WgXcQ", "words"), nil, "", tt.err)

			got, err := s.Run(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
			if !errors.Is(err, ErrUpstreamService) {
				t.Fatalf("Run() error = %v, want ErrUpstreamService", err)
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("Run() error = %v, want provider detail %v kept", err, tt.err)
			}
			if got != "" {
				t.Errorf("Run() = %q, want no partial output", got)
			}
			if strings.Join(*calls, ",") != "transcript,generate" {
				t.Errorf("calls = %v, want one of each and no retry", *calls)
			}
		})
	}
}

func TestRunKeepsAPIErrorDetail(t *testing.T) {
	apiErr := &generator.APIError{Provider: "openrouter", StatusCode: 401, Message: "invalid key"}
	_, _, _, s := newFakes(textTranscript("dQw4w9WgXcQ", "words"), nil, "", apiErr)

	_, err := s.Run(context.Background(), "dQw4w9WgXcQ")
	var got *generator.APIError
	if !errors.As(err, &got) || got.StatusCode != 401 {
		t.Errorf("Run() error = %v, want *generator.APIError with status 401", err)
	}
	if !strings.Contains(err.Error(), "invalid key") {
		t.Errorf("error %q hides the provider message", err)
	}
}

func TestBuildPrompt(t *testing.T) {
	p := buildPrompt("https://youtu.be/dQw4w9WgXcQ", "the transcript")

	for _, section := range []string{"Title & Overview", "Key Topics", "Main Takeaways", "Notable Quotes"} {
		if !strings.Contains(p.System, section) {
			t.Errorf("system prompt missing %q", section)
		}
	}
	want := "Please summarize the following podcast transcript:\n\nSource URL: https://youtu.be/dQw4w9WgXcQ\n\nTranscript:\nthe transcript"
	if p.User != want {
		t.Errorf("user prompt = %q, want %q", p.User, want)
	}
}

func TestBuildPromptDoesNotTruncate(t *testing.T) {
	long := strings.Repeat("word ", 60000)
	p := buildPrompt("u", long)
	if !strings.HasSuffix(p.User, long) {
		t.Error("long transcript was altered")
	}
}

func TestRunLogsTranscriptDetails(t *testing.T) {
	tr := &transcript.Transcript{
		VideoID:   "dQw4w9WgXcQ",
		Language:  "en",
		Generated: true,
		Segments: []transcript.Segment{
			{Text: "Hello", Start: 0, Duration: 2 * time.Second},
			{Text: "world", Start: 90 * time.Second, Duration: 3 * time.Second},
		},
	}
	var buf bytes.Buffer
	s := New(&fakeProvider{log: &callLog{}, transcript: tr}, &fakeGenerator{log: &callLog{}, response: "ok"}, logger.NewWithWriter(&buf, "info"))

	if _, err := s.Run(context.Background(), "https://youtu.be/dQw4w9WgXcQ"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"1m33s", `language "en"`, "auto-generated=true"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
