package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/podsum/internal/config"
	"github.com/nguyentantai21042004/podsum/internal/generator"
	"github.com/nguyentantai21042004/podsum/internal/logger"
	"github.com/nguyentantai21042004/podsum/internal/summarizer"
)

type fakeSummarizer struct {
	result string
	err    error
	urls   []string
}

func (f *fakeSummarizer) Run(ctx context.Context, sourceURL string) (string, error) {
	f.urls = append(f.urls, sourceURL)
	return f.result, f.err
}

type recordingFactory struct {
	s    *fakeSummarizer
	keys []string
}

func (r *recordingFactory) build(apiKey string) (summarizer.Summarizer, error) {
	r.keys = append(r.keys, apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%w: OPENROUTER_API_KEY environment variable not set", generator.ErrMissingCredential)
	}
	return r.s, nil
}

func newTestServer(defaultKey string, s *fakeSummarizer) (*Server, *recordingFactory) {
	return newProviderServer(config.ProviderOpenRouter, defaultKey, s)
}

func newProviderServer(provider, defaultKey string, s *fakeSummarizer) (*Server, *recordingFactory) {
	gin.SetMode(gin.TestMode)
	f := &recordingFactory{s: s}
	cfg := config.ServerConfig{Port: 8000, AllowOrigins: []string{"*"}}
	return New(cfg, provider, defaultKey, f.build, logger.Discard()), f
}

func post(t *testing.T, srv *Server, body string, header map[string]string) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return rec, resp
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer("key", &fakeSummarizer{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	want := HealthResponse{Status: "healthy", Agent: "podcast-summariser", Version: "1.0.0"}
	if got != want {
		t.Errorf("health = %+v, want %+v", got, want)
	}
	if rec.Header().Get(HeaderRequestID) == "" {
		t.Error("expected a request ID header")
	}
}

func TestSummarizeSuccess(t *testing.T) {
	s := &fakeSummarizer{result: "# Title\n\nsummary"}
	srv, f := newTestServer("env-key", s)

	rec, resp := post(t, srv, `{"command":"summarize https://youtu.be/dQw4w9WgXcQ please"}`, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !resp.Success || resp.Result != "# Title\n\nsummary" {
		t.Errorf("response = %+v", resp)
	}
	if len(s.urls) != 1 || s.urls[0] != "https://youtu.be/dQw4w9WgXcQ" {
		t.Errorf("summarizer got %v", s.urls)
	}
	if len(f.keys) != 1 || f.keys[0] != "env-key" {
		t.Errorf("factory keys = %v, want [env-key]", f.keys)
	}
}

func TestSummarizeHeaderKeyOverridesDefault(t *testing.T) {
	srv, f := newTestServer("env-key", &fakeSummarizer{result: "ok"})

	rec, _ := post(t, srv, `{"command":"https://www.youtube.com/watch?v=dQw4w9WgXcQ"}`,
		map[string]string{HeaderAPIKey: "caller-key"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if len(f.keys) != 1 || f.keys[0] != "caller-key" {
		t.Errorf("factory keys = %v, want [caller-key]", f.keys)
	}
}

func TestSummarizeHeaderMatchesProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		header   map[string]string
		wantKey  string
	}{
		{
			name:     "gemini ignores openrouter header",
			provider: config.ProviderGemini,
			header:   map[string]string{HeaderAPIKey: "openrouter-key"},
			wantKey:  "env-key",
		},
		{
			name:     "gemini reads its own header",
			provider: config.ProviderGemini,
			header:   map[string]string{HeaderGeminiAPIKey: "gemini-key"},
			wantKey:  "gemini-key",
		},
		{
			name:     "openrouter ignores gemini header",
			provider: config.ProviderOpenRouter,
			header:   map[string]string{HeaderGeminiAPIKey: "gemini-key"},
			wantKey:  "env-key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, f := newProviderServer(tt.provider, "env-key", &fakeSummarizer{result: "ok"})

			rec, _ := post(t, srv, `{"command":"https://youtu.be/dQw4w9WgXcQ"}`, tt.header)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			if len(f.keys) != 1 || f.keys[0] != tt.wantKey {
				t.Errorf("factory keys = %v, want [%s]", f.keys, tt.wantKey)
			}
		})
	}
}

func TestSummarizeRequestErrors(t *testing.T) {
	tests := []struct {
		name       string
		defaultKey string
		body       string
		runErr     error
		wantStatus int
		wantError  string
	}{
		{
			name:       "malformed body",
			defaultKey: "k",
			body:       `{"command":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request body",
		},
		{
			name:       "empty command",
			defaultKey: "k",
			body:       `{"command":"   "}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing command",
		},
		{
			name:       "no url",
			defaultKey: "k",
			body:       `{"command":"what is the weather"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "No YouTube URL found",
		},
		{
			name:       "missing credential",
			body:       `{"command":"https://youtu.be/dQw4w9WgXcQ"}`,
			wantStatus: http.StatusUnauthorized,
			wantError:  "OPENROUTER_API_KEY",
		},
		{
			name:       "invalid url",
			defaultKey: "k",
			body:       `{"command":"https://youtu.be/dQw4w9WgXcQ"}`,
			runErr:     fmt.Errorf("%w: no id", summarizer.ErrInvalidURL),
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid URL",
		},
		{
			name:       "no transcript",
			defaultKey: "k",
			body:       `{"command":"https://youtu.be/dQw4w9WgXcQ"}`,
			runErr:     fmt.Errorf("%w: captions disabled", summarizer.ErrTranscriptUnavailable),
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "transcript unavailable",
		},
		{
			name:       "upstream",
			defaultKey: "k",
			body:       `{"command":"https://youtu.be/dQw4w9WgXcQ"}`,
			runErr: fmt.Errorf("%w: %w", summarizer.ErrUpstreamService,
				&generator.APIError{Provider: "openrouter", StatusCode: 429, Message: "rate limited"}),
			wantStatus: http.StatusBadGateway,
			wantError:  "rate limited",
		},
		{
			name:       "unexpected",
			defaultKey: "k",
			body:       `{"command":"https://youtu.be/dQw4w9WgXcQ"}`,
			runErr:     errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(tt.defaultKey, &fakeSummarizer{err: tt.runErr})

			rec, resp := post(t, srv, tt.body, nil)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if resp.Success {
				t.Error("success = true, want false")
			}
			if !strings.Contains(resp.Error, tt.wantError) {
				t.Errorf("error = %q, want it to contain %q", resp.Error, tt.wantError)
			}
		})
	}
}

func TestSummarizeNoURLSkipsSummarizer(t *testing.T) {
	s := &fakeSummarizer{result: "unused"}
	srv, f := newTestServer("k", s)

	post(t, srv, `{"command":"hello there"}`, nil)

	if len(f.keys) != 0 || len(s.urls) != 0 {
		t.Errorf("factory keys = %v, summarizer urls = %v; want none", f.keys, s.urls)
	}
}

func TestRequestIDPropagation(t *testing.T) {
	srv, _ := newTestServer("k", &fakeSummarizer{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(HeaderRequestID, "trace-123")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if got := rec.Header().Get(HeaderRequestID); got != "trace-123" {
		t.Errorf("request ID = %q, want trace-123", got)
	}
}

func TestCORSConfig(t *testing.T) {
	all := corsConfig([]string{"*"})
	if !all.AllowAllOrigins || len(all.AllowOrigins) != 0 {
		t.Errorf("wildcard config = %+v", all)
	}

	some := corsConfig([]string{"https://app.example.com"})
	if some.AllowAllOrigins || len(some.AllowOrigins) != 1 {
		t.Errorf("explicit config = %+v", some)
	}
}
