package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/podsum/internal/config"
	"github.com/nguyentantai21042004/podsum/internal/logger"
	"github.com/nguyentantai21042004/podsum/internal/summarizer"
)

const (
	agentName = "podcast-summariser"
	version   = "1.0.0"

	// HeaderAPIKey lets a caller bring its own OpenRouter credential.
	HeaderAPIKey = "X-OpenRouter-Api-Key"
	// HeaderGeminiAPIKey is the same for the Gemini provider.
	HeaderGeminiAPIKey = "X-Gemini-Api-Key"
	// HeaderRequestID carries the trace ID in both directions.
	HeaderRequestID = "X-Request-ID"
)

// SummarizerFactory builds a Summarizer bound to one API key.
type SummarizerFactory func(apiKey string) (summarizer.Summarizer, error)

// Server is the HTTP face of the summarizer. Each request gets its own
// pipeline run; nothing is shared between requests.
type Server struct {
	engine        *gin.Engine
	newSummarizer SummarizerFactory
	apiKey        string
	keyHeader     string
	logger        logger.Logger
}

// New wires routes and middleware. apiKey is the credential used when a
// request does not bring one; only the header matching provider is read.
func New(cfg config.ServerConfig, provider, apiKey string, factory SummarizerFactory, log logger.Logger) *Server {
	s := &Server{
		engine:        gin.New(),
		newSummarizer: factory,
		apiKey:        apiKey,
		keyHeader:     KeyHeader(provider),
		logger:        log,
	}
	s.engine.Use(gin.Recovery(), s.requestLogger())
	s.engine.Use(cors.New(corsConfig(cfg.AllowOrigins)))
	s.registerRoutes()
	return s
}

// Handler exposes the router for http.Server and tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// KeyHeader names the request header that carries a credential for provider.
func KeyHeader(provider string) string {
	if provider == config.ProviderGemini {
		return HeaderGeminiAPIKey
	}
	return HeaderAPIKey
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{http.MethodGet, http.MethodPost}
	c.AllowHeaders = []string{"Content-Type", HeaderAPIKey, HeaderGeminiAPIKey, HeaderRequestID}
	c.ExposeHeaders = []string{HeaderRequestID}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = origins
	return c
}
