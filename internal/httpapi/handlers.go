package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/podsum/internal/generator"
	"github.com/nguyentantai21042004/podsum/internal/summarizer"
	"github.com/nguyentantai21042004/podsum/internal/videoid"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Agent: agentName, Version: version})
}

func (s *Server) summarize(c *gin.Context) {
	ctx := c.Request.Context()

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "Invalid request body"})
		return
	}

	command := strings.TrimSpace(req.Command)
	if command == "" {
		c.JSON(http.StatusBadRequest, Response{Error: "Missing command"})
		return
	}

	url, ok := videoid.FindURL(command)
	if !ok {
		c.JSON(http.StatusBadRequest, Response{Error: "No YouTube URL found in command. Please provide a YouTube URL."})
		return
	}

	apiKey := c.GetHeader(s.keyHeader)
	if apiKey == "" {
		apiKey = s.apiKey
	}
	sum, err := s.newSummarizer(apiKey)
	if err != nil {
		s.logger.Warn(ctx, "Cannot build summarizer: %v", err)
		c.JSON(statusFor(err), Response{Error: err.Error()})
		return
	}

	result, err := sum.Run(ctx, url)
	if err != nil {
		s.logger.Error(ctx, "Summarize %s failed: %v", url, err)
		c.JSON(statusFor(err), Response{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Result: result})
}

// statusFor maps pipeline errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, generator.ErrMissingCredential):
		return http.StatusUnauthorized
	case errors.Is(err, summarizer.ErrInvalidURL):
		return http.StatusBadRequest
	case errors.Is(err, summarizer.ErrTranscriptUnavailable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, summarizer.ErrUpstreamService):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
