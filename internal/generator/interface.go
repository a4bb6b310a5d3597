package generator

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrEmptyResponse is returned when the model answers with no text.
	ErrEmptyResponse = errors.New("empty response from model")
	// ErrMissingCredential is returned when no API key was supplied.
	ErrMissingCredential = errors.New("missing API key")
)

// Prompt is the full request sent to the model.
type Prompt struct {
	System string
	User   string
}

// Generator turns a prompt into model output text.
type Generator interface {
	Generate(ctx context.Context, prompt Prompt) (string, error)
	Model() string
}

// APIError carries what the provider said about a failed call.
type APIError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s API error: %s", e.Provider, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
