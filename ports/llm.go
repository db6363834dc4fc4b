package ports

import (
	"context"
	"errors"
	"fmt"
)

// LLMClient interface for LLM providers
type LLMClient interface {
	ChatCompletion(ctx context.Context, model string, prompt string, maxTokens int) (string, error)
}

// APIError is a non-2xx reply from the provider. The status code is kept so
// callers can tell credential problems from quota exhaustion.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openai http %d: %s", e.Status, e.Body)
}

// ErrMalformedResponse marks replies that came back 2xx but could not be
// decoded into an answer.
var ErrMalformedResponse = errors.New("malformed openai response")
