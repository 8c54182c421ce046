package extract

import (
	"context"
	"errors"
)

// ErrGateway wraps every completion gateway failure (network, auth, rate
// limit, malformed response). Callers recover from it via the static
// tables; it is never surfaced to API clients as a hard error.
var ErrGateway = errors.New("completion gateway failure")

// GenerateRequest is the input for one completion call.
type GenerateRequest struct {
	SystemMsg   string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// TokenUsage tracks completion token consumption.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// GenerateResponse holds the result of one completion call.
type GenerateResponse struct {
	Content string
	Model   string
	Usage   TokenUsage
}

// LLMBackend is the completion gateway boundary.
type LLMBackend interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	Name() string
}
