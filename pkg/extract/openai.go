package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"
)

// DefaultOpenAIEndpoint is the hosted chat completions API base URL.
const DefaultOpenAIEndpoint = "https://api.openai.com"

// OpenAIBackend implements LLMBackend against the OpenAI chat completions
// API. Also works with OpenAI-compatible servers (vLLM, LM Studio, etc.)
// by pointing the endpoint elsewhere.
type OpenAIBackend struct {
	endpoint string
	model    string
	apiKey   string
	client   *http.Client
	limiter  *rate.Limiter
}

// OpenAIOption configures the OpenAIBackend.
type OpenAIOption func(*OpenAIBackend)

// WithHTTPClient overrides the default HTTP client (and its timeout).
func WithHTTPClient(c *http.Client) OpenAIOption {
	return func(b *OpenAIBackend) {
		b.client = c
	}
}

// WithAPIKey sets the bearer token explicitly instead of reading
// OPENAI_API_KEY from the environment.
func WithAPIKey(key string) OpenAIOption {
	return func(b *OpenAIBackend) {
		b.apiKey = key
	}
}

// WithRateLimit applies a token-bucket limit to outbound calls.
func WithRateLimit(perSecond float64, burst int) OpenAIOption {
	return func(b *OpenAIBackend) {
		b.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// NewOpenAIBackend creates a backend for the given endpoint and model.
func NewOpenAIBackend(endpoint, model string, opts ...OpenAIOption) *OpenAIBackend {
	if endpoint == "" {
		endpoint = DefaultOpenAIEndpoint
	}
	b := &OpenAIBackend{
		endpoint: endpoint,
		model:    model,
		apiKey:   os.Getenv("OPENAI_API_KEY"),
		client:   &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the backend name.
func (*OpenAIBackend) Name() string {
	return "openai"
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Model   string       `json:"model"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Generate calls POST /v1/chat/completions. All failure modes are wrapped
// in ErrGateway so callers can fall through to the static tables.
func (b *OpenAIBackend) Generate(
	ctx context.Context,
	req GenerateRequest,
) (GenerateResponse, error) {
	if b.limiter != nil {
		if err := b.limiter.Wait(ctx); err != nil {
			return GenerateResponse{}, fmt.Errorf("%w: rate limiter: %v", ErrGateway, err)
		}
	}

	messages := []chatMessage{{Role: "user", Content: req.Prompt}}
	if req.SystemMsg != "" {
		messages = append(
			[]chatMessage{{Role: "system", Content: req.SystemMsg}},
			messages...,
		)
	}

	chatReq := chatRequest{
		Model:     b.model,
		Messages:  messages,
		MaxTokens: req.MaxTokens,
	}
	if req.Temperature > 0 {
		chatReq.Temperature = &req.Temperature
	}

	body, err := json.Marshal(chatReq)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("%w: marshaling request: %v", ErrGateway, err)
	}

	url := b.endpoint + "/v1/chat/completions"

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		url,
		bytes.NewReader(body),
	)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("%w: creating HTTP request: %v", ErrGateway, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if b.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+b.apiKey)
	}

	resp, err := b.client.Do(httpReq)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("%w: calling completions API: %v", ErrGateway, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("%w: reading response: %v", ErrGateway, err)
	}

	if resp.StatusCode != http.StatusOK {
		return GenerateResponse{}, fmt.Errorf(
			"%w: completions API status %d: %s",
			ErrGateway, resp.StatusCode, string(respBody),
		)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return GenerateResponse{}, fmt.Errorf("%w: parsing response: %v", ErrGateway, err)
	}

	if len(chatResp.Choices) == 0 {
		return GenerateResponse{}, fmt.Errorf("%w: empty choices in response", ErrGateway)
	}

	return GenerateResponse{
		Content: chatResp.Choices[0].Message.Content,
		Model:   chatResp.Model,
		Usage: TokenUsage{
			PromptTokens:     chatResp.Usage.PromptTokens,
			CompletionTokens: chatResp.Usage.CompletionTokens,
			TotalTokens:      chatResp.Usage.TotalTokens,
		},
	}, nil
}
