package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"interview-prep/internal/config"
	"interview-prep/internal/domain"
	"interview-prep/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// CompletionModel is the slice of the langchaingo client the gateway needs.
// Both *openai.LLM and *ollama.LLM satisfy it, and tests substitute a fake
// returning canned responses.
type CompletionModel interface {
	Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error)
}

// Gateway implements domain.CompletionService against a text-generation
// model. Every call is bounded by a timeout so a stalled provider cannot
// block a request indefinitely.
type Gateway struct {
	model   CompletionModel
	timeout time.Duration
}

// NewGateway wraps an already-constructed completion model.
func NewGateway(model CompletionModel, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Gateway{model: model, timeout: timeout}
}

// NewCompletionModel constructs the provider-specific langchaingo client
// selected by configuration.
func NewCompletionModel(cfg config.AIConfig) (CompletionModel, error) {
	httpClient := &http.Client{
		Timeout: cfg.RequestTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     10 * time.Second,
		},
	}

	switch cfg.Provider {
	case "openai":
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("openai API key is not configured")
		}
		return openai.New(
			openai.WithToken(cfg.OpenAI.APIKey),
			openai.WithModel(cfg.OpenAI.Model),
			openai.WithHTTPClient(httpClient),
		)
	case "ollama":
		return ollama.New(
			ollama.WithServerURL(cfg.Ollama.ServerURL),
			ollama.WithModel(cfg.Ollama.Model),
			ollama.WithHTTPClient(httpClient),
		)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", cfg.Provider)
	}
}

// Complete sends the prompt to the model and returns the raw response text.
func (g *Gateway) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	response, err := g.model.Call(ctx, prompt, llms.WithTemperature(0.7))
	if err != nil {
		logger.Get().Error("LLM call failed",
			zap.Error(err),
			zap.Int("prompt_len", len(prompt)))
		return "", domain.NewAIServiceError(err)
	}
	return response, nil
}

// CompleteJSON sends the prompt and unmarshals the model's JSON reply into
// out, tolerating a surrounding markdown code fence.
func (g *Gateway) CompleteJSON(ctx context.Context, prompt string, out interface{}) error {
	raw, err := g.Complete(ctx, prompt)
	if err != nil {
		return err
	}
	if err := DecodeJSON(raw, out); err != nil {
		logger.Get().Error("Failed to decode LLM JSON response",
			zap.Error(err),
			zap.String("raw_response", raw))
		return err
	}
	return nil
}

// DecodeJSON extracts a JSON document from raw model output. Models often
// wrap JSON in a fenced code block (```json ... ``` or a bare fence) or
// surround it with conversational text, so the payload is located between
// the first '{' or '[' and its matching end before unmarshalling.
func DecodeJSON(raw string, out interface{}) error {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if end := strings.LastIndex(text, "```"); end >= 0 {
			text = text[:end]
		}
		text = strings.TrimSpace(text)
	}

	// Tolerate leading/trailing prose around the JSON document.
	if !strings.HasPrefix(text, "{") && !strings.HasPrefix(text, "[") {
		objStart := strings.Index(text, "{")
		arrStart := strings.Index(text, "[")
		start := objStart
		end := strings.LastIndex(text, "}")
		if objStart == -1 || (arrStart != -1 && arrStart < objStart) {
			start = arrStart
			end = strings.LastIndex(text, "]")
		}
		if start == -1 || end <= start {
			return domain.NewAIResponseParseError(fmt.Errorf("no JSON document found in response"))
		}
		text = text[start : end+1]
	}

	if err := json.Unmarshal([]byte(text), out); err != nil {
		return domain.NewAIResponseParseError(err)
	}
	return nil
}

var _ domain.CompletionService = (*Gateway)(nil)
