package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/draftwise/draftwise/internal/config"
	"github.com/draftwise/draftwise/pkg/logger"
	openai "github.com/sashabaranov/go-openai"
)

// ChatProvider is the seam to the external LLM. A second provider can be
// added by implementing Complete without touching EmailService.
type ChatProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

var (
	ErrMissingAPIKey     = errors.New("no API key configured for the LLM provider")
	ErrInvalidAPIKey     = errors.New("LLM provider rejected the API key")
	ErrInsufficientQuota = errors.New("LLM provider reports insufficient balance or quota")
)

// UpstreamError is any other non-success reply from the provider.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("LLM provider returned status %d: %s", e.StatusCode, e.Body)
}

// OpenAIProvider calls an OpenAI-compatible chat completion endpoint.
type OpenAIProvider struct {
	cfg    *config.OpenAIConfig
	client *openai.Client
}

func NewOpenAIProvider(cfg *config.OpenAIConfig) *OpenAIProvider {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	clientConfig.HTTPClient = &http.Client{Timeout: timeout}

	return &OpenAIProvider{
		cfg:    cfg,
		client: openai.NewClientWithConfig(clientConfig),
	}
}

func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	// Checked before any network I/O so a misconfigured process fails fast.
	if p.cfg.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	model := p.cfg.Model
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are an expert email writing assistant.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.7,
	})
	if err != nil {
		mapped := mapProviderError(err)
		logger.Error().Err(mapped).Str("model", model).Msg("LLM completion failed")
		return "", mapped
	}

	if len(resp.Choices) == 0 {
		return "", &UpstreamError{StatusCode: http.StatusOK, Body: "no choices in response"}
	}

	content := resp.Choices[0].Message.Content
	logger.Debug().Int("chars", len(content)).Str("model", model).Msg("LLM completion succeeded")
	return content, nil
}

// mapProviderError translates go-openai errors into the provider error
// taxonomy: 401 credential, 402 quota, other non-2xx upstream, plus
// timeout and connection failures.
func mapProviderError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return mapStatus(apiErr.HTTPStatusCode, apiErr.Message, err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return mapStatus(reqErr.HTTPStatusCode, reqErr.Error(), err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("LLM request timed out: %w", err)
	}

	return fmt.Errorf("failed to reach LLM provider: %w", err)
}

func mapStatus(status int, body string, cause error) error {
	switch status {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrInvalidAPIKey, body)
	case http.StatusPaymentRequired:
		return fmt.Errorf("%w: %s", ErrInsufficientQuota, body)
	case 0:
		// No HTTP status means the request never completed.
		return fmt.Errorf("failed to reach LLM provider: %w", cause)
	default:
		return &UpstreamError{StatusCode: status, Body: body}
	}
}
