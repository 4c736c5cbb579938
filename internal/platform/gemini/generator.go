package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/sahayak-api/internal/config"
	"github.com/phrazzld/sahayak-api/internal/generation"
	"github.com/phrazzld/sahayak-api/internal/platform/logger"
	"github.com/phrazzld/sahayak-api/internal/redact"
	"google.golang.org/genai"
)

// endpointName identifies Gemini on RemoteCallErrors.
const endpointName = "gemini"

// Generator implements generation.TextGenerator using the Gemini API.
type Generator struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

var _ generation.TextGenerator = (*Generator)(nil)

// Option customises the underlying client configuration.
type Option func(*genai.ClientConfig)

// WithHTTPClient sets the HTTP client used to reach the API.
func WithHTTPClient(c *http.Client) Option {
	return func(cc *genai.ClientConfig) {
		cc.HTTPClient = c
	}
}

// NewGenerator creates a Generator from cfg. An empty API key or model name
// fails with generation.ErrConfiguration.
func NewGenerator(ctx context.Context, l *slog.Logger, cfg config.LLMConfig, opts ...Option) (*Generator, error) {
	if l == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrConfiguration)
	}
	if strings.TrimSpace(cfg.ModelName) == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrConfiguration)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	for _, opt := range opts {
		opt(clientConfig)
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %s",
			generation.ErrConfiguration, redact.Error(err))
	}

	return &Generator{
		client: client,
		model:  cfg.ModelName,
		logger: l.With("component", "gemini_generator", "model", cfg.ModelName),
	}, nil
}

// GenerateText sends prompt to Gemini and returns the generated text.
func (g *Generator) GenerateText(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContextOrDefault(ctx, g.logger)

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	log.DebugContext(ctx, "calling Gemini API", "prompt_length", len(prompt))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		callErr := translateError(err)
		log.ErrorContext(ctx, "Gemini API call failed", "error", redact.Error(callErr))
		return "", callErr
	}

	text, err := extractText(resp)
	if err != nil {
		log.WarnContext(ctx, "unusable Gemini response", "error", err)
		return "", err
	}

	log.DebugContext(ctx, "Gemini API call succeeded", "response_length", len(text))
	return text, nil
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("%w: prompt blocked (%s)",
				generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
		}
		return "", fmt.Errorf("%w: no candidates in response", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", generation.ErrContentBlocked
	}
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: no text in response", generation.ErrInvalidResponse)
	}
	return sb.String(), nil
}

// translateError converts a client error into a RemoteCallError. Context
// cancellation is passed through unchanged.
func translateError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return generation.NewRemoteCallError(endpointName, apiErr.Code, apiErr.Message, nil)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return generation.NewRemoteCallError(endpointName, apiErrPtr.Code, apiErrPtr.Message, nil)
	}

	return generation.NewRemoteCallError(endpointName, 0, "", err)
}
