// Package relay is the caller side of the content relay: it posts a
// generation request to the relay server, waits for the single JSON reply
// and unwraps the generated text or image URL.
//
// A Client holds only immutable configuration and a concurrency-safe HTTP
// client, so one Client may serve any number of goroutines. Calls are never
// retried and carry no timeout beyond the caller's context.
package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/phrazzld/sahayak-api/internal/domain"
	"github.com/phrazzld/sahayak-api/internal/generation"
	"github.com/phrazzld/sahayak-api/internal/platform/logger"
	"github.com/phrazzld/sahayak-api/internal/redact"
	"resty.dev/v3"
)

// Relay endpoints, relative to the configured base URL.
const (
	ContentPath = "/functions/v1/generate-ai-content"
	ImagePath   = "/functions/v1/generate-educational-image"
)

// Config identifies the relay endpoint and the client-held key.
type Config struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

// Client calls the relay functions.
type Client struct {
	httpClient *resty.Client
	logger     *slog.Logger
}

// ContentRequest is the body posted to the content function.
type ContentRequest struct {
	Prompt    string `json:"prompt"`
	Type      string `json:"type,omitempty"`
	Language  string `json:"language,omitempty"`
	Grade     string `json:"grade,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Challenge string `json:"challenge,omitempty"`
}

// ImageRequest is the body posted to the image function.
type ImageRequest struct {
	Prompt string `json:"prompt"`
}

type contentResponse struct {
	Content *string `json:"content"`
	Error   string  `json:"error"`
}

type imageResponse struct {
	ImageURL *string `json:"imageUrl"`
	Error    string  `json:"error"`
}

// NewClient validates cfg and builds a Client. A missing base URL or API key
// fails with generation.ErrConfiguration; there is no fallback credential.
func NewClient(cfg Config, l *slog.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("%w: relay base URL is not configured", generation.ErrConfiguration)
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: relay base URL %q is not an absolute URL", generation.ErrConfiguration, cfg.BaseURL)
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%w: relay API key is not configured", generation.ErrConfiguration)
	}
	if l == nil {
		l = slog.Default()
	}

	httpClient := resty.New()
	httpClient.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/"))
	httpClient.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	httpClient.SetHeader("apikey", cfg.APIKey)
	httpClient.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient: httpClient,
		logger:     l.With("component", "relay_client"),
	}, nil
}

// Close releases the underlying HTTP client.
func (c *Client) Close() error {
	return c.httpClient.Close()
}

// Relay sends an already-composed prompt and returns the generated text.
// No content type is sent, so the server forwards the prompt unchanged.
func (c *Client) Relay(ctx context.Context, prompt string) (string, error) {
	return c.postContent(ctx, ContentRequest{Prompt: prompt})
}

// Generate sends req for server-side composition and returns the generated text.
func (c *Client) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	return c.postContent(ctx, ContentRequest{
		Prompt:    req.Prompt,
		Type:      string(req.Type),
		Language:  req.Language,
		Grade:     req.Grade,
		Subject:   req.Subject,
		Challenge: req.Challenge,
	})
}

// GenerateImage sends prompt to the image function and returns the image URL.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	status, body, err := c.post(ctx, ImagePath, ImageRequest{Prompt: prompt})
	if err != nil {
		return "", err
	}

	var decoded imageResponse
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		return "", generation.NewRemoteCallError(ImagePath, status, body,
			fmt.Errorf("%w: %v", generation.ErrInvalidResponse, err))
	}
	if decoded.ImageURL == nil {
		return "", generation.NewRemoteCallError(ImagePath, status, body,
			fmt.Errorf("%w: missing imageUrl", generation.ErrInvalidResponse))
	}
	return *decoded.ImageURL, nil
}

func (c *Client) postContent(ctx context.Context, req ContentRequest) (string, error) {
	status, body, err := c.post(ctx, ContentPath, req)
	if err != nil {
		return "", err
	}

	var decoded contentResponse
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		return "", generation.NewRemoteCallError(ContentPath, status, body,
			fmt.Errorf("%w: %v", generation.ErrInvalidResponse, err))
	}
	if decoded.Content == nil {
		return "", generation.NewRemoteCallError(ContentPath, status, body,
			fmt.Errorf("%w: missing content", generation.ErrInvalidResponse))
	}
	return *decoded.Content, nil
}

// post performs one POST and returns the status and raw body of a 2xx reply.
// Transport failures and non-2xx statuses become RemoteCallErrors.
func (c *Client) post(ctx context.Context, path string, payload any) (int, string, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	response, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(path)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return 0, "", err
		}
		log.ErrorContext(ctx, "relay request failed", "path", path, "error", redact.Error(err))
		return 0, "", generation.NewRemoteCallError(path, 0, "", err)
	}

	body := response.String()
	if !response.IsSuccess() {
		log.WarnContext(ctx, "relay returned an error status",
			"path", path,
			"status", response.StatusCode(),
			"body", redact.String(body))
		return response.StatusCode(), body, generation.NewRemoteCallError(path, response.StatusCode(), body, nil)
	}

	return response.StatusCode(), body, nil
}
