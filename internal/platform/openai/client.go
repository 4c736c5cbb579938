// Package openai implements generation.ImageGenerator against the OpenAI
// Images API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/sahayak-api/internal/config"
	"github.com/phrazzld/sahayak-api/internal/generation"
	"github.com/phrazzld/sahayak-api/internal/platform/logger"
	"github.com/phrazzld/sahayak-api/internal/redact"
	"resty.dev/v3"
)

const (
	imagesPath   = "/images/generations"
	endpointName = "openai images"
)

// Client generates images through the OpenAI Images API.
type Client struct {
	httpClient *resty.Client
	model      string
	size       string
	logger     *slog.Logger
}

var _ generation.ImageGenerator = (*Client)(nil)

// ImageRequest is the body of an image generation call.
type ImageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

// ImageResponse is the subset of the API response that is used.
type ImageResponse struct {
	Data []ImageData `json:"data"`
}

// ImageData describes one generated image.
type ImageData struct {
	URL           string `json:"url"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

// NewClient creates a Client from cfg. An empty API key fails with
// generation.ErrConfiguration.
func NewClient(cfg config.ImageConfig, l *slog.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
		return nil, fmt.Errorf("%w: OpenAI API key is not configured", generation.ErrConfiguration)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = config.DefaultImageURL
	}
	if cfg.Model == "" {
		cfg.Model = config.DefaultImageModel
	}
	if cfg.Size == "" {
		cfg.Size = config.DefaultImageSize
	}
	if l == nil {
		l = slog.Default()
	}

	httpClient := resty.New()
	httpClient.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/"))
	httpClient.SetHeader("Authorization", "Bearer "+cfg.OpenAIAPIKey)
	httpClient.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient: httpClient,
		model:      cfg.Model,
		size:       cfg.Size,
		logger:     l.With("component", "openai_images", "model", cfg.Model),
	}, nil
}

// Close releases the underlying HTTP client.
func (c *Client) Close() error {
	return c.httpClient.Close()
}

// GenerateImage requests one image for prompt and returns its URL.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	body := ImageRequest{
		Model:  c.model,
		Prompt: prompt,
		N:      1,
		Size:   c.size,
	}

	log.DebugContext(ctx, "calling OpenAI Images API", "prompt_length", len(prompt))

	response, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&ImageResponse{}).
		Post(imagesPath)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		status := 0
		if response != nil {
			status = response.StatusCode()
		}
		callErr := generation.NewRemoteCallError(endpointName, status, "", err)
		log.ErrorContext(ctx, "OpenAI Images API call failed", "error", redact.Error(callErr))
		return "", callErr
	}
	if response.IsError() {
		callErr := generation.NewRemoteCallError(endpointName, response.StatusCode(), response.String(), nil)
		log.ErrorContext(ctx, "OpenAI Images API returned an error",
			"status", response.StatusCode(),
			"error", redact.Error(callErr))
		return "", callErr
	}

	result, _ := response.Result().(*ImageResponse)
	if result == nil || len(result.Data) == 0 || result.Data[0].URL == "" {
		return "", generation.NewRemoteCallError(endpointName, response.StatusCode(), response.String(),
			fmt.Errorf("%w: no image URL in response", generation.ErrInvalidResponse))
	}

	log.DebugContext(ctx, "OpenAI Images API call succeeded")
	return result.Data[0].URL, nil
}
