package generation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/sahayak-api/internal/domain"
)

// Service composes prompts and forwards them to the configured generators.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	text   TextGenerator
	image  ImageGenerator
	logger *slog.Logger
}

// NewService creates a Service. text is required; image may be nil, in which
// case GenerateImage fails with ErrConfiguration.
func NewService(text TextGenerator, image ImageGenerator, logger *slog.Logger) (*Service, error) {
	if text == nil {
		return nil, fmt.Errorf("%w: text generator cannot be nil", ErrConfiguration)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{text: text, image: image, logger: logger.With("component", "generation_service")}, nil
}

// GenerateContent composes the prompt for req and returns the generated text.
// The caller is responsible for applying request defaults.
func (s *Service) GenerateContent(ctx context.Context, req domain.GenerationRequest) (string, error) {
	prompt := ComposeRequest(req)
	if strings.TrimSpace(prompt) == "" {
		return "", domain.NewValidationError("prompt", "required field", domain.ErrEmptyContent)
	}

	s.logger.DebugContext(ctx, "composed prompt",
		"content_type", string(req.Type),
		"known_type", req.Type.IsKnown(),
		"prompt_length", len(prompt))

	text, err := s.text.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate %q content: %w", req.Type, err)
	}
	return text, nil
}

// GenerateImage returns the URL of an image generated for prompt.
func (s *Service) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if s.image == nil {
		return "", fmt.Errorf("%w: OpenAI API key is not configured", ErrConfiguration)
	}
	if strings.TrimSpace(prompt) == "" {
		return "", domain.NewValidationError("prompt", "required field", domain.ErrEmptyContent)
	}

	url, err := s.image.GenerateImage(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate image: %w", err)
	}
	return url, nil
}
