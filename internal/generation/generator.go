package generation

import "context"

// TextGenerator sends a finished prompt to a generative-language API and
// returns the generated text verbatim.
//
// Implementations must be safe for concurrent use and must not retry.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ImageGenerator sends a finished prompt to an image-generation API and
// returns the URL of the generated image.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}
