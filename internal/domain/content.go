package domain

import "strings"

// ContentType selects the prompt template used for a generation request.
type ContentType string

// Supported content types.
const (
	ContentTypeStory     ContentType = "story"
	ContentTypeQA        ContentType = "qa"
	ContentTypeWorksheet ContentType = "worksheet"
	ContentTypeLesson    ContentType = "lesson"
	ContentTypeVisual    ContentType = "visual"
	ContentTypeTips      ContentType = "tips"
)

// DefaultLanguage is used when a request does not name a language.
const DefaultLanguage = "Hindi"

// ContentTypes lists every recognised content type in display order.
func ContentTypes() []ContentType {
	return []ContentType{
		ContentTypeStory,
		ContentTypeQA,
		ContentTypeWorksheet,
		ContentTypeLesson,
		ContentTypeVisual,
		ContentTypeTips,
	}
}

// IsKnown reports whether t is one of the recognised content types.
// Unknown types are not an error: they fall back to the raw prompt.
func (t ContentType) IsKnown() bool {
	switch t {
	case ContentTypeStory, ContentTypeQA, ContentTypeWorksheet,
		ContentTypeLesson, ContentTypeVisual, ContentTypeTips:
		return true
	default:
		return false
	}
}

// GenerationRequest carries one user action's parameters. It is built per
// call and never persisted.
type GenerationRequest struct {
	Type      ContentType `json:"type"`
	Prompt    string      `json:"prompt"`
	Language  string      `json:"language"`
	Grade     string      `json:"grade,omitempty"`
	Subject   string      `json:"subject,omitempty"`
	Challenge string      `json:"challenge,omitempty"`
}

// WithDefaults returns a copy of r with a blank language replaced by
// DefaultLanguage.
func (r GenerationRequest) WithDefaults() GenerationRequest {
	if strings.TrimSpace(r.Language) == "" {
		r.Language = DefaultLanguage
	}
	return r
}

// Validate checks the fields a caller must supply before generating.
// Tips are driven by subject, grade and challenge, so they may omit the prompt.
func (r GenerationRequest) Validate() error {
	if r.Type == ContentTypeTips {
		if strings.TrimSpace(r.Subject) == "" {
			return NewValidationError("subject", "required field", ErrEmptyContent)
		}
		if strings.TrimSpace(r.Challenge) == "" {
			return NewValidationError("challenge", "required field", ErrEmptyContent)
		}
		return nil
	}
	if strings.TrimSpace(r.Prompt) == "" {
		return NewValidationError("prompt", "required field", ErrEmptyContent)
	}
	return nil
}

// GenerationResult holds either generated text or an image URL.
type GenerationResult struct {
	Text     string `json:"content,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}
