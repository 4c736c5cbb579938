package api

import (
	"context"
	"net/http"

	"github.com/phrazzld/sahayak-api/internal/api/shared"
	"github.com/phrazzld/sahayak-api/internal/domain"
	"github.com/phrazzld/sahayak-api/internal/platform/logger"
)

// GenerationService is the subset of generation.Service the relay handlers use.
type GenerationService interface {
	GenerateContent(ctx context.Context, req domain.GenerationRequest) (string, error)
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// GenerationHandler serves the content and image relay functions.
type GenerationHandler struct {
	service GenerationService
}

// NewGenerationHandler creates a new GenerationHandler
func NewGenerationHandler(service GenerationService) *GenerationHandler {
	return &GenerationHandler{service: service}
}

// GenerateContent handles POST /functions/v1/generate-ai-content.
// The request is composed into a prompt for its content type, with the
// language defaulting to Hindi, and the generated text is returned as
// {"content": ...}.
func (h *GenerationHandler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	var req GenerateContentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	genReq := req.ToDomain()
	logger.FromContext(r.Context()).Info("generating content",
		"content_type", string(genReq.Type),
		"language", genReq.Language,
		"grade", genReq.Grade)

	content, err := h.service.GenerateContent(r.Context(), genReq)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate content")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateContentResponse{Content: content})
}

// GenerateImage handles POST /functions/v1/generate-educational-image and
// returns {"imageUrl": ...}.
func (h *GenerationHandler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	var req GenerateImageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	logger.FromContext(r.Context()).Info("generating educational image",
		"prompt_length", len(req.Prompt))

	url, err := h.service.GenerateImage(r.Context(), req.Prompt)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate image")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateImageResponse{ImageURL: url})
}
