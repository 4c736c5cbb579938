package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/sahayak-api/internal/api/shared"
	"github.com/phrazzld/sahayak-api/internal/domain"
	"github.com/phrazzld/sahayak-api/internal/generation"
	"github.com/phrazzld/sahayak-api/internal/service"
	"github.com/phrazzld/sahayak-api/internal/service/auth"
	"github.com/phrazzld/sahayak-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"nil error", nil, http.StatusInternalServerError},
		{"authentication error", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"wrapped authentication error", fmt.Errorf("failed: %w", auth.ErrExpiredToken), http.StatusUnauthorized},
		{"missing identity", service.ErrIdentityRequired, http.StatusUnauthorized},
		{"not found", store.ErrProfileNotFound, http.StatusNotFound},
		{"duplicate", store.ErrProfileExists, http.StatusConflict},
		{"domain validation", domain.NewValidationError("title", "required field", domain.ErrEmptyContent), http.StatusBadRequest},
		{"invalid entity", fmt.Errorf("%w: bad", store.ErrInvalidEntity), http.StatusBadRequest},
		{"empty body", shared.ErrEmptyBody, http.StatusBadRequest},
		{"configuration", generation.ErrConfiguration, http.StatusInternalServerError},
		{"remote call", generation.NewRemoteCallError("gemini", 503, "overloaded", nil), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStatus, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"invalid token", auth.ErrInvalidToken, "Invalid token"},
		{"validation names field", domain.NewValidationError("grade", "required field", nil), "Invalid grade: required field"},
		{"profile not found", store.ErrProfileNotFound, "Profile not found"},
		{
			"image key missing",
			fmt.Errorf("%w: OpenAI API key is not configured", generation.ErrConfiguration),
			"OpenAI API key is not configured",
		},
		{"other configuration", generation.ErrConfiguration, "Content generation is not configured"},
		{"content blocked", generation.ErrContentBlocked, "Content blocked by safety filters"},
		{
			"upstream body is not leaked",
			generation.NewRemoteCallError("gemini", 400, `{"error":"API key AIzaSyXXXX invalid"}`, nil),
			"Failed to generate content",
		},
		{"unknown", errors.New("pq: relation does not exist"), "An unexpected error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	validate := validator.New()
	score := 150

	err := validate.Struct(CreateStudentRequest{Name: "Ravi", Grade: "3", PerformanceScore: &score})
	assert.Equal(t, "Invalid performance_score: too large", SanitizeValidationError(err))

	err = validate.Struct(CreateAssignmentRequest{Subject: "Science", Grade: "5"})
	assert.Equal(t, "Invalid title: required field", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("other")))
}
