package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/phrazzld/sahayak-api/internal/api/middleware"
	"github.com/phrazzld/sahayak-api/internal/config"
	"github.com/phrazzld/sahayak-api/internal/domain"
	"github.com/phrazzld/sahayak-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "router-test-secret-0123456789abcdef"

// echoGenerator returns the prompt it was given.
type echoGenerator struct {
	mu      sync.Mutex
	prompts []string
}

func (g *echoGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	return "generated: " + prompt, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "debug"},
		Auth:   config.AuthConfig{JWTSecret: testJWTSecret},
		LLM:    config.LLMConfig{GeminiAPIKey: "test", ModelName: config.DefaultGeminiModel},
	}
}

func newTestApp(t *testing.T, withDB bool) (*application, *echoGenerator) {
	t.Helper()

	log, _ := logger.GetTestLogger(t)
	gen := &echoGenerator{}

	app, err := newApplicationWithGenerators(testConfig(), log, nil, gen)
	require.NoError(t, err)

	if withDB {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = db.Close()
			assert.NoError(t, mock.ExpectationsWereMet())
		})
		app, err = newApplicationWithGenerators(testConfig(), log, db, gen)
		require.NoError(t, err)
	}

	return app, gen
}

func tokenFor(t *testing.T, app *application, identity domain.Identity) string {
	t.Helper()
	token, err := app.jwtService.GenerateToken(context.Background(), identity, time.Hour)
	require.NoError(t, err)
	return token
}

func TestHealth(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, false)
	rec := httptest.NewRecorder()
	app.setupRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRelayPreflight(t *testing.T) {
	t.Parallel()

	app, gen := newTestApp(t, false)
	router := app.setupRouter()

	for _, path := range []string{"/functions/v1/generate-ai-content", "/functions/v1/generate-educational-image"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Empty(t, rec.Body.String())
			assert.Equal(t, middleware.CORSAllowOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, middleware.CORSAllowHeaders, rec.Header().Get("Access-Control-Allow-Headers"))
		})
	}
	assert.Empty(t, gen.prompts)
}

func TestRelayRequiresToken(t *testing.T) {
	t.Parallel()

	app, gen := newTestApp(t, false)
	req := httptest.NewRequest(http.MethodPost, "/functions/v1/generate-ai-content",
		strings.NewReader(`{"prompt":"rainbows"}`))
	rec := httptest.NewRecorder()
	app.setupRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, middleware.CORSAllowOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, gen.prompts)
}

func TestRelayGenerateContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		identity domain.Identity
	}{
		{"project key", domain.Identity{}},
		{"signed-in user", domain.Identity{Subject: uuid.New(), Email: "asha@example.com"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app, gen := newTestApp(t, false)

			req := httptest.NewRequest(http.MethodPost, "/functions/v1/generate-ai-content",
				strings.NewReader(`{"prompt":"Why is the sky blue?","type":"qa"}`))
			req.Header.Set("Authorization", "Bearer "+tokenFor(t, app, tc.identity))
			rec := httptest.NewRecorder()
			app.setupRouter().ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, middleware.CORSAllowOrigin, rec.Header().Get("Access-Control-Allow-Origin"))

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Len(t, gen.prompts, 1)
			assert.Equal(t, "generated: "+gen.prompts[0], body["content"])
			assert.Contains(t, gen.prompts[0], "Question: Why is the sky blue?")
			assert.Contains(t, gen.prompts[0], "in Hindi")
		})
	}
}

func TestRelayImageDisabled(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, false)
	req := httptest.NewRequest(http.MethodPost, "/functions/v1/generate-educational-image",
		strings.NewReader(`{"prompt":"a banyan tree"}`))
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, app, domain.Identity{}))
	rec := httptest.NewRecorder()
	app.setupRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "OpenAI API key is not configured")
}

func TestClassroomRoutes(t *testing.T) {
	t.Parallel()

	t.Run("not mounted without a database", func(t *testing.T) {
		app, _ := newTestApp(t, false)
		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, app, domain.Identity{Subject: uuid.New()}))
		rec := httptest.NewRecorder()
		app.setupRouter().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("project key is rejected", func(t *testing.T) {
		app, _ := newTestApp(t, true)
		req := httptest.NewRequest(http.MethodGet, "/api/assignments", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, app, domain.Identity{}))
		rec := httptest.NewRecorder()
		app.setupRouter().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "User sign-in required")
	})

	t.Run("missing token", func(t *testing.T) {
		app, _ := newTestApp(t, true)
		rec := httptest.NewRecorder()
		app.setupRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/students", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
