package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/sahayak-api/internal/api"
	apiMiddleware "github.com/phrazzld/sahayak-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	generationHandler := api.NewGenerationHandler(app.generationService)

	// Relay functions accept user tokens and the project API key alike.
	r.Route("/functions/v1", func(r chi.Router) {
		r.Use(apiMiddleware.CORS)
		r.Use(authMiddleware.Authenticate)

		r.Post("/generate-ai-content", generationHandler.GenerateContent)
		r.Post("/generate-educational-image", generationHandler.GenerateImage)
	})

	if app.profileService != nil && app.classroomService != nil {
		profileHandler := api.NewProfileHandler(app.profileService)
		classroomHandler := api.NewClassroomHandler(app.classroomService)

		r.Route("/api", func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(authMiddleware.RequireUser)

			r.Get("/profile", profileHandler.GetProfile)

			r.Get("/assignments", classroomHandler.ListAssignments)
			r.Post("/assignments", classroomHandler.CreateAssignment)

			r.Get("/students", classroomHandler.ListStudents)
			r.Post("/students", classroomHandler.CreateStudent)
		})
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
