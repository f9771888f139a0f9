package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/openaws/openaws-api/internal/api"
	apiMiddleware "github.com/openaws/openaws-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.logger,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	progressHandler := api.NewProgressHandler(app.progressService, app.logger)
	reviewHandler := api.NewReviewHandler(app.progressService, app.logger)
	examHandler := api.NewExamHandler(app.progressService, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Progress endpoints
			r.Get("/progress", progressHandler.GetProgress)
			r.Post("/progress/answers", progressHandler.RecordAnswer)
			r.Get("/progress/incorrect", progressHandler.GetIncorrectQuestions)
			r.Post("/progress/reset", progressHandler.ResetProgress)

			// Review endpoints
			r.Get("/reviews/due", reviewHandler.GetDueReviews)
			r.Post("/reviews/{questionID}", reviewHandler.ScheduleReview)

			// Exam endpoints
			r.Post("/exams/attempts", examHandler.SubmitAttempt)
			r.Get("/exams/attempts", examHandler.ListAttempts)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
