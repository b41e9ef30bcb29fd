package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/togetai/feedback-api/internal/handlers"
	"github.com/togetai/feedback-api/internal/middleware"
)

func SetupRoutes(r *chi.Mux, h *handlers.Handler, adminAPIKey string) {
	// Public form submission
	r.Post("/api/submit-feedback", h.SubmitFeedback)

	// Health checks
	r.Get("/health", h.HealthCheck)
	r.Get("/api/health", h.HealthCheck)

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminAuth(adminAPIKey))
		r.Get("/api/feedback", h.GetFeedback)
		r.Get("/api/feedback/stats", h.GetFeedbackStats)
		r.Delete("/api/feedback/{id}", h.DeleteFeedback)
	})
}
