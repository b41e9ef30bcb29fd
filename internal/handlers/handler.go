package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/togetai/feedback-api/internal/store"
)

// Mailer sends the post-submission welcome email. nil disables sending.
type Mailer interface {
	SendWelcome(ctx context.Context, email, name string) error
}

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	store    store.Store
	mailer   Mailer
	validate *validator.Validate
}

func NewHandler(s store.Store, m Mailer) *Handler {
	return &Handler{
		store:    s,
		mailer:   m,
		validate: validator.New(),
	}
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]any{
		"success": false,
		"message": message,
	})
}
