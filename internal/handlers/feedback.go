package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/togetai/feedback-api/internal/models"
	"github.com/togetai/feedback-api/internal/store"
	"github.com/togetai/feedback-api/pkg/clientip"
)

// SubmitFeedbackRequest represents the early-access form payload
type SubmitFeedbackRequest struct {
	Role         string `json:"role" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Instagram    string `json:"instagram" validate:"required"`
	LastCampaign string `json:"last_campaign" validate:"required"`
	WorstPart    string `json:"worst_part" validate:"required"`
	OneThing     string `json:"one_thing" validate:"required"`
}

func (req *SubmitFeedbackRequest) trim() {
	req.Role = strings.TrimSpace(req.Role)
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Instagram = strings.TrimSpace(req.Instagram)
	req.LastCampaign = strings.TrimSpace(req.LastCampaign)
	req.WorstPart = strings.TrimSpace(req.WorstPart)
	req.OneThing = strings.TrimSpace(req.OneThing)
}

// fieldLabels maps struct field names to the names used in error messages.
var fieldLabels = map[string]string{
	"Role":         "Role",
	"Name":         "Name",
	"Email":        "Email",
	"Instagram":    "Instagram",
	"LastCampaign": "Last campaign",
	"WorstPart":    "Worst part",
	"OneThing":     "One thing",
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		ve := verrs[0]
		if ve.Tag() == "email" {
			return "Invalid email address"
		}
		if label, ok := fieldLabels[ve.StructField()]; ok {
			return label + " is required"
		}
	}
	return "All fields are required"
}

// SubmitFeedback handles one early-access form submission
func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req SubmitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.trim()
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	email := store.NormalizeEmail(req.Email)

	existing, err := h.store.FindByEmail(ctx, email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to submit feedback")
		return
	}
	if existing != nil {
		respondError(w, http.StatusConflict, "An entry with this email already exists")
		return
	}

	entry := models.FeedbackEntry{
		ID:           uuid.NewString(),
		Role:         req.Role,
		Name:         req.Name,
		Email:        email,
		Instagram:    req.Instagram,
		LastCampaign: req.LastCampaign,
		WorstPart:    req.WorstPart,
		OneThing:     req.OneThing,
		Status:       "pending",
		Timestamp:    time.Now().UTC(),
		IPAddress:    clientip.FromRequest(r),
		UserAgent:    r.UserAgent(),
	}

	if err := h.store.Insert(ctx, entry); err != nil {
		// The store's uniqueness check is the final arbiter when two
		// submissions for the same email race past FindByEmail.
		if errors.Is(err, store.ErrDuplicateEmail) {
			respondError(w, http.StatusConflict, "An entry with this email already exists")
			return
		}
		log.Printf("Error saving feedback: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to submit feedback")
		return
	}

	log.Printf("New feedback submitted: %s", entry.ID)

	// Fire-and-forget: the welcome email never blocks or fails the response.
	if h.mailer != nil {
		go func(email, name string) {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := h.mailer.SendWelcome(ctx, email, name); err != nil {
				log.Printf("Welcome email failed for %s: %v", email, err)
			}
		}(entry.Email, entry.Name)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Feedback submitted successfully",
		"id":      entry.ID,
	})
}

// GetFeedback handles getting all feedback entries (admin only)
func (h *Handler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	entries, err := h.store.ListAll(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error retrieving feedback")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(entries),
		"data":    entries,
	})
}

// DeleteFeedback handles deleting one feedback entry by id (admin only)
func (h *Handler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "Entry id is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	found, err := h.store.DeleteByID(ctx, id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete feedback")
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, "Feedback entry not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Feedback entry deleted",
	})
}

// GetFeedbackStats handles the submission stats summary (admin only)
func (h *Handler) GetFeedbackStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	entries, err := h.store.ListAll(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error retrieving feedback stats")
		return
	}

	now := time.Now()
	byRole := map[string]int{"creator": 0, "promoter": 0, "other": 0}
	recent24h := 0
	recent7days := 0
	for _, e := range entries {
		switch e.Role {
		case "creator", "promoter":
			byRole[e.Role]++
		default:
			byRole["other"]++
		}
		age := now.Sub(e.Timestamp)
		if age < 24*time.Hour {
			recent24h++
		}
		if age < 7*24*time.Hour {
			recent7days++
		}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"stats": map[string]any{
			"total":        len(entries),
			"by_role":      byRole,
			"recent_24h":   recent24h,
			"recent_7days": recent7days,
		},
	})
}
