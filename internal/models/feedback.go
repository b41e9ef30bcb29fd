package models

import "time"

// FeedbackEntry represents one persisted early-access form submission
type FeedbackEntry struct {
	ID           string    `json:"id"`
	Role         string    `json:"role"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Instagram    string    `json:"instagram"`
	LastCampaign string    `json:"last_campaign"`
	WorstPart    string    `json:"worst_part"`
	OneThing     string    `json:"one_thing"`
	Status       string    `json:"status,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	IPAddress    string    `json:"ip,omitempty"`
	UserAgent    string    `json:"user_agent,omitempty"`
}
