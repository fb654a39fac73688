// Package domain holds DTOs for candidates http and service contracts
package domain

import "time"

// SaveInput is the shortlist payload posted by the UI
type SaveInput struct {
	Username  string `json:"username" validate:"required,min=1,max=100" example:"octocat"`
	Name      string `json:"name,omitempty" validate:"omitempty,max=200" example:"The Octocat"`
	AvatarURL string `json:"avatarUrl,omitempty" validate:"omitempty,url,max=500" example:"https://avatars.githubusercontent.com/u/583231"`
	Bio       string `json:"bio,omitempty" validate:"omitempty,max=1000" example:"Builds things"`
	Summary   string `json:"summary" validate:"required,max=2000" example:"Ships Go services. Writes tests."`
}

// Candidate is a persisted shortlist entry
type Candidate struct {
	ID        int64     `json:"id" example:"7"`
	Username  string    `json:"username" example:"octocat"`
	Name      string    `json:"name,omitempty" example:"The Octocat"`
	AvatarURL string    `json:"avatarUrl,omitempty" example:"https://avatars.githubusercontent.com/u/583231"`
	Bio       string    `json:"bio,omitempty" example:"Builds things"`
	Summary   string    `json:"summary" example:"Ships Go services. Writes tests."`
	SavedAt   time.Time `json:"savedAt" example:"2026-08-30T12:00:00Z"`
}
