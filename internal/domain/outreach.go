package domain

import (
	"context"
	"time"
)

// ============================================================================
// Cold-Email Outreach
// ============================================================================

// Contact is a hiring-side person discovered for a target company.
type Contact struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Email       string `json:"email"`
	LinkedinURL string `json:"linkedin_url,omitempty"`
	Confidence  int    `json:"confidence"`
}

// OutreachStatus tracks the lifecycle of a tracked outreach email.
type OutreachStatus string

const (
	OutreachDraft OutreachStatus = "draft"
	OutreachSent  OutreachStatus = "sent"
)

func (s OutreachStatus) IsValid() bool {
	return s == OutreachDraft || s == OutreachSent
}

// OutreachEmail is a tracked cold email belonging to one user.
type OutreachEmail struct {
	ID           int64          `json:"id"`
	UserID       string         `json:"user_id"`
	Company      string         `json:"company"`
	ContactName  string         `json:"contact_name"`
	ContactEmail string         `json:"contact_email"`
	JobTitle     string         `json:"job_title"`
	Subject      string         `json:"subject"`
	Body         string         `json:"body"`
	Status       OutreachStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
}

// GeneratedEmail pairs a discovered contact with a rendered email.
type GeneratedEmail struct {
	Contact Contact `json:"contact"`
	Subject string  `json:"subject"`
	Body    string  `json:"body"`
}

// ============================================================================
// Request DTOs
// ============================================================================

type GenerateOutreachRequest struct {
	Company        string `json:"company" validate:"required"`
	JobTitle       string `json:"job_title" validate:"required"`
	JobDescription string `json:"job_description"`
	// FollowUp switches to the non-responder follow-up template.
	FollowUp         bool `json:"follow_up"`
	DaysSinceContact int  `json:"days_since_contact"`
}

type TrackOutreachRequest struct {
	Company      string `json:"company" validate:"required"`
	ContactName  string `json:"contact_name" validate:"required"`
	ContactEmail string `json:"contact_email" validate:"required,email"`
	JobTitle     string `json:"job_title"`
	Subject      string `json:"subject" validate:"required"`
	Body         string `json:"body" validate:"required"`
	Send         bool   `json:"send"`
}

// ============================================================================
// Repository / Usecase Interfaces
// ============================================================================

type OutreachRepository interface {
	Create(ctx context.Context, email *OutreachEmail) error
	ListByUserID(ctx context.Context, userID string) ([]OutreachEmail, error)
}

type OutreachUsecase interface {
	// GenerateEmails discovers contacts at the company and renders one cold
	// email per contact, personalized against the caller's profile.
	GenerateEmails(ctx context.Context, userID string, req *GenerateOutreachRequest) ([]GeneratedEmail, error)

	// Track persists an outreach email, optionally sending it via SMTP first.
	Track(ctx context.Context, userID string, req *TrackOutreachRequest) (*OutreachEmail, error)

	// List returns the caller's tracked outreach, newest first.
	List(ctx context.Context, userID string) ([]OutreachEmail, error)
}
