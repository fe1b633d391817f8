package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// ============================================================================
// UserProfile Aggregate
// ============================================================================

// UserProfile is the aggregate root for everything a user tells us during
// onboarding. It is keyed by the identity provider's user id; we never mint
// ids of our own for it.
type UserProfile struct {
	ID                 int64              `json:"id"`
	ExternalUserID     string             `json:"external_user_id"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	Profession         string             `json:"profession"`
	ExperienceYears    int                `json:"experience_years"`
	ResumeURL          *string            `json:"resume_url,omitempty"`
	IsComplete         bool               `json:"is_complete"`
	PreferredLocations []string           `json:"preferred_locations"`
	Skills             []UserSkill        `json:"skills"`
	PreferredCompanies []PreferredCompany `json:"preferred_companies"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type UserSkill struct {
	ID    int64  `json:"id"`
	Skill string `json:"skill"`
}

type PreferredCompany struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"company_name"`
}

// SkillNames flattens the skill rows for the match scorer.
func (p *UserProfile) SkillNames() []string {
	names := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		names = append(names, s.Skill)
	}
	return names
}

// CompanyNames flattens the preferred company rows.
func (p *UserProfile) CompanyNames() []string {
	names := make([]string, 0, len(p.PreferredCompanies))
	for _, c := range p.PreferredCompanies {
		names = append(names, c.CompanyName)
	}
	return names
}

// ============================================================================
// Experience Tiers
// ============================================================================

// Experience tier thresholds in years.
const (
	TierEntryYears  = 0
	TierJuniorYears = 2
	TierMidYears    = 4
	TierSeniorYears = 7
	TierExpertYears = 11
)

// ExperienceTier buckets raw years into the tier labels the frontend shows.
func ExperienceTier(years int) string {
	switch {
	case years >= TierExpertYears:
		return "expert"
	case years >= TierSeniorYears:
		return "senior"
	case years >= TierMidYears:
		return "mid"
	case years >= TierJuniorYears:
		return "junior"
	default:
		return "entry"
	}
}

// ============================================================================
// Profile Write Model
// ============================================================================

// ProfileInput carries an upsert. Nil child slices mean "leave that
// collection untouched"; a non-nil slice (even empty) fully replaces the
// stored set. Nil ResumeURL leaves the stored reference as-is.
// ExperienceYears is a pointer so an omitted field is distinguishable from
// an explicit zero; zero years is a valid entry-level answer.
type ProfileInput struct {
	Name               string
	Email              string
	Profession         string
	ExperienceYears    *int
	ResumeURL          *string
	Skills             []string
	PreferredCompanies []string
	PreferredLocations []string
}

// Complete reports whether every required scalar field is present. The
// is_complete flag on the stored profile is derived from this at write time.
func (in *ProfileInput) Complete() bool {
	return in.Name != "" && in.Email != "" && in.Profession != "" &&
		in.ExperienceYears != nil && *in.ExperienceYears >= 0
}

// ============================================================================
// Repository Interface
// ============================================================================

type ProfileRepository interface {
	// Upsert creates or overwrites the aggregate for userID. Supplied child
	// collections are replaced wholesale (delete then insert) inside one
	// transaction. Returns the stored aggregate.
	Upsert(ctx context.Context, userID string, in *ProfileInput) (*UserProfile, error)

	// GetByUserID returns (nil, nil) when no profile exists.
	GetByUserID(ctx context.Context, userID string) (*UserProfile, error)

	// IsComplete is a pure projection of the stored flag; false when absent.
	IsComplete(ctx context.Context, userID string) (bool, error)

	// SetResumeURL updates only the resume reference, creating a stub
	// incomplete profile when none exists yet (upload-before-onboarding).
	SetResumeURL(ctx context.Context, userID, url string) error
}

// ============================================================================
// Usecase Interface
// ============================================================================

type ProfileUsecase interface {
	// CompleteOnboarding validates, normalizes and persists onboarding data.
	CompleteOnboarding(ctx context.Context, userID string, in *ProfileInput) (*UserProfile, error)

	// GetProfile returns the profile (nil when absent) and the completion flag.
	GetProfile(ctx context.Context, userID string) (*UserProfile, bool, error)
}
