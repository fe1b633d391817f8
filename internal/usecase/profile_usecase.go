package usecase

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jobbuddy/backend/internal/domain"
	"github.com/jobbuddy/backend/pkg/apperror"
)

type profileUsecase struct {
	repo     domain.ProfileRepository
	validate *validator.Validate
}

func NewProfileUsecase(repo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *profileUsecase) CompleteOnboarding(ctx context.Context, userID string, in *domain.ProfileInput) (*domain.UserProfile, error) {
	// Security: Verify context user matches requested user
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only update your own profile")
	}

	normalizeInput(in)

	if in.Name == "" || in.Email == "" || in.Profession == "" || in.ExperienceYears == nil {
		return nil, apperror.BadRequest("Missing required fields: name, email, profession, and experience are required")
	}
	if *in.ExperienceYears < 0 {
		return nil, apperror.BadRequest("Experience must be a non-negative number of years")
	}
	if err := u.validate.Var(in.Email, "required,email"); err != nil {
		return nil, apperror.BadRequest("Invalid email address")
	}

	profile, err := u.repo.Upsert(ctx, userID, in)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, bool, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, false, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return nil, false, apperror.Forbidden("You can only view your own profile")
	}

	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, false, apperror.Internal(err)
	}
	if profile == nil {
		return nil, false, nil
	}
	return profile, profile.IsComplete, nil
}

// normalizeInput applies the storage normalization policy: scalars trimmed,
// email lowercased, empty-after-trim list entries dropped. Nil slices stay
// nil so the repository leaves those collections untouched.
func normalizeInput(in *domain.ProfileInput) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Profession = strings.TrimSpace(in.Profession)
	in.Skills = cleanList(in.Skills)
	in.PreferredCompanies = cleanList(in.PreferredCompanies)
	in.PreferredLocations = cleanList(in.PreferredLocations)
	if in.ResumeURL != nil {
		trimmed := strings.TrimSpace(*in.ResumeURL)
		if trimmed == "" {
			in.ResumeURL = nil
		} else {
			in.ResumeURL = &trimmed
		}
	}
}

func cleanList(items []string) []string {
	if items == nil {
		return nil
	}
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}
