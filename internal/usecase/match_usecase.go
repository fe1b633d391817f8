package usecase

import (
	"context"

	"github.com/jobbuddy/backend/internal/domain"
	"github.com/jobbuddy/backend/internal/matcher"
	"github.com/jobbuddy/backend/pkg/apperror"
)

// defaultTargetCompanies seeds the dashboard for users who have not picked
// preferred companies yet.
var defaultTargetCompanies = []string{"Google", "Stripe", "Vercel"}

type matchUsecase struct {
	profileRepo domain.ProfileRepository
	matcher     *matcher.Matcher
}

func NewMatchUsecase(profileRepo domain.ProfileRepository, searcher domain.JobSearcher) domain.MatchUsecase {
	return &matchUsecase{
		profileRepo: profileRepo,
		matcher:     matcher.New(searcher),
	}
}

func (u *matchUsecase) GetMatches(ctx context.Context, userID string) ([]domain.JobMatch, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only view your own matches")
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found. Complete onboarding first.")
	}

	companies := profile.CompanyNames()
	if len(companies) == 0 {
		companies = defaultTargetCompanies
	}

	matches := u.matcher.FindMatches(ctx, companies, matcher.Profile{
		Skills:             profile.SkillNames(),
		PreferredLocations: profile.PreferredLocations,
	}, profile.Profession)

	return matches, nil
}
