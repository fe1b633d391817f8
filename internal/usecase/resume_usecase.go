package usecase

import (
	"context"
	"errors"

	"github.com/jobbuddy/backend/internal/domain"
	"github.com/jobbuddy/backend/pkg/apperror"
	"github.com/jobbuddy/backend/pkg/logger"
	"github.com/jobbuddy/backend/pkg/storage"
)

type resumeUsecase struct {
	profileRepo domain.ProfileRepository
	store       domain.ResumeStore
}

func NewResumeUsecase(profileRepo domain.ProfileRepository, store domain.ResumeStore) domain.ResumeUsecase {
	return &resumeUsecase{
		profileRepo: profileRepo,
		store:       store,
	}
}

func (u *resumeUsecase) Upload(ctx context.Context, userID, filename, contentType string, data []byte) (string, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return "", apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return "", apperror.Forbidden("You can only upload your own resume")
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return "", apperror.Internal(err)
	}

	// Replace flow: remove the previous blob first, but never let a failed
	// delete block the new upload. At worst one stale blob leaks.
	if profile != nil && profile.ResumeURL != nil {
		if err := u.store.Delete(ctx, *profile.ResumeURL); err != nil {
			logger.Log.Warn("failed to delete old resume, continuing with upload",
				"user_id", userID, "error", err)
		}
	}

	url, err := u.store.Upload(ctx, userID, filename, contentType, data)
	if err != nil {
		var verr *storage.ValidationError
		if errors.As(err, &verr) {
			return "", apperror.BadRequest(verr.Reason)
		}
		return "", apperror.Internal(err)
	}

	if err := u.profileRepo.SetResumeURL(ctx, userID, url); err != nil {
		return "", apperror.Internal(err)
	}

	return url, nil
}

func (u *resumeUsecase) Download(ctx context.Context, userID string) (*domain.ResumeFile, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only download your own resume")
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil || profile.ResumeURL == nil {
		return nil, apperror.NotFound("No resume found")
	}

	file, err := u.store.Download(ctx, *profile.ResumeURL)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, storage.ErrInvalidReference) {
			return nil, apperror.NotFound("Resume file not found in storage")
		}
		return nil, apperror.Internal(err)
	}
	return file, nil
}
