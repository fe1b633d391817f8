package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/jobbuddy/backend/internal/contacts"
	"github.com/jobbuddy/backend/internal/domain"
	"github.com/jobbuddy/backend/internal/outreach"
	"github.com/jobbuddy/backend/pkg/apperror"
	"github.com/jobbuddy/backend/pkg/email"
)

type outreachUsecase struct {
	repo        domain.OutreachRepository
	profileRepo domain.ProfileRepository
	generator   *outreach.Generator
	sender      *email.Sender
	validate    *validator.Validate
}

func NewOutreachUsecase(
	repo domain.OutreachRepository,
	profileRepo domain.ProfileRepository,
	generator *outreach.Generator,
	sender *email.Sender,
	validate *validator.Validate,
) domain.OutreachUsecase {
	return &outreachUsecase{
		repo:        repo,
		profileRepo: profileRepo,
		generator:   generator,
		sender:      sender,
		validate:    validate,
	}
}

func (u *outreachUsecase) GenerateEmails(ctx context.Context, userID string, req *domain.GenerateOutreachRequest) ([]domain.GeneratedEmail, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only generate outreach for yourself")
	}

	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest("Validation failed: " + err.Error())
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found. Complete onboarding first.")
	}

	var resumeURL string
	if profile.ResumeURL != nil {
		resumeURL = *profile.ResumeURL
	}

	subject := outreach.Subject(req.JobTitle, req.Company)
	if req.FollowUp {
		subject = outreach.FollowUpSubject(req.JobTitle, req.Company)
	}
	daysSince := req.DaysSinceContact
	if daysSince <= 0 {
		daysSince = 3
	}

	found := contacts.Find(req.Company)

	generated := make([]domain.GeneratedEmail, 0, len(found))
	for _, contact := range found {
		params := outreach.Params{
			RecipientName:  contact.Name,
			RecipientRole:  contact.Role,
			Company:        req.Company,
			JobTitle:       req.JobTitle,
			JobDescription: req.JobDescription,
			SenderName:     profile.Name,
			Experience:     profile.Profession,
			Skills:         profile.SkillNames(),
			ResumeURL:      resumeURL,
		}

		var body string
		var err error
		if req.FollowUp {
			body, err = u.generator.FollowUp(params, daysSince)
		} else {
			body, err = u.generator.ColdEmail(params)
		}
		if err != nil {
			return nil, apperror.Internal(err)
		}
		generated = append(generated, domain.GeneratedEmail{
			Contact: contact,
			Subject: subject,
			Body:    body,
		})
	}

	return generated, nil
}

func (u *outreachUsecase) Track(ctx context.Context, userID string, req *domain.TrackOutreachRequest) (*domain.OutreachEmail, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only track your own outreach")
	}

	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest("Validation failed: " + err.Error())
	}
	if !contacts.ValidEmail(req.ContactEmail) {
		return nil, apperror.BadRequest("Invalid contact email address")
	}

	status := domain.OutreachDraft
	if req.Send {
		if !u.sender.IsConfigured() {
			return nil, apperror.BadRequest("Email sending is not configured")
		}
		if err := u.sender.Send(req.ContactEmail, req.Subject, req.Body); err != nil {
			return nil, apperror.Internal(err)
		}
		status = domain.OutreachSent
	}

	record := &domain.OutreachEmail{
		UserID:       userID,
		Company:      req.Company,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		JobTitle:     req.JobTitle,
		Subject:      req.Subject,
		Body:         req.Body,
		Status:       status,
	}
	if err := u.repo.Create(ctx, record); err != nil {
		return nil, apperror.Internal(err)
	}
	return record, nil
}

func (u *outreachUsecase) List(ctx context.Context, userID string) ([]domain.OutreachEmail, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only view your own outreach")
	}

	emails, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return emails, nil
}
