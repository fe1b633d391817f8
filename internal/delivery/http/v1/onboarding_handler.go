package v1

import (
	"net/http"

	"github.com/jobbuddy/backend/internal/delivery/http/response"
	"github.com/jobbuddy/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type OnboardingHandler struct {
	profileUC domain.ProfileUsecase
}

func NewOnboardingHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &OnboardingHandler{profileUC: profileUC}

	onboarding := r.Group("/onboarding")
	{
		onboarding.POST("", handler.Complete)
		onboarding.GET("", handler.GetProfile)
	}
}

// OnboardingRequest is the wire shape for profile submissions. The frontend
// sends camelCase keys. Experience is a pointer: an omitted field must be
// rejected, while an explicit 0 is a valid entry-level answer.
type OnboardingRequest struct {
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Profession         string   `json:"profession"`
	Experience         *int     `json:"experience"`
	ResumeURL          *string  `json:"resumeUrl"`
	Skills             []string `json:"skills"`
	PreferredCompanies []string `json:"preferredCompanies"`
	PreferredLocations []string `json:"preferredLocations"`
}

// ProfileResponse wraps a profile with its completion flag and the derived
// experience tier label.
type ProfileResponse struct {
	Profile        *domain.UserProfile `json:"profile"`
	IsComplete     bool                `json:"is_complete"`
	ExperienceTier string              `json:"experience_tier,omitempty"`
}

// Complete godoc
// @Summary      Save onboarding profile
// @Description  Create or update the caller's profile, replacing any supplied skill and company lists
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        request  body      OnboardingRequest  true  "Profile data"
// @Success      200      {object}  response.Response{data=domain.UserProfile}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /onboarding [post]
// @Security     BearerAuth
func (h *OnboardingHandler) Complete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	in := &domain.ProfileInput{
		Name:               req.Name,
		Email:              req.Email,
		Profession:         req.Profession,
		ExperienceYears:    req.Experience,
		ResumeURL:          req.ResumeURL,
		Skills:             req.Skills,
		PreferredCompanies: req.PreferredCompanies,
		PreferredLocations: req.PreferredLocations,
	}

	profile, err := h.profileUC.CompleteOnboarding(c, userID, in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile saved successfully", profile)
}

// GetProfile godoc
// @Summary      Get onboarding profile
// @Description  Fetch the caller's profile and completion status; profile is null before first submission
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  response.Response{data=ProfileResponse}
// @Failure      401  {object}  response.Response
// @Router       /onboarding [get]
// @Security     BearerAuth
func (h *OnboardingHandler) GetProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, complete, err := h.profileUC.GetProfile(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	resp := ProfileResponse{
		Profile:    profile,
		IsComplete: complete,
	}
	if profile != nil {
		resp.ExperienceTier = domain.ExperienceTier(profile.ExperienceYears)
	}

	response.Success(c, http.StatusOK, "Profile retrieved", resp)
}
