package v1

import (
	"net/http"

	"github.com/jobbuddy/backend/internal/delivery/http/middleware"
	"github.com/jobbuddy/backend/internal/delivery/http/response"
	"github.com/jobbuddy/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type OutreachHandler struct {
	outreachUC domain.OutreachUsecase
}

func NewOutreachHandler(r *gin.RouterGroup, outreachUC domain.OutreachUsecase) {
	handler := &OutreachHandler{outreachUC: outreachUC}

	outreach := r.Group("/outreach")
	{
		outreach.POST("/generate", handler.Generate)
		outreach.POST("", middleware.RateLimitMiddleware(middleware.OutreachRateLimitConfig()), handler.Track)
		outreach.GET("", handler.List)
	}
}

// Generate godoc
// @Summary      Generate cold emails
// @Description  Look up contacts at a company and draft a personalized cold email (or follow-up) for each
// @Tags         outreach
// @Accept       json
// @Produce      json
// @Param        request  body      domain.GenerateOutreachRequest  true  "Target company and role"
// @Success      200      {object}  response.Response{data=[]domain.GeneratedEmail}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /outreach/generate [post]
// @Security     BearerAuth
func (h *OutreachHandler) Generate(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req domain.GenerateOutreachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	emails, err := h.outreachUC.GenerateEmails(c, userID, &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Emails generated", emails)
}

// Track godoc
// @Summary      Track an outreach email
// @Description  Persist an outreach email as a draft, or send it via SMTP and record it as sent
// @Tags         outreach
// @Accept       json
// @Produce      json
// @Param        request  body      domain.TrackOutreachRequest  true  "Email to track"
// @Success      201      {object}  response.Response{data=domain.OutreachEmail}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /outreach [post]
// @Security     BearerAuth
func (h *OutreachHandler) Track(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req domain.TrackOutreachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	email, err := h.outreachUC.Track(c, userID, &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Outreach tracked", email)
}

// List godoc
// @Summary      List tracked outreach
// @Description  Return the caller's outreach history, newest first
// @Tags         outreach
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.OutreachEmail}
// @Failure      401  {object}  response.Response
// @Router       /outreach [get]
// @Security     BearerAuth
func (h *OutreachHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	emails, err := h.outreachUC.List(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Outreach retrieved", emails)
}
