package v1

import (
	"io"
	"net/http"
	"strconv"

	"github.com/jobbuddy/backend/internal/delivery/http/middleware"
	"github.com/jobbuddy/backend/internal/delivery/http/response"
	"github.com/jobbuddy/backend/internal/domain"
	"github.com/jobbuddy/backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(r *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	resume := r.Group("/resume")
	{
		resume.POST("/upload", middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig()), handler.Upload)
		resume.GET("/download", handler.Download)
	}
}

// Upload godoc
// @Summary      Upload resume
// @Description  Upload a resume (PDF, DOC, or DOCX, max 10MB) and store it against the caller's profile
// @Tags         resume
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Resume file"
// @Success      200   {object}  response.Response{data=map[string]string}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /resume/upload [post]
// @Security     BearerAuth
func (h *ResumeHandler) Upload(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "No file uploaded", err.Error())
		return
	}

	if fileHeader.Size > storage.MaxResumeSize {
		response.Error(c, http.StatusBadRequest, "File too large. Maximum size is 10MB.", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Unable to read uploaded file", err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Unable to read uploaded file", err.Error())
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.resumeUC.Upload(c, userID, fileHeader.Filename, contentType, data)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume uploaded successfully", gin.H{"resume_url": url})
}

// Download godoc
// @Summary      Download resume
// @Description  Stream the caller's stored resume as an attachment
// @Tags         resume
// @Produce      application/octet-stream
// @Success      200  {file}    file
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resume/download [get]
// @Security     BearerAuth
func (h *ResumeHandler) Download(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	file, err := h.resumeUC.Download(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Header("Content-Length", strconv.Itoa(len(file.Data)))
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate, private")
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
