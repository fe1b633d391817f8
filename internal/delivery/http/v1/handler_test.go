package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jobbuddy/backend/internal/delivery/http/middleware"
	v1 "github.com/jobbuddy/backend/internal/delivery/http/v1"
	"github.com/jobbuddy/backend/internal/domain"
	"github.com/jobbuddy/backend/internal/usecase"
	"github.com/jobbuddy/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	m.Run()
}

// Mocks

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Upsert(ctx context.Context, userID string, in *domain.ProfileInput) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockProfileRepo) IsComplete(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepo) SetResumeURL(ctx context.Context, userID, url string) error {
	return m.Called(ctx, userID, url).Error(0)
}

type MockResumeUsecase struct {
	mock.Mock
}

func (m *MockResumeUsecase) Upload(ctx context.Context, userID, filename, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, userID, filename, contentType, data)
	return args.String(0), args.Error(1)
}

func (m *MockResumeUsecase) Download(ctx context.Context, userID string) (*domain.ResumeFile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResumeFile), args.Error(1)
}

// testAuth stands in for the JWT middleware: it stamps the caller identity
// the same two ways AuthMiddleware does, on the gin keys and on the request
// context the usecases read.
func testAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(domain.KeyUserID), userID)
		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func newOnboardingRouter(repo domain.ProfileRepository, userID string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())

	grp := r.Group("/v1")
	grp.Use(testAuth(userID))
	v1.NewOnboardingHandler(grp, usecase.NewProfileUsecase(repo, validator.New()))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestCompleteOnboardingHandler(t *testing.T) {
	t.Run("Should reject a body that omits experience", func(t *testing.T) {
		repo := new(MockProfileRepo)
		r := newOnboardingRouter(repo, "user1")

		w, envelope := doJSON(t, r, http.MethodPost, "/v1/onboarding",
			`{"name":"Jane","email":"jane@example.com","profession":"Engineer"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, false, envelope["success"])
		assert.Contains(t, envelope["message"], "Missing required fields")
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should accept an explicit experience of zero", func(t *testing.T) {
		repo := new(MockProfileRepo)
		repo.On("Upsert", mock.Anything, "user1", mock.AnythingOfType("*domain.ProfileInput")).
			Return(&domain.UserProfile{ExternalUserID: "user1", IsComplete: true}, nil).
			Run(func(args mock.Arguments) {
				in := args.Get(2).(*domain.ProfileInput)
				if assert.NotNil(t, in.ExperienceYears) {
					assert.Equal(t, 0, *in.ExperienceYears)
				}
			})

		r := newOnboardingRouter(repo, "user1")

		w, envelope := doJSON(t, r, http.MethodPost, "/v1/onboarding",
			`{"name":"Jane","email":"jane@example.com","profession":"Engineer","experience":0}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, envelope["success"])
		repo.AssertExpectations(t)
	})
}

func TestGetProfileHandler(t *testing.T) {
	t.Run("Should include the experience tier label", func(t *testing.T) {
		repo := new(MockProfileRepo)
		repo.On("GetByUserID", mock.Anything, "user1").Return(&domain.UserProfile{
			ExternalUserID:  "user1",
			Name:            "Jane Doe",
			ExperienceYears: 6,
			IsComplete:      true,
		}, nil)

		r := newOnboardingRouter(repo, "user1")

		w, envelope := doJSON(t, r, http.MethodGet, "/v1/onboarding", "")

		assert.Equal(t, http.StatusOK, w.Code)
		data := envelope["data"].(map[string]interface{})
		assert.Equal(t, true, data["is_complete"])
		assert.Equal(t, "mid", data["experience_tier"])
	})

	t.Run("Should omit the tier before the first submission", func(t *testing.T) {
		repo := new(MockProfileRepo)
		repo.On("GetByUserID", mock.Anything, "user1").Return(nil, nil)

		r := newOnboardingRouter(repo, "user1")

		w, envelope := doJSON(t, r, http.MethodGet, "/v1/onboarding", "")

		assert.Equal(t, http.StatusOK, w.Code)
		data := envelope["data"].(map[string]interface{})
		assert.Equal(t, false, data["is_complete"])
		assert.NotContains(t, data, "experience_tier")
	})
}

func TestResumeUploadHandler(t *testing.T) {
	t.Run("Should respond with the stored resume_url", func(t *testing.T) {
		resumeUC := new(MockResumeUsecase)
		resumeUC.On("Upload", mock.Anything, "user1", "cv.pdf", mock.Anything, mock.Anything).
			Return("https://bucket.example.com/resumes/user1/cv.pdf", nil)

		r := gin.New()
		r.Use(middleware.ErrorHandler())
		grp := r.Group("/v1")
		grp.Use(testAuth("user1"))
		v1.NewResumeHandler(grp, resumeUC)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreateFormFile("file", "cv.pdf")
		assert.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 test"))
		assert.NoError(t, err)
		assert.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/v1/resume/upload", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var envelope map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		data := envelope["data"].(map[string]interface{})
		assert.Equal(t, "https://bucket.example.com/resumes/user1/cv.pdf", data["resume_url"])
		resumeUC.AssertExpectations(t)
	})
}
