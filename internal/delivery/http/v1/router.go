package v1

import (
	"net/http"

	"github.com/jobbuddy/backend/config"
	"github.com/jobbuddy/backend/internal/delivery/http/middleware"
	"github.com/jobbuddy/backend/internal/delivery/http/response"
	"github.com/jobbuddy/backend/internal/domain"
	"github.com/jobbuddy/backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ProfileUC    domain.ProfileUsecase
	ResumeUC     domain.ResumeUsecase
	MatchUC      domain.MatchUsecase
	OutreachUC   domain.OutreachUsecase
	JWKSProvider *auth.Provider
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.GlobalRateLimitMiddleware(deps.Config.RateLimitGlobalThreshold, deps.Config.RateLimitWindowSeconds))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config))
	{
		NewOnboardingHandler(protected, deps.ProfileUC)
		NewResumeHandler(protected, deps.ResumeUC)
		NewMatchHandler(protected, deps.MatchUC)
		NewOutreachHandler(protected, deps.OutreachUC)
	}

	return r
}
