package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobassist-backend/internal/activity"
	"jobassist-backend/internal/analyzer"
	googleauth "jobassist-backend/internal/auth"
	"jobassist-backend/internal/emails"
	"jobassist-backend/internal/jobsearch"
	"jobassist-backend/internal/resumes"
	"jobassist-backend/internal/shared/config"
	"jobassist-backend/internal/shared/metrics"
	"jobassist-backend/internal/shared/server/middleware"
	"jobassist-backend/internal/shared/server/respond"
	"jobassist-backend/internal/uploads"
	"jobassist-backend/internal/users"
)

// RouterDeps carries the handlers wired into the engine.
type RouterDeps struct {
	Config          config.Config
	UsersHandler    *users.Handler
	ActivityHandler *activity.Handler
	ResumesHandler  *resumes.Handler
	EmailsHandler   *emails.Handler
	UploadsHandler  *uploads.Handler
	AnalyzerHandler *analyzer.Handler
	JobsHandler     *jobsearch.Handler
	GoogleAuth      *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(),
		middleware.RateLimit(rateLimitConfig()),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	deps.UsersHandler.RegisterRoutes(api)
	deps.ActivityHandler.RegisterRoutes(api)
	deps.ResumesHandler.RegisterRoutes(api)
	deps.EmailsHandler.RegisterRoutes(api)
	deps.UploadsHandler.RegisterRoutes(api)
	deps.AnalyzerHandler.RegisterRoutes(api)
	deps.JobsHandler.RegisterRoutes(api)

	return r
}

// rateLimitConfig throttles the model-backed endpoint harder than the rest
// of the API.
func rateLimitConfig() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"AI":      {Rate: 0.5, Burst: 3},
			"SEARCH":  {Rate: 2, Burst: 10},
			"DEFAULT": {Rate: 20, Burst: 40},
		},
		GroupFor: func(c *gin.Context) string {
			switch c.Request.URL.Path {
			case "/api/v1/analyzer":
				return "AI"
			case "/api/v1/jobs":
				return "SEARCH"
			default:
				return "DEFAULT"
			}
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
