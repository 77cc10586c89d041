// Package bootstrap builds the dependency graph for the API server.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"jobassist-backend/internal/activity"
	"jobassist-backend/internal/analyzer"
	googleauth "jobassist-backend/internal/auth"
	"jobassist-backend/internal/emails"
	"jobassist-backend/internal/jobsearch"
	"jobassist-backend/internal/llm"
	"jobassist-backend/internal/llm/gemini"
	"jobassist-backend/internal/llm/openai"
	"jobassist-backend/internal/resumes"
	"jobassist-backend/internal/shared/config"
	"jobassist-backend/internal/shared/server"
	"jobassist-backend/internal/shared/storage/db"
	"jobassist-backend/internal/shared/storage/object"
	localstore "jobassist-backend/internal/shared/storage/object/local"
	s3store "jobassist-backend/internal/shared/storage/object/s3"
	"jobassist-backend/internal/uploads"
	"jobassist-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	UsersRepo    users.Repo
	ActivityRepo activity.Repo

	UsersService    *users.Service
	ActivityService *activity.Service
	ResumesService  *resumes.Service
	EmailsService   *emails.Service
	UploadsService  *uploads.Service
	AnalyzerService *analyzer.Service
	JobsClient      *jobsearch.Client

	UsersHandler    *users.Handler
	ActivityHandler *activity.Handler
	ResumesHandler  *resumes.Handler
	EmailsHandler   *emails.Handler
	UploadsHandler  *uploads.Handler
	AnalyzerHandler *analyzer.Handler
	JobsHandler     *jobsearch.Handler
	GoogleAuth      *googleauth.GoogleService
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		UsersHandler:    app.UsersHandler,
		ActivityHandler: app.ActivityHandler,
		ResumesHandler:  app.ResumesHandler,
		EmailsHandler:   app.EmailsHandler,
		UploadsHandler:  app.UploadsHandler,
		AnalyzerHandler: app.AnalyzerHandler,
		JobsHandler:     app.JobsHandler,
		GoogleAuth:      app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			return openai.NewClient(key, cfg.LLMModel, cfg.LLMTimeout)
		}
	default:
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			return gemini.NewClient(key, cfg.LLMModel, cfg.LLMTimeout)
		}
	}
	log.Printf("bootstrap: no %s API key configured; analyzer reports errors inline", cfg.LLMProvider)
	return llm.PlaceholderClient{}, nil
}

func buildServices(app *App) error {
	if app.DB != nil {
		app.UsersRepo = &users.PGRepo{DB: app.DB}
		app.ActivityRepo = &activity.PGRepo{DB: app.DB}
	} else {
		app.UsersRepo = users.NewMemoryRepo()
		app.ActivityRepo = activity.NewMemoryRepo()
	}

	app.UsersService = users.NewService(app.UsersRepo)
	app.ActivityService = activity.NewService(app.ActivityRepo, app.UsersService)
	app.ResumesService = resumes.NewService(app.ActivityService)
	app.EmailsService = emails.NewService(app.ActivityService)
	app.UploadsService = uploads.NewService(app.ActivityService, app.Store, app.Config.UploadAllowedExts)

	llmClient, err := buildLLM(app.Config)
	if err != nil {
		return err
	}
	app.AnalyzerService = analyzer.NewService(llmClient, app.Config.LLMTimeout)

	app.JobsClient = jobsearch.NewClient(
		app.Config.AdzunaAppID,
		app.Config.AdzunaAppKey,
		app.Config.AdzunaCountry,
		0,
	)

	app.UsersHandler = users.NewHandler(app.UsersService)
	app.ActivityHandler = activity.NewHandler(app.ActivityService)
	app.ResumesHandler = resumes.NewHandler(app.ResumesService)
	app.EmailsHandler = emails.NewHandler(app.EmailsService)
	app.UploadsHandler = uploads.NewHandler(app.UploadsService, app.Config.UploadMaxBytes)
	app.AnalyzerHandler = analyzer.NewHandler(app.AnalyzerService)
	app.JobsHandler = jobsearch.NewHandler(app.JobsClient)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		app.UsersService,
	)

	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
