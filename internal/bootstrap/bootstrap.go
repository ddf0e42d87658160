package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/college/internal/app/controllers"
	appMigrations "github.com/yigit/college/internal/app/migrations"
	appRepos "github.com/yigit/college/internal/app/repositories"
	appRoutes "github.com/yigit/college/internal/app/routes"
	appServices "github.com/yigit/college/internal/app/services"
	"github.com/yigit/college/internal/app/views"
	"github.com/yigit/college/internal/config"
	"github.com/yigit/college/internal/db"
	appMiddleware "github.com/yigit/college/internal/middleware"
	"github.com/yigit/college/internal/pkg/helpers"
	"github.com/yigit/college/internal/pkg/logger"
)

// DefaultConfigPath is used when no --config flag is given
const DefaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	DB                *db.PostgresDB
	Schema            *appMigrations.Schema
	Repos             *appRepos.Repositories
	CollegeService    appServices.CollegeService // Interface type
	PageController    *appControllers.PageController
	StudentController *appControllers.StudentController
	CourseController  *appControllers.CourseController
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
		File: logger.FileConfig{
			Path:       cfg.Logging.File,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
		},
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// startupInitTimeout bounds the first schema initialization
const startupInitTimeout = 15 * time.Second

// SetupDatabase establishes the database connection and initializes the schema.
// A schema failure is logged and left for RequireSchema to retry.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, *appMigrations.Schema, error) {
	lgr.Info().Msg("Creating database connection pool...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to create database connection pool")
		return nil, nil, err
	}

	initCtx, cancel := context.WithTimeout(ctx, startupInitTimeout)
	defer cancel()

	schema := appMigrations.NewSchema(database.Pool)
	if err := schema.Initialize(initCtx); err != nil {
		lgr.Error().Err(err).Msg("Database initialization failed, data routes will retry")
	} else {
		lgr.Info().Msg("Database initialized")
	}

	return database, schema, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(database *db.PostgresDB, schema *appMigrations.Schema, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{
		DB:     database,
		Schema: schema,
		Logger: lgr,
	}

	deps.Repos = appRepos.NewRepositories(database.Pool)
	deps.CollegeService = appServices.NewCollegeService(deps.Repos)

	deps.PageController = appControllers.NewPageController(deps.CollegeService)
	deps.StudentController = appControllers.NewStudentController(deps.CollegeService)
	deps.CourseController = appControllers.NewCourseController(deps.CollegeService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
		appMiddleware.Timeout(helpers.ParseDuration(cfg.Server.RequestTimeout, 5*time.Second)),
		appMiddleware.NavLinks(),
	)

	tmpl, err := views.Templates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	setupStaticFileServing(router, cfg, lgr)

	// Setup Swagger
	appRoutes.SetupSwagger(router)

	// Setup page and API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.PageController,
		deps.StudentController,
		deps.CourseController,
		appMiddleware.RequireSchema(deps.Schema),
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router, nil
}

// setupStaticFileServing serves the stylesheet and other assets under /static
func setupStaticFileServing(router *gin.Engine, cfg *config.Config, lgr zerolog.Logger) {
	staticPath := cfg.Server.StaticPath
	if staticPath == "" {
		return
	}

	if _, err := os.Stat(staticPath); os.IsNotExist(err) {
		lgr.Warn().Str("path", staticPath).Msg("Static directory not found, assets will not be served")
		return
	}

	router.Static("/static", staticPath)
	lgr.Info().Str("path", staticPath).Msg("Static file serving configured")
}

// Connect loads configuration and opens the database for one-shot commands
func Connect(ctx context.Context, configPath string) (*config.Config, *Dependencies, error) {
	cfg, lgr, err := LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	database, schema, err := SetupDatabase(ctx, cfg, lgr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to setup database: %w", err)
	}

	return cfg, BuildDependencies(database, schema, lgr), nil
}
