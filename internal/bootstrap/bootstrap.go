package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/sharelearning/internal/app/controllers"
	appMigrations "github.com/yigit/sharelearning/internal/app/migrations"
	appRepos "github.com/yigit/sharelearning/internal/app/repositories"
	appRoutes "github.com/yigit/sharelearning/internal/app/routes"
	appServices "github.com/yigit/sharelearning/internal/app/services"
	"github.com/yigit/sharelearning/internal/config"
	"github.com/yigit/sharelearning/internal/db"
	appMiddleware "github.com/yigit/sharelearning/internal/middleware"
	"github.com/yigit/sharelearning/internal/pkg/logger"
	"github.com/yigit/sharelearning/internal/pkg/websocket"
	"github.com/yigit/sharelearning/internal/seed"
)

// The PostgreSQL repositories back the service stores
var (
	_ appServices.CourseStore               = (*appRepos.CourseRepository)(nil)
	_ appServices.ReviewStore               = (*appRepos.ReviewRepository)(nil)
	_ appServices.ReactionStore             = (*appRepos.ReactionRepository)(nil)
	_ appServices.ReviewReactionStore       = (*appRepos.ReviewReactionRepository)(nil)
	_ appServices.PrerequisiteStore         = (*appRepos.PrerequisiteRepository)(nil)
	_ appServices.PrerequisiteReactionStore = (*appRepos.PrerequisiteReactionRepository)(nil)
	_ seed.CourseCreator                    = (*appRepos.CourseRepository)(nil)
	_ appServices.ReactionPublisher         = (*websocket.Hub)(nil)
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ReviewService       appServices.ReviewService
	ReactionService     appServices.ReactionService
	PrerequisiteService appServices.PrerequisiteService
	OverviewService     appServices.OverviewService

	OverviewController     *appControllers.OverviewController
	ReviewController       *appControllers.ReviewController
	PrerequisiteController *appControllers.PrerequisiteController
	ReactionController     *appControllers.ReactionController

	// FeedHub fans reaction events out to websocket subscribers; started by the server
	FeedHub *websocket.Hub

	Repos  *appRepos.Repositories
	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logCfg := logger.ConfigFrom(cfg.Logging.Level, cfg.Logging.Format)
	logger.Configure(logCfg)

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logCfg.Level)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, applies the embedded migrations
// and, when enabled, stores the demo courses.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("dbname", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool, lgr)
	defer migrator.Close()

	if err := migrator.Up(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	if version, err := migrator.Version(ctx); err == nil {
		lgr.Info().Int64("version", version).Msg("Database migrations successfully applied.")
	}

	if cfg.Seed.Enabled {
		if err := seed.CreateDemoCourses(ctx, appRepos.NewCourseRepository(dbPool), lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create demo courses, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(dbPool *pgxpool.Pool, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.FeedHub = websocket.NewHub(lgr.With().Str("component", "reaction_feed").Logger())
	deps.Repos = appRepos.NewRepositories(dbPool)
	return wireServices(deps, deps.Repos)
}

// wireServices builds services and controllers on top of the given repositories
func wireServices(deps *Dependencies, repos *appRepos.Repositories) *Dependencies {
	deps.ReviewService = appServices.NewReviewService(repos.CourseRepository, repos.ReviewRepository, time.Now)
	deps.ReactionService = appServices.NewReactionService(appServices.ReactionServiceDeps{
		Reactions:             repos.ReactionRepository,
		Reviews:               repos.ReviewRepository,
		ReviewReactions:       repos.ReviewReactionRepository,
		Prerequisites:         repos.PrerequisiteRepository,
		PrerequisiteReactions: repos.PrerequisiteReactionRepository,
		Publisher:             deps.FeedHub,
	}, time.Now)
	deps.PrerequisiteService = appServices.NewPrerequisiteService(repos.CourseRepository, repos.PrerequisiteRepository)
	deps.OverviewService = appServices.NewOverviewService(repos.CourseRepository)

	deps.OverviewController = appControllers.NewOverviewController(deps.OverviewService)
	deps.ReviewController = appControllers.NewReviewController(deps.ReviewService)
	deps.PrerequisiteController = appControllers.NewPrerequisiteController(deps.PrerequisiteService)
	deps.ReactionController = appControllers.NewReactionController(deps.ReactionService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		appMiddleware.RequestLogger(lgr),
		appMiddleware.CORS(cfg.Server.AllowedOrigins),
	)

	appRoutes.SetupRouter(router, cfg.APIPrefix(),
		deps.OverviewController,
		deps.ReviewController,
		deps.PrerequisiteController,
		deps.ReactionController,
		websocket.NewHandler(deps.FeedHub, cfg.Server.AllowedOrigins, lgr),
	)

	lgr.Info().Str("prefix", cfg.APIPrefix()).Int("routes", len(router.Routes())).Msg("Routes registered")
	return router
}
