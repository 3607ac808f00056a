package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/courseapi/internal/app/controllers"
	appMigrations "github.com/yigit/courseapi/internal/app/migrations"
	appRepos "github.com/yigit/courseapi/internal/app/repositories"
	appRoutes "github.com/yigit/courseapi/internal/app/routes"
	appServices "github.com/yigit/courseapi/internal/app/services"
	"github.com/yigit/courseapi/internal/config"
	"github.com/yigit/courseapi/internal/db"
	appMiddleware "github.com/yigit/courseapi/internal/middleware"
	"github.com/yigit/courseapi/internal/pkg/logger"
	"github.com/yigit/courseapi/internal/pkg/metrics"
	"github.com/yigit/courseapi/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services         *appServices.Services
	UserController   *appControllers.UserController
	CourseController *appControllers.CourseController
	HealthController *appControllers.HealthController
	AuthMiddleware   *appMiddleware.AuthMiddleware
	RateLimiter      *appMiddleware.RateLimiter // nil when rate limiting is disabled
	Repos            *appRepos.Repositories
	Registry         *prometheus.Registry
	Metrics          *metrics.Collector
	Logger           zerolog.Logger
}

// Close releases background resources owned by the dependencies
func (d *Dependencies) Close() {
	if d.RateLimiter != nil {
		d.RateLimiter.Stop()
	}
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// NewMigrator opens a migrator for the configured database
func NewMigrator(cfg *config.Config, lgr zerolog.Logger) (*appMigrations.Migrator, error) {
	return appMigrations.NewMigrator(cfg.GetPostgresConnectionString(), lgr)
}

// RunMigrations applies every pending migration
func RunMigrations(cfg *config.Config, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	migrator, err := NewMigrator(cfg, lgr)
	if err != nil {
		return fmt.Errorf("failed to open migrator: %w", err)
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			lgr.Warn().Err(err).Msg("Failed to close migrator")
		}
	}()

	if err := migrator.Up(); err != nil {
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// SetupDatabase establishes the connection pool, then optionally migrates and seeds.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	if cfg.Database.MigrateOnStart {
		if err := RunMigrations(cfg, lgr); err != nil {
			lgr.Error().Err(err).Msg("Database migration error")
			return nil, err
		}
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if cfg.Database.Seed {
		repos := appRepos.NewRepositories(database.Pool)
		if err := seed.CreateDefaultData(ctx, repos.UserRepository, repos.CourseRepository, cfg.Auth.BcryptCost, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database.Pool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Registry = prometheus.NewRegistry()
	deps.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.Metrics = metrics.NewCollector(deps.Registry)

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.Services = appServices.NewServices(
		deps.Repos.UserRepository,
		deps.Repos.CourseRepository,
		cfg.Auth.BcryptCost,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Services.Auth, deps.Metrics, cfg.Auth.Realm)

	if cfg.RateLimit.Enabled {
		deps.RateLimiter = appMiddleware.NewRateLimiter(
			appMiddleware.PerMinute(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst),
		)
	}

	deps.UserController = appControllers.NewUserController(deps.Services.User)
	deps.CourseController = appControllers.NewCourseController(deps.Services.Course)
	deps.HealthController = appControllers.NewHealthController(dbPool)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production", "release":
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
		appMiddleware.Recovery(),
		appMiddleware.RequestLogger(),
		appMiddleware.Metrics(deps.Metrics),
	)
	if deps.RateLimiter != nil {
		router.Use(deps.RateLimiter.Middleware())
	}

	appRoutes.SetupSwagger(router)
	appRoutes.SetupMetrics(router, metrics.Handler(deps.Registry))

	appRoutes.SetupRouter(router,
		deps.UserController,
		deps.CourseController,
		deps.HealthController,
		deps.AuthMiddleware,
	)

	return router
}
