package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/philip98/obsidian-server/internal/app/controllers"
	appMigrations "github.com/philip98/obsidian-server/internal/app/migrations"
	appRepos "github.com/philip98/obsidian-server/internal/app/repositories"
	appRoutes "github.com/philip98/obsidian-server/internal/app/routes"
	appServices "github.com/philip98/obsidian-server/internal/app/services"
	"github.com/philip98/obsidian-server/internal/config"
	"github.com/philip98/obsidian-server/internal/db"
	appMiddleware "github.com/philip98/obsidian-server/internal/middleware"
	"github.com/philip98/obsidian-server/internal/pkg/logger"
	"github.com/philip98/obsidian-server/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos    *appRepos.Repositories
	Services *appServices.Services

	StudentController        *appControllers.StudentController
	TeacherController        *appControllers.TeacherController
	BookController           *appControllers.BookController
	AliasController          *appControllers.AliasController
	CirculationController    *appControllers.CirculationController
	ReconciliationController *appControllers.ReconciliationController
	SearchController         *appControllers.SearchController
	ImportController         *appControllers.ImportController

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

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Demo data helps during development; production databases are left alone
	if strings.ToLower(cfg.Server.Mode) == "development" {
		if err := seed.CreateDemoData(context.Background(), dbPool, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.Services = appServices.NewServices(deps.Repos)

	deps.StudentController = appControllers.NewStudentController(deps.Services.StudentService)
	deps.TeacherController = appControllers.NewTeacherController(deps.Services.TeacherService)
	deps.BookController = appControllers.NewBookController(deps.Services.BookService)
	deps.AliasController = appControllers.NewAliasController(deps.Services.AliasService)
	deps.CirculationController = appControllers.NewCirculationController(deps.Services.CirculationService)
	deps.ReconciliationController = appControllers.NewReconciliationController(deps.Services.ReconciliationService)
	deps.SearchController = appControllers.NewSearchController(deps.Services.SearchService)
	deps.ImportController = appControllers.NewImportController(deps.Services.ImportService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, appMiddleware.RequestIDHeader)
	router.Use(cors.New(corsConfig))

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.TeacherController,
		deps.BookController,
		deps.AliasController,
		deps.CirculationController,
		deps.ReconciliationController,
		deps.SearchController,
		deps.ImportController,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
