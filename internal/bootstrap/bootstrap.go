package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/emre/uniportal/internal/app/controllers"
	appMigrations "github.com/emre/uniportal/internal/app/migrations"
	appRepos "github.com/emre/uniportal/internal/app/repositories"
	appRoutes "github.com/emre/uniportal/internal/app/routes"
	appServices "github.com/emre/uniportal/internal/app/services"
	"github.com/emre/uniportal/internal/config"
	"github.com/emre/uniportal/internal/db"
	appMiddleware "github.com/emre/uniportal/internal/middleware"
	pkgAuth "github.com/emre/uniportal/internal/pkg/auth"
	"github.com/emre/uniportal/internal/pkg/helpers"
	"github.com/emre/uniportal/internal/pkg/logger"
	"github.com/emre/uniportal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         *appServices.AuthService
	UserService         *appServices.UserService
	DashboardService    *appServices.DashboardService
	AcademicsService    *appServices.AcademicsService
	AttendanceService   *appServices.AttendanceService
	AssignmentService   *appServices.AssignmentService
	PlacementService    *appServices.PlacementService
	EventService        *appServices.EventService
	AnnouncementService *appServices.AnnouncementService
	ReportService       *appServices.ReportService
	AdminService        *appServices.AdminService

	AuthController      *appControllers.AuthController
	UserController      *appControllers.UserController
	DashboardController *appControllers.DashboardController
	AcademicsController *appControllers.AcademicsController
	PlacementController *appControllers.PlacementController
	EventController     *appControllers.EventController
	FacultyController   *appControllers.FacultyController
	AdminController     *appControllers.AdminController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations
// and seeds sample data when enabled.
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

	migrationsDir := cfg.Migrations.Dir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	if removed, err := deps.Repos.TokenRepository.CleanupExpiredTokens(context.Background()); err != nil {
		lgr.Warn().Err(err).Msg("Failed to clean up expired refresh tokens")
	} else if removed > 0 {
		lgr.Info().Int64("removed", removed).Msg("Expired refresh tokens cleaned up")
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.UserService = appServices.NewUserService(
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
		deps.Repos.FacultyRepository,
		deps.Repos.TokenRepository,
		lgr,
	)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.StudentRepository,
		deps.Repos.FacultyRepository,
		deps.Repos.AttendanceRepository,
		deps.Repos.AssignmentRepository,
		deps.Repos.DriveRepository,
		deps.Repos.EventRepository,
		lgr,
	)
	deps.AcademicsService = appServices.NewAcademicsService(
		deps.Repos.StudentRepository,
		deps.Repos.AttendanceRepository,
		deps.Repos.AssignmentRepository,
		lgr,
	)
	deps.AttendanceService = appServices.NewAttendanceService(
		dbPool,
		deps.Repos.SubjectRepository,
		deps.Repos.AttendanceRepository,
		lgr,
	)
	deps.AssignmentService = appServices.NewAssignmentService(
		deps.Repos.AssignmentRepository,
		deps.Repos.SubjectRepository,
		lgr,
	)
	deps.PlacementService = appServices.NewPlacementService(
		deps.Repos.StudentRepository,
		deps.Repos.CompanyRepository,
		deps.Repos.DriveRepository,
		lgr,
	)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository, lgr)
	deps.AnnouncementService = appServices.NewAnnouncementService(deps.Repos.AnnouncementRepository, lgr)
	deps.ReportService = appServices.NewReportService(
		deps.Repos.StudentRepository,
		deps.Repos.AttendanceRepository,
		deps.Repos.AssignmentRepository,
		lgr,
	)
	deps.AdminService = appServices.NewAdminService(
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
		deps.Repos.FacultyRepository,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)
	deps.AcademicsController = appControllers.NewAcademicsController(deps.AcademicsService)
	deps.PlacementController = appControllers.NewPlacementController(deps.PlacementService)
	deps.EventController = appControllers.NewEventController(deps.EventService, deps.AnnouncementService)
	deps.FacultyController = appControllers.NewFacultyController(
		deps.AttendanceService,
		deps.AssignmentService,
		deps.ReportService,
	)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService, deps.AnnouncementService)

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
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.DashboardController,
		deps.AcademicsController,
		deps.PlacementController,
		deps.EventController,
		deps.FacultyController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	return router
}
