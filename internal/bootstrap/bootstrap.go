package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/placement/internal/app/controllers"
	appMigrations "github.com/yigit/placement/internal/app/migrations"
	appRepos "github.com/yigit/placement/internal/app/repositories"
	appRoutes "github.com/yigit/placement/internal/app/routes"
	appServices "github.com/yigit/placement/internal/app/services"
	"github.com/yigit/placement/internal/app/views"
	"github.com/yigit/placement/internal/config"
	"github.com/yigit/placement/internal/db"
	appMiddleware "github.com/yigit/placement/internal/middleware"
	"github.com/yigit/placement/internal/pkg/filestorage"
	"github.com/yigit/placement/internal/pkg/logger"
	"github.com/yigit/placement/internal/seed"
)

// SessionName is the cookie holding flash messages
const SessionName = "placement_session"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	FileStorage *filestorage.LocalStorage
	Controllers appRoutes.Controllers
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the connection pool, then applies migrations and the demo
// seed when configured to.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if _, err := RunMigrations(ctx, database.Pool, lgr); err != nil {
			database.Close()
			return nil, err
		}
	}

	if cfg.Database.SeedDemoData {
		if _, err := seed.CreateDemoData(ctx, appRepos.NewRepositories(database.Pool), lgr); err != nil {
			// the server is usable without demo data
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	return database, nil
}

// RunMigrations applies the embedded SQL migrations
func RunMigrations(ctx context.Context, conn db.TxBeginner, lgr zerolog.Logger) (int, error) {
	lgr.Info().Msg("Running database migrations...")
	applied, err := appMigrations.NewMigrator(conn, appMigrations.Files(), lgr).Up(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return applied, fmt.Errorf("database migrations failed: %w", err)
	}
	return applied, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, conn db.DBTX, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.UploadDir)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Repos = appRepos.NewRepositories(conn)
	deps.Services = appServices.NewServices(deps.Repos, deps.FileStorage)

	svc := deps.Services
	deps.Controllers = appRoutes.Controllers{
		Page:      appControllers.NewPageController(),
		Company:   appControllers.NewCompanyController(svc.CompanyService),
		Student:   appControllers.NewStudentController(svc.StudentService, cfg.Storage.MaxUploadSize),
		Placement: appControllers.NewPlacementController(svc.PlacementService),
		Record:    appControllers.NewRecordController(svc.RecordService),
		Upload:    appControllers.NewUploadController(deps.FileStorage),
		API:       appControllers.NewAPIController(svc.RecordService, svc.CompanyService, svc.StudentService),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware, templates and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestID(), appMiddleware.RequestLogger(lgr))
	router.MaxMultipartMemory = cfg.Storage.MaxUploadSize

	tmpl, err := views.Templates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	store := cookie.NewStore([]byte(cfg.Server.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
	})
	router.Use(sessions.Sessions(SessionName, store))

	appRoutes.SetupRouter(router, deps.Controllers, appRoutes.Options{
		MaxUploadSize:      cfg.Storage.MaxUploadSize,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
	})

	return router, nil
}
