package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/facultyhub/internal/app/controllers"
	appMigrations "github.com/yigit/facultyhub/internal/app/migrations"
	appRepos "github.com/yigit/facultyhub/internal/app/repositories"
	appRoutes "github.com/yigit/facultyhub/internal/app/routes"
	appServices "github.com/yigit/facultyhub/internal/app/services"
	"github.com/yigit/facultyhub/internal/config"
	"github.com/yigit/facultyhub/internal/db"
	appMiddleware "github.com/yigit/facultyhub/internal/middleware"
	pkgAuth "github.com/yigit/facultyhub/internal/pkg/auth"
	"github.com/yigit/facultyhub/internal/pkg/email"
	"github.com/yigit/facultyhub/internal/pkg/filestorage"
	"github.com/yigit/facultyhub/internal/pkg/helpers"
	"github.com/yigit/facultyhub/internal/pkg/logger"
	"github.com/yigit/facultyhub/internal/pkg/websocket"
	"github.com/yigit/facultyhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	TxManager   appRepos.TxManager
	JWTService  *pkgAuth.JWTService
	Hub         *websocket.Hub
	Controllers appRoutes.Controllers
	AuthMW      *appMiddleware.AuthMiddleware
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
	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: cfg.Logging.Format == "text",
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("dir", migrationsDir).Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, logger.Component("migrator"))
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// SeedDatabase creates roles, default departments and, when configured, demo accounts
func SeedDatabase(ctx context.Context, cfg *config.Config, txManager appRepos.TxManager, lgr zerolog.Logger) error {
	return seed.CreateDefaultData(ctx, txManager, seed.Options{
		DemoAccounts:    cfg.Seed.DemoAccounts,
		DemoPassword:    cfg.Seed.DemoPassword,
		DemoEmailDomain: cfg.Seed.DemoEmailDomain,
	}, logger.Component("seed"))
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)
	deps.TxManager = appRepos.NewTxManager(database)

	bucket, err := filestorage.NewLocalBucket(cfg.Storage.BasePath, cfg.Storage.CertificateBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize certificate storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	emailService := email.NewEmailService(email.SMTPConfig{
		Host:      cfg.Email.Host,
		Port:      cfg.Email.Port,
		Username:  cfg.Email.Username,
		Password:  cfg.Email.Password,
		FromName:  cfg.Email.FromName,
		FromEmail: cfg.Email.From,
		BaseURL:   cfg.Server.PublicURL,
	}, logger.Component("email"))

	deps.Hub = websocket.NewHub(logger.Component("notifications"))
	access := appServices.NewAccessChecker(deps.Repos.RoleRepository)

	authService := appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.SessionRepository,
		deps.Repos.RoleRepository,
		deps.JWTService,
		emailService,
		logger.Component("auth"),
	)
	roleService := appServices.NewRoleService(
		deps.Repos.RoleRepository,
		deps.Repos.UserRepository,
		deps.Repos.DepartmentRepository,
		deps.Hub,
		logger.Component("roles"),
	)
	departmentService := appServices.NewDepartmentService(deps.Repos.DepartmentRepository, logger.Component("departments"))
	facultyService := appServices.NewFacultyService(
		deps.Repos.FacultyMemberRepository,
		deps.TxManager,
		access,
		emailService,
		deps.Hub,
		logger.Component("faculty"),
	)
	courseService := appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.FacultyMemberRepository,
		access,
		deps.Hub,
		logger.Component("courses"),
	)
	profileService := appServices.NewProfileService(
		deps.Repos.FacultyMemberRepository,
		deps.Repos.OfficeHourRepository,
		deps.Repos.PublicationRepository,
		access,
		logger.Component("profiles"),
	)
	certificateService := appServices.NewCertificateService(
		bucket,
		deps.Repos.FacultyMemberRepository,
		access,
		deps.Hub,
		appServices.CertificateConfig{
			MaxFileSize:       cfg.Storage.MaxFileSize,
			AllowedExtensions: cfg.Storage.AllowedExtensions,
		},
		logger.Component("certificates"),
	)
	dashboardService := appServices.NewDashboardService(deps.Repos, certificateService, logger.Component("dashboards"))

	deps.AuthMW = appMiddleware.NewAuthMiddleware(deps.JWTService, authService)

	deps.Controllers = appRoutes.Controllers{
		Auth:         appControllers.NewAuthController(authService, logger.Component("auth")),
		Department:   appControllers.NewDepartmentController(departmentService),
		Faculty:      appControllers.NewFacultyController(facultyService),
		Course:       appControllers.NewCourseController(courseService),
		Certificate:  appControllers.NewCertificateController(certificateService, appRoutes.APIBasePath),
		Profile:      appControllers.NewProfileController(profileService),
		Role:         appControllers.NewRoleController(roleService),
		Layout:       appControllers.NewLayoutController(dashboardService),
		Notification: appControllers.NewNotificationController(websocket.NewUpgrader(deps.Hub, cfg.Security.CORSOrigins), logger.Component("notifications")),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, database *db.PostgresDB) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	if err := appMiddleware.ConfigureValidator(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS(cfg.Security.CORSOrigins))
	router.MaxMultipartMemory = cfg.Storage.MaxFileSize + 1<<20

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMW)

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := database.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router, nil
}
