package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hireview_backend/database"
	"hireview_backend/internal/ai"
	"hireview_backend/internal/config"
	"hireview_backend/internal/email"
	"hireview_backend/internal/handlers"
	"hireview_backend/internal/logger"
	"hireview_backend/internal/middleware"
	"hireview_backend/internal/models"
	"hireview_backend/internal/repositories"
	"hireview_backend/internal/routes"
	"hireview_backend/internal/services"
	"hireview_backend/internal/storage"
	"hireview_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	oracle, err := ai.NewOracle(ai.Config{
		Provider:       cfg.AI.Provider,
		Model:          cfg.AI.Model,
		APIKey:         cfg.AI.APIKey,
		Project:        cfg.AI.Project,
		Location:       cfg.AI.Location,
		TimeoutSeconds: cfg.AI.TimeoutSeconds,
	})
	if err != nil {
		logger.Fatal("Failed to initialize AI oracle", "error", err)
	}
	logger.Info("AI oracle initialized", "provider", cfg.AI.Provider)

	serviceContainer := initializeServices(cfg, gormDB, oracle, storageInstance)
	appHandlers := initializeHandlers(serviceContainer)
	ginRouter := initializeGinRouter()

	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, oracle ai.Oracle, storageInstance storage.Storage) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.Enabled {
		emailProvider = email.NewSMTPProvider(email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
	} else {
		logger.Warn("Email sending disabled, using mock provider")
		emailProvider = &MockEmailProvider{}
	}

	repos := repositories.NewRepositoryContainer(gormDB)
	return services.NewServiceContainer(repos, oracle, emailProvider, storageInstance, cfg.Server.PublicURL)
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:       handlers.NewAuthHandler(baseHandler, sc.AuthService),
		UserHandler:       handlers.NewUserHandler(baseHandler, sc.UserService),
		CompanyHandler:    handlers.NewCompanyHandler(baseHandler, sc.CompanyService),
		JobPostingHandler: handlers.NewJobPostingHandler(baseHandler, sc.JobPostingService, sc.QuestionService, sc.InterviewService),
		InterviewHandler:  handlers.NewInterviewHandler(baseHandler, sc.InterviewService, sc.QuestionService, sc.EvaluationService, sc.UploadService),
		QuestionHandler:   handlers.NewQuestionHandler(baseHandler, sc.QuestionService),
		ResponseHandler:   handlers.NewResponseHandler(baseHandler, sc.ResponseService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedFirstAdmin создает первого суперпользователя, если его еще нет.
// Без него нельзя создать ни компанию, ни остальных пользователей.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var admin models.User
	result := db.Where("email = ?", adminEmail).First(&admin)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin...", "email", adminEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		FullName:     "Administrator",
		IsActive:     true,
		IsSuperuser:  true,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return nil
}
