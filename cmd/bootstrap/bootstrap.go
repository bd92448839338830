package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FkReMy/hospital-bed-system-sub001/config"
	deliveryHttp "github.com/FkReMy/hospital-bed-system-sub001/internal/delivery/http"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/delivery/http/handler"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/delivery/http/middleware"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/backend"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/infrastructure/cache"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/repository"
	"github.com/FkReMy/hospital-bed-system-sub001/internal/usecase"
	"github.com/FkReMy/hospital-bed-system-sub001/pkg/jwt"
	"github.com/FkReMy/hospital-bed-system-sub001/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Backend     *backend.Client
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize backend client
	backendClient := backend.NewClient(cfg.Backend, logrus.StandardLogger())
	app.Backend = backendClient
	logrus.Info("Backend client initialized")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, backendClient, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, backendClient *backend.Client, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize query cache
	queryCache := cache.NewQueryCache()

	// Initialize repositories
	userRepo := repository.NewUserRepository(backendClient, queryCache)
	patientRepo := repository.NewPatientRepository(backendClient, queryCache)
	departmentRepo := repository.NewDepartmentRepository(backendClient, queryCache)
	roomRepo := repository.NewRoomRepository(backendClient, queryCache)
	bedRepo := repository.NewBedRepository(backendClient, queryCache)
	assignmentRepo := repository.NewBedAssignmentRepository(backendClient, queryCache)
	appointmentRepo := repository.NewAppointmentRepository(backendClient, queryCache)
	prescriptionRepo := repository.NewPrescriptionRepository(backendClient, queryCache)
	notificationRepo := repository.NewNotificationRepository(backendClient, queryCache)

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, backendClient, userRepo, jwtService, redisClient)
	bedUsecase := usecase.NewBedUsecase(log, queryCache, bedRepo, assignmentRepo, patientRepo)
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo, bedRepo, assignmentRepo, appointmentRepo, prescriptionRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, patientRepo, userRepo, notificationRepo)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(log, prescriptionRepo, patientRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(log, bedRepo, roomRepo, departmentRepo, appointmentRepo)
	navigationUsecase := usecase.NewNavigationUsecase()
	notificationUsecase := usecase.NewNotificationUsecase(log, notificationRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	bedHandler := handler.NewBedHandler(bedUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionUsecase, customValidator)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase, navigationUsecase, notificationUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigins)

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, bedHandler, patientHandler, appointmentHandler, prescriptionHandler, dashboardHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (redis, etc.)
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
