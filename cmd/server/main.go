package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"hoa-be-svc/docs"
	"hoa-be-svc/internal/config"
	"hoa-be-svc/internal/database"
	"hoa-be-svc/internal/handler"
	"hoa-be-svc/internal/middleware"
	"hoa-be-svc/internal/repository"
	"hoa-be-svc/internal/service"
	"hoa-be-svc/pkg/logger"
)

// @title HOA Backend Service API
// @version 1.0
// @description RESTful API for residential community management
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Title = "HOA Backend Service API"
	docs.SwaggerInfo.Description = "RESTful API for residential community management"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = ""
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting HOA Backend Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.DB)
	houseRepo := repository.NewHouseRepository(db.DB)
	vendorRepo := repository.NewVendorRepository(db.DB)
	vehiclePassRepo := repository.NewVehiclePassRepository(db.DB)
	alertRepo := repository.NewAlertRepository(db.DB)
	cctvRequestRepo := repository.NewCCTVRequestRepository(db.DB)
	monthlyDueRepo := repository.NewMonthlyDueRepository(db.DB)
	paymentRepo := repository.NewPaymentRepository(db.DB)
	complaintRepo := repository.NewComplaintRepository(db.DB)
	dashboardRepo := repository.NewDashboardRepository(db.DB)

	// Initialize services
	authService := service.NewAuthService(userRepo, houseRepo, cfg.JWT, appLogger)
	userService := service.NewUserService(userRepo, houseRepo, appLogger)
	houseService := service.NewHouseService(houseRepo, appLogger)
	vendorService := service.NewVendorService(vendorRepo, appLogger)
	vehiclePassService := service.NewVehiclePassService(vehiclePassRepo, appLogger)
	alertService := service.NewAlertService(alertRepo, appLogger)
	cctvRequestService := service.NewCCTVRequestService(cctvRequestRepo, appLogger)
	monthlyDueService := service.NewMonthlyDueService(monthlyDueRepo, houseRepo, appLogger)
	paymentService := service.NewPaymentService(paymentRepo, appLogger)
	complaintService := service.NewComplaintService(complaintRepo, appLogger)
	dashboardService := service.NewDashboardService(dashboardRepo, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.RequestID())
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	// Setup routes
	handler.SetupRoutes(router, authService, userService, houseService, vendorService, vehiclePassService, alertService, cctvRequestService, monthlyDueService, paymentService, complaintService, dashboardService, appLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Fatal("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}
