package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hoa-be-svc/internal/middleware"
	"hoa-be-svc/internal/service"
	"hoa-be-svc/pkg/logger"
)

// SetupRoutes registers every route on the router
func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	userService service.UserService,
	houseService service.HouseService,
	vendorService service.VendorService,
	vehiclePassService service.VehiclePassService,
	alertService service.AlertService,
	cctvRequestService service.CCTVRequestService,
	monthlyDueService service.MonthlyDueService,
	paymentService service.PaymentService,
	complaintService service.ComplaintService,
	dashboardService service.DashboardService,
	logger *logger.Logger,
) {
	// Initialize handlers
	authHandler := NewAuthHandler(authService, logger)
	userHandler := NewUserHandler(userService, logger)
	houseHandler := NewHouseHandler(houseService, logger)
	vendorHandler := NewVendorHandler(vendorService, logger)
	vehiclePassHandler := NewVehiclePassHandler(vehiclePassService, logger)
	alertHandler := NewAlertHandler(alertService, logger)
	cctvRequestHandler := NewCCTVRequestHandler(cctvRequestService, logger)
	monthlyDueHandler := NewMonthlyDueHandler(monthlyDueService, logger)
	paymentHandler := NewPaymentHandler(paymentService, logger)
	complaintHandler := NewComplaintHandler(complaintService, logger)
	dashboardHandler := NewDashboardHandler(dashboardService, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", HealthCheck)

	// Public auth routes
	router.POST("/register/", authHandler.Register)
	router.POST("/token/", authHandler.Token)
	router.POST("/token/refresh/", authHandler.TokenRefresh)

	// Authenticated API group
	api := router.Group("/api")
	api.Use(middleware.Authenticate(authService))
	{
		// User routes
		users := api.Group("/users")
		{
			users.GET("", userHandler.List)
			users.GET("/:id", userHandler.Get)
			users.PUT("/:id", userHandler.Update)
			users.PATCH("/:id", userHandler.Update)
			users.DELETE("/:id", userHandler.Delete)
		}

		// House routes
		houses := api.Group("/houses")
		{
			houses.GET("", houseHandler.List)
			houses.POST("", houseHandler.Create)
			houses.GET("/:id", houseHandler.Get)
			houses.PUT("/:id", houseHandler.Update)
			houses.PATCH("/:id", houseHandler.Update)
			houses.DELETE("/:id", houseHandler.Delete)
		}

		// Vendor routes
		vendors := api.Group("/vendors")
		{
			vendors.GET("", vendorHandler.List)
			vendors.POST("", vendorHandler.Create)
			vendors.GET("/:id", vendorHandler.Get)
			vendors.PUT("/:id", vendorHandler.Update)
			vendors.PATCH("/:id", vendorHandler.Update)
			vendors.DELETE("/:id", vendorHandler.Delete)
		}

		// Vehicle pass routes
		vehiclePasses := api.Group("/vehicle-passes")
		{
			vehiclePasses.GET("", vehiclePassHandler.List)
			vehiclePasses.POST("", vehiclePassHandler.Create)
			vehiclePasses.GET("/:id", vehiclePassHandler.Get)
			vehiclePasses.PUT("/:id", vehiclePassHandler.Update)
			vehiclePasses.PATCH("/:id", vehiclePassHandler.Update)
			vehiclePasses.DELETE("/:id", vehiclePassHandler.Delete)
		}

		// Alert routes
		alerts := api.Group("/alerts")
		{
			alerts.GET("", alertHandler.List)
			alerts.POST("", alertHandler.Create)
			alerts.GET("/:id", alertHandler.Get)
			alerts.PUT("/:id", alertHandler.Update)
			alerts.PATCH("/:id", alertHandler.Update)
			alerts.DELETE("/:id", alertHandler.Delete)
		}

		// CCTV request routes
		cctvRequests := api.Group("/cctv-requests")
		{
			cctvRequests.GET("", cctvRequestHandler.List)
			cctvRequests.POST("", cctvRequestHandler.Create)
			cctvRequests.GET("/:id", cctvRequestHandler.Get)
			cctvRequests.PUT("/:id", cctvRequestHandler.Update)
			cctvRequests.PATCH("/:id", cctvRequestHandler.Update)
			cctvRequests.DELETE("/:id", cctvRequestHandler.Delete)
		}

		// Monthly due routes
		monthlyDues := api.Group("/monthly-dues")
		{
			monthlyDues.GET("", monthlyDueHandler.List)
			monthlyDues.POST("", monthlyDueHandler.Create)
			monthlyDues.GET("/:id", monthlyDueHandler.Get)
			monthlyDues.PUT("/:id", monthlyDueHandler.Update)
			monthlyDues.PATCH("/:id", monthlyDueHandler.Update)
			monthlyDues.DELETE("/:id", monthlyDueHandler.Delete)
		}

		// Payment routes
		payments := api.Group("/payments")
		{
			payments.GET("", paymentHandler.List)
			payments.POST("", paymentHandler.Create)
			payments.GET("/:id", paymentHandler.Get)
			payments.PUT("/:id", paymentHandler.Update)
			payments.PATCH("/:id", paymentHandler.Update)
			payments.DELETE("/:id", paymentHandler.Delete)
		}

		// Complaint routes
		complaints := api.Group("/complaints")
		{
			complaints.GET("", complaintHandler.List)
			complaints.POST("", complaintHandler.Create)
			complaints.GET("/:id", complaintHandler.Get)
			complaints.PUT("/:id", complaintHandler.Update)
			complaints.PATCH("/:id", complaintHandler.Update)
			complaints.DELETE("/:id", complaintHandler.Delete)
		}

		// Dashboard routes
		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/summary", dashboardHandler.GetCommunitySummary)
		}
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "HOA Backend Service",
	})
}
