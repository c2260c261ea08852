package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prasert/baanpak-api/internal/config"
	"github.com/prasert/baanpak-api/internal/presentation/http/handler"
	"github.com/prasert/baanpak-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Room     *handler.RoomHandler
	Guest    *handler.GuestHandler
	Booking  *handler.BookingHandler
	Expense  *handler.ExpenseHandler
	Tenant   *handler.TenantHandler
	Meter    *handler.MeterHandler
	Employee *handler.EmployeeHandler
	Payroll  *handler.PayrollHandler
	Settings *handler.SettingsHandler
	Report   *handler.ReportHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
		BurstSize:         cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		registerRoomRoutes(v1, h)
		registerGuestRoutes(v1, h)
		registerBookingRoutes(v1, h)
		registerExpenseRoutes(v1, h)
		registerTenantRoutes(v1, h)
		registerEmployeeRoutes(v1, h)
		registerPayrollRoutes(v1, h)
		registerReportRoutes(v1, h)

		// Settings
		v1.GET("/settings", h.Settings.Get)
		v1.PUT("/settings", h.Settings.Update)
	}

	return router
}

func registerRoomRoutes(v1 *gin.RouterGroup, h *Handlers) {
	rooms := v1.Group("/rooms")
	{
		rooms.GET("", h.Room.List)
		rooms.POST("", h.Room.Create)
		rooms.GET("/available", h.Room.Available)
		rooms.GET("/:id", h.Room.Get)
		rooms.PUT("/:id", h.Room.Update)
		rooms.PUT("/:id/status", h.Room.UpdateStatus)
		rooms.DELETE("/:id", h.Room.Delete)
	}
}

func registerGuestRoutes(v1 *gin.RouterGroup, h *Handlers) {
	guests := v1.Group("/guests")
	{
		guests.GET("", h.Guest.List)
		guests.POST("", h.Guest.Create)
		guests.GET("/:id", h.Guest.Get)
		guests.PUT("/:id", h.Guest.Update)
		guests.DELETE("/:id", h.Guest.Deactivate)
	}
}

func registerBookingRoutes(v1 *gin.RouterGroup, h *Handlers) {
	bookings := v1.Group("/bookings")
	{
		bookings.GET("", h.Booking.List)
		bookings.POST("", h.Booking.Create)
		bookings.GET("/:id", h.Booking.Get)
		bookings.POST("/:id/check-in", h.Booking.CheckIn)
		bookings.POST("/:id/check-out", h.Booking.CheckOut)
		bookings.POST("/:id/cancel", h.Booking.Cancel)
		bookings.POST("/:id/extend", h.Booking.Extend)
	}
}

func registerExpenseRoutes(v1 *gin.RouterGroup, h *Handlers) {
	expenses := v1.Group("/expenses")
	{
		expenses.GET("", h.Expense.List)
		expenses.POST("", h.Expense.Create)
		expenses.GET("/:id", h.Expense.Get)
		expenses.PUT("/:id", h.Expense.Update)
		expenses.DELETE("/:id", h.Expense.Delete)
	}
}

func registerTenantRoutes(v1 *gin.RouterGroup, h *Handlers) {
	tenants := v1.Group("/tenants")
	{
		tenants.GET("", h.Tenant.List)
		tenants.POST("", h.Tenant.Create)
		tenants.GET("/:id", h.Tenant.Get)
		tenants.PUT("/:id", h.Tenant.Update)
		tenants.DELETE("/:id", h.Tenant.Deactivate)

		// Meter readings and billing per tenant
		tenants.POST("/:id/readings", h.Meter.RecordReading)
		tenants.GET("/:id/readings", h.Meter.History)
		tenants.GET("/:id/bill", h.Meter.Bill)
	}
}

func registerEmployeeRoutes(v1 *gin.RouterGroup, h *Handlers) {
	employees := v1.Group("/employees")
	{
		employees.GET("", h.Employee.List)
		employees.POST("", h.Employee.Create)
		employees.GET("/:id", h.Employee.Get)
		employees.PUT("/:id", h.Employee.Update)
		employees.DELETE("/:id", h.Employee.Deactivate)
	}
}

func registerPayrollRoutes(v1 *gin.RouterGroup, h *Handlers) {
	payroll := v1.Group("/payroll")
	{
		payroll.GET("", h.Payroll.List)
		payroll.POST("/sync", h.Payroll.Sync)
		payroll.PUT("/:id", h.Payroll.Update)
		payroll.GET("/summary", h.Payroll.Summary)
	}
}

func registerReportRoutes(v1 *gin.RouterGroup, h *Handlers) {
	reports := v1.Group("/reports")
	{
		reports.GET("/daily", h.Report.Daily)
		reports.GET("/range", h.Report.Range)
		reports.GET("/occupancy", h.Report.Occupancy)
		reports.GET("/monthly-trend", h.Report.MonthlyTrend)
	}
}
