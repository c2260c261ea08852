package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prasert/baanpak-api/internal/application/service"
	"github.com/prasert/baanpak-api/internal/config"
	"github.com/prasert/baanpak-api/internal/infrastructure/database"
	"github.com/prasert/baanpak-api/internal/infrastructure/repository"
	"github.com/prasert/baanpak-api/internal/presentation/http/handler"
	"github.com/prasert/baanpak-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize repositories
	roomRepo := repository.NewRoomRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	readingRepo := repository.NewMeterReadingRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	payrollRepo := repository.NewPayrollRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	roomService := service.NewRoomService(roomRepo, bookingRepo)
	guestService := service.NewGuestService(guestRepo)
	bookingService := service.NewBookingService(bookingRepo, roomRepo, guestRepo)
	expenseService := service.NewExpenseService(expenseRepo)
	tenantService := service.NewTenantService(tenantRepo)
	meterService := service.NewMeterService(tenantRepo, readingRepo, settingsRepo)
	employeeService := service.NewEmployeeService(employeeRepo)
	payrollService := service.NewPayrollService(employeeRepo, payrollRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	reportService := service.NewReportService(bookingRepo, expenseRepo, roomRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Room:     handler.NewRoomHandler(roomService),
		Guest:    handler.NewGuestHandler(guestService),
		Booking:  handler.NewBookingHandler(bookingService),
		Expense:  handler.NewExpenseHandler(expenseService),
		Tenant:   handler.NewTenantHandler(tenantService),
		Meter:    handler.NewMeterHandler(meterService),
		Employee: handler.NewEmployeeHandler(employeeService),
		Payroll:  handler.NewPayrollHandler(payrollService),
		Settings: handler.NewSettingsHandler(settingsService),
		Report:   handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
