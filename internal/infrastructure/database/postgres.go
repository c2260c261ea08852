package database

import (
	"fmt"
	"log"

	"github.com/prasert/baanpak-api/internal/config"
	"github.com/prasert/baanpak-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Property entities
		&entity.Room{},
		&entity.Guest{},
		&entity.Booking{},

		// Dormitory entities
		&entity.Tenant{},
		&entity.MeterReading{},

		// Finance entities
		&entity.Expense{},
		&entity.Employee{},
		&entity.PayrollRecord{},

		// System entities
		&entity.Settings{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the utility-rate settings row if none exists.
// Defaults: 25 baht per water unit, 8 baht per electricity unit.
func SeedDefaultData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Settings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	settings := entity.Settings{
		WaterRate:       2500,
		ElectricityRate: 800,
	}
	if err := db.Create(&settings).Error; err != nil {
		return fmt.Errorf("failed to seed default settings: %w", err)
	}

	log.Println("Seeded default utility rates")
	return nil
}
