package service

import (
	"testing"
	"time"

	"github.com/prasert/baanpak-api/internal/domain/entity"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	"github.com/prasert/baanpak-api/internal/infrastructure/database"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory sqlite database migrated with the full
// schema. A single connection keeps the in-memory database alive for the
// whole test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedRoom(t *testing.T, db *gorm.DB, number, roomType string, priceSatang int64) *entity.Room {
	t.Helper()
	room := &entity.Room{
		RoomNumber: number,
		RoomType:   roomType,
		Price:      priceSatang,
		Status:     enum.RoomStatusVacant,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

func seedGuest(t *testing.T, db *gorm.DB, name string) *entity.Guest {
	t.Helper()
	guest := &entity.Guest{FullName: name}
	require.NoError(t, db.Create(guest).Error)
	return guest
}

func seedTenant(t *testing.T, db *gorm.DB, name, room string, rentSatang int64) *entity.Tenant {
	t.Helper()
	tenant := &entity.Tenant{
		Name:        name,
		RoomNumber:  room,
		MonthlyRent: rentSatang,
	}
	require.NoError(t, db.Create(tenant).Error)
	return tenant
}

func seedEmployee(t *testing.T, db *gorm.DB, name string, empType enum.EmploymentType, rateSatang int64) *entity.Employee {
	t.Helper()
	employee := &entity.Employee{
		Name:           name,
		Position:       "Staff",
		EmploymentType: empType,
		BaseRate:       rateSatang,
	}
	require.NoError(t, db.Create(employee).Error)
	return employee
}

func seedSettings(t *testing.T, db *gorm.DB, waterRate, elecRate int64) {
	t.Helper()
	require.NoError(t, database.SeedDefaultData(db))
	require.NoError(t, db.Model(&entity.Settings{}).
		Where("1 = 1").
		Updates(map[string]interface{}{"water_rate": waterRate, "electricity_rate": elecRate}).Error)
}

func intPtr(v int) *int { return &v }
