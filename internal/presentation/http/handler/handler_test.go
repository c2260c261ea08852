package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prasert/baanpak-api/internal/application/service"
	"github.com/prasert/baanpak-api/internal/domain/entity"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	"github.com/prasert/baanpak-api/internal/infrastructure/database"
	"github.com/prasert/baanpak-api/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))

	roomRepo := repository.NewRoomRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)

	roomHandler := NewRoomHandler(service.NewRoomService(roomRepo, bookingRepo))
	bookingHandler := NewBookingHandler(service.NewBookingService(bookingRepo, roomRepo, guestRepo))
	reportHandler := NewReportHandler(service.NewReportService(bookingRepo, expenseRepo, roomRepo))

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.GET("/rooms/available", roomHandler.Available)
	v1.POST("/bookings", bookingHandler.Create)
	v1.POST("/bookings/:id/check-in", bookingHandler.CheckIn)
	v1.GET("/reports/daily", reportHandler.Daily)

	return router, db
}

func seedRoomAndGuest(t *testing.T, db *gorm.DB) (*entity.Room, *entity.Guest) {
	t.Helper()
	room := &entity.Room{RoomNumber: "A101", RoomType: "Standard", Price: 40000, Status: enum.RoomStatusVacant}
	require.NoError(t, db.Create(room).Error)
	guest := &entity.Guest{FullName: "Somchai"}
	require.NoError(t, db.Create(guest).Error)
	return room, guest
}

func TestCreateBookingEndpoint(t *testing.T) {
	router, db := setupRouter(t)
	room, guest := seedRoomAndGuest(t, db)

	body := `{"guest_id":"` + guest.ID.String() + `","room_id":"` + room.ID.String() +
		`","check_in":"2026-03-10","check_out":"2026-03-13","payment_method":"Cash"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Nights    int     `json:"nights"`
			Total     float64 `json:"total"`
			Fee       float64 `json:"fee"`
			Final     float64 `json:"final"`
			Status    string  `json:"status"`
			InvoiceNo string  `json:"invoice_no"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Data.Nights)
	assert.InDelta(t, 1200.0, resp.Data.Total, 0.001)
	assert.InDelta(t, 12.0, resp.Data.Fee, 0.001)
	assert.InDelta(t, 1212.0, resp.Data.Final, 0.001)
	assert.Equal(t, "Reserved", resp.Data.Status)
	assert.NotEmpty(t, resp.Data.InvoiceNo)
}

func TestCreateBookingEndpointBadDate(t *testing.T) {
	router, db := setupRouter(t)
	room, guest := seedRoomAndGuest(t, db)

	body := `{"guest_id":"` + guest.ID.String() + `","room_id":"` + room.ID.String() +
		`","check_in":"10/03/2026","check_out":"2026-03-13"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAvailabilityEndpoint(t *testing.T) {
	router, db := setupRouter(t)
	room, guest := seedRoomAndGuest(t, db)
	require.NoError(t, db.Create(&entity.Room{RoomNumber: "A102", RoomType: "Standard", Price: 40000}).Error)

	body := `{"guest_id":"` + guest.ID.String() + `","room_id":"` + room.ID.String() +
		`","check_in":"2026-03-10","check_out":"2026-03-13"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/api/v1/rooms/available?check_in=2026-03-11&check_out=2026-03-12", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			RoomNumber string `json:"room_number"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "A102", resp.Data[0].RoomNumber)

	// Missing dates are a 400
	req = httptest.NewRequest(http.MethodGet, "/api/v1/rooms/available", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDailyReportEndpoint(t *testing.T) {
	router, db := setupRouter(t)
	room, guest := seedRoomAndGuest(t, db)

	body := `{"guest_id":"` + guest.ID.String() + `","room_id":"` + room.ID.String() +
		`","check_in":"2026-03-10","check_out":"2026-03-12","payment_method":"Transfer"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/api/v1/reports/daily?date=2026-03-10", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Cash     int64 `json:"cash"`
			Transfer int64 `json:"transfer"`
			Income   int64 `json:"income"`
			Net      int64 `json:"net"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(0), resp.Data.Cash)
	assert.Equal(t, int64(80800), resp.Data.Transfer)
	assert.Equal(t, int64(80800), resp.Data.Income)
}
