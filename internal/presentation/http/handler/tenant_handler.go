package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/application/service"
	"github.com/prasert/baanpak-api/internal/domain/repository"
	"github.com/prasert/baanpak-api/internal/presentation/http/dto/response"
)

// TenantHandler handles monthly-renter HTTP requests
type TenantHandler struct {
	tenantService *service.TenantService
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantService *service.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// List handles listing tenants
func (h *TenantHandler) List(c *gin.Context) {
	params := &repository.RegistryFilterParams{
		Pagination:      paginationFromQuery(c),
		Search:          c.Query("search"),
		IncludeInactive: c.Query("include_inactive") == "true",
	}

	result, err := h.tenantService.ListTenants(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Tenants retrieved successfully", result)
}

// Create handles registering a tenant
func (h *TenantHandler) Create(c *gin.Context) {
	var req struct {
		Name        string  `json:"name" binding:"required"`
		RoomNumber  string  `json:"room_number" binding:"required"`
		MonthlyRent float64 `json:"monthly_rent" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tenant, err := h.tenantService.CreateTenant(c.Request.Context(), &service.CreateTenantInput{
		Name:        req.Name,
		RoomNumber:  req.RoomNumber,
		MonthlyRent: req.MonthlyRent,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Tenant created successfully", tenant)
}

// Get handles getting a single tenant
func (h *TenantHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tenant ID")
		return
	}

	tenant, err := h.tenantService.GetTenant(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tenant retrieved successfully", tenant)
}

// Update handles updating a tenant
func (h *TenantHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req struct {
		Name        *string  `json:"name"`
		RoomNumber  *string  `json:"room_number"`
		MonthlyRent *float64 `json:"monthly_rent"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tenant, err := h.tenantService.UpdateTenant(c.Request.Context(), &service.UpdateTenantInput{
		ID:          id,
		Name:        req.Name,
		RoomNumber:  req.RoomNumber,
		MonthlyRent: req.MonthlyRent,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tenant updated successfully", tenant)
}

// Deactivate handles soft-deleting a tenant
func (h *TenantHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tenant ID")
		return
	}

	if err := h.tenantService.DeactivateTenant(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// MeterHandler handles meter reading and utility billing HTTP requests
type MeterHandler struct {
	meterService *service.MeterService
}

// NewMeterHandler creates a new meter handler
func NewMeterHandler(meterService *service.MeterService) *MeterHandler {
	return &MeterHandler{meterService: meterService}
}

// RecordReading handles entering a tenant's meter values for a month
func (h *MeterHandler) RecordReading(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req struct {
		Year             int  `json:"year" binding:"required"`
		Month            int  `json:"month" binding:"required"`
		WaterUnits       *int `json:"water_units"`
		ElectricityUnits *int `json:"electricity_units"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	reading, err := h.meterService.RecordReading(c.Request.Context(), &service.RecordReadingInput{
		TenantID:         tenantID,
		Year:             req.Year,
		Month:            req.Month,
		WaterUnits:       req.WaterUnits,
		ElectricityUnits: req.ElectricityUnits,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Meter reading recorded successfully", reading)
}

// History handles listing a tenant's readings for one year
func (h *MeterHandler) History(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tenant ID")
		return
	}

	year := intQuery(c, "year", time.Now().Year())

	readings, err := h.meterService.GetHistory(c.Request.Context(), tenantID, year)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Meter readings retrieved successfully", readings)
}

// Bill handles computing a tenant's monthly utility bill
func (h *MeterHandler) Bill(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tenant ID")
		return
	}

	now := time.Now()
	year := intQuery(c, "year", now.Year())
	month := intQuery(c, "month", int(now.Month()))

	bill, err := h.meterService.ComputeBill(c.Request.Context(), tenantID, year, month)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill computed successfully", bill)
}
