package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/application/service"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	"github.com/prasert/baanpak-api/internal/domain/repository"
	"github.com/prasert/baanpak-api/internal/presentation/http/dto/response"
)

// EmployeeHandler handles employee-related HTTP requests
type EmployeeHandler struct {
	employeeService *service.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// List handles listing employees
func (h *EmployeeHandler) List(c *gin.Context) {
	params := &repository.RegistryFilterParams{
		Pagination:      paginationFromQuery(c),
		Search:          c.Query("search"),
		IncludeInactive: c.Query("include_inactive") == "true",
	}

	result, err := h.employeeService.ListEmployees(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Employees retrieved successfully", result)
}

// Create handles registering an employee
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req struct {
		Name           string              `json:"name" binding:"required"`
		Position       string              `json:"position"`
		EmploymentType enum.EmploymentType `json:"employment_type"`
		BaseRate       float64             `json:"base_rate" binding:"required"`
		BankName       *string             `json:"bank_name"`
		BankAccountNo  *string             `json:"bank_account_no"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), &service.CreateEmployeeInput{
		Name:           req.Name,
		Position:       req.Position,
		EmploymentType: req.EmploymentType,
		BaseRate:       req.BaseRate,
		BankName:       req.BankName,
		BankAccountNo:  req.BankAccountNo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Employee created successfully", employee)
}

// Get handles getting a single employee
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.employeeService.GetEmployee(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee retrieved successfully", employee)
}

// Update handles updating an employee
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	var req struct {
		Name           *string              `json:"name"`
		Position       *string              `json:"position"`
		EmploymentType *enum.EmploymentType `json:"employment_type"`
		BaseRate       *float64             `json:"base_rate"`
		BankName       *string              `json:"bank_name"`
		BankAccountNo  *string              `json:"bank_account_no"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), &service.UpdateEmployeeInput{
		ID:             id,
		Name:           req.Name,
		Position:       req.Position,
		EmploymentType: req.EmploymentType,
		BaseRate:       req.BaseRate,
		BankName:       req.BankName,
		BankAccountNo:  req.BankAccountNo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee updated successfully", employee)
}

// Deactivate handles soft-deleting an employee
func (h *EmployeeHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	if err := h.employeeService.DeactivateEmployee(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// PayrollHandler handles payroll-related HTTP requests
type PayrollHandler struct {
	payrollService *service.PayrollService
}

// NewPayrollHandler creates a new payroll handler
func NewPayrollHandler(payrollService *service.PayrollService) *PayrollHandler {
	return &PayrollHandler{payrollService: payrollService}
}

func payrollPeriodFromQuery(c *gin.Context) (int, int, enum.PayPeriod) {
	now := time.Now()
	year := intQuery(c, "year", now.Year())
	month := intQuery(c, "month", int(now.Month()))
	period := enum.PayPeriod(intQuery(c, "period", int(enum.PayPeriodFirst)))
	return year, month, period
}

// Sync reconciles one pay period's rows with the active employee roster
func (h *PayrollHandler) Sync(c *gin.Context) {
	year, month, period := payrollPeriodFromQuery(c)

	rows, err := h.payrollService.SyncPeriod(c.Request.Context(), year, month, period)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payroll period synced successfully", rows)
}

// List returns one pay period's rows with computed pay
func (h *PayrollHandler) List(c *gin.Context) {
	year, month, period := payrollPeriodFromQuery(c)

	rows, err := h.payrollService.ListPeriod(c.Request.Context(), year, month, period)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payroll records retrieved successfully", rows)
}

// Update edits one payroll row's input cells
func (h *PayrollHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payroll record ID")
		return
	}

	var req struct {
		WorkDays                *int     `json:"work_days"`
		OtherIncome             *float64 `json:"other_income"`
		DeductionSocialSecurity *float64 `json:"deduction_social_security"`
		DeductionAbsence        *float64 `json:"deduction_absence"`
		DeductionOther          *float64 `json:"deduction_other"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	row, err := h.payrollService.UpdateRecord(c.Request.Context(), &service.UpdateRecordInput{
		ID:                      id,
		WorkDays:                req.WorkDays,
		OtherIncome:             req.OtherIncome,
		DeductionSocialSecurity: req.DeductionSocialSecurity,
		DeductionAbsence:        req.DeductionAbsence,
		DeductionOther:          req.DeductionOther,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payroll record updated successfully", row)
}

// Summary returns the monthly roll-up across both pay periods
func (h *PayrollHandler) Summary(c *gin.Context) {
	now := time.Now()
	year := intQuery(c, "year", now.Year())
	month := intQuery(c, "month", int(now.Month()))

	summary, err := h.payrollService.MonthlySummary(c.Request.Context(), year, month)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payroll summary computed successfully", summary)
}
