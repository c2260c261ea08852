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

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// List handles listing expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	params := &repository.ExpenseFilterParams{
		Pagination: paginationFromQuery(c),
	}

	var category enum.ExpenseCategory
	if enumQuery(c, "category", &category) {
		params.Category = &category
	}
	if start, ok, err := parseDateQuery(c, "start_date"); err == nil && ok {
		params.StartDate = &start
	}
	if end, ok, err := parseDateQuery(c, "end_date"); err == nil && ok {
		params.EndDate = &end
	}

	result, err := h.expenseService.ListExpenses(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Expenses retrieved successfully", result)
}

// Create handles recording an expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req struct {
		Category enum.ExpenseCategory `json:"category"`
		Amount   float64              `json:"amount" binding:"required"`
		Note     string               `json:"note"`
		Date     string               `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			response.BadRequest(c, "date must be in YYYY-MM-DD format")
			return
		}
		date = parsed
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), &service.CreateExpenseInput{
		Category: req.Category,
		Amount:   req.Amount,
		Note:     req.Note,
		Date:     date,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense created successfully", expense)
}

// Get handles getting a single expense
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	expense, err := h.expenseService.GetExpense(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense retrieved successfully", expense)
}

// Update handles updating an expense
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	var req struct {
		Category *enum.ExpenseCategory `json:"category"`
		Amount   *float64              `json:"amount"`
		Note     *string               `json:"note"`
		Date     *string               `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateExpenseInput{
		ID:       id,
		Category: req.Category,
		Amount:   req.Amount,
		Note:     req.Note,
	}
	if req.Date != nil {
		parsed, err := parseDate(*req.Date)
		if err != nil {
			response.BadRequest(c, "date must be in YYYY-MM-DD format")
			return
		}
		input.Date = &parsed
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense updated successfully", expense)
}

// Delete handles deleting an expense
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
