package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/entity"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	"github.com/prasert/baanpak-api/internal/domain/repository"
	"github.com/prasert/baanpak-api/pkg/apperror"
	"github.com/prasert/baanpak-api/pkg/pagination"
)

// ExpenseService handles daily expense entries
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// CreateExpenseInput represents the create expense input
type CreateExpenseInput struct {
	Category enum.ExpenseCategory
	Amount   float64 // Baht
	Note     string
	Date     time.Time
}

// CreateExpense records a new expense
func (s *ExpenseService) CreateExpense(ctx context.Context, input *CreateExpenseInput) (*entity.Expense, error) {
	if input.Amount < 0 {
		return nil, apperror.NewUnprocessableError("Expense amount must not be negative")
	}

	expense := &entity.Expense{
		Category: input.Category,
		Amount:   int64(input.Amount * 100),
		Note:     input.Note,
		Date:     input.Date,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// GetExpense retrieves an expense by ID
func (s *ExpenseService) GetExpense(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}
	return expense, nil
}

// ListExpenses lists expenses with filtering
func (s *ExpenseService) ListExpenses(ctx context.Context, params *repository.ExpenseFilterParams) (*pagination.PaginatedResult[entity.Expense], error) {
	expenses, total, err := s.expenseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(expenses, p), nil
}

// UpdateExpenseInput represents the update expense input
type UpdateExpenseInput struct {
	ID       uuid.UUID
	Category *enum.ExpenseCategory
	Amount   *float64 // Baht
	Note     *string
	Date     *time.Time
}

// UpdateExpense updates an expense entry
func (s *ExpenseService) UpdateExpense(ctx context.Context, input *UpdateExpenseInput) (*entity.Expense, error) {
	expense, err := s.GetExpense(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Category != nil {
		expense.Category = *input.Category
	}
	if input.Amount != nil {
		if *input.Amount < 0 {
			return nil, apperror.NewUnprocessableError("Expense amount must not be negative")
		}
		expense.Amount = int64(*input.Amount * 100)
	}
	if input.Note != nil {
		expense.Note = *input.Note
	}
	if input.Date != nil {
		expense.Date = *input.Date
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense removes an expense entry
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	expense, err := s.GetExpense(ctx, id)
	if err != nil {
		return err
	}
	return s.expenseRepo.Delete(ctx, expense.ID)
}
