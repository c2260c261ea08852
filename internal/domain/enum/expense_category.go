package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ExpenseCategory groups outgoing cash for range reports.
type ExpenseCategory int

const (
	ExpenseCategorySupplies    ExpenseCategory = 0
	ExpenseCategoryUtilities   ExpenseCategory = 1
	ExpenseCategoryMaintenance ExpenseCategory = 2
	ExpenseCategoryWages       ExpenseCategory = 3
	ExpenseCategoryOther       ExpenseCategory = 4
)

func (c ExpenseCategory) String() string {
	return [...]string{"Supplies", "Utilities", "Maintenance", "Wages", "Other"}[c]
}

func (c ExpenseCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ExpenseCategory) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*c = ExpenseCategory(i)
		return nil
	}
	switch str {
	case "Supplies":
		*c = ExpenseCategorySupplies
	case "Utilities":
		*c = ExpenseCategoryUtilities
	case "Maintenance":
		*c = ExpenseCategoryMaintenance
	case "Wages":
		*c = ExpenseCategoryWages
	case "Other":
		*c = ExpenseCategoryOther
	}
	return nil
}

func (c ExpenseCategory) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *ExpenseCategory) Scan(value interface{}) error {
	if value == nil {
		*c = ExpenseCategoryOther
		return nil
	}
	switch v := value.(type) {
	case int64:
		*c = ExpenseCategory(v)
	case int:
		*c = ExpenseCategory(v)
	}
	return nil
}
