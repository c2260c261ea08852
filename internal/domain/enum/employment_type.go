package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// EmploymentType distinguishes salaried staff from day-rate staff. It decides
// how gross income is derived in payroll calculation.
type EmploymentType int

const (
	EmploymentTypeMonthly EmploymentType = 0
	EmploymentTypeDaily   EmploymentType = 1
)

func (t EmploymentType) String() string {
	return [...]string{"Monthly", "Daily"}[t]
}

func (t EmploymentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *EmploymentType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = EmploymentType(i)
		return nil
	}
	switch str {
	case "Monthly":
		*t = EmploymentTypeMonthly
	case "Daily":
		*t = EmploymentTypeDaily
	}
	return nil
}

func (t EmploymentType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *EmploymentType) Scan(value interface{}) error {
	if value == nil {
		*t = EmploymentTypeMonthly
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = EmploymentType(v)
	case int:
		*t = EmploymentType(v)
	}
	return nil
}
