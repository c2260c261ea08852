package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PayPeriod is the semi-monthly payroll cycle: the 1st-15th or the 16th to the
// end of the month.
type PayPeriod int

const (
	PayPeriodFirst  PayPeriod = 1
	PayPeriodSecond PayPeriod = 2
)

func (p PayPeriod) String() string {
	switch p {
	case PayPeriodFirst:
		return "First"
	case PayPeriodSecond:
		return "Second"
	}
	return "Unknown"
}

// Valid reports whether p is one of the two defined cycles.
func (p PayPeriod) Valid() bool {
	return p == PayPeriodFirst || p == PayPeriodSecond
}

func (p PayPeriod) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(p))
}

func (p *PayPeriod) UnmarshalJSON(data []byte) error {
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return err
	}
	*p = PayPeriod(i)
	return nil
}

func (p PayPeriod) Value() (driver.Value, error) {
	return int64(p), nil
}

func (p *PayPeriod) Scan(value interface{}) error {
	if value == nil {
		*p = PayPeriodFirst
		return nil
	}
	switch v := value.(type) {
	case int64:
		*p = PayPeriod(v)
	case int:
		*p = PayPeriod(v)
	}
	return nil
}
