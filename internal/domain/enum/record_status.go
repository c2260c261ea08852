package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// RecordStatus marks registry records (guests, tenants, employees) as active or
// soft-deleted. Inactive records are hidden from pickers but keep their history.
type RecordStatus int

const (
	RecordStatusActive   RecordStatus = 0
	RecordStatusInactive RecordStatus = 1
)

func (s RecordStatus) String() string {
	return [...]string{"Active", "Inactive"}[s]
}

func (s RecordStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *RecordStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = RecordStatus(i)
		return nil
	}
	switch str {
	case "Active":
		*s = RecordStatusActive
	case "Inactive":
		*s = RecordStatusInactive
	}
	return nil
}

func (s RecordStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *RecordStatus) Scan(value interface{}) error {
	if value == nil {
		*s = RecordStatusActive
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = RecordStatus(v)
	case int:
		*s = RecordStatus(v)
	}
	return nil
}
