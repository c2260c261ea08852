package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus int

const (
	BookingStatusReserved   BookingStatus = 0
	BookingStatusCheckedIn  BookingStatus = 1
	BookingStatusCheckedOut BookingStatus = 2
	BookingStatusCancelled  BookingStatus = 3
)

func (s BookingStatus) String() string {
	return [...]string{"Reserved", "CheckedIn", "CheckedOut", "Cancelled"}[s]
}

// IsTerminal reports whether no further transition is allowed from this state
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCheckedOut || s == BookingStatusCancelled
}

func (s BookingStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *BookingStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = BookingStatus(i)
		return nil
	}
	switch str {
	case "Reserved":
		*s = BookingStatusReserved
	case "CheckedIn":
		*s = BookingStatusCheckedIn
	case "CheckedOut":
		*s = BookingStatusCheckedOut
	case "Cancelled":
		*s = BookingStatusCancelled
	}
	return nil
}

func (s BookingStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *BookingStatus) Scan(value interface{}) error {
	if value == nil {
		*s = BookingStatusReserved
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = BookingStatus(v)
	case int:
		*s = BookingStatus(v)
	}
	return nil
}
