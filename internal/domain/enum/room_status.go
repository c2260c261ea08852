package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// RoomStatus represents the housekeeping state of a room
type RoomStatus int

const (
	RoomStatusVacant      RoomStatus = 0
	RoomStatusOccupied    RoomStatus = 1
	RoomStatusCleaning    RoomStatus = 2
	RoomStatusMaintenance RoomStatus = 3
)

func (s RoomStatus) String() string {
	return [...]string{"Vacant", "Occupied", "Cleaning", "Maintenance"}[s]
}

func (s RoomStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *RoomStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = RoomStatus(i)
		return nil
	}
	switch str {
	case "Vacant":
		*s = RoomStatusVacant
	case "Occupied":
		*s = RoomStatusOccupied
	case "Cleaning":
		*s = RoomStatusCleaning
	case "Maintenance":
		*s = RoomStatusMaintenance
	}
	return nil
}

func (s RoomStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *RoomStatus) Scan(value interface{}) error {
	if value == nil {
		*s = RoomStatusVacant
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = RoomStatus(v)
	case int:
		*s = RoomStatus(v)
	}
	return nil
}
