package valueobjects

import "fmt"

// Status is the lifecycle status of a vehicle in the fleet.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusRented      Status = "rented"
	StatusSold        Status = "sold"
	StatusMaintenance Status = "maintenance"
)

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid vehicle status: %s", s)
	}
	return status, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusRented, StatusSold, StatusMaintenance:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
