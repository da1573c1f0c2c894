package constants

import (
	"database/sql/driver"
	"fmt"
)

// TripStatus is the lifecycle state of a trip: scheduled -> departed -> arrived
type TripStatus string

const (
	TripScheduled TripStatus = "scheduled"
	TripDeparted  TripStatus = "departed"
	TripArrived   TripStatus = "arrived"
)

var tripStatusOrder = map[TripStatus]int{
	TripScheduled: 0,
	TripDeparted:  1,
	TripArrived:   2,
}

func (s TripStatus) String() string { return string(s) }

// IsValid reports whether s is a known trip status
func (s TripStatus) IsValid() bool {
	_, ok := tripStatusOrder[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next keeps the lifecycle monotonic.
// Staying on the same status is allowed.
func (s TripStatus) CanTransitionTo(next TripStatus) bool {
	from, okFrom := tripStatusOrder[s]
	to, okTo := tripStatusOrder[next]
	return okFrom && okTo && to >= from
}

// Scan implements the sql.Scanner interface
func (s *TripStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = TripStatus(v)
	case []byte:
		*s = TripStatus(v)
	default:
		return fmt.Errorf("TripStatus: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (s TripStatus) Value() (driver.Value, error) { return string(s), nil }
