package rider

import (
	"fmt"

	"medcourier/internal/pkg/errs"
)

// Availability represents a rider's readiness to take a delivery.
//
// Transitions:
//
//	Available <──> Busy
//	Available <──> Offline
//
// A Busy rider must finish or hand over the active delivery before any other
// transition; Busy -> Offline is not allowed.
type Availability int

const (
	// UnknownAvailability represents an invalid availability value.
	UnknownAvailability Availability = iota

	// Available means the rider can be assigned a new delivery.
	Available

	// Busy means the rider carries an active delivery.
	Busy

	// Offline means the rider is not working and cannot be assigned.
	Offline
)

func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		UnknownAvailability: "Unknown",
		Available:           "Available",
		Busy:                "Busy",
		Offline:             "Offline",
	}
}

// AvailabilityFromString parses an availability from its wire name. Busy is
// not parseable: it is only ever entered through assignment.
func AvailabilityFromString(s string) (Availability, error) {
	switch s {
	case "available":
		return Available, nil
	case "offline":
		return Offline, nil
	default:
		return UnknownAvailability, errs.NewValueIsInvalidErrorWithCause("availability",
			fmt.Errorf("%q is not a requestable availability", s))
	}
}

// Validate checks if the value is Available, Busy, or Offline.
func (a Availability) Validate() error {
	switch a {
	case Available, Busy, Offline:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("availability is invalid",
			fmt.Errorf("%d is not a valid availability", a))
	}
}

// String returns the human-readable name of the availability.
func (a Availability) String() string {
	if str, ok := getAvailabilityStrings()[a]; ok {
		return str
	}
	return "Unknown"
}

// MarkBusy transitions to Busy. Only an Available rider may take a delivery;
// any other state is a conflict so two dispatchers can never both win.
func (a Availability) MarkBusy() (Availability, error) {
	if a != Available {
		return 0, errs.NewStateConflictErrorWithCause("rider", "assign", a.String(),
			fmt.Errorf("rider unavailable"))
	}

	return Busy, nil
}

// MarkAvailable transitions back to Available from Busy or Offline.
func (a Availability) MarkAvailable() (Availability, error) {
	if a != Busy && a != Offline {
		return 0, errs.NewStateConflictError("rider", "release", a.String())
	}

	return Available, nil
}

// MarkOffline transitions an Available rider to Offline.
// A Busy rider must complete or hand over the delivery first.
func (a Availability) MarkOffline() (Availability, error) {
	if a != Available {
		return 0, errs.NewStateConflictError("rider", "go offline", a.String())
	}

	return Offline, nil
}
