package order

import (
	"fmt"

	"medcourier/internal/pkg/errs"
)

// Urgency is the clinical priority tier of an order. It selects the SLA
// thresholds the order is measured against.
type Urgency int

const (
	// UnknownUrgency represents an invalid urgency value.
	UnknownUrgency Urgency = iota

	// Emergency is the tightest tier (e.g. massive transfusion protocol).
	Emergency

	// Urgent covers time-sensitive but non-emergency deliveries.
	Urgent

	// Routine covers scheduled, non-critical deliveries.
	Routine
)

func getUrgencyStrings() map[Urgency]string {
	return map[Urgency]string{
		UnknownUrgency: "Unknown",
		Emergency:      "Emergency",
		Urgent:         "Urgent",
		Routine:        "Routine",
	}
}

// Validate checks if the value is Emergency, Urgent, or Routine.
func (u Urgency) Validate() error {
	switch u {
	case Emergency, Urgent, Routine:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("urgency is invalid",
			fmt.Errorf("%d is not a valid urgency", u))
	}
}

// String returns the human-readable name of the urgency.
func (u Urgency) String() string {
	if str, ok := getUrgencyStrings()[u]; ok {
		return str
	}
	return "Unknown"
}

// UrgencyFromString parses an urgency from its wire representation
// ("emergency", "urgent", "routine"), case-sensitive as sent by clients.
func UrgencyFromString(s string) (Urgency, error) {
	switch s {
	case "emergency":
		return Emergency, nil
	case "urgent":
		return Urgent, nil
	case "routine":
		return Routine, nil
	default:
		return UnknownUrgency, errs.NewValueIsInvalidErrorWithCause("urgency",
			fmt.Errorf("%q is not a valid urgency", s))
	}
}
