package handover

import (
	"fmt"

	"medcourier/internal/pkg/errs"
)

// Status represents the handover lifecycle state.
type Status int

const (
	// UnknownStatus represents an invalid handover status.
	UnknownStatus Status = iota

	// Initiated means the original rider has requested the handover.
	Initiated

	// Accepted means the relieving rider has agreed to take over.
	Accepted

	// Confirmed means both riders scanned the handover QR and custody moved.
	Confirmed

	// Cancelled means the handover was abandoned before confirmation.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		Initiated:     "initiated",
		Accepted:      "accepted",
		Confirmed:     "confirmed",
		Cancelled:     "cancelled",
	}
}

// Validate checks if the status is one of the defined lifecycle states.
func (s Status) Validate() error {
	switch s {
	case Initiated, Accepted, Confirmed, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("handover status",
			fmt.Errorf("%d is not a valid status", s))
	}
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a status from its wire name.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != UnknownStatus {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("handover status",
		fmt.Errorf("%q is not a valid status", s))
}

// Accept transitions Initiated to Accepted.
func (s Status) Accept() (Status, error) {
	if s != Initiated {
		return s, errs.NewStateConflictError("handover", "accept", s.String())
	}
	return Accepted, nil
}

// Confirm transitions Accepted to Confirmed. Confirming a handover that was
// never accepted is a conflict: custody cannot move without the relieving
// rider's agreement.
func (s Status) Confirm() (Status, error) {
	if s != Accepted {
		return s, errs.NewStateConflictError("handover", "confirm", s.String())
	}
	return Confirmed, nil
}

// Cancel abandons the handover from Initiated or Accepted.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Initiated, Accepted:
		return Cancelled, nil
	default:
		return s, errs.NewStateConflictError("handover", "cancel", s.String())
	}
}

// IsTerminal reports whether the handover can change no further.
func (s Status) IsTerminal() bool {
	return s == Confirmed || s == Cancelled
}
