package approval

import (
	"fmt"

	"medcourier/internal/pkg/errs"
)

// Status represents the state of a single approval scope.
// It implements a small state machine:
//
//	Pending ──┬──> Approved (terminal)
//	          └──> Rejected ──> Pending (resubmission)
//
// Approved is terminal. Rejected may be reopened to Pending on resubmission;
// the prior rejection stays in the record's history.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every approval scope.
	Pending

	// Approved indicates the scoped authority signed off. Terminal.
	Approved

	// Rejected indicates the scoped authority declined. May be reopened
	// to Pending via resubmission.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Pending:  "Pending",
		Approved: "Approved",
		Rejected: "Rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "Pending",
		Approved: "Approved",
		Rejected: "Rejected",
	}
}

// Validate checks if the Status value is one of Pending, Approved, Rejected.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid approval status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Approve transitions the status to Approved.
// Only Pending may be approved; anything else is a state conflict, never a
// silent no-op.
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return 0, errs.NewStateConflictError("approval scope", "approve", s.String())
	}

	return Approved, nil
}

// Reject transitions the status to Rejected.
// Only Pending may be rejected.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewStateConflictError("approval scope", "reject", s.String())
	}

	return Rejected, nil
}

// Reopen transitions a Rejected status back to Pending on resubmission.
// Approved is terminal and cannot be reopened.
func (s Status) Reopen() (Status, error) {
	if s != Rejected {
		return 0, errs.NewStateConflictError("approval scope", "reopen", s.String())
	}

	return Pending, nil
}
