package approval

import (
	"errors"
	"time"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/errs"
	"medcourier/internal/pkg/guard"
)

// ErrRecordIsNotConstructed is returned when using an improperly initialized Record.
var ErrRecordIsNotConstructed = errors.New(
	"Record must be created via NewRecord or RestoreRecord constructors")

// Record tracks the scoped approval state of one onboarding entity
// (collection center or rider) across two independent authorities: each
// receiving hospital the entity works with, and headquarters.
//
// Invariants:
//   - Each scope moves Pending -> Approved | Rejected; Rejected may be
//     reopened to Pending via resubmission.
//   - Acting on a scope that is not Pending is a state conflict, never a
//     silent no-op.
//   - The decision history is append-only; resubmission never erases a
//     prior rejection.
//   - The entity-wide effective status is always computed from the scoped
//     fields and never stored.
type Record struct {
	hospitalStatuses map[kernel.UUID]Status
	hqStatus         Status
	history          []Decision

	guard guard.ConstructorGuard
}

// NewRecord creates an approval record with every scope Pending:
// one scope per relevant receiving hospital plus the HQ scope.
// At least one hospital scope is required.
func NewRecord(hospitalIDs ...kernel.UUID) (*Record, error) {
	if len(hospitalIDs) == 0 {
		return nil, errs.NewValueIsRequiredError("hospitalIDs")
	}

	statuses := make(map[kernel.UUID]Status, len(hospitalIDs))
	for _, id := range hospitalIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		statuses[id] = Pending
	}

	return &Record{
		hospitalStatuses: statuses,
		hqStatus:         Pending,
		history:          make([]Decision, 0),
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// RestoreRecord reconstructs a Record from persistence.
// Scoped statuses and history are taken as stored; each status must be valid.
func RestoreRecord(hospitalStatuses map[kernel.UUID]Status, hqStatus Status, history []Decision) (*Record, error) {
	if len(hospitalStatuses) == 0 {
		return nil, errs.NewValueIsRequiredError("hospitalStatuses")
	}

	statuses := make(map[kernel.UUID]Status, len(hospitalStatuses))
	for id, status := range hospitalStatuses {
		if err := errors.Join(id.Validate(), status.Validate()); err != nil {
			return nil, err
		}
		statuses[id] = status
	}
	if err := hqStatus.Validate(); err != nil {
		return nil, err
	}

	restored := make([]Decision, len(history))
	copy(restored, history)

	return &Record{
		hospitalStatuses: statuses,
		hqStatus:         hqStatus,
		history:          restored,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the record was created through a constructor.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// SubmitForHospital registers a new Pending scope for an additional hospital.
// Submitting an already-registered hospital is a state conflict.
func (r *Record) SubmitForHospital(hospitalID kernel.UUID) error {
	if err := hospitalID.Validate(); err != nil {
		return err
	}

	if current, ok := r.hospitalStatuses[hospitalID]; ok {
		return errs.NewStateConflictError("approval scope", "submit", current.String())
	}

	r.hospitalStatuses[hospitalID] = Pending
	return nil
}

// ApproveByHospital records the receiving hospital's sign-off for its own
// scope. It succeeds only while that hospital's scoped status is Pending and
// never touches other hospitals' scopes or the HQ scope.
func (r *Record) ApproveByHospital(hospitalID, approverID kernel.UUID, at time.Time) error {
	scope, err := HospitalScope(hospitalID)
	if err != nil {
		return err
	}

	current, ok := r.hospitalStatuses[hospitalID]
	if !ok {
		return errs.NewObjectNotFoundError("hospital scope", hospitalID.String())
	}

	next, err := current.Approve()
	if err != nil {
		return err
	}

	decision, err := NewDecision(scope, next, approverID, "", at)
	if err != nil {
		return err
	}

	r.hospitalStatuses[hospitalID] = next
	r.history = append(r.history, decision)
	return nil
}

// ApproveByHQ records the independent headquarters sign-off.
// Succeeds only while the HQ scope is Pending.
func (r *Record) ApproveByHQ(approverID kernel.UUID, at time.Time) error {
	next, err := r.hqStatus.Approve()
	if err != nil {
		return err
	}

	decision, err := NewDecision(HQScope(), next, approverID, "", at)
	if err != nil {
		return err
	}

	r.hqStatus = next
	r.history = append(r.history, decision)
	return nil
}

// Reject declines the given scope with a mandatory human-readable reason.
// An empty reason fails with a ValueIsRequired error before any state changes.
func (r *Record) Reject(scope Scope, approverID kernel.UUID, reason string, at time.Time) error {
	if err := scope.Validate(); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}

	current, err := r.statusForScope(scope)
	if err != nil {
		return err
	}

	next, err := current.Reject()
	if err != nil {
		return err
	}

	decision, err := NewDecision(scope, next, approverID, reason, at)
	if err != nil {
		return err
	}

	r.setStatusForScope(scope, next)
	r.history = append(r.history, decision)
	return nil
}

// Resubmit reopens a Rejected scope back to Pending.
// The prior rejection remains in the history; the resubmission itself is
// appended as a Pending entry by the submitting actor.
func (r *Record) Resubmit(scope Scope, actorID kernel.UUID, at time.Time) error {
	if err := scope.Validate(); err != nil {
		return err
	}

	current, err := r.statusForScope(scope)
	if err != nil {
		return err
	}

	next, err := current.Reopen()
	if err != nil {
		return err
	}

	decision, err := NewDecision(scope, next, actorID, "", at)
	if err != nil {
		return err
	}

	r.setStatusForScope(scope, next)
	r.history = append(r.history, decision)
	return nil
}

// EffectiveStatus computes the entity-wide view across all scopes:
// Rejected if any scope is Rejected, Approved only if every scope is
// Approved, Pending otherwise. Pending dominates absent explicit rejection.
// The result is always derived, never stored.
func (r *Record) EffectiveStatus() Status {
	anyRejected := r.hqStatus == Rejected
	allApproved := r.hqStatus == Approved

	for _, status := range r.hospitalStatuses {
		if status == Rejected {
			anyRejected = true
		}
		if status != Approved {
			allApproved = false
		}
	}

	switch {
	case anyRejected:
		return Rejected
	case allApproved:
		return Approved
	default:
		return Pending
	}
}

// EffectiveStatusForHospital computes what a single receiving hospital sees:
// its own scope combined with the HQ scope. A center approved by hospital A
// but rejected by HQ is Rejected from A's point of view.
func (r *Record) EffectiveStatusForHospital(hospitalID kernel.UUID) (Status, error) {
	hospitalStatus, err := r.StatusForHospital(hospitalID)
	if err != nil {
		return Unknown, err
	}

	switch {
	case hospitalStatus == Rejected || r.hqStatus == Rejected:
		return Rejected, nil
	case hospitalStatus == Approved && r.hqStatus == Approved:
		return Approved, nil
	default:
		return Pending, nil
	}
}

// StatusForHospital returns the raw scoped status for one hospital.
func (r *Record) StatusForHospital(hospitalID kernel.UUID) (Status, error) {
	if err := hospitalID.Validate(); err != nil {
		return Unknown, err
	}

	status, ok := r.hospitalStatuses[hospitalID]
	if !ok {
		return Unknown, errs.NewObjectNotFoundError("hospital scope", hospitalID.String())
	}

	return status, nil
}

// HQStatus returns the headquarters scope status.
func (r *Record) HQStatus() Status {
	return r.hqStatus
}

// HospitalStatuses returns a copy of the per-hospital scoped statuses.
func (r *Record) HospitalStatuses() map[kernel.UUID]Status {
	statuses := make(map[kernel.UUID]Status, len(r.hospitalStatuses))
	for id, status := range r.hospitalStatuses {
		statuses[id] = status
	}
	return statuses
}

// History returns a copy of the append-only decision history in insertion order.
func (r *Record) History() []Decision {
	history := make([]Decision, len(r.history))
	copy(history, r.history)
	return history
}

func (r *Record) statusForScope(scope Scope) (Status, error) {
	if scope.IsHQ() {
		return r.hqStatus, nil
	}
	return r.StatusForHospital(scope.HospitalID())
}

func (r *Record) setStatusForScope(scope Scope, status Status) {
	if scope.IsHQ() {
		r.hqStatus = status
		return
	}
	r.hospitalStatuses[scope.HospitalID()] = status
}
