package queries

import (
	"errors"
	"time"

	"medcourier/internal/core/domain/model/approval"
	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/errs"
	"medcourier/internal/pkg/guard"
)

var (
	ErrGetApprovalStatusQueryIsNotConstructed = errors.New(
		"GetApprovalStatusQuery must be created via NewGetApprovalStatusQuery constructor",
	)
)

// GetApprovalStatusQuery retrieves the full approval picture of one center
// or rider: the HQ scope, every hospital scope with its effective status,
// and the append-only decision history.
type GetApprovalStatusQuery struct {
	guard   guard.ConstructorGuard
	ownerID kernel.UUID
}

// NewGetApprovalStatusQuery creates an approval status query for the given
// center or rider.
func NewGetApprovalStatusQuery(ownerID kernel.UUID) (GetApprovalStatusQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetApprovalStatusQuery{}, errs.NewValueIsRequiredError("ownerID")
	}
	return GetApprovalStatusQuery{guard: guard.NewConstructorGuard(), ownerID: ownerID}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetApprovalStatusQueryIsNotConstructed if validation fails.
func (q GetApprovalStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetApprovalStatusQueryIsNotConstructed)
}

// OwnerID returns the center or rider whose approval record is requested.
func (q GetApprovalStatusQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// HospitalScopeStatus is the per-hospital view. EffectiveStatus folds the HQ
// scope in: pending anywhere dominates, and both scopes must approve.
type HospitalScopeStatus struct {
	HospitalID      kernel.UUID
	Status          approval.Status
	EffectiveStatus approval.Status
}

// ApprovalDecisionView is one entry of the decision history.
type ApprovalDecisionView struct {
	Scope     string
	Outcome   approval.Status
	ActorID   kernel.UUID
	Reason    string
	DecidedAt time.Time
}

// GetApprovalStatusQueryResponse is the read model of one approval record.
type GetApprovalStatusQueryResponse struct {
	OwnerID         kernel.UUID
	HQStatus        approval.Status
	EffectiveStatus approval.Status
	Hospitals       []HospitalScopeStatus
	History         []ApprovalDecisionView
}
