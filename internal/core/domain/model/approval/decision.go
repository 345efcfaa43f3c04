package approval

import (
	"errors"
	"time"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/errs"
	"medcourier/internal/pkg/guard"
)

// ErrDecisionIsNotConstructed is returned when using a zero-value Decision.
var ErrDecisionIsNotConstructed = errors.New(
	"Decision must be created via NewDecision constructor")

// Decision is an immutable history entry recording one authority action on
// one scope: an approval, a rejection with its reason, or a resubmission that
// reopened a rejected scope. Decisions are append-only and never overwritten.
type Decision struct {
	scope     Scope
	outcome   Status
	actorID   kernel.UUID
	reason    string
	decidedAt time.Time

	guard guard.ConstructorGuard
}

// NewDecision creates a validated history entry.
// Rejections require a non-empty reason; other outcomes may omit it.
func NewDecision(scope Scope, outcome Status, actorID kernel.UUID, reason string, decidedAt time.Time) (Decision, error) {
	if err := errors.Join(scope.Validate(), outcome.Validate(), actorID.Validate()); err != nil {
		return Decision{}, err
	}
	if decidedAt.IsZero() {
		return Decision{}, errs.NewValueIsRequiredError("decidedAt")
	}
	if outcome == Rejected && reason == "" {
		return Decision{}, errs.NewValueIsRequiredError("rejection reason")
	}

	return Decision{
		scope:     scope,
		outcome:   outcome,
		actorID:   actorID,
		reason:    reason,
		decidedAt: decidedAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the decision was created through the constructor.
func (d Decision) Validate() error {
	return d.guard.Validate(ErrDecisionIsNotConstructed)
}

// Scope returns the authority scope the decision applies to.
func (d Decision) Scope() Scope {
	return d.scope
}

// Outcome returns the status the scope moved to.
func (d Decision) Outcome() Status {
	return d.outcome
}

// ActorID returns the identity of the approver or submitter.
func (d Decision) ActorID() kernel.UUID {
	return d.actorID
}

// Reason returns the human-readable reason. Always non-empty for rejections.
func (d Decision) Reason() string {
	return d.reason
}

// DecidedAt returns the decision timestamp.
func (d Decision) DecidedAt() time.Time {
	return d.decidedAt
}
