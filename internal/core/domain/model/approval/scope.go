package approval

import (
	"fmt"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/errs"
)

// ErrScopeIsNotConstructed is returned when using a zero-value Scope.
var ErrScopeIsNotConstructed = errs.NewValueIsRequiredError(
	"scope must be created via HQScope or HospitalScope constructors")

// ScopeKind distinguishes the two independent approval authorities.
type ScopeKind int

const (
	// UnknownScope represents an invalid scope kind.
	UnknownScope ScopeKind = iota

	// HQScopeKind is the headquarters-level authority.
	HQScopeKind

	// HospitalScopeKind is a single receiving hospital's authority.
	HospitalScopeKind
)

// Scope identifies one approval authority: either headquarters or a specific
// receiving hospital. Scope is an immutable value object; the zero value is
// invalid.
type Scope struct {
	kind       ScopeKind
	hospitalID kernel.UUID
}

// HQScope returns the headquarters scope.
func HQScope() Scope {
	return Scope{kind: HQScopeKind}
}

// HospitalScope returns the scope of a specific receiving hospital.
// The hospital ID must be a valid UUID.
func HospitalScope(hospitalID kernel.UUID) (Scope, error) {
	if err := hospitalID.Validate(); err != nil {
		return Scope{}, err
	}

	return Scope{kind: HospitalScopeKind, hospitalID: hospitalID}, nil
}

// Kind returns the scope's authority kind.
func (s Scope) Kind() ScopeKind {
	return s.kind
}

// HospitalID returns the hospital identifier for hospital scopes.
// For the HQ scope the returned UUID is the zero value.
func (s Scope) HospitalID() kernel.UUID {
	return s.hospitalID
}

// IsHQ reports whether the scope is the headquarters authority.
func (s Scope) IsHQ() bool {
	return s.kind == HQScopeKind
}

// String returns "HQ" or "hospital <id>". Implements fmt.Stringer.
func (s Scope) String() string {
	switch s.kind {
	case HQScopeKind:
		return "HQ"
	case HospitalScopeKind:
		return fmt.Sprintf("hospital %s", s.hospitalID)
	default:
		return "Unknown"
	}
}

// Validate checks that the scope has a known kind and, for hospital scopes,
// a valid hospital identifier.
func (s Scope) Validate() error {
	switch s.kind {
	case HQScopeKind:
		return nil
	case HospitalScopeKind:
		return s.hospitalID.Validate()
	default:
		return ErrScopeIsNotConstructed
	}
}
