// Package guard implements the constructor guard pattern used by domain
// value objects, commands, and queries to ensure they are only created
// through their designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was initialized through its
// constructor or created as a zero value. Embedding a ConstructorGuard lets
// a Validate method reject zero-value instances before any invariants are
// assumed to hold.
//
// Example:
//
//	type Handover struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewHandover(id kernel.UUID) Handover {
//	    return Handover{id: id, guard: guard.NewConstructorGuard()}
//	}
//
//	func (h Handover) Validate() error {
//	    return h.guard.Validate(ErrHandoverIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the embedding object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created via its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
