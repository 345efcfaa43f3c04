// Package errs provides standardized error types for the sample courier application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers both generic validation failures and the domain error
// taxonomy of the courier core:
//   - ValueIsRequiredError: a required value is missing (e.g. a rejection reason)
//   - ValueIsInvalidError: a value is malformed or out of place
//   - ValueIsOutOfRangeError: a numeric value breaks its bounds
//   - ObjectNotFoundError: an entity cannot be found by its identifier
//   - VersionIsInvalidError: an optimistic-lock version check failed to parse
//   - StateConflictError: an action is invalid for the entity's current state
//   - AuthorizationError: an actor is acting outside its scope
//   - ResourceExpiredError: a time-bounded resource (QR code) is past expiry
//   - ExternalDependencyError: a collaborator (mapping, notifications) failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrStateConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify the error by its sentinel
//
// Handlers at the HTTP boundary rely on the sentinels to translate domain
// failures into status codes without inspecting message strings.
package errs
