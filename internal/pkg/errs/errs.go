package errs

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors used for classification with errors.Is.
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrVersionIsInvalid   = errors.New("version is invalid")
	ErrStateConflict      = errors.New("state conflict")
	ErrAuthorization      = errors.New("actor is not authorized")
	ErrResourceExpired    = errors.New("resource is expired")
	ErrExternalDependency = errors.New("external dependency failed")
)

// sanitize collapses newlines so multi-line values cannot break log lines
// or error message parsing.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ObjectNotFoundError indicates that an entity could not be found by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a parameter value is malformed.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value breaks its declared bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %v)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates that an optimistic-lock version is invalid.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError without an underlying cause.
func NewVersionIsInvalidError(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError wrapping an underlying cause.
func NewVersionIsInvalidErrorWithCause(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %v)", ErrVersionIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName))
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// StateConflictError indicates that an action is not valid for the entity's
// current state. The current state is always carried so callers can decide
// whether to retry or abandon.
type StateConflictError struct {
	Entity       string
	Action       string
	CurrentState string
	Cause        error
}

// NewStateConflictError creates a StateConflictError without an underlying cause.
func NewStateConflictError(entity, action, currentState string) *StateConflictError {
	return &StateConflictError{Entity: entity, Action: action, CurrentState: currentState}
}

// NewStateConflictErrorWithCause creates a StateConflictError wrapping an underlying cause.
func NewStateConflictErrorWithCause(entity, action, currentState string, cause error) *StateConflictError {
	return &StateConflictError{Entity: entity, Action: action, CurrentState: currentState, Cause: cause}
}

func (e *StateConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: cannot %s %s in state %s (cause: %v)",
			ErrStateConflict, e.Action, e.Entity, e.CurrentState, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: cannot %s %s in state %s",
		ErrStateConflict, e.Action, e.Entity, e.CurrentState))
}

func (e *StateConflictError) Unwrap() error {
	return ErrStateConflict
}

// AuthorizationError indicates that an actor attempted an action outside its scope.
type AuthorizationError struct {
	ActorID string
	Scope   string
	Cause   error
}

// NewAuthorizationError creates an AuthorizationError without an underlying cause.
func NewAuthorizationError(actorID, scope string) *AuthorizationError {
	return &AuthorizationError{ActorID: actorID, Scope: scope}
}

// NewAuthorizationErrorWithCause creates an AuthorizationError wrapping an underlying cause.
func NewAuthorizationErrorWithCause(actorID, scope string, cause error) *AuthorizationError {
	return &AuthorizationError{ActorID: actorID, Scope: scope, Cause: cause}
}

func (e *AuthorizationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: actor %s is outside scope %s (cause: %v)",
			ErrAuthorization, e.ActorID, e.Scope, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: actor %s is outside scope %s", ErrAuthorization, e.ActorID, e.Scope))
}

func (e *AuthorizationError) Unwrap() error {
	return ErrAuthorization
}

// ResourceExpiredError indicates that a time-bounded resource is past its expiry.
type ResourceExpiredError struct {
	ParamName string
	ExpiredAt time.Time
	Cause     error
}

// NewResourceExpiredError creates a ResourceExpiredError without an underlying cause.
func NewResourceExpiredError(paramName string, expiredAt time.Time) *ResourceExpiredError {
	return &ResourceExpiredError{ParamName: paramName, ExpiredAt: expiredAt}
}

// NewResourceExpiredErrorWithCause creates a ResourceExpiredError wrapping an underlying cause.
func NewResourceExpiredErrorWithCause(paramName string, expiredAt time.Time, cause error) *ResourceExpiredError {
	return &ResourceExpiredError{ParamName: paramName, ExpiredAt: expiredAt, Cause: cause}
}

func (e *ResourceExpiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s expired at %s (cause: %v)",
			ErrResourceExpired, e.ParamName, e.ExpiredAt.Format(time.RFC3339), e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s expired at %s",
		ErrResourceExpired, e.ParamName, e.ExpiredAt.Format(time.RFC3339)))
}

func (e *ResourceExpiredError) Unwrap() error {
	return ErrResourceExpired
}

// ExternalDependencyError indicates a failure in an external collaborator such
// as the mapping provider or the notification channel.
type ExternalDependencyError struct {
	Dependency string
	Cause      error
}

// NewExternalDependencyError creates an ExternalDependencyError without an underlying cause.
func NewExternalDependencyError(dependency string) *ExternalDependencyError {
	return &ExternalDependencyError{Dependency: dependency}
}

// NewExternalDependencyErrorWithCause creates an ExternalDependencyError wrapping an underlying cause.
func NewExternalDependencyErrorWithCause(dependency string, cause error) *ExternalDependencyError {
	return &ExternalDependencyError{Dependency: dependency, Cause: cause}
}

func (e *ExternalDependencyError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %v)", ErrExternalDependency, e.Dependency, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrExternalDependency, e.Dependency))
}

func (e *ExternalDependencyError) Unwrap() error {
	return ErrExternalDependency
}
