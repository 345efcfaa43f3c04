// Package approval models scoped, multi-authority approval state for
// onboarding entities. A collection center or rider carries one approval
// scope per relevant receiving hospital plus one independent headquarters
// scope; each scope is decided on its own, and the entity-wide effective
// status is always computed from the scoped fields rather than stored.
package approval
