// Package kernel contains shared value objects used across the domain model.
// These are immutable, validated building blocks: UUID identifiers and
// geographic points. They carry no business behavior on their own and exist
// so aggregates never handle raw primitives for identity or position.
package kernel
