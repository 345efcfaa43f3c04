// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the sample courier system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - RiderAssigner: atomic check-and-mark-busy assignment of riders to orders
//   - SLAMonitor: deadline evaluation per urgency tier with hospital overrides
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
