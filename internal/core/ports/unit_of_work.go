package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// RiderRepository returns a RiderRepository bound to the current transaction.
	RiderRepository() RiderRepository

	// CenterRepository returns a CenterRepository bound to the current transaction.
	CenterRepository() CenterRepository

	// HospitalRepository returns a HospitalRepository bound to the current transaction.
	HospitalRepository() HospitalRepository

	// QRRepository returns a QRRepository bound to the current transaction.
	QRRepository() QRRepository

	// HandoverRepository returns a HandoverRepository bound to the current transaction.
	HandoverRepository() HandoverRepository
}
