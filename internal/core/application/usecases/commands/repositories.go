// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"medcourier/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RiderRepoFactory provides access to the rider repository within a transaction.
	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	// CenterRepoFactory provides access to the center repository within a transaction.
	CenterRepoFactory interface {
		CenterRepository() ports.CenterRepository
	}

	// HospitalRepoFactory provides access to the hospital repository within a transaction.
	HospitalRepoFactory interface {
		HospitalRepository() ports.HospitalRepository
	}

	// QRRepoFactory provides access to the QR/scan repository within a transaction.
	QRRepoFactory interface {
		QRRepository() ports.QRRepository
	}

	// HandoverRepoFactory provides access to the handover repository within a transaction.
	HandoverRepoFactory interface {
		HandoverRepository() ports.HandoverRepository
	}

	// CenterUoW manages transactions for center-only operations,
	// such as approval decisions.
	CenterUoW interface {
		TxManager
		CenterRepoFactory
	}

	// CenterUoWFactory creates new center unit of work instances.
	CenterUoWFactory interface {
		Create() CenterUoW
	}

	// HospitalUoW manages transactions for hospital-only operations.
	HospitalUoW interface {
		TxManager
		HospitalRepoFactory
	}

	// HospitalUoWFactory creates new hospital unit of work instances.
	HospitalUoWFactory interface {
		Create() HospitalUoW
	}

	// RiderUoW manages transactions for rider-only operations.
	RiderUoW interface {
		TxManager
		RiderRepoFactory
	}

	// RiderUoWFactory creates new rider unit of work instances.
	RiderUoWFactory interface {
		Create() RiderUoW
	}

	// CreateOrderUoW manages transactions for order creation, which reads
	// the center and hospital and issues the pickup and delivery QR codes.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		CenterRepoFactory
		HospitalRepoFactory
		QRRepoFactory
	}

	// CreateOrderUoWFactory creates new order creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// AssignUoW manages transactions spanning an order and a rider, so the
	// check-and-mark-busy assignment commits or rolls back as one.
	AssignUoW interface {
		TxManager
		OrderRepoFactory
		RiderRepoFactory
	}

	// AssignUoWFactory creates new assignment unit of work instances.
	AssignUoWFactory interface {
		Create() AssignUoW
	}

	// ScanUoW manages transactions for scan ingestion, which may advance the
	// order, confirm a handover, and change rider availability. Center and
	// hospital access is needed to compute the handover distance split.
	ScanUoW interface {
		TxManager
		OrderRepoFactory
		RiderRepoFactory
		CenterRepoFactory
		HospitalRepoFactory
		QRRepoFactory
		HandoverRepoFactory
	}

	// ScanUoWFactory creates new scan unit of work instances.
	ScanUoWFactory interface {
		Create() ScanUoW
	}

	// HandoverUoW manages transactions for handover coordination.
	HandoverUoW interface {
		TxManager
		OrderRepoFactory
		RiderRepoFactory
		QRRepoFactory
		HandoverRepoFactory
	}

	// HandoverUoWFactory creates new handover unit of work instances.
	HandoverUoWFactory interface {
		Create() HandoverUoW
	}
)
