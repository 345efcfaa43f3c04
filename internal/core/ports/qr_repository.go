package ports

import (
	"context"
	"errors"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/qr"
)

// ErrDuplicateScan is returned by AddScan when a scan of the same QR code
// was already recorded. The uniqueness constraint on the code identifier
// makes scan ingestion idempotent under client retries.
var ErrDuplicateScan = errors.New("scan already recorded for this qr code")

// QRRepository defines the persistence contract for issued QR codes and the
// append-only scan ledger. Scan events are never updated or deleted.
type QRRepository interface {
	// AddCode persists an issued QR code.
	AddCode(ctx context.Context, code qr.Code) error

	// GetCode retrieves an issued QR code by its unique identifier.
	GetCode(ctx context.Context, id kernel.UUID) (qr.Code, error)

	// AddScan appends an authoritative scan event to the ledger.
	// Returns ErrDuplicateScan when the code was already scanned.
	AddScan(ctx context.Context, event qr.ScanEvent) error

	// AddDuplicateScan records a rejected duplicate attempt in the audit
	// trail. Duplicates stay visible in the custody timeline.
	AddDuplicateScan(ctx context.Context, event qr.ScanEvent) error

	// GetScansByOrder retrieves all scan events of an order, authoritative
	// and duplicate attempts alike, ordered by occurrence time.
	GetScansByOrder(ctx context.Context, orderID kernel.UUID) ([]qr.ScanEvent, error)
}
