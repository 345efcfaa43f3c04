package qrrepo

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/qr"
	"medcourier/internal/core/ports"
	"medcourier/internal/pkg/errs"
)

// GormQRRepository implements QRRepository using GORM. Requires the gorm
// connection to be opened with TranslateError so unique violations surface
// as gorm.ErrDuplicatedKey.
type GormQRRepository struct {
	db *gorm.DB
}

// NewGormQRRepository creates a new GORM QR repository.
func NewGormQRRepository(db *gorm.DB) *GormQRRepository {
	return &GormQRRepository{db: db}
}

// AddCode persists an issued QR code.
func (r *GormQRRepository) AddCode(ctx context.Context, code qr.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}

	dto := codeFromDomain(code)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetCode retrieves an issued QR code by ID.
func (r *GormQRRepository) GetCode(ctx context.Context, id kernel.UUID) (qr.Code, error) {
	if err := id.Validate(); err != nil {
		return qr.Code{}, err
	}

	var dto CodeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return qr.Code{}, errs.NewObjectNotFoundError("qr code", id.String())
		}
		return qr.Code{}, err
	}

	return codeToDomain(dto)
}

// AddScan appends an authoritative scan event. A second scan of the same
// code violates the unique index and is reported as ErrDuplicateScan.
func (r *GormQRRepository) AddScan(ctx context.Context, event qr.ScanEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := scanFromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrDuplicateScan
		}
		return err
	}
	return nil
}

// AddDuplicateScan records a rejected duplicate attempt.
func (r *GormQRRepository) AddDuplicateScan(ctx context.Context, event qr.ScanEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	scan := scanFromDomain(event)
	dto := DuplicateScanDTO(scan)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetScansByOrder retrieves all scan events of an order, authoritative and
// duplicate attempts alike, ordered by occurrence time.
func (r *GormQRRepository) GetScansByOrder(ctx context.Context, orderID kernel.UUID) ([]qr.ScanEvent, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var authoritative []ScanEventDTO
	if err := r.db.WithContext(ctx).
		Find(&authoritative, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	var duplicates []DuplicateScanDTO
	if err := r.db.WithContext(ctx).
		Find(&duplicates, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	events := make([]qr.ScanEvent, 0, len(authoritative)+len(duplicates))
	for _, dto := range authoritative {
		event, err := scanToDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	for _, dto := range duplicates {
		event, err := scanToDomain(ScanEventDTO(dto))
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].OccurredAt().Before(events[j].OccurredAt())
	})
	return events, nil
}
