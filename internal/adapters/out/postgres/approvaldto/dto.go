// Package approvaldto persists multi-party approval records. Centers and
// riders both carry one, so scope rows and decision history rows are shared
// tables keyed by the owning aggregate's identifier.
package approvaldto

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"medcourier/internal/core/domain/model/approval"
	"medcourier/internal/core/domain/model/kernel"
)

// ScopeDTO is the database row for one approval scope of an aggregate.
// A NULL hospital id marks the HQ scope.
type ScopeDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID    uuid.UUID  `gorm:"type:uuid;index"`
	HospitalID *uuid.UUID `gorm:"type:uuid"`
	Status     int
}

// TableName specifies the database table name for approval scopes.
func (ScopeDTO) TableName() string {
	return "approval_scopes"
}

// DecisionDTO is the database row for one append-only decision history entry.
type DecisionDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID    uuid.UUID  `gorm:"type:uuid;index"`
	HospitalID *uuid.UUID `gorm:"type:uuid"`
	Outcome    int
	ActorID    uuid.UUID `gorm:"type:uuid"`
	Reason     string
	DecidedAt  time.Time
}

// TableName specifies the database table name for approval decisions.
func (DecisionDTO) TableName() string {
	return "approval_decisions"
}

// FromRecord flattens an approval record into scope and decision rows for
// the given owner.
func FromRecord(ownerID kernel.UUID, record *approval.Record) ([]ScopeDTO, []DecisionDTO) {
	scopes := make([]ScopeDTO, 0, len(record.HospitalStatuses())+1)
	for hospitalID, status := range record.HospitalStatuses() {
		raw := hospitalID.Bytes()
		scopes = append(scopes, ScopeDTO{
			ID:         uuid.New(),
			OwnerID:    ownerID.Bytes(),
			HospitalID: &raw,
			Status:     int(status),
		})
	}
	scopes = append(scopes, ScopeDTO{
		ID:      uuid.New(),
		OwnerID: ownerID.Bytes(),
		Status:  int(record.HQStatus()),
	})

	history := record.History()
	decisions := make([]DecisionDTO, 0, len(history))
	for _, decision := range history {
		var hospitalID *uuid.UUID
		if !decision.Scope().IsHQ() {
			raw := decision.Scope().HospitalID().Bytes()
			hospitalID = &raw
		}
		decisions = append(decisions, DecisionDTO{
			ID:         uuid.New(),
			OwnerID:    ownerID.Bytes(),
			HospitalID: hospitalID,
			Outcome:    int(decision.Outcome()),
			ActorID:    decision.ActorID().Bytes(),
			Reason:     decision.Reason(),
			DecidedAt:  decision.DecidedAt(),
		})
	}

	return scopes, decisions
}

// ToRecord reconstructs an approval record from its scope and decision rows.
func ToRecord(scopes []ScopeDTO, decisions []DecisionDTO) (*approval.Record, error) {
	hospitalStatuses := make(map[kernel.UUID]approval.Status)
	hqStatus := approval.Unknown
	for _, scope := range scopes {
		if scope.HospitalID == nil {
			hqStatus = approval.Status(scope.Status)
			continue
		}
		hospitalID, err := kernel.UUIDFromBytes((*scope.HospitalID)[:])
		if err != nil {
			return nil, err
		}
		hospitalStatuses[hospitalID] = approval.Status(scope.Status)
	}

	history := make([]approval.Decision, 0, len(decisions))
	for _, dto := range decisions {
		scope := approval.HQScope()
		if dto.HospitalID != nil {
			hospitalID, err := kernel.UUIDFromBytes((*dto.HospitalID)[:])
			if err != nil {
				return nil, err
			}
			scope, err = approval.HospitalScope(hospitalID)
			if err != nil {
				return nil, err
			}
		}
		actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
		if err != nil {
			return nil, err
		}
		decision, err := approval.NewDecision(scope, approval.Status(dto.Outcome),
			actorID, dto.Reason, dto.DecidedAt)
		if err != nil {
			return nil, err
		}
		history = append(history, decision)
	}

	return approval.RestoreRecord(hospitalStatuses, hqStatus, history)
}

// ReplaceForOwner rewrites the owner's scope rows and appends any new
// decision rows. Runs inside the caller's transaction; the version check
// lives on the owning aggregate's row.
func ReplaceForOwner(ctx context.Context, db *gorm.DB, ownerID kernel.UUID, record *approval.Record) error {
	scopes, decisions := FromRecord(ownerID, record)

	if err := db.WithContext(ctx).
		Where("owner_id = ?", ownerID.Bytes()).
		Delete(&ScopeDTO{}).Error; err != nil {
		return err
	}
	if err := db.WithContext(ctx).
		Where("owner_id = ?", ownerID.Bytes()).
		Delete(&DecisionDTO{}).Error; err != nil {
		return err
	}

	if len(scopes) > 0 {
		if err := db.WithContext(ctx).Create(&scopes).Error; err != nil {
			return err
		}
	}
	if len(decisions) > 0 {
		if err := db.WithContext(ctx).Create(&decisions).Error; err != nil {
			return err
		}
	}
	return nil
}

// LoadForOwner reads the owner's approval record.
func LoadForOwner(ctx context.Context, db *gorm.DB, ownerID kernel.UUID) (*approval.Record, error) {
	var scopes []ScopeDTO
	if err := db.WithContext(ctx).
		Find(&scopes, "owner_id = ?", ownerID.Bytes()).Error; err != nil {
		return nil, err
	}

	var decisions []DecisionDTO
	if err := db.WithContext(ctx).
		Order("decided_at").
		Find(&decisions, "owner_id = ?", ownerID.Bytes()).Error; err != nil {
		return nil, err
	}

	return ToRecord(scopes, decisions)
}
