package queries

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"medcourier/internal/adapters/out/postgres/approvaldto"
	"medcourier/internal/pkg/errs"
)

// GetApprovalStatusQueryHandler loads an approval record and projects it
// into the read model. The effective statuses are computed by the domain
// record, not re-derived here.
type GetApprovalStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetApprovalStatusQueryHandler creates a handler for approval status queries.
// Requires a GORM database connection for query execution.
func NewGetApprovalStatusQueryHandler(db *gorm.DB) GetApprovalStatusQueryHandler {
	return GetApprovalStatusQueryHandler{db: db}
}

// Handle executes the query for one center or rider.
// Returns ErrObjectNotFound when no approval record exists for the owner.
func (h GetApprovalStatusQueryHandler) Handle(
	ctx context.Context,
	query GetApprovalStatusQuery,
) (GetApprovalStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetApprovalStatusQueryResponse{}, err
	}

	var count int64
	if err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM approval_scopes WHERE owner_id = ?
	`, query.OwnerID().Bytes()).Scan(&count).Error; err != nil {
		return GetApprovalStatusQueryResponse{}, err
	}
	if count == 0 {
		return GetApprovalStatusQueryResponse{},
			errs.NewObjectNotFoundError("approval record", query.OwnerID().String())
	}

	record, err := approvaldto.LoadForOwner(ctx, h.db, query.OwnerID())
	if err != nil {
		return GetApprovalStatusQueryResponse{}, err
	}

	response := GetApprovalStatusQueryResponse{
		OwnerID:         query.OwnerID(),
		HQStatus:        record.HQStatus(),
		EffectiveStatus: record.EffectiveStatus(),
	}

	for hospitalID, status := range record.HospitalStatuses() {
		effective, effErr := record.EffectiveStatusForHospital(hospitalID)
		if effErr != nil {
			return GetApprovalStatusQueryResponse{}, effErr
		}
		response.Hospitals = append(response.Hospitals, HospitalScopeStatus{
			HospitalID:      hospitalID,
			Status:          status,
			EffectiveStatus: effective,
		})
	}
	sort.Slice(response.Hospitals, func(i, j int) bool {
		return response.Hospitals[i].HospitalID.String() < response.Hospitals[j].HospitalID.String()
	})

	for _, decision := range record.History() {
		response.History = append(response.History, ApprovalDecisionView{
			Scope:     decision.Scope().String(),
			Outcome:   decision.Outcome(),
			ActorID:   decision.ActorID(),
			Reason:    decision.Reason(),
			DecidedAt: decision.DecidedAt(),
		})
	}

	return response, nil
}
