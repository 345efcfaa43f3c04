package http

import (
	"time"

	"medcourier/internal/core/application/usecases/queries"
	"medcourier/internal/core/domain/model/kernel"
)

type createCenterRequest struct {
	Name        string   `json:"name"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	HospitalIDs []string `json:"hospitalIds"`
}

// approvalDecisionRequest covers approve, reject and resubmit. A nil
// hospital id targets the HQ scope.
type approvalDecisionRequest struct {
	HospitalID *string `json:"hospitalId,omitempty"`
	ApproverID string  `json:"approverId"`
	Reason     string  `json:"reason,omitempty"`
}

func (r approvalDecisionRequest) actors() (kernel.UUID, *kernel.UUID, error) {
	approverID, err := kernel.UUIDFromString(r.ApproverID)
	if err != nil {
		return kernel.UUID{}, nil, err
	}

	var hospitalID *kernel.UUID
	if r.HospitalID != nil {
		parsed, idErr := kernel.UUIDFromString(*r.HospitalID)
		if idErr != nil {
			return kernel.UUID{}, nil, idErr
		}
		hospitalID = &parsed
	}
	return approverID, hospitalID, nil
}

type createRiderRequest struct {
	Name        string   `json:"name"`
	Phone       string   `json:"phone"`
	HospitalIDs []string `json:"hospitalIds"`
}

type riderAvailabilityRequest struct {
	Availability string `json:"availability"`
}

type availableRiderResponse struct {
	RiderID string `json:"riderId"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
}

type createHospitalRequest struct {
	Name      string  `json:"name"`
	Kind      string  `json:"kind"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type createOrderRequest struct {
	CenterID   string `json:"centerId"`
	HospitalID string `json:"hospitalId"`
	Urgency    string `json:"urgency"`
}

type riderActionRequest struct {
	RiderID string `json:"riderId"`
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

type geoPointBody struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type recordScanRequest struct {
	QRData    string        `json:"qrData"`
	ActorID   string        `json:"actorId"`
	ActorRole string        `json:"actorRole"`
	Location  *geoPointBody `json:"scanLocation,omitempty"`
}

type initiateHandoverRequest struct {
	FromRiderID string  `json:"fromRiderId"`
	ToRiderID   string  `json:"toRiderId"`
	Reason      string  `json:"reason"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

type activeOrderResponse struct {
	OrderID    string    `json:"orderId"`
	CenterID   string    `json:"centerId"`
	HospitalID string    `json:"hospitalId"`
	RiderID    *string   `json:"riderId,omitempty"`
	Urgency    string    `json:"urgency"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type custodyEntryBody struct {
	SequenceNo        int           `json:"sequenceNo"`
	QRID              string        `json:"qrId"`
	EventType         string        `json:"eventType"`
	ActorID           string        `json:"actorId"`
	ActorRole         string        `json:"actorRole"`
	CustodianRiderID  string        `json:"custodianRiderId"`
	Location          *geoPointBody `json:"location,omitempty"`
	OccurredAt        time.Time     `json:"occurredAt"`
	RejectedDuplicate bool          `json:"rejectedDuplicate"`
}

func timelineResponse(entries []queries.GetCustodyTimelineQueryResponse) []custodyEntryBody {
	body := make([]custodyEntryBody, 0, len(entries))
	for _, entry := range entries {
		item := custodyEntryBody{
			SequenceNo:        entry.SequenceNo,
			EventType:         entry.EventType.String(),
			ActorRole:         entry.ActorRole.String(),
			OccurredAt:        entry.OccurredAt,
			RejectedDuplicate: entry.RejectedDuplicate,
		}
		// Transition entries carry no code; pre-assignment ones no actor.
		if entry.QRID.Validate() == nil {
			item.QRID = entry.QRID.String()
		}
		if entry.ActorID.Validate() == nil {
			item.ActorID = entry.ActorID.String()
		}
		if entry.CustodianRiderID.Validate() == nil {
			item.CustodianRiderID = entry.CustodianRiderID.String()
		}
		if entry.Location != nil {
			item.Location = &geoPointBody{
				Latitude:  entry.Location.Latitude(),
				Longitude: entry.Location.Longitude(),
			}
		}
		body = append(body, item)
	}
	return body
}

type hospitalScopeBody struct {
	HospitalID      string `json:"hospitalId"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effectiveStatus"`
}

type approvalDecisionBody struct {
	Scope     string    `json:"scope"`
	Outcome   string    `json:"outcome"`
	ActorID   string    `json:"actorId"`
	Reason    string    `json:"reason,omitempty"`
	DecidedAt time.Time `json:"decidedAt"`
}

type approvalStatusBody struct {
	OwnerID         string                 `json:"ownerId"`
	HQStatus        string                 `json:"hqStatus"`
	EffectiveStatus string                 `json:"effectiveStatus"`
	Hospitals       []hospitalScopeBody    `json:"hospitals"`
	History         []approvalDecisionBody `json:"history"`
}

func approvalStatusResponse(status queries.GetApprovalStatusQueryResponse) approvalStatusBody {
	body := approvalStatusBody{
		OwnerID:         status.OwnerID.String(),
		HQStatus:        status.HQStatus.String(),
		EffectiveStatus: status.EffectiveStatus.String(),
		Hospitals:       make([]hospitalScopeBody, 0, len(status.Hospitals)),
		History:         make([]approvalDecisionBody, 0, len(status.History)),
	}
	for _, scope := range status.Hospitals {
		body.Hospitals = append(body.Hospitals, hospitalScopeBody{
			HospitalID:      scope.HospitalID.String(),
			Status:          scope.Status.String(),
			EffectiveStatus: scope.EffectiveStatus.String(),
		})
	}
	for _, decision := range status.History {
		body.History = append(body.History, approvalDecisionBody{
			Scope:     decision.Scope,
			Outcome:   decision.Outcome.String(),
			ActorID:   decision.ActorID.String(),
			Reason:    decision.Reason,
			DecidedAt: decision.DecidedAt,
		})
	}
	return body
}

type slaOrderBody struct {
	OrderID             string  `json:"orderId"`
	Urgency             string  `json:"urgency"`
	PickupWindowMin     float64 `json:"pickupWindowMinutes"`
	DeliveryWindowMin   float64 `json:"deliveryWindowMinutes"`
	PickupLate          bool    `json:"pickupLate"`
	PickupMinutesOver   float64 `json:"pickupMinutesOver"`
	DeliveryLate        bool    `json:"deliveryLate"`
	DeliveryMinutesOver float64 `json:"deliveryMinutesOver"`
	Excluded            bool    `json:"excluded"`
}

type slaReportBody struct {
	Evaluated         int            `json:"evaluated"`
	PickupBreaches    int            `json:"pickupBreaches"`
	DeliveryBreaches  int            `json:"deliveryBreaches"`
	CancelledExcluded int            `json:"cancelledExcluded"`
	Orders            []slaOrderBody `json:"orders"`
}

func slaReportResponse(report queries.GetSLAReportQueryResponse) slaReportBody {
	body := slaReportBody{
		Evaluated:         report.Evaluated,
		PickupBreaches:    report.PickupBreaches,
		DeliveryBreaches:  report.DeliveryBreaches,
		CancelledExcluded: report.CancelledExcluded,
		Orders:            make([]slaOrderBody, 0, len(report.Orders)),
	}
	for _, item := range report.Orders {
		body.Orders = append(body.Orders, slaOrderBody{
			OrderID:             item.OrderID.String(),
			Urgency:             item.Urgency.String(),
			PickupWindowMin:     item.Policy.PickupResponse.Minutes(),
			DeliveryWindowMin:   item.Policy.TotalDelivery.Minutes(),
			PickupLate:          item.PickupLate,
			PickupMinutesOver:   item.PickupMinutesOver,
			DeliveryLate:        item.DeliveryLate,
			DeliveryMinutesOver: item.DeliveryMinutesOver,
			Excluded:            item.Excluded,
		})
	}
	return body
}
