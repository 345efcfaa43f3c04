// Package custody reconstructs the chain-of-custody timeline of an order
// from its immutable scan events, its lifecycle transitions and its
// confirmed handovers. The timeline is never stored; it is derived on
// demand so the ledger stays append-only.
package custody

import (
	"sort"
	"time"

	"medcourier/internal/core/domain/model/handover"
	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/qr"
)

// EventType identifies what a timeline entry records: a physical QR scan or
// a lifecycle transition of the order.
type EventType int

const (
	// UnknownEvent represents an invalid event type.
	UnknownEvent EventType = iota

	// PickupScanned is a pickup QR scan at the collection center.
	PickupScanned

	// DeliveryScanned is a delivery QR scan at the receiving hospital.
	DeliveryScanned

	// HandoverScanned is a handover QR scan at the transfer point.
	HandoverScanned

	// RiderAssigned is the dispatcher placing the order on a rider.
	RiderAssigned

	// TransitStarted is the rider's departure from the collection center.
	TransitStarted

	// OrderCancelled is the explicit cancellation of the order.
	OrderCancelled
)

func getEventTypeStrings() map[EventType]string {
	return map[EventType]string{
		UnknownEvent:    "unknown",
		PickupScanned:   "pickup_scanned",
		DeliveryScanned: "delivery_scanned",
		HandoverScanned: "handover_scanned",
		RiderAssigned:   "rider_assigned",
		TransitStarted:  "transit_started",
		OrderCancelled:  "order_cancelled",
	}
}

// String returns the wire name of the event type.
func (e EventType) String() string {
	if str, ok := getEventTypeStrings()[e]; ok {
		return str
	}
	return "unknown"
}

func eventTypeOfScan(kind qr.Kind) EventType {
	switch kind {
	case qr.Pickup:
		return PickupScanned
	case qr.Delivery:
		return DeliveryScanned
	case qr.Handover:
		return HandoverScanned
	default:
		return UnknownEvent
	}
}

// StatusChange is a lifecycle transition of the order that left no scan
// behind: assignment, departure, cancellation. The acting rider is resolved
// during reconstruction from whoever held custody at that instant.
type StatusChange struct {
	Type       EventType
	OccurredAt time.Time
}

// Entry is one row of the reconstructed timeline. Duplicate scan attempts
// stay visible as rejected entries rather than disappearing, so auditors can
// see every physical interaction with the sample. QRID is zero for entries
// derived from lifecycle transitions.
type Entry struct {
	SequenceNo        int
	QRID              kernel.UUID
	EventType         EventType
	ActorID           kernel.UUID
	ActorRole         qr.Role
	CustodianRiderID  kernel.UUID
	Location          *kernel.GeoPoint
	OccurredAt        time.Time
	RejectedDuplicate bool
}

// Reconstruct derives the custody timeline for an order. Scans and status
// changes are merged ascending by occurrence time; for scans of the same
// code the earliest one is authoritative and later ones are marked as
// rejected duplicates. Custody is attributed to the order's first rider
// until a confirmed handover's confirmation instant, after which it moves to
// the relieving rider. With a confirmed handover on record, the first rider
// is taken from the handover itself, so attribution stays correct even
// though the order's rider reference already points at the relieving rider.
func Reconstruct(assignedRiderID kernel.UUID, scans []qr.ScanEvent,
	statusChanges []StatusChange, handovers []*handover.Handover) []Entry {
	transfers := confirmedTransfers(handovers)
	if len(transfers) > 0 {
		assignedRiderID = transfers[0].originalRiderID
	}

	merged := mergeEvents(scans, statusChanges)

	entries := make([]Entry, 0, len(merged))
	seen := make(map[kernel.UUID]bool, len(scans))
	for i, event := range merged {
		entry := Entry{
			SequenceNo:       i + 1,
			CustodianRiderID: custodianAt(assignedRiderID, transfers, event.at),
			OccurredAt:       event.at,
		}

		if event.scan != nil {
			duplicate := seen[event.scan.QRID()]
			seen[event.scan.QRID()] = true

			entry.QRID = event.scan.QRID()
			entry.EventType = eventTypeOfScan(event.scan.Kind())
			entry.ActorID = event.scan.ActorID()
			entry.ActorRole = event.scan.ActorRole()
			entry.Location = event.scan.Location()
			entry.RejectedDuplicate = duplicate
		} else {
			entry.EventType = event.change.Type
			entry.ActorID = entry.CustodianRiderID
			if entry.CustodianRiderID.Validate() == nil {
				entry.ActorRole = qr.RiderRole
			}
		}

		entries = append(entries, entry)
	}
	return entries
}

type timelineEvent struct {
	at     time.Time
	scan   *qr.ScanEvent
	change *StatusChange
}

func mergeEvents(scans []qr.ScanEvent, statusChanges []StatusChange) []timelineEvent {
	merged := make([]timelineEvent, 0, len(scans)+len(statusChanges))
	for i := range scans {
		merged = append(merged, timelineEvent{at: scans[i].OccurredAt(), scan: &scans[i]})
	}
	for i := range statusChanges {
		merged = append(merged, timelineEvent{at: statusChanges[i].OccurredAt, change: &statusChanges[i]})
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].at.Before(merged[j].at)
	})
	return merged
}

type transfer struct {
	at              time.Time
	originalRiderID kernel.UUID
	newRiderID      kernel.UUID
}

func confirmedTransfers(handovers []*handover.Handover) []transfer {
	transfers := make([]transfer, 0, len(handovers))
	for _, h := range handovers {
		if h.Status() != handover.Confirmed || h.ConfirmedAt() == nil {
			continue
		}
		transfers = append(transfers, transfer{
			at:              *h.ConfirmedAt(),
			originalRiderID: h.OriginalRiderID(),
			newRiderID:      h.NewRiderID(),
		})
	}
	sort.Slice(transfers, func(i, j int) bool {
		return transfers[i].at.Before(transfers[j].at)
	})
	return transfers
}

func custodianAt(assignedRiderID kernel.UUID, transfers []transfer, at time.Time) kernel.UUID {
	custodian := assignedRiderID
	for _, tr := range transfers {
		if tr.at.After(at) {
			break
		}
		custodian = tr.newRiderID
	}
	return custodian
}
