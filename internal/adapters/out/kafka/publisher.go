// Package kafka publishes domain change events to the courier change feed.
// Publishing is best-effort from the caller's point of view: handlers log a
// failed publish and move on, since the transaction already committed.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"medcourier/internal/core/domain/model/order"
	"medcourier/internal/core/domain/model/qr"
	"medcourier/internal/core/ports"
)

// orderChangedEvent is the wire shape of an order change notification.
// Keyed by order id so consumers see one order's changes in commit order.
type orderChangedEvent struct {
	OrderID    string  `json:"order_id"`
	CenterID   string  `json:"center_id"`
	HospitalID string  `json:"hospital_id"`
	RiderID    *string `json:"rider_id,omitempty"`
	Urgency    string  `json:"urgency"`
	Status     string  `json:"status"`
	OccurredAt string  `json:"occurred_at"`
}

// scanRecordedEvent is the wire shape of a recorded scan notification.
type scanRecordedEvent struct {
	ScanID     string   `json:"scan_id"`
	QRID       string   `json:"qr_id"`
	Kind       string   `json:"kind"`
	OrderID    string   `json:"order_id"`
	ActorID    string   `json:"actor_id"`
	ActorRole  string   `json:"actor_role"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	OccurredAt string   `json:"occurred_at"`
}

// Publisher writes change events to Kafka. Both topics share one writer;
// the topic is set per message.
type Publisher struct {
	writer      *kafka.Writer
	ordersTopic string
	scansTopic  string
}

var _ ports.EventPublisher = (*Publisher)(nil)

// NewPublisher creates a publisher for the given brokers and topics.
// Close releases the underlying writer.
func NewPublisher(brokers []string, ordersTopic, scansTopic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 20 * time.Millisecond,
		},
		ordersTopic: ordersTopic,
		scansTopic:  scansTopic,
	}
}

// PublishOrderChanged announces an order status change on the orders topic.
func (p *Publisher) PublishOrderChanged(ctx context.Context, aggregate *order.Order) error {
	event := orderChangedEvent{
		OrderID:    aggregate.ID().String(),
		CenterID:   aggregate.CenterID().String(),
		HospitalID: aggregate.HospitalID().String(),
		Urgency:    aggregate.Urgency().String(),
		Status:     aggregate.Status().String(),
		OccurredAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if riderID := aggregate.Rider(); riderID != nil {
		raw := riderID.String()
		event.RiderID = &raw
	}

	return p.publish(ctx, p.ordersTopic, aggregate.ID().String(), event)
}

// PublishScanRecorded announces a newly recorded scan on the scans topic.
func (p *Publisher) PublishScanRecorded(ctx context.Context, scan qr.ScanEvent) error {
	event := scanRecordedEvent{
		ScanID:     scan.ID().String(),
		QRID:       scan.QRID().String(),
		Kind:       scan.Kind().String(),
		OrderID:    scan.OrderID().String(),
		ActorID:    scan.ActorID().String(),
		ActorRole:  scan.ActorRole().String(),
		OccurredAt: scan.OccurredAt().UTC().Format(time.RFC3339Nano),
	}
	if location := scan.Location(); location != nil {
		lat, lon := location.Latitude(), location.Longitude()
		event.Latitude, event.Longitude = &lat, &lon
	}

	return p.publish(ctx, p.scansTopic, scan.OrderID().String(), event)
}

func (p *Publisher) publish(ctx context.Context, topic, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", topic, err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("write to %s: %w", topic, err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
