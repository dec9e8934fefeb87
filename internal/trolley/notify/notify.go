// Package notify is the outbound port for best-effort real-time events.
// Publishing is fire-and-forget: failures are reported to the caller so
// they can be logged, but must never fail the operation that triggered
// the event.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
	"github.com/galleyops/trolleyd/internal/trolley/sse"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// EventQRScanCreated is the event name published when a QR scan is recorded.
const EventQRScanCreated = "qr_scan_created"

// Notifier publishes a snapshot of a newly created QR scan.
type Notifier interface {
	QRScanCreated(ctx context.Context, scan *entity.QRScan) error
}

// qrScanSnapshot is the wire shape of a published scan. Timestamps are
// ISO-8601 strings.
type qrScanSnapshot struct {
	ID           uint   `json:"id"`
	StationID    string `json:"station_id"`
	FlightNumber string `json:"flight_number"`
	CustomerName string `json:"customer_name"`
	DrawerID     string `json:"drawer_id"`
	TrolleyIDs   []uint `json:"trolley_ids"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func snapshot(scan *entity.QRScan) qrScanSnapshot {
	ids := make([]uint, 0, len(scan.Trolleys))
	for _, t := range scan.Trolleys {
		ids = append(ids, t.ID)
	}
	return qrScanSnapshot{
		ID:           scan.ID,
		StationID:    scan.StationID,
		FlightNumber: scan.FlightNumber,
		CustomerName: scan.CustomerName,
		DrawerID:     scan.DrawerID,
		TrolleyIDs:   ids,
		CreatedAt:    scan.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    scan.UpdatedAt.Format(time.RFC3339),
	}
}

// SSENotifier broadcasts scans to in-process SSE subscribers.
type SSENotifier struct {
	hub *sse.Hub
}

func NewSSENotifier(hub *sse.Hub) *SSENotifier {
	return &SSENotifier{hub: hub}
}

func (n *SSENotifier) QRScanCreated(_ context.Context, scan *entity.QRScan) error {
	data, err := json.Marshal(snapshot(scan))
	if err != nil {
		return err
	}
	n.hub.Broadcast(sse.Event{
		EventType: EventQRScanCreated,
		Data:      string(data),
	})
	return nil
}

// RedisNotifier publishes scans on a Redis channel so subscribers outside
// this process receive them too.
type RedisNotifier struct {
	client  *redis.Client
	channel string
}

func NewRedisNotifier(client *redis.Client, channel string) *RedisNotifier {
	return &RedisNotifier{client: client, channel: channel}
}

func (n *RedisNotifier) QRScanCreated(ctx context.Context, scan *entity.QRScan) error {
	data, err := json.Marshal(snapshot(scan))
	if err != nil {
		return err
	}
	return n.client.Publish(ctx, n.channel, data).Err()
}

// FanOut forwards each event to every notifier, logging failures instead
// of propagating them. It always returns nil.
type FanOut struct {
	notifiers []Notifier
	logger    *zap.Logger
}

func NewFanOut(logger *zap.Logger, notifiers ...Notifier) *FanOut {
	return &FanOut{notifiers: notifiers, logger: logger}
}

func (f *FanOut) QRScanCreated(ctx context.Context, scan *entity.QRScan) error {
	for _, n := range f.notifiers {
		if err := n.QRScanCreated(ctx, scan); err != nil {
			f.logger.Warn("QR scan notification failed",
				zap.Uint("scan_id", scan.ID),
				zap.Error(err),
			)
		}
	}
	return nil
}
