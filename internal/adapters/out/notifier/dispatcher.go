// Package notifier turns committed booking events into stored notifications
// and pushes them to real-time subscribers.
package notifier

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/ports"
)

type store interface {
	Add(ctx context.Context, n *notification.Notification) error
}

type recorder interface {
	IncBookingTransition(kind string)
	IncNotification(channel, result string)
}

// Dispatcher implements ports.Notifier. Every failure is logged and counted,
// never returned: the transition that raised the event is already committed.
type Dispatcher struct {
	store     store
	publisher ports.NotificationPublisher
	metrics   recorder
	logger    *slog.Logger
	now       func() time.Time
}

// NewDispatcher wires the dispatcher. publisher may be nil when real-time
// fan-out is not configured.
func NewDispatcher(
	store store,
	publisher ports.NotificationPublisher,
	metrics recorder,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		store:     store,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger.With("component", "notifier"),
		now:       time.Now,
	}
}

func (d *Dispatcher) Notify(ctx context.Context, events []booking.Event) {
	// The request may finish before delivery does.
	ctx = context.WithoutCancel(ctx)

	for _, event := range events {
		d.metrics.IncBookingTransition(string(event.Kind))
		d.deliver(ctx, event)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, event booking.Event) {
	log := d.logger.With(
		"kind", string(event.Kind),
		"booking_id", event.BookingID.String(),
		"recipient", event.Recipient.String(),
	)

	n, err := notification.NewNotification(kernel.NewUUID(), event.Recipient, event.Message, d.now())
	if err != nil {
		log.Error("build notification", "error", err)
		d.metrics.IncNotification("store", "error")
		return
	}

	if err = d.store.Add(ctx, n); err != nil {
		log.Error("store notification", "error", err)
		d.metrics.IncNotification("store", "error")
		return
	}
	d.metrics.IncNotification("store", "ok")

	if d.publisher == nil {
		return
	}
	if err = d.publisher.Publish(ctx, n); err != nil {
		log.Warn("publish notification", "error", err)
		d.metrics.IncNotification("publish", "error")
		return
	}
	d.metrics.IncNotification("publish", "ok")
}
