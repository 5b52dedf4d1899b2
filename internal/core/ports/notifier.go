package ports

import (
	"context"

	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/notification"
)

// Notifier delivers the events of a committed transition. It never fails the
// caller: delivery problems are the notifier's to log.
type Notifier interface {
	Notify(ctx context.Context, events []booking.Event)
}

// NotificationPublisher pushes a stored notification to real-time subscribers.
type NotificationPublisher interface {
	Publish(ctx context.Context, n *notification.Notification) error
}
