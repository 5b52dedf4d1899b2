package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
)

type NotificationRepository interface {
	Add(ctx context.Context, n *notification.Notification) error
	Update(ctx context.Context, n *notification.Notification) error
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// MarkAllRead flags every unread notification of the recipient and
	// returns how many changed.
	MarkAllRead(ctx context.Context, recipient kernel.UUID) (int64, error)
}
