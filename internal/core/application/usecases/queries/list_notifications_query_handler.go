package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

// Handle returns the caller's notifications, newest first.
func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) ([]NotificationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, message, is_read, created_at
		FROM notifications
		WHERE recipient_id = ?
		ORDER BY created_at DESC, id
	`, query.RecipientID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]NotificationView, 0)
	for rows.Next() {
		var (
			n  NotificationView
			id uuid.UUID
		)
		if err = rows.Scan(&id, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		if n.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		n.CreatedAt = n.CreatedAt.UTC()
		notifications = append(notifications, n)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
