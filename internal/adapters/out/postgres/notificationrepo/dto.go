// Package notificationrepo stores per-user notifications.
package notificationrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_recipient_created,priority:1"`
	Message     string    `gorm:"type:text;not null"`
	Read        bool      `gorm:"column:is_read;not null;default:false"`
	CreatedAt   time.Time `gorm:"not null;index:idx_notifications_recipient_created,priority:2"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          n.ID().Bytes(),
		RecipientID: n.Recipient().Bytes(),
		Message:     n.Message(),
		Read:        n.IsRead(),
		CreatedAt:   n.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	recipient, err := kernel.UUIDFromGoogle(dto.RecipientID)
	if err != nil {
		return nil, err
	}
	return notification.RestoreNotification(id, recipient, dto.Message, dto.Read, dto.CreatedAt)
}
