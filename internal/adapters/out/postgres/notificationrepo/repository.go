package notificationrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	dto := fromDomain(n)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update only ever flips the read flag; the rest of a notification is immutable.
func (r *GormNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	result := r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("id = ?", n.ID().Bytes()).
		Update("is_read", n.IsRead())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", n.ID().String())
	}
	return nil
}

func (r *GormNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notification", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormNotificationRepository) MarkAllRead(ctx context.Context, recipient kernel.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("recipient_id = ? AND is_read = ?", recipient.Bytes(), false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}
