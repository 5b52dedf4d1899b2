package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

type ListNotificationsQuery struct {
	recipientID kernel.UUID
	guard       guard.ConstructorGuard
}

func NewListNotificationsQuery(recipientID kernel.UUID) (ListNotificationsQuery, error) {
	if err := recipientID.Validate(); err != nil {
		return ListNotificationsQuery{}, err
	}
	return ListNotificationsQuery{recipientID: recipientID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

func (q ListNotificationsQuery) RecipientID() kernel.UUID { return q.recipientID }

type NotificationView struct {
	ID        kernel.UUID
	Message   string
	Read      bool
	CreatedAt time.Time
}
