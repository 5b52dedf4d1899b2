package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
	"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
)

// MarkNotificationReadCommand marks one of the caller's notifications read.
// A nil notification id means "all of them".
type MarkNotificationReadCommand struct { //nolint:recvcheck //using for validation
	notificationID *kernel.UUID
	recipientID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkNotificationReadCommand(notificationID kernel.UUID, recipientID kernel.UUID) (MarkNotificationReadCommand, error) {
	if err := errors.Join(requiredID("notification", notificationID), recipientID.Validate()); err != nil {
		return MarkNotificationReadCommand{}, err
	}
	return MarkNotificationReadCommand{
		notificationID: &notificationID,
		recipientID:    recipientID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func NewMarkAllNotificationsReadCommand(recipientID kernel.UUID) (MarkNotificationReadCommand, error) {
	if err := recipientID.Validate(); err != nil {
		return MarkNotificationReadCommand{}, err
	}
	return MarkNotificationReadCommand{
		recipientID: recipientID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

func (c MarkNotificationReadCommand) NotificationID() *kernel.UUID { return c.notificationID }
func (c MarkNotificationReadCommand) RecipientID() kernel.UUID     { return c.recipientID }
