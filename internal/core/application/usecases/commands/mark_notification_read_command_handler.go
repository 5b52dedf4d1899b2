package commands

import (
	"context"

	"marketplace/internal/pkg/errs"
)

type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks one notification, or all unread ones, as read. Another
// user's notification is reported as not found.
func (h MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()

	if cmd.NotificationID() == nil {
		if _, err := repo.MarkAllRead(ctx, cmd.RecipientID()); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	n, err := repo.Get(ctx, *cmd.NotificationID())
	if err != nil {
		return err
	}
	if !n.Recipient().IsEqual(cmd.RecipientID()) {
		return errs.NewObjectNotFoundError("notification", *cmd.NotificationID())
	}

	n.MarkRead()
	if err = repo.Update(ctx, n); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
