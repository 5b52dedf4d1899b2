package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkNotificationReadCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	recipient := kernel.NewUUID()

	wire := func(commit bool) (*MockUoW, *MockNotificationRepository) {
		repo := new(MockNotificationRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("NotificationRepository").Return(repo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		if commit {
			uow.On("Commit", ctx).Return(nil).Once()
		}
		return uow, repo
	}

	t.Run("own notification", func(t *testing.T) {
		n, err := notification.NewNotification(kernel.NewUUID(), recipient, "Your booking has been accepted", time.Now())
		require.NoError(t, err)
		uow, repo := wire(true)
		repo.On("Get", ctx, n.ID()).Return(n, nil).Once()
		repo.On("Update", ctx, n).Return(nil).Once()

		cmd, err := commands.NewMarkNotificationReadCommand(n.ID(), recipient)
		require.NoError(t, err)
		require.NoError(t, commands.NewMarkNotificationReadCommandHandler(notificationFactory{uow}).Handle(ctx, cmd))

		assert.True(t, n.IsRead())
		uow.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("someone else's notification", func(t *testing.T) {
		n, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(), "hello", time.Now())
		require.NoError(t, err)
		uow, repo := wire(false)
		repo.On("Get", ctx, n.ID()).Return(n, nil).Once()

		cmd, _ := commands.NewMarkNotificationReadCommand(n.ID(), recipient)
		err = commands.NewMarkNotificationReadCommandHandler(notificationFactory{uow}).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.False(t, n.IsRead())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("read all", func(t *testing.T) {
		uow, repo := wire(true)
		repo.On("MarkAllRead", ctx, recipient).Return(int64(3), nil).Once()

		cmd, err := commands.NewMarkAllNotificationsReadCommand(recipient)
		require.NoError(t, err)
		assert.Nil(t, cmd.NotificationID())
		require.NoError(t, commands.NewMarkNotificationReadCommandHandler(notificationFactory{uow}).Handle(ctx, cmd))

		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})
}
