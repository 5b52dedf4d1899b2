package notification_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	recipient := kernel.NewUUID()
	n, err := notification.NewNotification(kernel.NewUUID(), recipient, " Your booking has been accepted ", time.Now())

	require.NoError(t, err)
	assert.Equal(t, "Your booking has been accepted", n.Message())
	assert.True(t, recipient.IsEqual(n.Recipient()))
	assert.False(t, n.IsRead())

	n.MarkRead()
	assert.True(t, n.IsRead())
}

func TestNewNotification_Invalid(t *testing.T) {
	_, err := notification.NewNotification(kernel.NewUUID(), kernel.UUID{}, "", time.Now())

	require.ErrorIs(t, err, notification.ErrMessageIsRequired)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
