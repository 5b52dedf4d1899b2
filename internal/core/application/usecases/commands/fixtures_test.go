package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

var tomorrow = time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

func newAccount(t *testing.T, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "user-"+kernel.NewUUID().String()[:8], "", "", role)
	require.NoError(t, err)
	return u
}

func newService(t *testing.T, baseCents int64) *catalog.Service {
	t.Helper()
	base, err := kernel.PriceFromCents(baseCents)
	require.NoError(t, err)
	s, err := catalog.NewService(kernel.NewUUID(), kernel.NewUUID(), "Plumbing", base)
	require.NoError(t, err)
	return s
}

func newBooking(t *testing.T, provider *kernel.UUID) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), provider,
		"12 MG Road", tomorrow, booking.Morning, time.Now(),
	)
	require.NoError(t, err)
	b.PullEvents()
	return b
}

func restoreBooking(t *testing.T, status booking.Status, provider *kernel.UUID) *booking.Booking {
	t.Helper()
	b, err := booking.RestoreBooking(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), provider,
		"12 MG Road", tomorrow, booking.Evening, status, time.Now(), nil, 1,
	)
	require.NoError(t, err)
	return b
}
