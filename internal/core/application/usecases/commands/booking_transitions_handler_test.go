package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// transitionUoW wires a unit of work whose booking repository returns b.
// Commit is expected only when commit is true.
func transitionUoW(t *testing.T, b *booking.Booking, updateErr error, commit bool) (*MockUoW, *MockBookingRepository) {
	t.Helper()
	ctx := t.Context()
	repo := new(MockBookingRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BookingRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("Get", ctx, b.ID()).Return(b, nil).Once()
	repo.On("Update", ctx, b).Return(updateErr).Maybe()
	if commit {
		uow.On("Commit", ctx).Return(nil).Once()
	}
	return uow, repo
}

func TestAssignProviderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("assigns provider", func(t *testing.T) {
		b := newBooking(t, nil)
		providerAccount := newAccount(t, user.Provider)
		uow, repo := transitionUoW(t, b, nil, true)
		userRepo := new(MockUserRepository)
		uow.On("UserRepository").Return(userRepo).Once()
		userRepo.On("Get", ctx, providerAccount.ID()).Return(providerAccount, nil).Once()

		cmd, err := commands.NewAssignProviderCommand(b.ID(), providerAccount.ID())
		require.NoError(t, err)
		require.NoError(t, commands.NewAssignProviderCommandHandler(bookingFactory{uow}).Handle(ctx, cmd))

		assert.Equal(t, booking.Assigned, b.Status())
		repo.AssertCalled(t, "Update", ctx, b)
		uow.AssertExpectations(t)
	})

	t.Run("target is not a provider", func(t *testing.T) {
		b := newBooking(t, nil)
		admin := newAccount(t, user.Admin)
		uow, repo := transitionUoW(t, b, nil, false)
		userRepo := new(MockUserRepository)
		uow.On("UserRepository").Return(userRepo).Once()
		userRepo.On("Get", ctx, admin.ID()).Return(admin, nil).Once()

		cmd, _ := commands.NewAssignProviderCommand(b.ID(), admin.ID())
		err := commands.NewAssignProviderCommandHandler(bookingFactory{uow}).Handle(ctx, cmd)

		var invalid *errs.ValueIsInvalidError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "provider_id", invalid.ParamName)
		assert.Equal(t, booking.Pending, b.Status())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown booking", func(t *testing.T) {
		ghost := kernel.NewUUID()
		repo := new(MockBookingRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil)
		uow.On("BookingRepository").Return(repo)
		uow.On("Rollback", ctx).Return(nil)
		repo.On("Get", ctx, ghost).Return(nil, errs.NewObjectNotFoundError("booking", ghost))

		cmd, _ := commands.NewAssignProviderCommand(ghost, kernel.NewUUID())
		err := commands.NewAssignProviderCommandHandler(bookingFactory{uow}).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestProviderActionCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	providerID := kernel.NewUUID()

	t.Run("accept", func(t *testing.T) {
		b := restoreBooking(t, booking.Assigned, &providerID)
		uow, _ := transitionUoW(t, b, nil, true)

		cmd, err := commands.NewProviderActionCommand(b.ID(), providerID, "accept")
		require.NoError(t, err)
		require.NoError(t, commands.NewProviderActionCommandHandler(bookingFactory{uow}).Handle(ctx, cmd))

		assert.Equal(t, booking.Confirmed, b.Status())
		uow.AssertExpectations(t)
	})

	t.Run("reject clears provider", func(t *testing.T) {
		b := restoreBooking(t, booking.Assigned, &providerID)
		uow, _ := transitionUoW(t, b, nil, true)

		cmd, _ := commands.NewProviderActionCommand(b.ID(), providerID, "REJECT")
		require.NoError(t, commands.NewProviderActionCommandHandler(bookingFactory{uow}).Handle(ctx, cmd))

		assert.Equal(t, booking.Pending, b.Status())
		assert.Nil(t, b.Provider())
	})

	t.Run("someone else's booking is not found", func(t *testing.T) {
		b := restoreBooking(t, booking.Assigned, &providerID)
		uow, repo := transitionUoW(t, b, nil, false)

		cmd, _ := commands.NewProviderActionCommand(b.ID(), kernel.NewUUID(), "accept")
		err := commands.NewProviderActionCommandHandler(bookingFactory{uow}).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("lost race leaves nothing committed", func(t *testing.T) {
		b := restoreBooking(t, booking.Assigned, &providerID)
		uow, _ := transitionUoW(t, b, errs.NewVersionIsInvalidError("booking"), false)

		cmd, _ := commands.NewProviderActionCommand(b.ID(), providerID, "accept")
		err := commands.NewProviderActionCommandHandler(bookingFactory{uow}).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
		uow.AssertNotCalled(t, "Commit", ctx)
	})
}

func TestNewProviderActionCommand_InvalidAction(t *testing.T) {
	_, err := commands.NewProviderActionCommand(kernel.NewUUID(), kernel.NewUUID(), "maybe")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewProviderActionCommand(kernel.NewUUID(), kernel.NewUUID(), "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestUpdateBookingStatusCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	providerID := kernel.NewUUID()

	t.Run("confirmed to in progress", func(t *testing.T) {
		b := restoreBooking(t, booking.Confirmed, &providerID)
		uow, _ := transitionUoW(t, b, nil, true)

		cmd, err := commands.NewUpdateBookingStatusCommand(b.ID(), providerID, "IN_PROGRESS")
		require.NoError(t, err)
		require.NoError(t, commands.NewUpdateBookingStatusCommandHandler(bookingFactory{uow}).Handle(ctx, cmd))

		assert.Equal(t, booking.InProgress, b.Status())
	})

	t.Run("skipping a state names the allowed one", func(t *testing.T) {
		b := restoreBooking(t, booking.Confirmed, &providerID)
		uow, _ := transitionUoW(t, b, nil, false)

		cmd, _ := commands.NewUpdateBookingStatusCommand(b.ID(), providerID, "COMPLETED")
		err := commands.NewUpdateBookingStatusCommandHandler(bookingFactory{uow}).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "allowed: IN_PROGRESS")
		assert.Equal(t, booking.Confirmed, b.Status())
	})

	t.Run("unknown status is a field error", func(t *testing.T) {
		_, err := commands.NewUpdateBookingStatusCommand(kernel.NewUUID(), providerID, "FINISHED")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = commands.NewUpdateBookingStatusCommand(kernel.NewUUID(), providerID, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSubmitReviewCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	providerID := kernel.NewUUID()

	t.Run("first review succeeds", func(t *testing.T) {
		b := restoreBooking(t, booking.Completed, &providerID)
		uow, _ := transitionUoW(t, b, nil, true)

		cmd, err := commands.NewSubmitReviewCommand(b.ID(), kernel.NewUUID(), b.CustomerID(), 5, "Great")
		require.NoError(t, err)
		require.NoError(t, commands.NewSubmitReviewCommandHandler(bookingFactory{uow}).Handle(ctx, cmd))

		require.NotNil(t, b.Review())
		assert.Equal(t, 5, b.Review().Rating())
	})

	t.Run("second review is rejected", func(t *testing.T) {
		b := restoreBooking(t, booking.Completed, &providerID)
		require.NoError(t, b.SubmitReview(kernel.NewUUID(), b.CustomerID(), 4, "", tomorrow))
		uow, _ := transitionUoW(t, b, nil, false)

		cmd, _ := commands.NewSubmitReviewCommand(b.ID(), kernel.NewUUID(), b.CustomerID(), 5, "again")
		err := commands.NewSubmitReviewCommandHandler(bookingFactory{uow}).Handle(ctx, cmd)

		require.ErrorIs(t, err, booking.ErrReviewAlreadySubmitted)
		assert.Equal(t, 4, b.Review().Rating())
	})

	t.Run("rating outside range", func(t *testing.T) {
		_, err := commands.NewSubmitReviewCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 6, "")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
