package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/booking"
)

// SubmitReviewCommandHandler attaches the single review of a completed
// booking. The review row and the booking version bump commit together, so
// two concurrent submissions cannot both succeed.
type SubmitReviewCommandHandler struct {
	uowFactory BookingUoWFactory
	now        func() time.Time
}

func NewSubmitReviewCommandHandler(uowFactory BookingUoWFactory) SubmitReviewCommandHandler {
	return SubmitReviewCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (h SubmitReviewCommandHandler) Handle(ctx context.Context, cmd SubmitReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateBooking(ctx, h.uowFactory, cmd.BookingID(), func(_ BookingUoW, b *booking.Booking) error {
		return b.SubmitReview(cmd.ReviewID(), cmd.AuthorID(), cmd.Rating(), cmd.Comment(), h.now())
	})
}
