package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrSubmitReviewCommandIsNotConstructed = errors.New(
	"SubmitReviewCommand must be created via NewSubmitReviewCommand constructor",
)

type SubmitReviewCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID
	reviewID  kernel.UUID
	authorID  kernel.UUID
	rating    int
	comment   string

	guard guard.ConstructorGuard
}

// NewSubmitReviewCommand checks the rating range up front so a bad rating is
// a field error even before the booking is loaded.
func NewSubmitReviewCommand(
	bookingID, reviewID, authorID kernel.UUID,
	rating int,
	comment string,
) (SubmitReviewCommand, error) {
	var ratingErr error
	if rating < booking.MinRating || rating > booking.MaxRating {
		ratingErr = errs.NewValueIsOutOfRangeError("rating", rating, booking.MinRating, booking.MaxRating)
	}
	if err := errors.Join(
		requiredID("booking", bookingID),
		reviewID.Validate(),
		authorID.Validate(),
		ratingErr,
	); err != nil {
		return SubmitReviewCommand{}, err
	}

	return SubmitReviewCommand{
		bookingID: bookingID,
		reviewID:  reviewID,
		authorID:  authorID,
		rating:    rating,
		comment:   comment,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
}

func (c SubmitReviewCommand) BookingID() kernel.UUID { return c.bookingID }
func (c SubmitReviewCommand) ReviewID() kernel.UUID  { return c.reviewID }
func (c SubmitReviewCommand) AuthorID() kernel.UUID  { return c.authorID }
func (c SubmitReviewCommand) Rating() int            { return c.rating }
func (c SubmitReviewCommand) Comment() string        { return c.comment }
