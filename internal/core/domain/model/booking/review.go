package booking

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is the customer's single, immutable verdict on a completed booking.
type Review struct {
	id        kernel.UUID
	authorID  kernel.UUID
	rating    int
	comment   string
	createdAt time.Time
}

func NewReview(id, authorID kernel.UUID, rating int, comment string, createdAt time.Time) (*Review, error) {
	var ratingErr error
	if rating < MinRating || rating > MaxRating {
		ratingErr = errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	if err := errors.Join(id.Validate(), authorID.Validate(), ratingErr); err != nil {
		return nil, err
	}

	return &Review{
		id:        id,
		authorID:  authorID,
		rating:    rating,
		comment:   strings.TrimSpace(comment),
		createdAt: createdAt.UTC(),
	}, nil
}

func (r *Review) ID() kernel.UUID       { return r.id }
func (r *Review) AuthorID() kernel.UUID { return r.authorID }
func (r *Review) Rating() int           { return r.rating }
func (r *Review) Comment() string       { return r.comment }
func (r *Review) CreatedAt() time.Time  { return r.createdAt }
