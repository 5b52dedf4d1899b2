package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrListReviewsQueryIsNotConstructed = errors.New(
	"ListReviewsQuery must be created via NewListReviewsQuery constructor",
)

// ListReviewsQuery is the admin's list of every review, newest first.
type ListReviewsQuery struct {
	guard guard.ConstructorGuard
}

func NewListReviewsQuery() ListReviewsQuery {
	return ListReviewsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListReviewsQuery) Validate() error {
	return q.guard.Validate(ErrListReviewsQueryIsNotConstructed)
}

type ReviewView struct {
	ID               kernel.UUID
	BookingID        kernel.UUID
	ServiceName      string
	ProviderUsername string
	AuthorUsername   string
	Rating           int
	Comment          string
	CreatedAt        time.Time
}
