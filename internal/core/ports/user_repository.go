package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// UserRepository reads accounts owned by the auth collaborator.
type UserRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}
