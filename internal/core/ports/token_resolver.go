package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// Principal is the authenticated caller.
type Principal struct {
	UserID kernel.UUID
	Role   user.Role
}

// TokenResolver turns a bearer token into a Principal. Issuing tokens is the
// auth collaborator's job.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (Principal, error)
}
