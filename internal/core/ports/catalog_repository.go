package ports

import (
	"context"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
)

type CatalogRepository interface {
	GetService(ctx context.Context, id kernel.UUID) (*catalog.Service, error)

	// GetServices loads every id or fails with errs.ErrObjectNotFound naming
	// the first missing one. Duplicate ids are loaded once.
	GetServices(ctx context.Context, ids []kernel.UUID) ([]*catalog.Service, error)
}
