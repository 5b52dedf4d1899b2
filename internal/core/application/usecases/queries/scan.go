package queries

import (
	"database/sql"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// nullableUUID scans a nullable uuid column.
type nullableUUID struct {
	uuid.NullUUID
}

func (n nullableUUID) toKernel() (*kernel.UUID, error) {
	if !n.Valid {
		return nil, nil
	}
	id, err := kernel.UUIDFromGoogle(n.UUID)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func priceOrNil(cents sql.NullInt64) (*kernel.Price, error) {
	if !cents.Valid {
		return nil, nil
	}
	p, err := kernel.PriceFromCents(cents.Int64)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
