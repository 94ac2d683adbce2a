package ports

import (
	"context"

	"pedidos/internal/core/domain/model/customer"
	"pedidos/internal/core/domain/model/kernel"
)

// CustomerDirectory resolves customer identifiers against the customer
// service. Lookups are best-effort: an order can always be placed
// anonymously.
type CustomerDirectory interface {
	// GetByID resolves a customer by directory identifier.
	// Returns (nil, nil) when the directory has no such customer, so the
	// caller can fall back to an anonymous order without error handling
	// gymnastics. Transport failures are returned as errors.
	GetByID(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
