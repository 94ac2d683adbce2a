package ports

import (
	"context"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and mutating order entities
// across the checkout, payment, and kitchen workflows.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns a NotFound error when no order with the id exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// DeleteCustomerData removes the customer snapshot from every order
	// that references the given customer. Items, totals, and statuses are
	// untouched. Returns the number of affected orders; zero is not an
	// error, the operation is idempotent.
	DeleteCustomerData(ctx context.Context, customerID kernel.UUID) (int64, error)
}
