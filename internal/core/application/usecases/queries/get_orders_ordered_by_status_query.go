package queries

import (
	"errors"

	"pedidos/internal/pkg/guard"
)

var ErrGetOrdersOrderedByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersOrderedByStatusQuery must be created via NewGetOrdersOrderedByStatusQuery constructor",
)

// GetOrdersOrderedByStatusQuery retrieves orders in kitchen-display order:
// sorted by workflow status ascending (Received first, Cancelled last), ties
// broken by creation time so older orders surface first within a status.
type GetOrdersOrderedByStatusQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersOrderedByStatusQuery creates a query for the kitchen listing.
func NewGetOrdersOrderedByStatusQuery() GetOrdersOrderedByStatusQuery {
	return GetOrdersOrderedByStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersOrderedByStatusQueryIsNotConstructed if validation fails.
func (q GetOrdersOrderedByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersOrderedByStatusQueryIsNotConstructed)
}
