package queries

import (
	"context"

	"pedidos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves one order from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query. Returns a NotFound error when no order with the
// given identifier exists.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderQueryResponse{}, err
		}
		return OrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	response, err := scanOrderRow(rows)
	if err != nil {
		return OrderQueryResponse{}, err
	}

	return response, rows.Err()
}
