package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersOrderedByStatusQueryHandler retrieves orders in kitchen-display
// order. The status column stores the workflow ordinal directly, so the sort
// is a plain ORDER BY on two columns.
type GetOrdersOrderedByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersOrderedByStatusQueryHandler creates a handler for the kitchen
// listing query. Requires a GORM database connection for query execution.
func NewGetOrdersOrderedByStatusQueryHandler(db *gorm.DB) GetOrdersOrderedByStatusQueryHandler {
	return GetOrdersOrderedByStatusQueryHandler{db: db}
}

// Handle executes the query. Orders come back sorted by status ascending,
// then by creation time ascending.
func (h GetOrdersOrderedByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersOrderedByStatusQuery,
) ([]OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + orderColumns + `
		FROM orders
		ORDER BY status ASC, created_at ASC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		response, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
