// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read the orders table directly and return flat read models; the
// domain aggregate is never rehydrated on the read path.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderItemResponse is one line item in the order read model.
type OrderItemResponse struct {
	ProductID string
	Name      string
	UnitPrice float64
	Quantity  int
}

// OrderQueryResponse represents an order in the read model. Status fields are
// exposed as their string names; money travels as currency units.
type OrderQueryResponse struct {
	ID            kernel.UUID
	Status        string
	PaymentStatus string
	Items         []OrderItemResponse
	TotalValue    float64
	Observations  string
	CustomerID    string
	CustomerName  string
	CreatedAt     time.Time
}

// orderItemRow mirrors the JSON item shape stored in the orders table.
type orderItemRow struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
}

// orderColumns is the select list shared by every order query. Keep in sync
// with scanOrderRow.
const orderColumns = `
		id,
		status,
		payment_status,
		items,
		total_cents,
		observations,
		customer_id,
		customer_name,
		created_at`

// scanOrderRow converts one orders row into the read model.
func scanOrderRow(rows *sql.Rows) (OrderQueryResponse, error) {
	var (
		response     OrderQueryResponse
		id           uuid.UUID
		status       int
		payment      int
		itemsJSON    []byte
		totalCents   int64
		customerID   sql.NullString
		customerName sql.NullString
	)

	if err := rows.Scan(
		&id,
		&status,
		&payment,
		&itemsJSON,
		&totalCents,
		&response.Observations,
		&customerID,
		&customerName,
		&response.CreatedAt,
	); err != nil {
		return OrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromString(id.String())
	if err != nil {
		return OrderQueryResponse{}, err
	}
	response.ID = orderID
	response.Status = order.Status(status).String()
	response.PaymentStatus = order.PaymentStatus(payment).String()
	response.TotalValue = float64(totalCents) / 100
	response.CustomerID = customerID.String
	response.CustomerName = customerName.String

	var itemRows []orderItemRow
	if err = json.Unmarshal(itemsJSON, &itemRows); err != nil {
		return OrderQueryResponse{}, err
	}
	response.Items = make([]OrderItemResponse, 0, len(itemRows))
	for _, item := range itemRows {
		response.Items = append(response.Items, OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: float64(item.UnitPriceCents) / 100,
			Quantity:  item.Quantity,
		})
	}

	return response, nil
}
