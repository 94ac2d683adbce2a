// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// ItemDTO is one line item as stored inside the orders.items JSON column.
// The JSON keys are part of the table contract: the read-side queries decode
// the same shape.
type ItemDTO struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
}

// ItemsJSON stores the order's line items as a jsonb column. Items are
// immutable snapshots, so a document column avoids a join the write side
// never needs.
type ItemsJSON []ItemDTO

// GormDataType tells GORM to create the column as jsonb.
func (ItemsJSON) GormDataType() string {
	return "jsonb"
}

// Value serializes the items for the database driver.
func (j ItemsJSON) Value() (driver.Value, error) {
	raw, err := json.Marshal(j)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan deserializes the items from the database driver.
func (j *ItemsJSON) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	default:
		return fmt.Errorf("unsupported items column type %T", value)
	}
}

// OrderDTO represents the database structure for persisting order aggregates.
// The status column stores the workflow ordinal, so the kitchen listing can
// sort on it directly. Customer columns are nullable: they are absent for
// anonymous orders and nulled by erasure.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status        int       `gorm:"index"`
	PaymentStatus int
	Items         ItemsJSON `gorm:"type:jsonb"`
	TotalCents    int64
	Observations  string
	CustomerID    *uuid.UUID `gorm:"type:uuid;index"`
	CustomerName  *string
	CustomerEmail *string
	CustomerTaxID *string
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make(ItemsJSON, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ProductID:      item.ProductID(),
			Name:           item.Name(),
			UnitPriceCents: item.UnitPrice().Cents(),
			Quantity:       item.Quantity(),
		})
	}

	dto := OrderDTO{
		ID:            aggregate.ID().Bytes(),
		Status:        int(aggregate.Status()),
		PaymentStatus: int(aggregate.PaymentStatus()),
		Items:         items,
		TotalCents:    aggregate.TotalValue().Cents(),
		Observations:  aggregate.Observations(),
	}

	if snapshot := aggregate.Customer(); snapshot != nil {
		customerID := snapshot.ID().Bytes()
		name := snapshot.Name()
		email := snapshot.Email()
		taxID := snapshot.TaxID()

		dto.CustomerID = &customerID
		dto.CustomerName = &name
		dto.CustomerEmail = &email
		dto.CustomerTaxID = &taxID
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate through RestoreOrder, which re-checks
// the total-value invariant against the stored items.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID.String())
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, priceErr := kernel.NewMoneyFromCents(itemDTO.UnitPriceCents)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.RestoreItem(itemDTO.ProductID, itemDTO.Name, price, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoneyFromCents(dto.TotalCents)
	if err != nil {
		return nil, err
	}

	var snapshot *order.CustomerSnapshot
	if dto.CustomerID != nil {
		customerID, idErr := kernel.UUIDFromString(dto.CustomerID.String())
		if idErr != nil {
			return nil, idErr
		}

		restored, snapErr := order.RestoreCustomerSnapshot(
			customerID,
			stringValue(dto.CustomerName),
			stringValue(dto.CustomerEmail),
			stringValue(dto.CustomerTaxID),
		)
		if snapErr != nil {
			return nil, snapErr
		}
		snapshot = &restored
	}

	return order.RestoreOrder(
		id,
		order.Status(dto.Status),
		order.PaymentStatus(dto.PaymentStatus),
		items,
		total,
		dto.Observations,
		snapshot,
	)
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
