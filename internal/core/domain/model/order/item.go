package order

import (
	"fmt"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/product"
	"pedidos/internal/pkg/errs"
)

// Item is a line item of an order. Name and unit price are copied from the
// product catalog at checkout time and never re-fetched, so later catalog
// changes cannot alter an order's total.
type Item struct {
	productID string
	name      string
	unitPrice kernel.Money
	quantity  int
}

// NewItem creates a line item snapshot from a resolved catalog product and
// the requested quantity.
func NewItem(p *product.Product, quantity int) (Item, error) {
	if p == nil {
		return Item{}, errs.NewValueIsRequiredError("product")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Item{
		productID: p.ID(),
		name:      p.Name(),
		unitPrice: p.UnitPrice(),
		quantity:  quantity,
	}, nil
}

// RestoreItem rebuilds a line item from persisted fields.
func RestoreItem(productID, name string, unitPrice kernel.Money, quantity int) (Item, error) {
	if productID == "" {
		return Item{}, errs.NewValueIsRequiredError("productId")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Item{
		productID: productID,
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
	}, nil
}

// ProductID returns the catalog identifier of the snapshotted product.
func (i Item) ProductID() string {
	return i.productID
}

// Name returns the product name as of checkout time.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the product price as of checkout time.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal returns unitPrice * quantity.
func (i Item) Subtotal() (kernel.Money, error) {
	return i.unitPrice.MultiplyInt(i.quantity)
}
