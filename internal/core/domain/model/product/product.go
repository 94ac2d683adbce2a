// Package product models the read-only snapshot of catalog products. The
// product catalog is owned by another service; this service only copies
// name and price into order items at checkout and never writes back.
package product

import (
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

// Category is the catalog's product classification.
type Category string

const (
	CategorySnack   Category = "lanche"
	CategoryDrink   Category = "bebida"
	CategorySide    Category = "acompanhamento"
	CategoryDessert Category = "sobremesa"
)

// Product is a snapshot of a catalog entry at lookup time.
type Product struct {
	id          string
	name        string
	unitPrice   kernel.Money
	category    Category
	description string
	imageRef    string
}

// NewProduct creates a product snapshot from catalog data. The id and name
// are required; category, description and image are carried through untouched
// because the catalog owns their semantics.
func NewProduct(id, name string, unitPrice kernel.Money, category Category, description, imageRef string) (*Product, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("product id")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("product name")
	}

	return &Product{
		id:          id,
		name:        name,
		unitPrice:   unitPrice,
		category:    category,
		description: description,
		imageRef:    imageRef,
	}, nil
}

// ID returns the catalog identifier.
func (p *Product) ID() string {
	return p.id
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// UnitPrice returns the price at lookup time.
func (p *Product) UnitPrice() kernel.Money {
	return p.unitPrice
}

// Category returns the catalog classification.
func (p *Product) Category() Category {
	return p.category
}

// Description returns the catalog description.
func (p *Product) Description() string {
	return p.description
}

// ImageRef returns the catalog image reference.
func (p *Product) ImageRef() string {
	return p.imageRef
}
