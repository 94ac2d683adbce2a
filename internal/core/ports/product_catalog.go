package ports

import (
	"context"

	"pedidos/internal/core/domain/model/product"
)

// ProductCatalog resolves product identifiers against the catalog service
// owned by another team. The catalog is read-only from this service's point
// of view.
type ProductCatalog interface {
	// GetByIDs resolves a batch of product identifiers in a single call.
	// The result preserves only products the catalog knows; identifiers
	// with no match are silently absent, callers decide whether that is
	// an error.
	GetByIDs(ctx context.Context, ids []string) ([]*product.Product, error)
}
