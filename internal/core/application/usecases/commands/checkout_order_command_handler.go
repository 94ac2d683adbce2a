package commands

import (
	"context"
	"fmt"
	"strings"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/model/product"
	"pedidos/internal/core/ports"
	"pedidos/internal/pkg/errs"
)

// CheckoutOrderCommandHandler handles the business logic for placing orders.
// Resolves requested products against the catalog, optionally resolves the
// customer, and persists the new order in Received/Pending state.
//
// Product name and price are copied into the order at this point; later
// catalog changes never affect a placed order.
type CheckoutOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.ProductCatalog
	directory  ports.CustomerDirectory
}

// NewCheckoutOrderCommandHandler creates a handler for checkout operations.
// Requires an OrderUoWFactory for transactional persistence plus the catalog
// and customer-directory ports.
func NewCheckoutOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.ProductCatalog,
	directory ports.CustomerDirectory,
) CheckoutOrderCommandHandler {
	return CheckoutOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		directory:  directory,
	}
}

// Handle processes the checkout command and returns the placed order.
//
// Products are resolved in a single batch call; any requested id the catalog
// does not know fails the whole checkout. The customer lookup runs only when
// the command carries a well-formed UUID, and a directory miss degrades to an
// anonymous order rather than failing.
func (h *CheckoutOrderCommandHandler) Handle(ctx context.Context, cmd CheckoutOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	products, err := h.resolveProducts(ctx, cmd.Items())
	if err != nil {
		return nil, err
	}

	snapshot, err := h.resolveCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, requested := range cmd.Items() {
		item, err := order.NewItem(products[requested.ProductID], requested.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	placed, err := order.NewOrder(cmd.OrderID(), items, cmd.Observations(), snapshot)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}

// resolveProducts batch-fetches the distinct requested ids and fails when any
// of them is unknown to the catalog, naming the missing ids.
func (h *CheckoutOrderCommandHandler) resolveProducts(
	ctx context.Context,
	requested []CheckoutItem,
) (map[string]*product.Product, error) {
	ids := make([]string, 0, len(requested))
	seen := make(map[string]bool, len(requested))
	for _, item := range requested {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			ids = append(ids, item.ProductID)
		}
	}

	found, err := h.catalog.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	products := make(map[string]*product.Product, len(found))
	for _, p := range found {
		products[p.ID()] = p
	}

	var missing []string
	for _, id := range ids {
		if products[id] == nil {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"productIds are invalid",
			fmt.Errorf("unknown product ids: %s", strings.Join(missing, ", ")),
		)
	}

	return products, nil
}

// resolveCustomer turns the raw customer identifier into a snapshot. Anything
// that is not a well-formed UUID, and any id the directory does not know,
// yields a nil snapshot (anonymous order). Directory transport failures
// propagate.
func (h *CheckoutOrderCommandHandler) resolveCustomer(
	ctx context.Context,
	rawID string,
) (*order.CustomerSnapshot, error) {
	if rawID == "" || !kernel.IsUUIDString(rawID) {
		return nil, nil
	}

	customerID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return nil, nil
	}

	resolved, err := h.directory.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		return nil, nil
	}

	snapshot, err := order.NewCustomerSnapshot(resolved)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
