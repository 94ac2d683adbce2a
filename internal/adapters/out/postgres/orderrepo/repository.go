package orderrepo

import (
	"context"
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements the order repository port using GORM.
// When handed a transaction by the unit of work, all operations run inside
// it; otherwise they execute on the main connection.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a repository over the given connection or
// transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add persists a new order aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update persists changes to an existing order aggregate.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Save would skip zero values on struct updates; a column map writes the
	// nulled customer fields through.
	return r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]interface{}{
			"status":          dto.Status,
			"payment_status":  dto.PaymentStatus,
			"items":           dto.Items,
			"total_cents":     dto.TotalCents,
			"observations":    dto.Observations,
			"customer_id":     dto.CustomerID,
			"customer_name":   dto.CustomerName,
			"customer_email":  dto.CustomerEmail,
			"customer_tax_id": dto.CustomerTaxID,
		}).Error
}

// Get retrieves an order aggregate by its unique identifier.
// Returns a NotFound error when no row exists.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	var dto OrderDTO

	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeleteCustomerData nulls the customer columns on every order referencing
// the customer. Returns the number of affected rows; zero means the customer
// had no remaining orders, which is not an error.
func (r *GormOrderRepository) DeleteCustomerData(ctx context.Context, customerID kernel.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("customer_id = ?", customerID.Bytes()).
		Updates(map[string]interface{}{
			"customer_id":     nil,
			"customer_name":   nil,
			"customer_email":  nil,
			"customer_tax_id": nil,
		})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
