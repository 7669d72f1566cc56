package orderrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save persists the aggregate as an upsert keyed by the business identifier.
// Saving an order already in storage reuses the stored row identity and
// rewrites its lines; it never creates a second record for the same order.
func (r *GormOrderRepository) Save(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	var existing OrderDTO
	err := db.First(&existing, "order_id = ?", dto.OrderID).Error

	switch {
	case err == nil:
		dto.ID = existing.ID
		for i := range dto.Items {
			dto.Items[i].OrderRef = existing.ID
		}

		if err = db.Where("order_ref = ?", existing.ID).Delete(&OrderItemDTO{}).Error; err != nil {
			return err
		}
		if err = db.Omit("Items").Save(&dto).Error; err != nil {
			return err
		}
		if err = db.Create(&dto.Items).Error; err != nil {
			return err
		}

	case errors.Is(err, gorm.ErrRecordNotFound):
		if err = db.Create(&dto).Error; err != nil {
			return err
		}

	default:
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByOrderID retrieves an order by its business identifier.
func (r *GormOrderRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.withItems(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves a page of orders, most recently placed first.
func (r *GormOrderRepository) GetAll(ctx context.Context, page, size int) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.withItems(ctx).
		Order("placed_at DESC, id DESC").
		Limit(size).
		Offset(page * size).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetByCustomerID retrieves every order placed by a customer, most recently
// placed first. An unknown customer yields an empty slice.
func (r *GormOrderRepository) GetByCustomerID(ctx context.Context, customerID string) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.withItems(ctx).
		Order("placed_at DESC, id DESC").
		Find(&dtos, "customer_id = ?", customerID).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetByStatus retrieves a page of orders in the given lifecycle status,
// most recently placed first.
func (r *GormOrderRepository) GetByStatus(
	ctx context.Context, status order.Status, page, size int,
) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.withItems(ctx).
		Order("placed_at DESC, id DESC").
		Limit(size).
		Offset(page*size).
		Find(&dtos, "status = ?", status.String()).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// DeleteByOrderID removes the stored record and its lines.
func (r *GormOrderRepository) DeleteByOrderID(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	var existing OrderDTO
	err := db.First(&existing, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("orderId", orderID.String())
		}
		return err
	}

	if err = db.Where("order_ref = ?", existing.ID).Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	return db.Delete(&OrderDTO{}, "id = ?", existing.ID).Error
}

// ExistsByOrderID reports whether an order with the given business id is stored.
func (r *GormOrderRepository) ExistsByOrderID(ctx context.Context, orderID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("order_id = ?", orderID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Count returns the number of stored orders.
func (r *GormOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).Count(&count).Error
	return count, err
}

// withItems preloads the order lines in stored position order.
func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
