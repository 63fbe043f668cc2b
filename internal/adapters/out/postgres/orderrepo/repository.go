package orderrepo

import (
	"context"
	"errors"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates modified
// through this repository.
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

// Add saves a new order and all of its items to the database.
// GORM persists the item association rows together with the order row;
// run inside a unit of work the whole write commits or rolls back as one.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a hydrated order by ID. A non-empty customerID restricts the
// lookup to that customer's orders, making foreign orders indistinguishable
// from absent ones.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID, customerID string) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Preload("Items")
	if customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}

	var dto OrderDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all hydrated orders visible under the customer scope,
// creation-time ascending.
func (r *GormOrderRepository) GetAll(ctx context.Context, customerID string) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Preload("Items").Order("created_at ASC")
	if customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}

	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

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

// UpdateStatusIf performs the conditional status transition in a single
// UPDATE matching id, owner and expected current status. Two concurrent
// transitions on the same order race here: exactly one matches, the other
// observes RowsAffected == 0 and gets a not-found error without writing.
func (r *GormOrderRepository) UpdateStatusIf(
	ctx context.Context,
	id kernel.UUID,
	customerID string,
	expected order.Status,
	next order.Status,
) (*order.Order, error) {
	if err := errors.Join(id.Validate(), expected.Validate(), next.Validate()); err != nil {
		return nil, err
	}
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerID")
	}

	now := time.Now().UTC()
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND customer_id = ? AND status = ?", id.Bytes(), customerID, int(expected)).
		Updates(map[string]any{
			"status":     int(next),
			"updated_at": now,
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	updated, err := r.Get(ctx, id, customerID)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(updated.ID(), updated)
	return updated, nil
}
