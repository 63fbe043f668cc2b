package queries

import (
	"context"

	"orderservice/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPendingOrderCountQueryHandler counts pending orders in the database.
type GetPendingOrderCountQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrderCountQueryHandler creates a handler for the pending
// order count query.
func NewGetPendingOrderCountQueryHandler(db *gorm.DB) GetPendingOrderCountQueryHandler {
	return GetPendingOrderCountQueryHandler{db: db}
}

// Handle executes the count.
func (h GetPendingOrderCountQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrderCountQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE status = ?
	`, int(order.Pending)).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
