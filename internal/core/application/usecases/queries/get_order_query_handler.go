package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one hydrated order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns an errs.ObjectNotFoundError when no
// order is visible under the query's customer scope.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	sqlQuery := `
		SELECT
			id,
			customer_id,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`
	args := []any{query.OrderID().Bytes()}

	if query.CustomerID() != "" {
		sqlQuery += " AND customer_id = ?"
		args = append(args, query.CustomerID())
	}

	row := h.db.WithContext(ctx).Raw(sqlQuery, args...).Row()

	response, id, err := scanOrderRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	itemsByOrder, err := loadOrderItems(ctx, h.db, []uuid.UUID{id})
	if err != nil {
		return OrderResponse{}, err
	}
	response.Items = itemsByOrder[id]

	return response, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanOrderRow reads one order header row into an OrderResponse.
func scanOrderRow(row rowScanner) (OrderResponse, uuid.UUID, error) {
	var (
		id         uuid.UUID
		customerID string
		status     int
		createdAt  sql.NullTime
		updatedAt  sql.NullTime
	)

	if err := row.Scan(&id, &customerID, &status, &createdAt, &updatedAt); err != nil {
		return OrderResponse{}, uuid.Nil, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, uuid.Nil, err
	}

	response := OrderResponse{
		ID:         orderID,
		CustomerID: customerID,
		Status:     order.Status(status),
		CreatedAt:  createdAt.Time,
		Items:      []OrderItemResponse{},
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		response.UpdatedAt = &t
	}

	return response, id, nil
}

// loadOrderItems fetches the line items for a set of orders in one query and
// groups them by owning order id.
func loadOrderItems(
	ctx context.Context,
	db *gorm.DB,
	orderIDs []uuid.UUID,
) (map[uuid.UUID][]OrderItemResponse, error) {
	itemsByOrder := make(map[uuid.UUID][]OrderItemResponse, len(orderIDs))
	if len(orderIDs) == 0 {
		return itemsByOrder, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			sku,
			qty
		FROM order_items
		WHERE order_id IN ?
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id      uuid.UUID
			orderID uuid.UUID
			sku     string
			qty     int
		)

		if err = rows.Scan(&id, &orderID, &sku, &qty); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		itemsByOrder[orderID] = append(itemsByOrder[orderID], OrderItemResponse{
			ID:  itemID,
			SKU: sku,
			Qty: qty,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return itemsByOrder, nil
}
