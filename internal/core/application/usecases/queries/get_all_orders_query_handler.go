package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves hydrated orders from the database.
// Results are ordered by creation time ascending so repeated calls observe
// a stable ordering.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the listing under the query's customer scope.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			customer_id,
			status,
			created_at,
			updated_at
		FROM orders
	`
	var args []any

	if query.CustomerID() != "" {
		sqlQuery += " WHERE customer_id = ?"
		args = append(args, query.CustomerID())
	}
	sqlQuery += " ORDER BY created_at ASC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]OrderResponse, 0)
	ids := make([]uuid.UUID, 0)

	for rows.Next() {
		response, id, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}

		responses = append(responses, response)
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	itemsByOrder, err := loadOrderItems(ctx, h.db, ids)
	if err != nil {
		return nil, err
	}

	for i := range responses {
		if items, ok := itemsByOrder[ids[i]]; ok {
			responses[i].Items = items
		}
	}

	return responses, nil
}
