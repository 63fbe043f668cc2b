package http

import (
	"time"

	"orderservice/internal/core/application/usecases/queries"
	"orderservice/internal/core/domain/model/order"
)

// Envelope is the uniform response wrapper carried by every endpoint:
// a human-readable message plus an optional typed payload. Failure responses
// carry a nil payload together with a non-2xx status.
type Envelope[T any] struct {
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

// CreateOrderRequest is the payload for POST /api/v1/orders.
type CreateOrderRequest struct {
	Items []CreateOrderItem `json:"items" validate:"required,min=1,dive"`
}

// CreateOrderItem is one submitted order line.
type CreateOrderItem struct {
	SKU string `json:"sku" validate:"required"`
	Qty int    `json:"qty" validate:"required,gt=0"`
}

// Order is the wire representation of a hydrated order.
type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id"`
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  *time.Time  `json:"updated_at,omitempty"`
	Items      []OrderItem `json:"items"`
}

// OrderItem is one order line on the wire.
type OrderItem struct {
	ID  string `json:"id"`
	SKU string `json:"sku"`
	Qty int    `json:"qty"`
}

// orderFromQueryResponse maps a read-side response to the wire type.
func orderFromQueryResponse(response queries.OrderResponse) Order {
	items := make([]OrderItem, 0, len(response.Items))
	for _, item := range response.Items {
		items = append(items, OrderItem{
			ID:  item.ID.String(),
			SKU: item.SKU,
			Qty: item.Qty,
		})
	}

	return Order{
		ID:         response.ID.String(),
		CustomerID: response.CustomerID,
		Status:     response.Status.String(),
		CreatedAt:  response.CreatedAt,
		UpdatedAt:  response.UpdatedAt,
		Items:      items,
	}
}

// orderFromAggregate maps a write-side aggregate to the wire type.
func orderFromAggregate(aggregate *order.Order) Order {
	items := make([]OrderItem, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItem{
			ID:  item.ID().String(),
			SKU: item.SKU(),
			Qty: item.Qty(),
		})
	}

	return Order{
		ID:         aggregate.ID().String(),
		CustomerID: aggregate.CustomerID(),
		Status:     aggregate.Status().String(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
		Items:      items,
	}
}
