package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"orderservice/internal/core/application/usecases/commands"
	"orderservice/internal/core/application/usecases/queries"
	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"

	roleAdministrator = "administrator"
)

// Server implements the HTTP API for order management.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler     queries.GetOrderQueryHandler
	getAllOrdersHandler queries.GetAllOrdersQueryHandler

	validate *validator.Validate
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:  createOrderHandler,
		cancelOrderHandler:  cancelOrderHandler,
		getOrderHandler:     getOrderHandler,
		getAllOrdersHandler: getAllOrdersHandler,
		validate:            validator.New(),
		logger:              logger.With("component", "http"),
	}
}

// RegisterRoutes mounts the order endpoints on the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	orders := e.Group("/api/v1/orders")
	orders.GET("", s.GetOrders)
	orders.POST("", s.CreateOrder)
	orders.GET("/:order_id", s.GetOrder)
	orders.PATCH("/:order_id", s.CancelOrder)
}

// GetOrders handles GET /api/v1/orders - retrieves orders visible to the requester.
//
//	@Summary	List orders
//	@Tags		orders
//	@Param		X-User-Id	header	string	true	"Requesting user"
//	@Param		X-User-Role	header	string	false	"Requesting user role"
//	@Success	200	{object}	Envelope[[]Order]
//	@Router		/api/v1/orders [get]
func (s *Server) GetOrders(ctx echo.Context) error {
	scope, err := s.requesterScope(ctx)
	if err != nil {
		return badRequest[[]Order](ctx, err.Error())
	}

	query := queries.NewGetAllOrdersQuery(scope)

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.Error("order listing failed", "customer_id", scope, "error", err)
		return internalError[[]Order](ctx)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = orderFromQueryResponse(o)
	}

	return ctx.JSON(http.StatusOK, Envelope[[]Order]{
		Message: "Orders fetched successfully",
		Data:    &response,
	})
}

// GetOrder handles GET /api/v1/orders/:order_id - retrieves a single order.
//
//	@Summary	Get order
//	@Tags		orders
//	@Param		order_id	path	string	true	"Order ID"
//	@Param		X-User-Id	header	string	true	"Requesting user"
//	@Param		X-User-Role	header	string	false	"Requesting user role"
//	@Success	200	{object}	Envelope[Order]
//	@Failure	404	{object}	Envelope[Order]
//	@Router		/api/v1/orders/{order_id} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	scope, err := s.requesterScope(ctx)
	if err != nil {
		return badRequest[Order](ctx, err.Error())
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return badRequest[Order](ctx, "Invalid order ID: "+ctx.Param("order_id"))
	}

	query, err := queries.NewGetOrderQuery(orderID, scope)
	if err != nil {
		return badRequest[Order](ctx, err.Error())
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Envelope[Order]{
				Message: fmt.Sprintf("Order %s not found", orderID),
			})
		}

		s.logger.Error("order fetch failed",
			"order_id", orderID.String(), "customer_id", scope, "error", err)
		return internalError[Order](ctx)
	}

	response := orderFromQueryResponse(found)

	return ctx.JSON(http.StatusOK, Envelope[Order]{
		Message: fmt.Sprintf("Order %s fetched successfully", orderID),
		Data:    &response,
	})
}

// CreateOrder handles POST /api/v1/orders - creates a new order for the requester.
//
//	@Summary	Create order
//	@Tags		orders
//	@Param		X-User-Id	header	string				true	"Requesting user"
//	@Param		request		body	CreateOrderRequest	true	"Order lines"
//	@Success	201	{object}	Envelope[Order]
//	@Failure	400	{object}	Envelope[Order]
//	@Router		/api/v1/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	customerID := ctx.Request().Header.Get(headerUserID)
	if customerID == "" {
		return badRequest[Order](ctx, headerUserID+" header is required")
	}

	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest[Order](ctx, "Invalid request body")
	}

	if err := s.validate.Struct(request); err != nil {
		return badRequest[Order](ctx, "Invalid order data: "+err.Error())
	}

	lines := make([]commands.ItemLine, len(request.Items))
	for i, item := range request.Items {
		lines[i] = commands.ItemLine{SKU: item.SKU, Qty: item.Qty}
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, lines)
	if err != nil {
		return badRequest[Order](ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if isValidationError(err) {
			return badRequest[Order](ctx, "Invalid order data: "+err.Error())
		}

		s.logger.Error("order creation failed", "customer_id", customerID, "error", err)
		return internalError[Order](ctx)
	}

	response := orderFromAggregate(created)

	return ctx.JSON(http.StatusCreated, Envelope[Order]{
		Message: "Order created successfully",
		Data:    &response,
	})
}

// CancelOrder handles PATCH /api/v1/orders/:order_id - cancels a pending order
// owned by the requester.
//
//	@Summary	Cancel order
//	@Tags		orders
//	@Param		order_id	path	string	true	"Order ID"
//	@Param		X-User-Id	header	string	true	"Requesting user"
//	@Success	200	{object}	Envelope[Order]
//	@Failure	400	{object}	Envelope[Order]
//	@Router		/api/v1/orders/{order_id} [patch]
func (s *Server) CancelOrder(ctx echo.Context) error {
	customerID := ctx.Request().Header.Get(headerUserID)
	if customerID == "" {
		return badRequest[Order](ctx, headerUserID+" header is required")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return badRequest[Order](ctx, "Invalid order ID: "+ctx.Param("order_id"))
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, customerID)
	if err != nil {
		return badRequest[Order](ctx, err.Error())
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrOrderNotCancellable) || isValidationError(err) {
			return badRequest[Order](ctx, "Order not found or cannot be cancelled")
		}

		s.logger.Error("order cancellation failed",
			"order_id", orderID.String(), "customer_id", customerID, "error", err)
		return internalError[Order](ctx)
	}

	response := orderFromAggregate(cancelled)

	return ctx.JSON(http.StatusOK, Envelope[Order]{
		Message: fmt.Sprintf("Order %s cancelled successfully", orderID),
		Data:    &response,
	})
}

// requesterScope resolves the customer scope for read endpoints. Administrators
// read unscoped; everyone else reads their own orders only.
func (s *Server) requesterScope(ctx echo.Context) (string, error) {
	userID := ctx.Request().Header.Get(headerUserID)
	if userID == "" {
		return "", errors.New(headerUserID + " header is required")
	}

	if ctx.Request().Header.Get(headerUserRole) == roleAdministrator {
		return "", nil
	}

	return userID, nil
}

func isValidationError(err error) bool {
	return errors.Is(err, errs.ErrValueIsRequired) || errors.Is(err, errs.ErrValueIsInvalid)
}

func badRequest[T any](ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Envelope[T]{Message: message})
}

func internalError[T any](ctx echo.Context) error {
	return ctx.JSON(http.StatusInternalServerError, Envelope[T]{Message: "Internal Server Error"})
}
