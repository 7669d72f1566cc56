package http

import (
	"net/http"
	"strconv"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage = 0
	defaultSize = 20
)

// Server wires the order API routes to the application's command and query
// handlers.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderByIDHandler        queries.GetOrderByIDQueryHandler
	getAllOrdersHandler        queries.GetAllOrdersQueryHandler
	getOrdersByCustomerHandler queries.GetOrdersByCustomerQueryHandler
	getOrdersByStatusHandler   queries.GetOrdersByStatusQueryHandler
}

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrdersByCustomerHandler queries.GetOrdersByCustomerQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updateOrderHandler:         updateOrderHandler,
		cancelOrderHandler:         cancelOrderHandler,
		changeOrderStatusHandler:   changeOrderStatusHandler,
		deleteOrderHandler:         deleteOrderHandler,
		getOrderByIDHandler:        getOrderByIDHandler,
		getAllOrdersHandler:        getAllOrdersHandler,
		getOrdersByCustomerHandler: getOrdersByCustomerHandler,
		getOrdersByStatusHandler:   getOrdersByStatusHandler,
	}
}

// RegisterRoutes mounts the order API under /api/v1/orders.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/orders")

	g.POST("", s.CreateOrder)
	g.GET("", s.GetOrders)
	g.GET("/:orderId", s.GetOrder)
	g.PUT("/:orderId", s.UpdateOrder)
	g.DELETE("/:orderId", s.DeleteOrder)
	g.PATCH("/:orderId/status", s.UpdateOrderStatus)
	g.PATCH("/:orderId/cancel", s.CancelOrder)
	g.GET("/customer/:customerId", s.GetOrdersByCustomer)
	g.GET("/status/:status", s.GetOrdersByStatus)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, codeValidationError, "invalid request body")
	}

	specs, err := toItemSpecs(req.Items)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerID, specs, req.Notas)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return successResponse(ctx, http.StatusCreated, fromDomainOrder(created), "order created")
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	page, size, err := pagination(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, codeValidationError, "invalid pagination parameters")
	}

	query, err := queries.NewGetAllOrdersQuery(page, size)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	data := PagedOrdersResponse{
		Content:       fromReadModelSummaries(result.Orders),
		Page:          result.Page,
		Size:          result.Size,
		TotalElements: result.Total,
	}

	return successResponse(ctx, http.StatusOK, data, "orders retrieved")
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return successResponse(ctx, http.StatusOK, fromReadModelDetail(view), "order retrieved")
}

// UpdateOrder handles PUT /api/v1/orders/:orderId.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, codeValidationError, "invalid request body")
	}

	specs, err := toItemSpecs(req.Items)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, specs, req.Notas)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return successResponse(ctx, http.StatusOK, fromDomainOrder(updated), "order updated")
}

// DeleteOrder handles DELETE /api/v1/orders/:orderId.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return successResponse(ctx, http.StatusOK, nil, "order deleted")
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderId/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, codeValidationError, "invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return successResponse(ctx, http.StatusOK, fromDomainOrder(updated), "order status updated")
}

// CancelOrder handles PATCH /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return successResponse(ctx, http.StatusOK, fromDomainOrder(cancelled), "order cancelled")
}

// GetOrdersByCustomer handles GET /api/v1/orders/customer/:customerId.
func (s *Server) GetOrdersByCustomer(ctx echo.Context) error {
	query, err := queries.NewGetOrdersByCustomerQuery(ctx.Param("customerId"))
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.getOrdersByCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return successResponse(ctx, http.StatusOK, fromReadModelSummaries(views), "customer orders retrieved")
}

// GetOrdersByStatus handles GET /api/v1/orders/status/:status.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.Param("status"))
	if err != nil {
		return writeError(ctx, err)
	}

	page, size, err := pagination(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, codeValidationError, "invalid pagination parameters")
	}

	query, err := queries.NewGetOrdersByStatusQuery(status, page, size)
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return successResponse(ctx, http.StatusOK, fromReadModelSummaries(views), "orders by status retrieved")
}

func toItemSpecs(items []OrderItemRequest) ([]commands.ItemSpec, error) {
	specs := make([]commands.ItemSpec, 0, len(items))
	for _, item := range items {
		unitPrice, err := kernel.NewMoney(item.PrecioUnitario)
		if err != nil {
			return nil, err
		}

		specs = append(specs, commands.ItemSpec{
			ProductCode: item.CodigoProducto,
			ProductName: item.NombreProducto,
			Quantity:    item.Cantidad,
			UnitPrice:   unitPrice,
		})
	}

	return specs, nil
}

func pagination(ctx echo.Context) (int, int, error) {
	page := defaultPage
	size := defaultSize

	if raw := ctx.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		page = parsed
	}

	if raw := ctx.QueryParam("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		size = parsed
	}

	return page, size, nil
}
