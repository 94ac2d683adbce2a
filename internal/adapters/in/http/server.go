// Package http provides the inbound REST adapter built on Echo.
//
// Handlers translate JSON payloads into commands and queries, and map the
// application error taxonomy onto HTTP status codes: validation errors become
// 400, missing objects 404, business rule violations 409, everything else 500.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	checkoutOrderHandler     commands.CheckoutOrderCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getOrderByIDHandler           queries.GetOrderByIDQueryHandler
	getAllOrdersHandler           queries.GetAllOrdersQueryHandler
	getOrdersOrderedByStatusQuery queries.GetOrdersOrderedByStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	checkoutOrderHandler commands.CheckoutOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrdersOrderedByStatusQuery queries.GetOrdersOrderedByStatusQueryHandler,
) *Server {
	return &Server{
		checkoutOrderHandler:          checkoutOrderHandler,
		updateOrderHandler:            updateOrderHandler,
		changeOrderStatusHandler:      changeOrderStatusHandler,
		getOrderByIDHandler:           getOrderByIDHandler,
		getAllOrdersHandler:           getAllOrdersHandler,
		getOrdersOrderedByStatusQuery: getOrdersOrderedByStatusQuery,
	}
}

// RegisterRoutes binds all order endpoints and the health check onto an Echo
// instance and installs the request validator.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = &requestValidator{validate: validator.New()}

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/pedidos", s.CheckoutOrder)
	api.GET("/pedidos", s.GetOrders)
	api.GET("/pedidos/fila", s.GetKitchenQueue)
	api.GET("/pedidos/:id", s.GetOrderByID)
	api.PATCH("/pedidos/:id", s.UpdateOrder)
	api.PATCH("/pedidos/:id/status", s.ChangeOrderStatus)
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CheckoutItemRequest is one requested line item in a checkout payload.
type CheckoutItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"  validate:"required,gt=0"`
}

// CheckoutOrderRequest is the POST /api/v1/pedidos payload. Status fields are
// declared only so non-default values can be rejected: every new order starts
// as Received with payment Pending.
type CheckoutOrderRequest struct {
	Items         []CheckoutItemRequest `json:"items" validate:"required,min=1,dive"`
	Observations  string                `json:"observations"`
	CustomerID    string                `json:"customerId"`
	Status        *string               `json:"status"`
	PaymentStatus *string               `json:"paymentStatus"`
}

// initialStatuses rejects a checkout payload that tries to preset the
// workflow or payment status to anything but the initial values.
func (r CheckoutOrderRequest) initialStatuses() error {
	if r.Status != nil && *r.Status != order.StatusReceived.String() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("a new order always starts as %s", order.StatusReceived),
		)
	}
	if r.PaymentStatus != nil && *r.PaymentStatus != order.PaymentPending.String() {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus is invalid",
			fmt.Errorf("a new order always starts as %s", order.PaymentPending),
		)
	}
	return nil
}

// UpdateOrderRequest is the PATCH /api/v1/pedidos/:id payload. Status fields
// are declared only so their presence can be rejected: statuses move through
// the dedicated endpoints, never through the generic update.
type UpdateOrderRequest struct {
	Observations  *string `json:"observations"`
	Status        *string `json:"status"`
	PaymentStatus *string `json:"paymentStatus"`
}

// ChangeOrderStatusRequest is the PATCH /api/v1/pedidos/:id/status payload.
type ChangeOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderItemResponse is one line item in an order response body.
type OrderItemResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// OrderResponse is the JSON representation of an order. CreatedAt is assigned
// by the store on insert, so the checkout response omits it rather than guess.
type OrderResponse struct {
	ID            string              `json:"id"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"paymentStatus"`
	Items         []OrderItemResponse `json:"items"`
	TotalValue    float64             `json:"totalValue"`
	Observations  string              `json:"observations"`
	CustomerID    string              `json:"customerId,omitempty"`
	CustomerName  string              `json:"customerName,omitempty"`
	CreatedAt     time.Time           `json:"createdAt,omitzero"`
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CheckoutOrder handles POST /api/v1/pedidos - places a new order.
func (s *Server) CheckoutOrder(ctx echo.Context) error {
	var request CheckoutOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return badRequest(ctx, "Invalid checkout data: "+err.Error())
	}
	if err := request.initialStatuses(); err != nil {
		return respondError(ctx, err)
	}

	items := make([]commands.CheckoutItem, len(request.Items))
	for i, item := range request.Items {
		items[i] = commands.CheckoutItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	cmd, err := commands.NewCheckoutOrderCommand(
		kernel.NewUUID(),
		items,
		request.Observations,
		request.CustomerID,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	placed, err := s.checkoutOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromAggregate(placed))
}

// GetOrders handles GET /api/v1/pedidos - lists all orders, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponsesFromReadModels(orders))
}

// GetKitchenQueue handles GET /api/v1/pedidos/fila - lists in-flight orders in
// kitchen working order.
func (s *Server) GetKitchenQueue(ctx echo.Context) error {
	query := queries.NewGetOrdersOrderedByStatusQuery()

	orders, err := s.getOrdersOrderedByStatusQuery.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponsesFromReadModels(orders))
}

// GetOrderByID handles GET /api/v1/pedidos/:id - retrieves one order.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromReadModel(response))
}

// UpdateOrder handles PATCH /api/v1/pedidos/:id - updates mutable order data.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if request.Status != nil || request.PaymentStatus != nil {
		return respondError(ctx, errs.NewBusinessRuleError(
			"status cannot be changed through the generic update",
		))
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, request.Observations)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles PATCH /api/v1/pedidos/:id/status - advances an
// order through the kitchen workflow.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request ChangeOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}

	status, err := order.ParseStatus(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func parseOrderID(ctx echo.Context) (kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("order id is invalid", err)
	}
	return orderID, nil
}

func orderResponseFromAggregate(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice().Float64(),
			Quantity:  item.Quantity(),
		})
	}

	response := OrderResponse{
		ID:            aggregate.ID().String(),
		Status:        aggregate.Status().String(),
		PaymentStatus: aggregate.PaymentStatus().String(),
		Items:         items,
		TotalValue:    aggregate.TotalValue().Float64(),
		Observations:  aggregate.Observations(),
	}

	if snapshot := aggregate.Customer(); snapshot != nil {
		response.CustomerID = snapshot.ID().String()
		response.CustomerName = snapshot.Name()
	}

	return response
}

func orderResponseFromReadModel(model queries.OrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	return OrderResponse{
		ID:            model.ID.String(),
		Status:        model.Status,
		PaymentStatus: model.PaymentStatus,
		Items:         items,
		TotalValue:    model.TotalValue,
		Observations:  model.Observations,
		CustomerID:    model.CustomerID,
		CustomerName:  model.CustomerName,
		CreatedAt:     model.CreatedAt,
	}
}

func orderResponsesFromReadModels(models []queries.OrderQueryResponse) []OrderResponse {
	responses := make([]OrderResponse, 0, len(models))
	for _, model := range models {
		responses = append(responses, orderResponseFromReadModel(model))
	}
	return responses
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired) || errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrBusinessRule):
		code = http.StatusConflict
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
