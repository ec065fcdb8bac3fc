package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shopkeep/shopkeep-server/internal/logger"
	"github.com/shopkeep/shopkeep-server/internal/model"
)

// OrderService defines order placement and listings.
type OrderService interface {
	CreateOrder(ctx context.Context, params model.CreateOrderParams) (model.Order, error)
	ListOrdersByCustomerAndStatus(ctx context.Context, customerID int64, status model.OrderStatus) ([]model.Order, error)
	ListOrders(ctx context.Context, page model.Page) ([]model.Order, error)
}

// Order handles order endpoints.
type Order struct {
	orderService OrderService
	logger       *logger.Logger
}

// NewOrder creates a new Order handler.
func NewOrder(orderService OrderService, logger *logger.Logger) *Order {
	return &Order{
		orderService: orderService,
		logger:       logger,
	}
}

func (h *Order) Create(c echo.Context) error {
	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderService.CreateOrder(c.Request().Context(), req.Data[0].toParams())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newOrderOutput(order))
}

// ListByCustomer lists a customer's orders filtered by the order_status
// query parameter.
func (h *Order) ListByCustomer(c echo.Context) error {
	customerID, err := parseIDParam(c, "customer_id")
	if err != nil {
		return err
	}

	status := model.OrderStatus(strings.ToLower(strings.TrimSpace(c.QueryParam("order_status"))))
	if status == "" {
		return model.NewValidationError("order_status", "field required")
	}

	orders, err := h.orderService.ListOrdersByCustomerAndStatus(c.Request().Context(), customerID, status)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newOrderOutputs(orders))
}

func (h *Order) List(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}

	orders, err := h.orderService.ListOrders(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newOrderOutputs(orders))
}

func newOrderOutputs(orders []model.Order) []OrderOutput {
	out := make([]OrderOutput, 0, len(orders))
	for _, order := range orders {
		out = append(out, newOrderOutput(order))
	}
	return out
}
