package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopkeep/shopkeep-server/internal/logger"
	"github.com/shopkeep/shopkeep-server/internal/model"
)

// Order places orders and lists them.
type Order struct {
	orderStore    model.OrderStore
	customerStore model.CustomerStore
	logger        *logger.Logger
	now           func() time.Time
}

func NewOrder(orderStore model.OrderStore, customerStore model.CustomerStore, logger *logger.Logger) *Order {
	return &Order{
		orderStore:    orderStore,
		customerStore: customerStore,
		logger:        logger,
		now:           time.Now,
	}
}

// CreateOrder places an order for an existing customer. Nothing is written
// when the customer does not exist.
func (s *Order) CreateOrder(ctx context.Context, params model.CreateOrderParams) (model.Order, error) {
	s.logger.Debug("Order service: creating order",
		"customer_id", params.CustomerID,
		"status", params.Status)

	if params.TotalPrice < 0 || math.IsNaN(params.TotalPrice) || math.IsInf(params.TotalPrice, 0) {
		return model.Order{}, model.NewValidationError("total_price", "must be a non-negative number")
	}
	if params.Status == "" {
		params.Status = model.OrderStatusPending
	}
	if !params.Status.Valid() {
		return model.Order{}, model.NewValidationError("status", fmt.Sprintf("unknown order status %q", params.Status))
	}
	if params.OrderDate.IsZero() {
		params.OrderDate = s.now().UTC()
	}

	if err := s.ensureCustomer(ctx, params.CustomerID); err != nil {
		return model.Order{}, err
	}

	order, err := s.orderStore.Create(ctx, model.Order{
		CustomerID: params.CustomerID,
		OrderDate:  params.OrderDate,
		TotalPrice: params.TotalPrice,
		Status:     params.Status,
	})
	if err != nil {
		if errors.Is(err, model.ErrCustomerNotFound) {
			return model.Order{}, err
		}
		s.logger.Error("Order service: failed to create order",
			"customer_id", params.CustomerID,
			"error", err.Error())
		return model.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info("Order service: order created",
		"order_id", order.ID,
		"customer_id", order.CustomerID)

	return order, nil
}

// ListOrdersByCustomerAndStatus returns a customer's orders in the given
// status. An unknown customer is an error, no matches is an empty list.
func (s *Order) ListOrdersByCustomerAndStatus(ctx context.Context, customerID int64, status model.OrderStatus) ([]model.Order, error) {
	if !status.Valid() {
		return nil, model.NewValidationError("order_status", fmt.Sprintf("unknown order status %q", status))
	}

	if err := s.ensureCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	orders, err := s.orderStore.ListByCustomerAndStatus(ctx, customerID, status)
	if err != nil {
		s.logger.Error("Order service: failed to list orders by customer",
			"customer_id", customerID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list orders by customer: %w", err)
	}
	return orders, nil
}

func (s *Order) ListOrders(ctx context.Context, page model.Page) ([]model.Order, error) {
	if err := validatePage(page); err != nil {
		return nil, err
	}

	orders, err := s.orderStore.List(ctx, page)
	if err != nil {
		s.logger.Error("Order service: failed to list orders",
			"error", err.Error())
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *Order) ensureCustomer(ctx context.Context, customerID int64) error {
	_, err := s.customerStore.GetByID(ctx, customerID)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Info("Order service: customer not found",
			"customer_id", customerID)
		return &model.CustomerNotFoundError{CustomerID: customerID}
	}
	if err != nil {
		s.logger.Error("Order service: failed to get customer by id",
			"customer_id", customerID,
			"error", err.Error())
		return fmt.Errorf("failed to get customer by id: %w", err)
	}
	return nil
}
