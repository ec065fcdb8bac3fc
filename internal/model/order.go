package model

import (
	"context"
	"time"
)

// OrderStore defines persistence operations for orders.
type OrderStore interface {
	Create(ctx context.Context, order Order) (Order, error)
	ListByCustomerAndStatus(ctx context.Context, customerID int64, status OrderStatus) ([]Order, error)
	List(ctx context.Context, page Page) ([]Order, error)
}

// Order represents a purchase placed by a customer.
type Order struct {
	ID         int64
	CustomerID int64
	OrderDate  time.Time
	TotalPrice float64
	Status     OrderStatus
	CreatedAt  time.Time
}

// OrderStatus enumerates order lifecycle states.
type OrderStatus string

const (
	// OrderStatusPending is a freshly placed order.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusProcessing is an order being prepared.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusShipped is an order handed to the carrier.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered is an order received by the customer.
	OrderStatusDelivered OrderStatus = "delivered"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// CreateOrderParams contains parameters to place an order.
// A zero OrderDate means "now".
type CreateOrderParams struct {
	CustomerID int64
	OrderDate  time.Time
	TotalPrice float64
	Status     OrderStatus
}
