package context

import (
	"context"

	"github.com/shopkeep/shopkeep-server/internal/model"
)

type customerKey struct{}

// Manager stores the authenticated customer in a request context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetCustomerToContext returns a copy of ctx carrying customer.
func (m *Manager) SetCustomerToContext(ctx context.Context, customer model.Customer) context.Context {
	return context.WithValue(ctx, customerKey{}, customer)
}

// GetCustomerFromContext returns the customer stored by SetCustomerToContext.
func (m *Manager) GetCustomerFromContext(ctx context.Context) (model.Customer, bool) {
	customer, ok := ctx.Value(customerKey{}).(model.Customer)
	return customer, ok
}
