package model

import "context"

// ContextManager carries the authenticated customer through a request.
type ContextManager interface {
	SetCustomerToContext(ctx context.Context, customer Customer) context.Context
	GetCustomerFromContext(ctx context.Context) (Customer, bool)
}
