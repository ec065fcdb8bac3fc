package model

import (
	"context"
	"strings"
	"time"
)

// Column limits of the customers and products tables.
const (
	MaxNameLength  = 255
	MaxPhoneLength = 32
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// CustomerStore defines persistence operations for customers.
type CustomerStore interface {
	Create(ctx context.Context, customer Customer) (Customer, error)
	GetByID(ctx context.Context, id int64) (Customer, error)
	GetByEmail(ctx context.Context, email string) (Customer, error)
	GetByUsername(ctx context.Context, username string) (Customer, error)
	List(ctx context.Context, page Page) ([]Customer, error)
}

// Customer represents a registered customer together with its password hash.
// PasswordHash is never exposed outside of the service layer.
type Customer struct {
	ID              int64
	Name            string
	Username        string
	Email           string
	PasswordHash    string
	BillingAddress  *string
	ShippingAddress string
	PhoneNumber     *string
	CreatedAt       time.Time
}

// CreateCustomerParams contains registration input with a plaintext password.
type CreateCustomerParams struct {
	Name            string
	Username        string
	Email           string
	Password        string
	BillingAddress  *string
	ShippingAddress string
	PhoneNumber     *string
}

// NormalizeIdentity trims and lower-cases an email or username.
func NormalizeIdentity(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
