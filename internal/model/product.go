package model

import (
	"context"
	"strings"
	"time"
)

// ProductStore defines persistence operations for catalog products.
type ProductStore interface {
	Create(ctx context.Context, product Product) (Product, error)
	GetByID(ctx context.Context, id int64) (Product, error)
	GetByName(ctx context.Context, name string) (Product, error)
	List(ctx context.Context, page Page) ([]Product, error)
	SetImage(ctx context.Context, id int64, key, contentType string) error
}

// Product represents a catalog entry.
type Product struct {
	ID               int64
	Name             string
	Description      string
	Tags             *string
	Price            float64
	ImageKey         *string
	ImageContentType *string
	CreatedAt        time.Time
}

// CreateProductParams contains parameters to create a product.
type CreateProductParams struct {
	Name        string
	Description string
	Tags        *string
	Price       float64
}

// ProductImage is a stored product picture.
type ProductImage struct {
	ContentType string
	Key         string
}

// NormalizeProductName returns the lookup key for a product name.
func NormalizeProductName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
