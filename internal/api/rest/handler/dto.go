package handler

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/shopkeep/shopkeep-server/internal/model"
)

// CustomerInput is one registration entry of a POST /customers body.
type CustomerInput struct {
	Name            string  `json:"name" validate:"required,max=255"`
	Username        string  `json:"username" validate:"required,max=255"`
	Email           string  `json:"email" validate:"required,email,max=255"`
	Password        string  `json:"password" validate:"required,min=8,max=24"`
	BillingAddress  *string `json:"billing_address"`
	ShippingAddress string  `json:"shipping_address" validate:"required"`
	PhoneNumber     *string `json:"phone_number" validate:"omitempty,max=32"`
}

type CreateCustomerRequest struct {
	Data []CustomerInput `json:"data" validate:"required,len=1,dive"`
}

func (r *CreateCustomerRequest) normalize() {
	for i := range r.Data {
		in := &r.Data[i]
		in.Name = strings.TrimSpace(in.Name)
		in.Username = model.NormalizeIdentity(in.Username)
		in.Email = model.NormalizeIdentity(in.Email)
		in.ShippingAddress = strings.TrimSpace(in.ShippingAddress)
	}
}

func (in CustomerInput) toParams() model.CreateCustomerParams {
	return model.CreateCustomerParams{
		Name:            in.Name,
		Username:        in.Username,
		Email:           in.Email,
		Password:        in.Password,
		BillingAddress:  in.BillingAddress,
		ShippingAddress: in.ShippingAddress,
		PhoneNumber:     in.PhoneNumber,
	}
}

// CustomerOutput is the public projection of a customer. It has no
// password field.
type CustomerOutput struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Username        string  `json:"username"`
	Email           string  `json:"email"`
	BillingAddress  *string `json:"billing_address"`
	ShippingAddress string  `json:"shipping_address"`
	PhoneNumber     *string `json:"phone_number"`
}

func newCustomerOutput(c model.Customer) CustomerOutput {
	return CustomerOutput{
		ID:              c.ID,
		Name:            c.Name,
		Username:        c.Username,
		Email:           c.Email,
		BillingAddress:  c.BillingAddress,
		ShippingAddress: c.ShippingAddress,
		PhoneNumber:     c.PhoneNumber,
	}
}

type ProductInput struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description"`
	Tags        *string `json:"tags"`
	Price       float64 `json:"price" validate:"gte=0"`
}

type CreateProductRequest struct {
	Data []ProductInput `json:"data" validate:"required,len=1,dive"`
}

func (r *CreateProductRequest) normalize() {
	for i := range r.Data {
		r.Data[i].Name = strings.TrimSpace(r.Data[i].Name)
		r.Data[i].Description = strings.TrimSpace(r.Data[i].Description)
	}
}

func (in ProductInput) toParams() model.CreateProductParams {
	return model.CreateProductParams{
		Name:        in.Name,
		Description: in.Description,
		Tags:        in.Tags,
		Price:       in.Price,
	}
}

type ProductOutput struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Tags        *string `json:"tags"`
	Price       float64 `json:"price"`
	HasImage    bool    `json:"has_image"`
}

func newProductOutput(p model.Product) ProductOutput {
	return ProductOutput{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Tags:        p.Tags,
		Price:       p.Price,
		HasImage:    p.ImageKey != nil,
	}
}

type OrderInput struct {
	CustomerID int64             `json:"customer_id" validate:"required,gt=0"`
	OrderDate  *OrderDate        `json:"order_date"`
	TotalPrice float64           `json:"total_price" validate:"gte=0"`
	Status     model.OrderStatus `json:"status" validate:"required"`
}

type CreateOrderRequest struct {
	Data []OrderInput `json:"data" validate:"required,len=1,dive"`
}

func (r *CreateOrderRequest) normalize() {
	for i := range r.Data {
		r.Data[i].Status = model.OrderStatus(strings.ToLower(strings.TrimSpace(string(r.Data[i].Status))))
	}
}

func (in OrderInput) toParams() model.CreateOrderParams {
	params := model.CreateOrderParams{
		CustomerID: in.CustomerID,
		TotalPrice: in.TotalPrice,
		Status:     in.Status,
	}
	if in.OrderDate != nil {
		params.OrderDate = in.OrderDate.Time
	}
	return params
}

type OrderOutput struct {
	ID         int64             `json:"id"`
	CustomerID int64             `json:"customer_id"`
	OrderDate  time.Time         `json:"order_date"`
	TotalPrice float64           `json:"total_price"`
	Status     model.OrderStatus `json:"status"`
}

func newOrderOutput(o model.Order) OrderOutput {
	return OrderOutput{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		OrderDate:  o.OrderDate.UTC(),
		TotalPrice: o.TotalPrice,
		Status:     o.Status,
	}
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type HealthResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

var orderDateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	time.RFC3339,
}

var errInvalidOrderDate = errors.New("order_date must be YYYY-MM-DD, DD-MM-YYYY or RFC 3339")

// OrderDate accepts the date formats clients send for order_date.
type OrderDate struct {
	time.Time
}

// ParseOrderDate parses s with the first matching layout. Dates without a
// zone are taken as UTC.
func ParseOrderDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errInvalidOrderDate
}

func (d *OrderDate) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errInvalidOrderDate
	}

	t, err := ParseOrderDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
