package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopkeep/shopkeep-server/internal/logger"
	"github.com/shopkeep/shopkeep-server/internal/model"
)

// CustomerService defines customer registration and lookups.
type CustomerService interface {
	Create(ctx context.Context, params model.CreateCustomerParams) (model.Customer, error)
	GetByID(ctx context.Context, id int64) (model.Customer, error)
	List(ctx context.Context, page model.Page) ([]model.Customer, error)
}

// Customer handles customer endpoints.
type Customer struct {
	customerService CustomerService
	logger          *logger.Logger
}

// NewCustomer creates a new Customer handler.
func NewCustomer(customerService CustomerService, logger *logger.Logger) *Customer {
	return &Customer{
		customerService: customerService,
		logger:          logger,
	}
}

// Create registers the single customer in the request body.
func (h *Customer) Create(c echo.Context) error {
	var req CreateCustomerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	customer, err := h.customerService.Create(c.Request().Context(), req.Data[0].toParams())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newCustomerOutput(customer))
}

func (h *Customer) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	customer, err := h.customerService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newCustomerOutput(customer))
}

func (h *Customer) List(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}

	customers, err := h.customerService.List(c.Request().Context(), page)
	if err != nil {
		return err
	}

	out := make([]CustomerOutput, 0, len(customers))
	for _, customer := range customers {
		out = append(out, newCustomerOutput(customer))
	}
	return c.JSON(http.StatusOK, out)
}
