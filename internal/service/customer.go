package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopkeep/shopkeep-server/internal/logger"
	"github.com/shopkeep/shopkeep-server/internal/model"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 24
)

// Customer registers customers and looks them up.
type Customer struct {
	customerStore model.CustomerStore
	hasher        model.PasswordHasher
	logger        *logger.Logger
}

func NewCustomer(customerStore model.CustomerStore, hasher model.PasswordHasher, logger *logger.Logger) *Customer {
	return &Customer{
		customerStore: customerStore,
		hasher:        hasher,
		logger:        logger,
	}
}

// Create registers a customer. Email uniqueness is checked before username
// uniqueness, so a request clashing on both reports the email.
func (s *Customer) Create(ctx context.Context, params model.CreateCustomerParams) (model.Customer, error) {
	params = normalizeCustomerParams(params)

	s.logger.Debug("Customer service: registering customer",
		"username", params.Username,
		"email", params.Email)

	if err := validateCustomerParams(params); err != nil {
		return model.Customer{}, err
	}

	_, err := s.customerStore.GetByEmail(ctx, params.Email)
	if err == nil {
		s.logger.Info("Customer service: email already registered",
			"email", params.Email)
		return model.Customer{}, model.ErrDuplicateEmail
	}
	if !errors.Is(err, model.ErrNotFound) {
		s.logger.Error("Customer service: failed to get customer by email",
			"email", params.Email,
			"error", err.Error())
		return model.Customer{}, fmt.Errorf("failed to get customer by email: %w", err)
	}

	_, err = s.customerStore.GetByUsername(ctx, params.Username)
	if err == nil {
		s.logger.Info("Customer service: username already registered",
			"username", params.Username)
		return model.Customer{}, model.ErrDuplicateUsername
	}
	if !errors.Is(err, model.ErrNotFound) {
		s.logger.Error("Customer service: failed to get customer by username",
			"username", params.Username,
			"error", err.Error())
		return model.Customer{}, fmt.Errorf("failed to get customer by username: %w", err)
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		s.logger.Error("Customer service: failed to hash password",
			"username", params.Username,
			"error", err.Error())
		return model.Customer{}, fmt.Errorf("failed to hash password: %w", err)
	}

	customer, err := s.customerStore.Create(ctx, model.Customer{
		Name:            params.Name,
		Username:        params.Username,
		Email:           params.Email,
		PasswordHash:    hash,
		BillingAddress:  params.BillingAddress,
		ShippingAddress: params.ShippingAddress,
		PhoneNumber:     params.PhoneNumber,
	})
	if err != nil {
		// A concurrent registration may win the race after the checks above.
		if errors.Is(err, model.ErrDuplicateEmail) || errors.Is(err, model.ErrDuplicateUsername) {
			return model.Customer{}, err
		}
		s.logger.Error("Customer service: failed to create customer",
			"username", params.Username,
			"error", err.Error())
		return model.Customer{}, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info("Customer service: customer registered",
		"customer_id", customer.ID,
		"username", customer.Username)

	return customer, nil
}

func (s *Customer) GetByID(ctx context.Context, id int64) (model.Customer, error) {
	customer, err := s.customerStore.GetByID(ctx, id)
	if err != nil {
		return model.Customer{}, fmt.Errorf("failed to get customer by id: %w", err)
	}
	return customer, nil
}

func (s *Customer) GetByEmail(ctx context.Context, email string) (model.Customer, error) {
	customer, err := s.customerStore.GetByEmail(ctx, model.NormalizeIdentity(email))
	if err != nil {
		return model.Customer{}, fmt.Errorf("failed to get customer by email: %w", err)
	}
	return customer, nil
}

func (s *Customer) GetByUsername(ctx context.Context, username string) (model.Customer, error) {
	customer, err := s.customerStore.GetByUsername(ctx, model.NormalizeIdentity(username))
	if err != nil {
		return model.Customer{}, fmt.Errorf("failed to get customer by username: %w", err)
	}
	return customer, nil
}

func (s *Customer) List(ctx context.Context, page model.Page) ([]model.Customer, error) {
	if err := validatePage(page); err != nil {
		return nil, err
	}

	customers, err := s.customerStore.List(ctx, page)
	if err != nil {
		s.logger.Error("Customer service: failed to list customers",
			"error", err.Error())
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func normalizeCustomerParams(params model.CreateCustomerParams) model.CreateCustomerParams {
	params.Name = strings.TrimSpace(params.Name)
	params.Username = model.NormalizeIdentity(params.Username)
	params.Email = model.NormalizeIdentity(params.Email)
	params.ShippingAddress = strings.TrimSpace(params.ShippingAddress)
	params.BillingAddress = trimOptional(params.BillingAddress)
	params.PhoneNumber = trimOptional(params.PhoneNumber)
	return params
}

func validateCustomerParams(params model.CreateCustomerParams) error {
	switch {
	case params.Name == "":
		return model.NewValidationError("name", "is required")
	case params.Username == "":
		return model.NewValidationError("username", "is required")
	case params.Email == "" || !strings.Contains(params.Email, "@"):
		return model.NewValidationError("email", "must be a valid email address")
	case params.ShippingAddress == "":
		return model.NewValidationError("shipping_address", "is required")
	}

	for _, f := range []struct{ field, value string }{
		{"name", params.Name},
		{"username", params.Username},
		{"email", params.Email},
	} {
		if err := checkMaxLength(f.field, f.value, model.MaxNameLength); err != nil {
			return err
		}
	}
	if params.PhoneNumber != nil {
		if err := checkMaxLength("phone_number", *params.PhoneNumber, model.MaxPhoneLength); err != nil {
			return err
		}
	}

	n := utf8.RuneCountInString(params.Password)
	if n < minPasswordLength || n > maxPasswordLength {
		return model.NewValidationError("password",
			fmt.Sprintf("must be between %d and %d characters", minPasswordLength, maxPasswordLength))
	}
	if len(params.Password) > model.MaxPasswordBytes {
		return model.NewValidationError("password",
			fmt.Sprintf("must not exceed %d bytes", model.MaxPasswordBytes))
	}

	return nil
}

func checkMaxLength(field, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return model.NewValidationError(field, fmt.Sprintf("must be at most %d characters", limit))
	}
	return nil
}

func validatePage(page model.Page) error {
	if page.Offset < 0 {
		return model.NewValidationError("skip", "must not be negative")
	}
	if page.Limit < 0 || page.Limit > model.MaxPageLimit {
		return model.NewValidationError("limit", fmt.Sprintf("must be between 0 and %d", model.MaxPageLimit))
	}
	return nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
