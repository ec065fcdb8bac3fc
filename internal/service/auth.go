package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopkeep/shopkeep-server/internal/logger"
	"github.com/shopkeep/shopkeep-server/internal/model"
)

// unknownCustomerHash is a well-formed bcrypt hash at the default cost that
// no password matches. Unknown usernames are verified against it so they
// cost as much as a wrong password.
const unknownCustomerHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type Auth struct {
	customerStore model.CustomerStore
	hasher        model.PasswordHasher
	tokenService  *TokenService
	logger        *logger.Logger
}

func NewAuth(
	customerStore model.CustomerStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	accessTTL time.Duration,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		customerStore: customerStore,
		hasher:        hasher,
		tokenService:  NewTokenService(tokenManager, accessTTL, logger),
		logger:        logger,
	}
}

// Authenticate reports whether username and password identify a customer.
// An unknown username and a wrong password give the same result.
func (a *Auth) Authenticate(ctx context.Context, username, password string) (model.Customer, bool, error) {
	a.logger.Debug("Auth service: authenticating customer",
		"username", username)

	customer, err := a.customerStore.GetByUsername(ctx, model.NormalizeIdentity(username))
	if errors.Is(err, model.ErrNotFound) {
		a.hasher.Verify(password, unknownCustomerHash)
		a.logger.Info("Auth service: unknown username",
			"username", username)
		return model.Customer{}, false, nil
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get customer by username",
			"username", username,
			"error", err.Error())
		return model.Customer{}, false, fmt.Errorf("failed to get customer by username: %w", err)
	}

	if !a.hasher.Verify(password, customer.PasswordHash) {
		a.logger.Info("Auth service: password mismatch",
			"username", username)
		return model.Customer{}, false, nil
	}

	return customer, true, nil
}

func (a *Auth) Login(ctx context.Context, username, password string) (model.AccessToken, error) {
	customer, ok, err := a.Authenticate(ctx, username, password)
	if err != nil {
		return model.AccessToken{}, err
	}
	if !ok {
		return model.AccessToken{}, model.ErrInvalidCredentials
	}

	token, err := a.tokenService.Issue(customer)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"customer_id", customer.ID,
			"error", err.Error())
		return model.AccessToken{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: customer logged in",
		"customer_id", customer.ID)

	return token, nil
}

// ResolveCurrentUser maps a bearer token to the customer it was issued for.
func (a *Auth) ResolveCurrentUser(ctx context.Context, token string) (model.Customer, error) {
	claims, err := a.tokenService.Verify(token)
	if err != nil {
		return model.Customer{}, err
	}

	customer, err := a.customerStore.GetByUsername(ctx, claims.Username)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: token subject no longer exists",
			"username", claims.Username)
		return model.Customer{}, model.ErrUnauthorized
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get customer by username",
			"username", claims.Username,
			"error", err.Error())
		return model.Customer{}, fmt.Errorf("failed to get customer by username: %w", err)
	}

	if customer.ID != claims.CustomerID {
		a.logger.Info("Auth service: token id does not match subject",
			"username", claims.Username,
			"customer_id", claims.CustomerID)
		return model.Customer{}, model.ErrUnauthorized
	}

	return customer, nil
}
