package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopkeep/shopkeep-server/internal/logger"
	"github.com/shopkeep/shopkeep-server/internal/model"
)

// TokenService issues bearer tokens for customers and verifies presented
// ones. It composes the TokenManager with the configured access TTL.
type TokenService struct {
	manager   model.TokenManager
	accessTTL time.Duration
	logger    *logger.Logger
}

func NewTokenService(manager model.TokenManager, accessTTL time.Duration, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, accessTTL: accessTTL, logger: logger}
}

func (s *TokenService) Issue(customer model.Customer) (model.AccessToken, error) {
	token, err := s.manager.Issue(customer.Username, customer.ID, s.accessTTL)
	if err != nil {
		return model.AccessToken{}, fmt.Errorf("issue access: %w", err)
	}

	return model.AccessToken{
		AccessToken: token,
		TokenType:   model.TokenTypeBearer,
	}, nil
}

// Verify returns the claims of a valid token. Every verification failure,
// expiry included, is reported as model.ErrUnauthorized.
func (s *TokenService) Verify(token string) (model.TokenClaims, error) {
	if token == "" {
		return model.TokenClaims{}, model.ErrUnauthorized
	}

	claims, err := s.manager.Verify(token)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrTokenExpired):
			s.logger.Debug("Token service: token expired")
		case errors.Is(err, model.ErrInvalidToken):
			s.logger.Debug("Token service: invalid token", "error", err.Error())
		default:
			s.logger.Error("Token service: failed to verify token", "error", err.Error())
		}
		return model.TokenClaims{}, model.ErrUnauthorized
	}

	return claims, nil
}
