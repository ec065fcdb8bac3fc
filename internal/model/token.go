package model

import "time"

// TokenTypeBearer is the token type reported to clients.
const TokenTypeBearer = "bearer"

// TokenManager issues and verifies signed access tokens.
type TokenManager interface {
	Issue(subject string, customerID int64, ttl time.Duration) (string, error)
	Verify(token string) (TokenClaims, error)
}

// TokenClaims is the identity carried by a verified token.
type TokenClaims struct {
	Username   string
	CustomerID int64
	ExpiresAt  time.Time
}

// AccessToken is the result of a successful login.
type AccessToken struct {
	AccessToken string
	TokenType   string
}
