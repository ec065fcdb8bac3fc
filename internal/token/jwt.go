package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopkeep/shopkeep-server/internal/model"
)

var _ model.TokenManager = (*JWT)(nil)

// Claims represents JWT claims: the registered subject holds the username.
type Claims struct {
	jwt.RegisteredClaims
	CustomerID *int64 `json:"id,omitempty"`
}

// JWT implements TokenManager backed by a symmetric HMAC secret.
type JWT struct {
	secretKey []byte
	method    jwt.SigningMethod
	now       func() time.Time
}

// NewJWT creates a token manager signing with the named HMAC algorithm
// (HS256, HS384 or HS512).
func NewJWT(secretKey, algorithm string) (*JWT, error) {
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	if secretKey == "" {
		return nil, errors.New("secret key must not be empty")
	}

	return &JWT{
		secretKey: []byte(secretKey),
		method:    method,
		now:       time.Now,
	}, nil
}

// Issue creates a signed token for the customer valid for ttl.
func (j *JWT) Issue(subject string, customerID int64, ttl time.Duration) (string, error) {
	now := j.now()
	id := customerID
	token := jwt.NewWithClaims(j.method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		CustomerID: &id,
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// Verify checks the signature and expiry of tokenString and returns its identity.
func (j *JWT) Verify(tokenString string) (model.TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{j.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.TokenClaims{}, model.ErrTokenExpired
		}
		return model.TokenClaims{}, fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
	}
	if !token.Valid {
		return model.TokenClaims{}, model.ErrInvalidToken
	}
	if claims.Subject == "" || claims.CustomerID == nil {
		return model.TokenClaims{}, fmt.Errorf("%w: missing required claims", model.ErrInvalidToken)
	}

	return model.TokenClaims{
		Username:   claims.Subject,
		CustomerID: *claims.CustomerID,
		ExpiresAt:  claims.ExpiresAt.Time,
	}, nil
}
