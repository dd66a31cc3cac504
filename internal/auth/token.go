// Package auth issues and verifies the HS256 bearer tokens that carry a user id.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/osse101/Cultivation_Go/internal/domain"
)

// DefaultTokenTTL is used by Issue when no ttl is given
const DefaultTokenTTL = 24 * time.Hour

const signingMethod = "HS256"

// Claims is the token body
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// TokenManager signs and verifies tokens with a shared secret
type TokenManager struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewTokenManager creates a manager. now may be nil.
func NewTokenManager(secret, issuer string, now func() time.Time) *TokenManager {
	if now == nil {
		now = time.Now
	}
	return &TokenManager{secret: []byte(secret), issuer: issuer, now: now}
}

// Issue returns a signed token for userID
func (m *TokenManager) Issue(userID string, ttl time.Duration) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	now := m.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses the token and returns the user id it carries
func (m *TokenManager) Verify(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", domain.ErrUnauthenticated
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{signingMethod}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return "", mapJWTError(err)
	}

	userID := claims.UserID
	if userID == "" {
		userID = claims.Subject
	}
	if strings.TrimSpace(userID) == "" {
		return "", fmt.Errorf("%w: missing user id claim", domain.ErrInvalidToken)
	}
	return userID, nil
}

func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: token expired", domain.ErrInvalidToken)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: signature invalid", domain.ErrInvalidToken)
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return fmt.Errorf("%w: issuer mismatch", domain.ErrInvalidToken)
	default:
		return fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
}
