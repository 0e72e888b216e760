package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenMissing is returned when no token was presented.
	ErrTokenMissing = errors.New("token missing")
	// ErrTokenInvalid covers malformed tokens, bad signatures, and wrong algorithms.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenExpired is returned for well-signed tokens past their expiry.
	ErrTokenExpired = errors.New("token expired")
)

// Claims represents JWT claims
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 session tokens. It holds no
// mutable state and is safe for concurrent use.
type TokenManager struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewTokenManager(config JWTConfig) *TokenManager {
	return &TokenManager{
		secret: []byte(config.Secret),
		expiry: time.Duration(config.ExpiryHours) * time.Hour,
		now:    time.Now,
	}
}

// WithClock returns a copy that reads time from now.
func (m *TokenManager) WithClock(now func() time.Time) *TokenManager {
	cp := *m
	cp.now = now
	return &cp
}

// Generate signs a token for userID and returns it with its expiry.
func (m *TokenManager) Generate(userID string) (string, time.Time, error) {
	issuedAt := m.now()
	expiresAt := issuedAt.Add(m.expiry)

	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return token, expiresAt, nil
}

// Verify checks signature, algorithm and expiry and returns the user id.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrTokenMissing
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", fmt.Errorf("%w: %v", ErrTokenExpired, err)
	case err != nil:
		return "", fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	case !token.Valid:
		return "", ErrTokenInvalid
	}

	if claims.UserID == "" || claims.UserID != claims.Subject {
		return "", fmt.Errorf("%w: subject mismatch", ErrTokenInvalid)
	}

	return claims.UserID, nil
}
