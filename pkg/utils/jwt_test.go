package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenManager() *TokenManager {
	return NewTokenManager(JWTConfig{Secret: "test-secret", ExpiryHours: 1})
}

func TestTokenManager_RoundTrip(t *testing.T) {
	m := newTestTokenManager()

	token, expiresAt, err := m.Generate("user-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	userID, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestTokenManager_Verify(t *testing.T) {
	m := newTestTokenManager()
	valid, _, err := m.Generate("user-1")
	require.NoError(t, err)

	past := m.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) })
	expired, _, err := past.Generate("user-1")
	require.NoError(t, err)

	otherSecret, _, err := NewTokenManager(JWTConfig{Secret: "other", ExpiryHours: 1}).Generate("user-1")
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID:           "user-1",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "valid", token: valid},
		{name: "empty", token: "", wantErr: ErrTokenMissing},
		{name: "garbage", token: "not-a-token", wantErr: ErrTokenInvalid},
		{name: "expired", token: expired, wantErr: ErrTokenExpired},
		{name: "wrong secret", token: otherSecret, wantErr: ErrTokenInvalid},
		{name: "alg none", token: noneAlg, wantErr: ErrTokenInvalid},
		{name: "no expiry", token: noExpiry, wantErr: ErrTokenInvalid},
		{name: "tampered payload", token: tampered, wantErr: ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := m.Verify(tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, userID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user-1", userID)
		})
	}
}
