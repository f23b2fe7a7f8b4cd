package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mountainride-backend/internal/domain"
)

const testSecret = "a-test-secret-that-is-long-enough-1234"

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	emp := &domain.Employee{ID: 7, Email: "clerk@shop.fr", Role: domain.EmployeeRoleAdmin}

	token, err := tm.GenerateAccessToken(emp)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int32(7), claims.EmployeeID)
	assert.Equal(t, "clerk@shop.fr", claims.Email)
	assert.True(t, claims.IsAdmin())
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Minute).(*tokenManager)
	tm.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := tm.GenerateAccessToken(&domain.Employee{ID: 1, Role: domain.EmployeeRoleEmployee})
	require.NoError(t, err)

	tm.now = time.Now
	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, err := NewTokenManager(testSecret, time.Hour).GenerateAccessToken(&domain.Employee{ID: 1})
	require.NoError(t, err)

	_, err = NewTokenManager("another-secret-that-is-long-enough-xx", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	_, err := NewTokenManager(testSecret, time.Hour).ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
