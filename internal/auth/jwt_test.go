package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renatorak20/MyShowListBE/internal/database"
)

const testSecret = "test-secret-test-secret-test-secret"

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	_, err := NewTokenManager("", 60)
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	m, err := NewTokenManager(testSecret, 60)
	require.NoError(t, err)

	user := &database.User{
		ID:       42,
		Username: "alice",
		Email:    "alice@example.com",
		IsAdmin:  true,
		Password: "$2a$10$secret",
		Salt:     "deadbeef",
	}

	token, err := m.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.User.ID)
	assert.Equal(t, "alice", claims.User.Username)
	assert.Equal(t, "alice@example.com", claims.User.Email)
	assert.True(t, claims.User.IsAdmin)

	// credentials never survive the round trip
	assert.Empty(t, claims.User.Password)
	assert.Empty(t, claims.User.Salt)
	assert.NotContains(t, token, "deadbeef")
}

func TestValidateExpiredToken(t *testing.T) {
	m, err := NewTokenManager(testSecret, -1)
	require.NoError(t, err)

	token, err := m.Generate(&database.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateGarbageToken(t *testing.T) {
	m, err := NewTokenManager(testSecret, 60)
	require.NoError(t, err)

	_, err = m.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateWrongSecret(t *testing.T) {
	m1, err := NewTokenManager(testSecret, 60)
	require.NoError(t, err)
	m2, err := NewTokenManager("another-secret-another-secret", 60)
	require.NoError(t, err)

	token, err := m1.Generate(&database.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	_, err = m2.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
