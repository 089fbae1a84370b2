package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt(t *testing.T) {
	a, err := GenerateSalt()
	require.NoError(t, err)
	b, err := GenerateSalt()
	require.NoError(t, err)

	assert.Len(t, a, saltBytes*2)
	assert.NotEqual(t, a, b)
}

func TestHashAndCheckPassword(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	hash, err := HashPassword("pw123", salt)
	require.NoError(t, err)
	assert.NotContains(t, hash, "pw123")

	assert.True(t, CheckPassword(hash, "pw123", salt))
	assert.False(t, CheckPassword(hash, "wrong", salt))
	assert.False(t, CheckPassword(hash, "pw123", "othersalt"))
}

func TestHashPasswordSaltMatters(t *testing.T) {
	hash1, err := HashPassword("pw123", "salt-a")
	require.NoError(t, err)
	hash2, err := HashPassword("pw123", "salt-b")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
	assert.True(t, CheckPassword(hash1, "pw123", "salt-a"))
	assert.False(t, CheckPassword(hash2, "pw123", "salt-a"))
}
