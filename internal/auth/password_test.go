package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialPassword(t *testing.T) {
	assert.Equal(t, "thandi@example.com@Debaren2025", InitialPassword("thandi@example.com"))
}

func TestHashAndVerifyPassword(t *testing.T) {
	plain := InitialPassword("thandi@example.com")

	hash, err := HashPassword(plain)
	require.NoError(t, err)
	assert.NotEqual(t, plain, hash)

	assert.True(t, VerifyPassword(hash, plain))
	assert.False(t, VerifyPassword(hash, "wrong-password"))
}
