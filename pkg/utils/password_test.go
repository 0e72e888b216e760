package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", hash)
	assert.True(t, CheckPasswordHash("secret1", hash))
	assert.False(t, CheckPasswordHash("secret2", hash))

	again, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes must be salted")
}
