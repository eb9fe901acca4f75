package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHashPassword verifies the hash is deterministic and salted by
// username.
func TestHashPassword(t *testing.T) {
	first := HashPassword("alice", "Sturdy-pass-1")
	second := HashPassword("alice", "Sturdy-pass-1")
	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // sha256 hex
	assert.NotEqual(t, "Sturdy-pass-1", first)

	otherUser := HashPassword("bob", "Sturdy-pass-1")
	assert.NotEqual(t, first, otherUser)

	otherPassword := HashPassword("alice", "Sturdy-pass-2")
	assert.NotEqual(t, first, otherPassword)
}

// TestGenerateSecretKey verifies keys are non-empty and unique per call.
func TestGenerateSecretKey(t *testing.T) {
	first, err := GenerateSecretKey()
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := GenerateSecretKey()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
