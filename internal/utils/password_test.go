package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("p1", bcrypt.MinCost)
	assert.NoError(t, err)
	assert.NotEqual(t, "p1", hash)
	assert.True(t, VerifyPassword(hash, "p1"))
	assert.False(t, VerifyPassword(hash, "p2"))

	// salted: same input, different digests
	hash2, err := HashPassword("p1", bcrypt.MinCost)
	assert.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestVerifyPassword_GarbageHash(t *testing.T) {
	assert.False(t, VerifyPassword("not-a-bcrypt-hash", "p1"))
	assert.False(t, VerifyPassword("", "p1"))
}
