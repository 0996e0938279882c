package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "argon2id$v=19$"))
	assert.NotContains(t, hash, "correct horse battery staple")
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	first, err := HashPassword("samepass")
	require.NoError(t, err)
	second, err := HashPassword("samepass")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("testpass123")
	require.NoError(t, err)

	assert.NoError(t, VerifyPassword(hash, "testpass123"))
	assert.Error(t, VerifyPassword(hash, "wrongpass"))
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	assert.Error(t, VerifyPassword("not-a-hash", "whatever"))
	assert.Error(t, VerifyPassword("a$b$c$d$e", "whatever"))
}

func TestGenerateTokenKey(t *testing.T) {
	first, err := GenerateTokenKey()
	require.NoError(t, err)
	second, err := GenerateTokenKey()
	require.NoError(t, err)

	assert.Len(t, first, 40)
	assert.NotEqual(t, first, second)
}
