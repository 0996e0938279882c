package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateTokenKey returns a 40-character hex key for an opaque bearer
// token. The key carries no structure; it only has meaning as a lookup
// value in the auth_tokens table.
func GenerateTokenKey() (string, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
