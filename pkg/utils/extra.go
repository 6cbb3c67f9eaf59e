// Add utility functions here
package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRandomToken generates a random token of the specified length.
// Used for club-scoped scorer API keys; the plaintext is shown once and only
// a bcrypt hash is stored.
func GenerateRandomToken(length int) string {
	bytes := make([]byte, length)
	_, err := rand.Read(bytes)
	if err != nil {
		return ""
	}
	return hex.EncodeToString(bytes)[:length]
}
