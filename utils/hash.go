package utils

import "golang.org/x/crypto/bcrypt"

// HashAPIKey hashes a club scorer API key before storage.
func HashAPIKey(k string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(k), 12)
	return string(bytes), err
}

// CheckAPIKey compares a presented API key against the stored hash.
func CheckAPIKey(hash, key string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key))
	return err == nil
}
