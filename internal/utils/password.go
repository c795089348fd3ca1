package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt hash from the given plaintext password using
// the default cost. The resulting hash embeds its own salt and cost and can
// be verified later with [VerifyPassword].
//
// Returns an error if the password is empty or exceeds bcrypt's 72-byte
// input limit.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("empty password cannot be hashed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
