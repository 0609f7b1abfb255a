package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor applied to every password hash.
// A cost of 10 keeps hashing deliberately slow enough to resist offline
// brute force while remaining acceptable for interactive registration.
const PasswordHashCost = 10

// ErrEmptyPassword is returned by HashPassword when the plaintext is empty.
var ErrEmptyPassword = errors.New("empty password provided")

// HashPassword derives a salted bcrypt hash from the given plaintext secret.
//
// bcrypt embeds a random per-call salt, so hashing the same input twice
// produces two different strings. Callers must therefore never compare
// hashes for equality; use VerifyPassword instead.
//
// Returns:
//
//	string - the bcrypt hash in its standard encoded form
//	error  - non-nil if the plaintext is empty or exceeds bcrypt's 72-byte
//	         input limit
//
// Example usage:
//
//	hash, err := utils.HashPassword("secret123")
func HashPassword(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("error occurred during password hashing: %w", err)
	}

	return string(hashed), nil
}

// VerifyPassword reports whether plaintext matches the given bcrypt hash.
//
// The comparison re-derives the hash using the salt and cost embedded in
// hashed, so it works across hashes produced with different salts.
//
// Example usage:
//
//	if !utils.VerifyPassword(candidate, storedHash) {
//	    // reject credentials
//	}
func VerifyPassword(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
