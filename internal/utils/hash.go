package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned by [HashPassword] when the plaintext is
// empty. Hashing an empty credential is always a caller error.
var ErrEmptyPassword = errors.New("empty password provided")

// HashPassword produces a salted one-way bcrypt hash of the given plaintext
// using the provided work factor. Each call generates a fresh random salt,
// so hashing the same password twice yields different hashes.
//
// Cost values outside the bcrypt range are rejected by the underlying
// primitive; the configured default is bcrypt.DefaultCost (10).
func HashPassword(plaintext string, cost int) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored bcrypt hash.
// The comparison is performed by the bcrypt primitive, which recomputes the
// hash with the stored salt and compares in constant time.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
