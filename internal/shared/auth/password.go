package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost balances hashing latency against brute-force resistance for
// interactive login.
const bcryptCost = bcrypt.DefaultCost

// HashPassword hashes a plain text password with bcrypt. The returned hash
// embeds its own salt and cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plain text password matches the stored
// hash. A mismatch returns bcrypt.ErrMismatchedHashAndPassword.
func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
