package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// initialPasswordSuffix is appended to the customer email to form the
// initial password of a lazily provisioned account.
//
// TODO: replace this deterministic scheme with a randomly generated
// secret plus a forced reset. The current password is predictable from
// the email address alone.
const initialPasswordSuffix = "@Debaren2025"

// InitialPassword returns the initial password for a new account.
func InitialPassword(email string) string {
	return fmt.Sprintf("%s%s", email, initialPasswordSuffix)
}

// HashPassword returns the bcrypt hash of plain.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches the bcrypt hash.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
