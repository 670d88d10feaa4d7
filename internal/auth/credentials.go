// Package auth provides credential verification and the session value that
// replaces a process-wide current-user singleton.
package auth

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword creates a bcrypt hash of the given password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyCredential checks a supplied password against the stored credential.
//
// Stored credentials that look like bcrypt hashes are verified with bcrypt;
// anything else is compared for equality, in constant time, for parity with
// the seeded plaintext accounts. All credential comparison in the codebase
// goes through this function so the plaintext path can be retired without
// touching callers.
func VerifyCredential(stored, supplied string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// isBcryptHash reports whether the credential uses the bcrypt modular crypt
// format ($2a$, $2b$ or $2y$ prefix).
func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") ||
		strings.HasPrefix(s, "$2b$") ||
		strings.HasPrefix(s, "$2y$")
}
