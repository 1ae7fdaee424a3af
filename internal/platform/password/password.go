// Package password provides one-way hashing and verification of user secrets.
package password

import "golang.org/x/crypto/bcrypt"

// Hash returns a bcrypt hash of the given plaintext. bcrypt embeds a
// per-call random salt, so two calls with the same input produce
// different hashes.
func Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext is the input that produced hash.
// Any underlying error (corrupt hash, cost mismatch) is treated as a
// verification failure rather than propagated.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// DummyHash is a valid bcrypt hash of a throwaway value. Login runs a
// compare against it when the account does not exist so the response
// time does not depend on account existence.
const DummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
