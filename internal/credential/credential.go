// Package credential owns the one-way password transform for landlord
// accounts. Only the bcrypt hash is ever stored or serialized; the
// plaintext exists transiently at the call site.
package credential

import "golang.org/x/crypto/bcrypt"

// Cost is the bcrypt work factor. Raise it as hardware catches up;
// existing hashes stay verifiable because the factor is embedded in them.
var Cost = bcrypt.DefaultCost

// Hash derives a salted bcrypt hash from a plaintext password.
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether the candidate password matches the stored hash.
func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
