// Package service declares the ports the use cases call for work that lives outside
// the domain: hashing, tokens, the chain, storage, mail and messaging.
package service

// PasswordHasher one-way hashes account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password produces hash. A malformed hash never matches.
	Check(password, hash string) bool
}
