// Package service defines interfaces for the domain's collaborators: token codec,
// password hashing, asset host, translation, events and share codes.
package service

// PasswordHasher hashes and checks admin passwords.
type PasswordHasher interface {
	// Hash returns a salted one-way hash of the plaintext.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
