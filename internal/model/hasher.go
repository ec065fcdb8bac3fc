package model

// PasswordHasher hashes and verifies passwords with a salted adaptive algorithm.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
