package ports

// PasswordHasher hashes and verifies passwords. Plaintext never leaves it.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}
