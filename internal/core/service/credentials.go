package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/nyayasetu/portal-api/internal/core/domain"
)

// PasswordCost is the bcrypt work factor applied to every new hash.
const PasswordCost = 10

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// BcryptHasher implements ports.PasswordHasher with bcrypt.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: PasswordCost}
}

// Hash returns a salted bcrypt hash of plain.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plain produced hash. A malformed hash is treated as
// a mismatch.
func (h *BcryptHasher) Verify(plain, hash string) bool {
	return compare(plain, hash) == nil
}

func compare(plain, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return domain.ErrInvalidCredentials
	default:
		return domain.ErrMalformedHash
	}
}
