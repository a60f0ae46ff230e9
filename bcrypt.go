package tagpass

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptConfig holds the configuration for bcrypt hashing.
type BcryptConfig struct {
	// Cost is the bcrypt cost factor (4-31).
	// Higher values are more secure but slower.
	Cost int
}

// DefaultBcryptConfig returns secure default parameters for bcrypt.
func DefaultBcryptConfig() *BcryptConfig {
	return &BcryptConfig{
		Cost: 12, // Good balance of security and performance
	}
}

// BcryptBackend implements the Backend interface using bcrypt.
//
// bcrypt derives its own random salt and embeds it in the output, so this
// backend only accepts an empty salt: passing one would either be silently
// dropped or double-salted, both worse than an explicit error.
type BcryptBackend struct {
	config *BcryptConfig
}

// NewBcryptBackend creates a new bcrypt backend with the given
// configuration. If config is nil, DefaultBcryptConfig is used.
func NewBcryptBackend(config *BcryptConfig) *BcryptBackend {
	if config == nil {
		config = DefaultBcryptConfig()
	}
	// Clamp cost to valid range
	if config.Cost < bcrypt.MinCost {
		config.Cost = bcrypt.MinCost
	}
	if config.Cost > bcrypt.MaxCost {
		config.Cost = bcrypt.MaxCost
	}
	return &BcryptBackend{config: config}
}

// EncodeHash hashes raw using bcrypt with a backend-generated salt. salt
// must be empty.
func (b *BcryptBackend) EncodeHash(raw, salt []byte) (string, error) {
	if len(salt) != 0 {
		return "", fmt.Errorf("bcrypt embeds its own salt: %w", ErrSaltRejected)
	}
	hash, err := bcrypt.GenerateFromPassword(raw, b.config.Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyEncoded checks whether raw matches a bcrypt hash. A mismatch is a
// false result, not an error.
func (b *BcryptBackend) VerifyEncoded(encoded string, raw []byte) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), raw)
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%v: %w", err, ErrHashMalformed)
	}
	return true, nil
}

// Ensure BcryptBackend implements Backend.
var _ Backend = (*BcryptBackend)(nil)
