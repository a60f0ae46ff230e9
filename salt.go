package tagpass

import (
	"crypto/rand"
	"fmt"
)

// MinSaltLength is the minimum salt length in bytes accepted by salted
// backends. Eight bytes is the RFC 9106 floor for Argon2; sixteen is the
// recommended length and what GenerateSalt defaults to.
const MinSaltLength = 8

// DefaultSaltLength is the salt length GenerateSalt produces when asked for
// a recommended-size salt.
const DefaultSaltLength = 16

// Salt is a per-password random value mixed into the hashing computation.
// The caller owns salt generation and uniqueness; Hash never generates one
// implicitly.
type Salt []byte

// GenerateSalt returns n cryptographically random bytes. Generation only
// happens through this explicit call. n below MinSaltLength is rejected
// up front rather than producing a salt every backend would refuse.
func GenerateSalt(n int) (Salt, error) {
	if n < MinSaltLength {
		return nil, fmt.Errorf("salt length %d: %w", n, ErrSaltTooShort)
	}
	s := make(Salt, n)
	if _, err := rand.Read(s); err != nil {
		return nil, err
	}
	return s, nil
}
