// Package tagpass provides a compile-time-checked password container.
//
// A password value is generic over its state: Password[Plain] holds raw,
// unhashed content, Password[Hashed] holds only the encoded output of a
// hashing backend. The two states are distinct types, so mixing them up
// (storing a plain password where a hash is expected, re-hashing a hash,
// comparing a plain value against a hash without running the verifier) is
// rejected by the compiler.
//
// Basic usage:
//
//	salt, err := tagpass.GenerateSalt(16)
//	plain := tagpass.New("my_password")
//	hashed, err := tagpass.Hash(plain, nil, salt) // nil backend = Argon2id defaults
//	ok, err := tagpass.Verify(hashed, tagpass.New("my_password"), nil)
//
// Hashing is delegated to a pluggable Backend; Argon2id is the default and
// bcrypt is provided as an alternative. The library never stores passwords,
// never generates a salt unless explicitly asked, and never logs anything.
package tagpass

import (
	"crypto/subtle"
	"strings"
)

// Plain marks a password that holds raw, unhashed content.
//
// Plain is a zero-sized marker used only as a type parameter; it is never
// instantiated as a value.
type Plain struct{}

// Hashed marks a password that holds only the encoded output of a hashing
// backend, never recoverable raw content.
type Hashed struct{}

// State is the set of password states a Password can be tagged with.
type State interface {
	Plain | Hashed
}

// Password holds password content together with a compile-time state tag.
// The tag costs nothing at runtime; it exists purely so that plain and
// hashed values are different types.
//
// There is no operation that turns a Password[Hashed] back into a
// Password[Plain]: hashing is one-way and the API surface enforces it.
type Password[S State] struct {
	value string
}

// New wraps raw password input in a Password[Plain]. It performs no
// validation and always succeeds; policy checks (length, complexity) are the
// caller's concern.
func New(value string) Password[Plain] {
	return Password[Plain]{value: value}
}

// ParseHashed rehydrates a Password[Hashed] from a stored encoded hash, such
// as a value read back from a database. The encoding is validated
// structurally (modular-crypt shape: "$<alg>$..."), so a Password[Hashed]
// can never be smuggled in around the hash operation with arbitrary content.
// Returns a *VerifyError if the encoding is malformed.
func ParseHashed(encoded string) (Password[Hashed], error) {
	parts := strings.Split(encoded, "$")
	if len(parts) < 4 || parts[0] != "" || parts[1] == "" {
		return Password[Hashed]{}, &VerifyError{
			Code:    CodeHashMalformed,
			Message: "stored hash is not in modular-crypt format",
			Err:     ErrHashMalformed,
		}
	}
	return Password[Hashed]{value: encoded}, nil
}

// Bytes returns the password's content as bytes, regardless of state. For a
// Password[Hashed] this is the encoded hash string, safe to persist or
// transmit. For a Password[Plain] it is the raw password: never log it.
func (p Password[S]) Bytes() []byte {
	return []byte(p.value)
}

// String returns the password's content. Same caution as Bytes applies to
// plain values.
func (p Password[S]) String() string {
	return p.value
}

// MarshalText implements encoding.TextMarshaler so a Password[Hashed] can be
// embedded in JSON/text payloads for storage.
func (p Password[S]) MarshalText() ([]byte, error) {
	return []byte(p.value), nil
}

// Equal reports whether two passwords of the same state hold identical
// content, in constant time. Both operands share the state parameter, so
// comparing a plain value against a hashed one does not compile; that
// comparison must go through Verify.
func (p Password[S]) Equal(other Password[S]) bool {
	return subtle.ConstantTimeCompare([]byte(p.value), []byte(other.value)) == 1
}
