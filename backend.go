package tagpass

// Backend defines the interface for password hashing algorithms.
//
// Implementations must produce a self-describing encoded string (algorithm
// identifier, version, cost parameters, salt, digest) so that VerifyEncoded
// needs no side-channel configuration. Implementations hold no mutable state
// across calls and must be safe for concurrent use.
type Backend interface {
	// EncodeHash hashes raw with the given salt and returns the encoded
	// hash string.
	EncodeHash(raw, salt []byte) (string, error)

	// VerifyEncoded reports whether raw matches the digest embedded in
	// encoded, using the parameters and salt embedded in encoded. The
	// digest comparison must be constant-time.
	VerifyEncoded(encoded string, raw []byte) (bool, error)
}

// DefaultBackend returns the backend used when Hash or Verify receive a nil
// Backend: Argon2id with default parameters.
func DefaultBackend() Backend {
	return NewArgon2Backend(nil)
}
