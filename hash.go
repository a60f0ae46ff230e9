package tagpass

// Hash performs the one legal plain→hashed transition. The plain value and
// salt are handed to the backend, and on success the backend's encoded
// output comes back wrapped in a new Password[Hashed]. A nil backend selects
// DefaultBackend.
//
// Failures (*HashError) cover an invalid salt, out-of-range backend
// configuration, and backend computation errors; no Password[Hashed] is ever
// produced on failure. The call is CPU- and memory-bound by design and may
// take a while at honest cost parameters; callers needing responsiveness
// should run it on their own goroutine.
func Hash(plain Password[Plain], b Backend, salt Salt) (Password[Hashed], error) {
	if b == nil {
		b = DefaultBackend()
	}
	encoded, err := b.EncodeHash(plain.Bytes(), salt)
	if err != nil {
		return Password[Hashed]{}, newHashError(err)
	}
	return Password[Hashed]{value: encoded}, nil
}

// Verify recomputes the hash of candidate using the parameters and salt
// embedded in hashed's encoding and compares digests in constant time. A
// stored hash can be verified against any number of candidates.
//
// A false result means the candidate does not match; a *VerifyError means
// the stored encoding is malformed or unsupported and the outcome cannot be
// determined. The two are never conflated. A nil backend selects
// DefaultBackend.
func Verify(hashed Password[Hashed], candidate Password[Plain], b Backend) (bool, error) {
	if b == nil {
		b = DefaultBackend()
	}
	ok, err := b.VerifyEncoded(hashed.String(), candidate.Bytes())
	if err != nil {
		return false, newVerifyError(err)
	}
	return ok, nil
}
