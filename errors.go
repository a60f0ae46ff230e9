package tagpass

import (
	"errors"
	"fmt"
)

// Error codes for categorizing errors.
const (
	CodeSaltTooShort         = "SALT_TOO_SHORT"
	CodeSaltRejected         = "SALT_REJECTED"
	CodeConfigInvalid        = "CONFIG_INVALID"
	CodeBackendFailure       = "BACKEND_FAILURE"
	CodeHashMalformed        = "HASH_MALFORMED"
	CodeAlgorithmUnsupported = "ALGORITHM_UNSUPPORTED"
	CodeVersionUnsupported   = "VERSION_UNSUPPORTED"
)

// Sentinel errors for use with errors.Is().
var (
	// Hashing errors
	ErrSaltTooShort  = errors.New("salt is shorter than the backend minimum")
	ErrSaltRejected  = errors.New("backend derives its own salt and rejects a caller-supplied one")
	ErrConfigInvalid = errors.New("backend configuration is outside the supported range")

	// Verification errors
	ErrHashMalformed        = errors.New("stored hash encoding is malformed")
	ErrAlgorithmUnsupported = errors.New("stored hash references an unsupported algorithm")
	ErrVersionUnsupported   = errors.New("stored hash references an unsupported algorithm version")
)

// HashError is returned when the plain→hashed transition fails: invalid
// salt, out-of-range configuration, or a backend computation failure. A
// failed Hash never produces a partial Password[Hashed].
type HashError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HashError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *HashError) Unwrap() error {
	return e.Err
}

// VerifyError is returned when a stored hash cannot be checked at all:
// malformed encoding or an unsupported algorithm/parameter set. It is
// categorically distinct from a false verification result: "wrong password"
// is not an error, VerifyError means "cannot determine".
type VerifyError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *VerifyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *VerifyError) Unwrap() error {
	return e.Err
}

// IsHashError returns true if the error is a hashing failure.
func IsHashError(err error) bool {
	var he *HashError
	return errors.As(err, &he)
}

// IsVerifyError returns true if the error is a verification failure, as
// opposed to a non-matching password.
func IsVerifyError(err error) bool {
	var ve *VerifyError
	return errors.As(err, &ve)
}

// newHashError wraps a backend error in a *HashError with the matching code.
func newHashError(err error) *HashError {
	code := CodeBackendFailure
	switch {
	case errors.Is(err, ErrSaltTooShort):
		code = CodeSaltTooShort
	case errors.Is(err, ErrSaltRejected):
		code = CodeSaltRejected
	case errors.Is(err, ErrConfigInvalid):
		code = CodeConfigInvalid
	}
	return &HashError{Code: code, Message: "hashing failed", Err: err}
}

// newVerifyError wraps a backend error in a *VerifyError with the matching code.
func newVerifyError(err error) *VerifyError {
	code := CodeHashMalformed
	switch {
	case errors.Is(err, ErrAlgorithmUnsupported):
		code = CodeAlgorithmUnsupported
	case errors.Is(err, ErrVersionUnsupported):
		code = CodeVersionUnsupported
	}
	return &VerifyError{Code: code, Message: "stored hash cannot be verified", Err: err}
}
