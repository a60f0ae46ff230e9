package tagpass

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Supported parameter ranges for Argon2id.
const (
	argon2MinMemory      uint32 = 8 * 1024
	argon2MinIterations  uint32 = 1
	argon2MinParallelism uint8  = 1
	argon2MinKeyLength   uint32 = 16
	argon2AlgorithmID           = "argon2id"
)

// Argon2Config holds the cost parameters for Argon2id hashing.
type Argon2Config struct {
	// Memory is the amount of memory used in KiB.
	Memory uint32

	// Iterations is the number of passes over the memory.
	Iterations uint32

	// Parallelism is the number of threads to use.
	Parallelism uint8

	// KeyLength is the length of the generated key in bytes.
	KeyLength uint32
}

// DefaultArgon2Config returns secure default parameters for Argon2id.
// These follow OWASP recommendations for password storage.
func DefaultArgon2Config() *Argon2Config {
	return &Argon2Config{
		Memory:      64 * 1024, // 64 MiB
		Iterations:  3,
		Parallelism: 2,
		KeyLength:   32,
	}
}

// Argon2Backend implements the Backend interface using Argon2id. The salt is
// always supplied by the caller; the backend never generates one.
type Argon2Backend struct {
	config *Argon2Config
}

// NewArgon2Backend creates a new Argon2id backend with the given
// configuration. If config is nil, DefaultArgon2Config is used.
func NewArgon2Backend(config *Argon2Config) *Argon2Backend {
	if config == nil {
		config = DefaultArgon2Config()
	}
	return &Argon2Backend{config: config}
}

// EncodeHash hashes raw with salt using Argon2id.
// Returns the hash in PHC string format: $argon2id$v=19$m=65536,t=3,p=2$salt$hash
func (b *Argon2Backend) EncodeHash(raw, salt []byte) (string, error) {
	if err := validateArgon2Config(b.config); err != nil {
		return "", err
	}
	if len(salt) < MinSaltLength {
		return "", fmt.Errorf("salt is %d bytes, minimum is %d: %w", len(salt), MinSaltLength, ErrSaltTooShort)
	}

	hash := argon2.IDKey(
		raw,
		salt,
		b.config.Iterations,
		b.config.Memory,
		b.config.Parallelism,
		b.config.KeyLength,
	)

	// Encode to PHC string format
	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		b.config.Memory,
		b.config.Iterations,
		b.config.Parallelism,
		b64Salt,
		b64Hash,
	)

	return encoded, nil
}

// VerifyEncoded checks whether raw matches an Argon2id hash in PHC format.
// The cost parameters and salt come from the encoding itself, not from the
// backend's configuration, so a backend with different settings can still
// verify older hashes.
func (b *Argon2Backend) VerifyEncoded(encoded string, raw []byte) (bool, error) {
	config, salt, hash, err := decodeArgon2Hash(encoded)
	if err != nil {
		return false, err
	}

	otherHash := argon2.IDKey(
		raw,
		salt,
		config.Iterations,
		config.Memory,
		config.Parallelism,
		config.KeyLength,
	)

	// Constant-time comparison to prevent timing attacks
	if subtle.ConstantTimeCompare(hash, otherHash) == 1 {
		return true, nil
	}
	return false, nil
}

// decodeArgon2Hash parses an Argon2id hash in PHC string format.
func decodeArgon2Hash(encoded string) (*Argon2Config, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, nil, nil, fmt.Errorf("expected 6 fields: %w", ErrHashMalformed)
	}

	if parts[1] != argon2AlgorithmID {
		return nil, nil, nil, fmt.Errorf("algorithm %q: %w", parts[1], ErrAlgorithmUnsupported)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, nil, fmt.Errorf("version field %q: %w", parts[2], ErrHashMalformed)
	}
	if version != argon2.Version {
		return nil, nil, nil, fmt.Errorf("argon2 version %d: %w", version, ErrVersionUnsupported)
	}

	config := &Argon2Config{}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d",
		&config.Memory, &config.Iterations, &config.Parallelism); err != nil {
		return nil, nil, nil, fmt.Errorf("parameter field %q: %w", parts[3], ErrHashMalformed)
	}
	if config.Memory < argon2MinMemory || config.Iterations < argon2MinIterations ||
		config.Parallelism < argon2MinParallelism {
		return nil, nil, nil, fmt.Errorf("parameter set below supported minimums: %w", ErrAlgorithmUnsupported)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("salt encoding: %w", ErrHashMalformed)
	}
	if len(salt) < MinSaltLength {
		return nil, nil, nil, fmt.Errorf("embedded salt is %d bytes: %w", len(salt), ErrHashMalformed)
	}

	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("digest encoding: %w", ErrHashMalformed)
	}
	if uint32(len(hash)) < argon2MinKeyLength {
		return nil, nil, nil, fmt.Errorf("digest is %d bytes: %w", len(hash), ErrHashMalformed)
	}
	config.KeyLength = uint32(len(hash))

	return config, salt, hash, nil
}

// validateArgon2Config rejects parameters outside the supported range before
// any expensive computation starts.
func validateArgon2Config(cfg *Argon2Config) error {
	if cfg.Memory < argon2MinMemory {
		return fmt.Errorf("memory must be >= %d KiB: %w", argon2MinMemory, ErrConfigInvalid)
	}
	if cfg.Iterations < argon2MinIterations {
		return fmt.Errorf("iterations must be >= %d: %w", argon2MinIterations, ErrConfigInvalid)
	}
	if cfg.Parallelism < argon2MinParallelism {
		return fmt.Errorf("parallelism must be >= %d: %w", argon2MinParallelism, ErrConfigInvalid)
	}
	if cfg.KeyLength < argon2MinKeyLength {
		return fmt.Errorf("key length must be >= %d: %w", argon2MinKeyLength, ErrConfigInvalid)
	}
	return nil
}

// Ensure Argon2Backend implements Backend.
var _ Backend = (*Argon2Backend)(nil)
