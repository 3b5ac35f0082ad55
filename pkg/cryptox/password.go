package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. The hash string records these, so they can be
// tuned later without invalidating stored credentials.
const (
	memory      = 19 * 1024 // Memory usage in KiB (19 MiB)
	iterations  = 2         // Iteration count
	parallelism = 1         // Number of threads
	keyLength   = 32        // Length of the derived key
	saltLength  = 16        // Length of the salt
)

// ErrPasswordMismatch is returned by VerifyPassword when the plaintext does
// not match the stored hash. Malformed stored hashes also report this so a
// corrupted record behaves like a wrong password rather than leaking state.
var ErrPasswordMismatch = errors.New("cryptox: password does not match")

// HashPassword generates a PHC-format Argon2id hash string including salt and
// parameters. The result is self-describing; verification needs nothing else.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, keyLength)

	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)

	return fmt.Sprintf(
		"$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory,
		iterations,
		parallelism,
		b64Salt,
		b64Hash,
	), nil
}

// VerifyPassword compares a plaintext password against a PHC-style Argon2id
// hash using a constant-time compare. Any failure to parse the stored hash is
// reported as ErrPasswordMismatch.
func VerifyPassword(password, encodedHash string) error {
	params, salt, expected, err := decodeHash(encodedHash)
	if err != nil {
		return ErrPasswordMismatch
	}

	computed := argon2.IDKey(
		[]byte(password),
		salt,
		params.iterations,
		params.memory,
		params.parallelism,
		uint32(len(expected)), // #nosec G115 - key length bounded by decodeHash
	)

	if subtle.ConstantTimeCompare(computed, expected) == 1 {
		return nil
	}
	return ErrPasswordMismatch
}

type hashParams struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
}

// decodeHash parses the PHC format: $argon2id$v=19$m=X,t=Y,p=Z$salt$hash
func decodeHash(encoded string) (hashParams, []byte, []byte, error) {
	parts := make([]string, 0, 6)
	start := 0
	for i := range len(encoded) {
		if encoded[i] == '$' {
			parts = append(parts, encoded[start:i])
			start = i + 1
		}
	}
	parts = append(parts, encoded[start:])

	// Expected structure: ["", "argon2id", "v=19", "m=X,t=Y,p=Z", "salt", "hash"]
	if len(parts) != 6 {
		return hashParams{}, nil, nil, errors.New("cryptox: invalid hash format: expected 6 parts")
	}
	if parts[1] != "argon2id" {
		return hashParams{}, nil, nil, errors.New("cryptox: invalid hash format: not argon2id")
	}
	if parts[2] != "v=19" {
		return hashParams{}, nil, nil, errors.New("cryptox: invalid hash format: wrong version")
	}

	var p hashParams
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.iterations, &p.parallelism); err != nil {
		return hashParams{}, nil, nil, fmt.Errorf("cryptox: invalid hash format: parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return hashParams{}, nil, nil, fmt.Errorf("cryptox: invalid hash format: salt: %w", err)
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return hashParams{}, nil, nil, fmt.Errorf("cryptox: invalid hash format: hash: %w", err)
	}
	if len(hash) == 0 || len(hash) > 512 {
		return hashParams{}, nil, nil, errors.New("cryptox: invalid hash format: bad key length")
	}

	return p, salt, hash, nil
}
