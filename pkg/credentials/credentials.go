// Package credentials holds the hashing primitives for account passwords,
// recovery keys and refresh tokens. They are pure functions over plain data so
// entities stay behavior-free.
package credentials

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// argon2id parameters for refresh-token hashing. Refresh tokens are signed
// JWTs, well past bcrypt's 72-byte input cap, so they get argon2id instead.
const (
	argonTime    = 1
	argonMemory  = 19 * 1024
	argonThreads = 2
	argonSaltLen = 16
	argonKeyLen  = 32
)

// HashPassword returns the bcrypt hash of a plaintext password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword reports whether the plaintext matches the stored bcrypt hash.
func ComparePassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// HashRecoveryKey hashes a raw recovery key for storage. Recovery keys are
// short opaque strings, so bcrypt applies here too.
func HashRecoveryKey(rawKey string) (string, error) {
	return HashPassword(rawKey)
}

// CompareRecoveryKey reports whether the raw key matches the stored hash.
func CompareRecoveryKey(hashed, rawKey string) bool {
	return ComparePassword(hashed, rawKey)
}

// HashRefreshToken produces an argon2id hash of the raw refresh token, encoded
// in the PHC string format.
func HashRefreshToken(rawToken string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(rawToken), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key))

	return encoded, nil
}

// CompareRefreshToken verifies a raw refresh token against a stored argon2id
// hash using the parameters recorded in the hash itself.
func CompareRefreshToken(encodedHash, rawToken string) (bool, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, fmt.Errorf("malformed refresh token hash")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("malformed refresh token hash: %w", err)
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, fmt.Errorf("malformed refresh token hash: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("malformed refresh token hash: %w", err)
	}

	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("malformed refresh token hash: %w", err)
	}

	got := argon2.IDKey([]byte(rawToken), salt, time, memory, threads, uint32(len(want)))

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
