// Package crypto implements the credential primitives of the gentrack
// server: the scrypt password hasher and the API key secret manager.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	// scrypt work factors. N*128*r bytes of memory (32 MiB here) are
	// allocated per derivation; x/crypto/scrypt has no configurable memory
	// cap to raise, the allocation simply happens.
	scryptN      = 32768 // 2^15
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64

	saltLen = 16
)

// passwordHasher is the private implementation of [PasswordHasher].
type passwordHasher struct {
	dummy string
}

// NewPasswordHasher constructs a [PasswordHasher] with fixed scrypt
// parameters (N=2^15, r=8, p=1, 64-byte key, 16-byte salt).
//
// A dummy credential is derived eagerly from random material so that login
// paths can burn a full derivation on unknown accounts.
func NewPasswordHasher() (PasswordHasher, error) {
	h := &passwordHasher{}

	throwaway := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, throwaway); err != nil {
		return nil, fmt.Errorf("error generating dummy credential material: %w", err)
	}

	dummy, err := h.Hash(hex.EncodeToString(throwaway))
	if err != nil {
		return nil, fmt.Errorf("error deriving dummy credential: %w", err)
	}
	h.dummy = dummy

	return h, nil
}

// Hash implements [PasswordHasher]. It reads a fresh 16-byte salt from the
// OS CSPRNG, derives a 64-byte key with scrypt, and returns
// "salt_hex:hash_hex".
func (h *passwordHasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("error deriving key: %w", err)
	}

	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

// Verify implements [PasswordHasher]. It splits stored into salt and hash,
// re-derives with the same parameters, and compares with
// subtle.ConstantTimeCompare. Any parse failure verifies false.
func (h *passwordHasher) Verify(password, stored string) bool {
	saltHex, hashHex, ok := strings.Cut(stored, ":")
	if !ok {
		return false
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil || len(salt) != saltLen {
		return false
	}
	want, err := hex.DecodeString(hashHex)
	if err != nil || len(want) != scryptKeyLen {
		return false
	}

	got, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(got, want) == 1
}

// DummyCredential implements [PasswordHasher].
func (h *passwordHasher) DummyCredential() string {
	return h.dummy
}
