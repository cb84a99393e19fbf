package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
)

// KeyPrefix makes raw API keys visually distinguishable from other tokens.
const KeyPrefix = "gsk_"

const hintLen = 4

// keySecrets is the private implementation of [KeySecrets].
//
// Raw secrets carry 256 bits of entropy, so a plain SHA-256 digest is
// treated as unguessable: no salt or slow hash is needed for bearer-token
// equality, only for password-style secrets users choose themselves.
type keySecrets struct{}

// NewKeySecrets constructs a [KeySecrets].
func NewKeySecrets() KeySecrets {
	return &keySecrets{}
}

// Mint implements [KeySecrets]. The raw form is
// "gsk_" + base64url(32 random bytes), unpadded.
func (k *keySecrets) Mint() (MintedKey, error) {
	secret := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, secret); err != nil {
		return MintedKey{}, fmt.Errorf("error generating key material: %w", err)
	}

	raw := KeyPrefix + base64.RawURLEncoding.EncodeToString(secret)
	digest := sha256.Sum256([]byte(raw))

	return MintedKey{
		Raw:     raw,
		HashHex: hex.EncodeToString(digest[:]),
		Hint:    raw[len(raw)-hintLen:],
	}, nil
}

// Verify implements [KeySecrets]. The comparison runs over the digest bytes
// in constant time regardless of where they first differ.
func (k *keySecrets) Verify(provided, storedHashHex string) bool {
	want, err := hex.DecodeString(storedHashHex)
	if err != nil || len(want) != sha256.Size {
		return false
	}

	got := sha256.Sum256([]byte(provided))

	return subtle.ConstantTimeCompare(got[:], want) == 1
}

// DigestHex returns the hex SHA-256 digest of raw — the form secrets are
// stored and looked up under.
func DigestHex(raw string) string {
	digest := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(digest[:])
}

// FormatHint renders a stored hint for listings as "<prefix>...<hint>".
func FormatHint(hint string) string {
	return KeyPrefix + "..." + hint
}
