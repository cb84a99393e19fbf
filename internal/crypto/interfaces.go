package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher derives and verifies stored password credentials.
//
// Implementations must use a memory-hard KDF and a constant-time comparison,
// and must expose a precomputed dummy credential so that callers can perform
// the full derivation even when no account exists for a login (keeping
// "user not found" and "wrong password" indistinguishable by latency).
type PasswordHasher interface {
	// Hash derives a fresh credential for password and returns it in the
	// serialized "salt_hex:hash_hex" form.
	Hash(password string) (string, error)

	// Verify re-derives password against the salt embedded in stored and
	// compares in constant time. Malformed stored values verify false.
	Verify(password, stored string) bool

	// DummyCredential returns a valid serialized credential derived from a
	// throwaway password at construction time. Verifying against it always
	// fails but costs exactly one full derivation.
	DummyCredential() string
}

// KeySecrets mints and verifies API key bearer secrets.
type KeySecrets interface {
	// Mint draws a fresh 256-bit secret and returns the raw value together
	// with its hex SHA-256 digest and last-4 hint. The raw value must be
	// revealed to the owner exactly once.
	Mint() (MintedKey, error)

	// Verify hashes provided and compares the digest bytes against the
	// stored hex digest in constant time.
	Verify(provided, storedHashHex string) bool
}

// MintedKey is the product of a single mint: the raw secret plus the
// derived values that are actually persisted.
type MintedKey struct {
	Raw     string
	HashHex string
	Hint    string
}
