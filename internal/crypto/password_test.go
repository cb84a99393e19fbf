package crypto

import (
	"strings"
	"testing"
)

func newTestHasher(t *testing.T) PasswordHasher {
	t.Helper()
	h, err := NewPasswordHasher()
	if err != nil {
		t.Fatalf("NewPasswordHasher error: %v", err)
	}
	return h
}

func TestHash_SerializedShape(t *testing.T) {
	h := newTestHasher(t)

	stored, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	saltHex, hashHex, ok := strings.Cut(stored, ":")
	if !ok {
		t.Fatalf("stored credential %q is not salt:hash", stored)
	}
	if len(saltHex) != 32 {
		t.Fatalf("salt hex length = %d, want 32", len(saltHex))
	}
	if len(hashHex) != 128 {
		t.Fatalf("hash hex length = %d, want 128", len(hashHex))
	}
}

func TestHash_FreshSaltPerCall(t *testing.T) {
	h := newTestHasher(t)

	s1, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	s2, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if s1 == s2 {
		t.Fatal("expected different serialized credentials for the same password")
	}
}

func TestVerify_RoundTrip(t *testing.T) {
	h := newTestHasher(t)

	stored, err := h.Hash("p@ssw0rd")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if !h.Verify("p@ssw0rd", stored) {
		t.Fatal("Verify(p, Hash(p)) = false, want true")
	}
	if h.Verify("p@ssw0rd-not", stored) {
		t.Fatal("Verify with wrong password = true, want false")
	}
}

func TestVerify_MalformedStored(t *testing.T) {
	h := newTestHasher(t)

	cases := []string{
		"",
		"no-separator",
		"zz:zz",                            // not hex
		"abcd:" + strings.Repeat("ab", 64), // short salt
	}
	for _, stored := range cases {
		if h.Verify("anything", stored) {
			t.Errorf("Verify against malformed %q = true, want false", stored)
		}
	}
}

func TestDummyCredential_AlwaysFailsVerification(t *testing.T) {
	h := newTestHasher(t)

	dummy := h.DummyCredential()
	if dummy == "" {
		t.Fatal("dummy credential is empty")
	}

	// The dummy must be a well-formed credential (the full derivation runs),
	// it just never matches any caller-supplied password.
	if h.Verify("password", dummy) {
		t.Fatal("Verify against dummy credential = true, want false")
	}
}
