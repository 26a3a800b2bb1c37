package password

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("hunter22")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if digest == "hunter22" {
		t.Fatalf("digest must not equal the plaintext")
	}

	ok, err := h.Verify("hunter22", digest)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !ok {
		t.Fatalf("expected match")
	}

	ok, err = h.Verify("wrong-password", digest)
	if err != nil {
		t.Fatalf("Verify error on mismatch: %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch")
	}
}

func TestHash_FreshSalt(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	a, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	b, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password must differ")
	}
}

func TestVerify_MalformedDigest(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	_, err := h.Verify("whatever", "not-a-bcrypt-digest")
	if err == nil {
		t.Fatalf("expected error for malformed digest")
	}
}

func TestNewHasher_CostOutOfRange(t *testing.T) {
	t.Parallel()

	h := NewHasher(99)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", h.cost)
	}
}
