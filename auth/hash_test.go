package auth

import "testing"

func TestHashAndCheckPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if digest == "secret1" {
		t.Fatalf("digest must not equal the plaintext")
	}
	if !CheckPassword("secret1", digest) {
		t.Fatalf("expected password to verify against its own digest")
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if CheckPassword("secret2", digest) {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestHashPassword_NonDeterministic(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	second, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if first == second {
		t.Fatalf("expected fresh salt per call, got identical digests")
	}
	if !CheckPassword("secret1", first) || !CheckPassword("secret1", second) {
		t.Fatalf("both digests must verify against the original password")
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	// A malformed digest is a verification failure, not a fault.
	if CheckPassword("secret1", "not-a-bcrypt-digest") {
		t.Fatalf("expected malformed digest to fail verification")
	}
}
