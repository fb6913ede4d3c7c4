package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("super-secret")

	tok, err := issuer.Issue("alice", time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if strings.ContainsAny(tok, " \t\n") {
		t.Fatalf("token must not contain whitespace: %q", tok)
	}

	subject, err := issuer.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("subject mismatch: got %q want %q", subject, "alice")
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("secret")

	tok, err := issuer.Issue("alice", -1*time.Second)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = issuer.Verify(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_NotExpiredBeforeValidityEnds(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("secret")

	tok, err := issuer.Issue("alice", 2*time.Second)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := issuer.Verify(tok); err != nil {
		t.Fatalf("token must verify before its expiry, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenIssuer("right-secret").Issue("alice", time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenIssuer("wrong-secret").Verify(tok)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong secret, got %v", err)
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := NewTokenIssuer("k").Verify("not.a.jwt")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for malformed token, got %v", err)
	}
}

func TestVerify_EmptySubject(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("k")
	tok, err := issuer.Issue("", time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := issuer.Verify(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for empty subject, got %v", err)
	}
}
