package service

import (
	"strings"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1", 4)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret1" || !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", hash)
	}
	if !CheckPassword("secret1", hash) {
		t.Fatal("expected password to verify against its own hash")
	}
	if CheckPassword("secret2", hash) {
		t.Fatal("expected different password to fail verification")
	}
}

func TestCheckPassword_NeverErrorsOnGarbage(t *testing.T) {
	if CheckPassword("anything", "not-a-hash") {
		t.Fatal("expected false on malformed hash")
	}
}

func TestGravatarURL(t *testing.T) {
	a := GravatarURL("al@x.com")
	b := GravatarURL("  AL@X.COM ")
	if a != b {
		t.Fatalf("expected normalized emails to map to same avatar: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "https://www.gravatar.com/avatar/") {
		t.Fatalf("unexpected avatar url: %q", a)
	}
}
