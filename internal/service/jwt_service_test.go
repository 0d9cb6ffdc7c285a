package service

import (
	"errors"
	"testing"
	"time"

	"devconnector/internal/domain"
)

func testUser() domain.User {
	return domain.User{
		ID:        "u1",
		Name:      "Al Dev",
		Email:     "al@x.com",
		Avatar:    "https://www.gravatar.com/avatar/x",
		CreatedAt: time.Now().UTC(),
	}
}

func TestJWTService_IssueParseRoundTrip(t *testing.T) {
	svc := NewJWTService("secret", 15*time.Minute)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "u1" || claims.Name != "Al Dev" || claims.AvatarURL != "https://www.gravatar.com/avatar/x" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTService_WrongSecretIsBadSignature(t *testing.T) {
	issuer := NewJWTService("secret", 15*time.Minute)
	verifier := NewJWTService("other-secret", 15*time.Minute)

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Parse(token); !errors.Is(err, ErrTokenBadSignature) {
		t.Fatalf("expected ErrTokenBadSignature, got %v", err)
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService("secret", time.Millisecond)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, err := svc.Parse(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := NewJWTService("secret", 15*time.Minute)

	for _, token := range []string{"", "   ", "garbage", "a.b.c"} {
		if _, err := svc.Parse(token); !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("expected ErrTokenMalformed for %q, got %v", token, err)
		}
	}
}

func TestJWTService_RejectsForeignIssuer(t *testing.T) {
	svc := NewJWTService("secret", 15*time.Minute)
	other := &JWTService{secret: []byte("secret"), ttl: 15 * time.Minute, issuer: "someone-else"}

	token, err := other.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.Parse(token); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}
