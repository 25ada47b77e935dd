package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/CommunityWatch/CW-Backend/internal/auth"
)

func TestJWTAuthority_RoundTrip(t *testing.T) {
	authority := auth.NewJWTAuthority([]byte("test-secret"))

	token, err := authority.IssueToken("account-123")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	accountID, err := authority.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if accountID != "account-123" {
		t.Errorf("accountID = %q, want account-123", accountID)
	}
}

func TestJWTAuthority_RejectsWrongSecret(t *testing.T) {
	issuer := auth.NewJWTAuthority([]byte("test-secret"))
	verifier := auth.NewJWTAuthority([]byte("different-secret"))

	token, err := issuer.IssueToken("account-123")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := verifier.VerifyToken(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestJWTAuthority_RejectsExpiredToken(t *testing.T) {
	authority := &auth.JWTAuthority{Secret: []byte("test-secret"), TTL: -time.Hour}

	token, err := authority.IssueToken("account-123")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := authority.VerifyToken(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestJWTAuthority_RejectsGarbage(t *testing.T) {
	authority := auth.NewJWTAuthority([]byte("test-secret"))

	for _, token := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		if _, err := authority.VerifyToken(token); !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("VerifyToken(%q) err = %v, want ErrInvalidToken", token, err)
		}
	}
}
