package auth

import (
	"testing"
	"time"
)

var testSecret = SessionSecretBytes("test-secret-for-session-tokens-0123456789")

func TestCreateAndVerifySessionToken(t *testing.T) {
	token, err := CreateSessionToken("u1", "admin", "Ada", "ada@example.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	claims, err := VerifySessionToken(token, testSecret)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if claims.Subject != "u1" {
		t.Errorf("expected subject u1, got %q", claims.Subject)
	}
	if claims.Role != "admin" {
		t.Errorf("expected role admin, got %q", claims.Role)
	}
	if claims.Name != "Ada" || claims.Email != "ada@example.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestVerifySessionToken_WrongSecret(t *testing.T) {
	token, err := CreateSessionToken("u1", "user", "", "", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	other := SessionSecretBytes("another-secret-entirely-different-value")
	if _, err := VerifySessionToken(token, other); err == nil {
		t.Error("expected verification to fail with a different secret")
	}
}

func TestVerifySessionToken_Expired(t *testing.T) {
	token, err := CreateSessionToken("u1", "user", "", "", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	if _, err := VerifySessionToken(token, testSecret); err == nil {
		t.Error("expected expired token to fail verification")
	}
}

func TestVerifySessionToken_Garbage(t *testing.T) {
	if _, err := VerifySessionToken("not-a-token", testSecret); err == nil {
		t.Error("expected garbage token to fail verification")
	}
}

func TestSessionSecretBytes_PadsShortSecrets(t *testing.T) {
	b := SessionSecretBytes("short")
	if len(b) != 32 {
		t.Errorf("expected 32 bytes, got %d", len(b))
	}
	if string(b[:5]) != "short" {
		t.Errorf("expected prefix to survive, got %q", b[:5])
	}

	long := "this-secret-is-definitely-longer-than-thirty-two-bytes"
	if got := SessionSecretBytes(long); string(got) != long {
		t.Errorf("long secret must pass through unchanged, got %q", got)
	}
}
