package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")
	in := Principal{ID: "64f0c2a1b3d4e5f60718293a", Fullname: "Puki Norma", IsAdmin: true}

	token, err := svc.Issue(in)
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	out, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if out != in {
		t.Fatalf("principal changed in round trip: %+v != %+v", out, in)
	}
}

func TestTokenWrongSecretRejected(t *testing.T) {
	token, err := NewTokenService("secret-a").Issue(Principal{ID: "abc"})
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	if _, err := NewTokenService("secret-b").Parse(token); err == nil {
		t.Fatalf("token signed with another secret must be rejected")
	}
}

func TestTokenExpired(t *testing.T) {
	svc := TokenService{Secret: []byte("test-secret"), TTL: -time.Minute}
	token, err := svc.Issue(Principal{ID: "abc"})
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	if _, err := svc.Parse(token); err == nil {
		t.Fatalf("expired token must be rejected")
	}
}

func TestTokenMissingUserID(t *testing.T) {
	svc := NewTokenService("test-secret")
	token, err := svc.Issue(Principal{Fullname: "No ID"})
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	if _, err := svc.Parse(token); err == nil {
		t.Fatalf("token without user id must be rejected")
	}
}
