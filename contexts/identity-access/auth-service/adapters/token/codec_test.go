package tokenadapter

import (
	"errors"
	"testing"
	"time"

	domainerrors "mdd/contexts/identity-access/auth-service/domain/errors"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	codec := Codec{Secret: []byte("test-secret"), Issuer: "mdd-api", TTL: time.Hour}

	token, err := codec.Issue("ana@x.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	subject, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if subject != "ana@x.com" {
		t.Fatalf("unexpected subject %s", subject)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	issuing := Codec{Secret: []byte("test-secret"), Issuer: "mdd-api", TTL: -time.Minute}

	token, err := issuing.Issue("ana@x.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	verifying := Codec{Secret: []byte("test-secret"), Issuer: "mdd-api", TTL: time.Hour}
	if _, err := verifying.Verify(token); !errors.Is(err, domainerrors.ErrTokenExpired) {
		t.Fatalf("expected expired token error, got %v", err)
	}
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	codec := Codec{Secret: []byte("test-secret"), Issuer: "mdd-api", TTL: time.Hour}
	forged := Codec{Secret: []byte("other-secret"), Issuer: "mdd-api", TTL: time.Hour}

	token, err := forged.Issue("ana@x.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := codec.Verify(token); !errors.Is(err, domainerrors.ErrTokenInvalid) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestVerifyRejectsForeignIssuer(t *testing.T) {
	codec := Codec{Secret: []byte("test-secret"), Issuer: "mdd-api", TTL: time.Hour}
	other := Codec{Secret: []byte("test-secret"), Issuer: "someone-else", TTL: time.Hour}

	token, err := other.Issue("ana@x.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := codec.Verify(token); !errors.Is(err, domainerrors.ErrTokenInvalid) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	codec := Codec{Secret: []byte("test-secret"), Issuer: "mdd-api", TTL: time.Hour}
	if _, err := codec.Verify("not.a.token"); !errors.Is(err, domainerrors.ErrTokenInvalid) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}
