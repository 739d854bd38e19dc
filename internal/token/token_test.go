package token_test

import (
	"errors"
	"testing"
	"time"

	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/config"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/token"
)

func newTestIssuer(t *testing.T, ttlSeconds int) *token.Issuer {
	t.Helper()
	iss, err := token.New(config.AuthConfig{
		Secret:   "unit-test-secret",
		TokenTTL: ttlSeconds,
		Issuer:   "library-service",
	})
	if err != nil {
		t.Fatalf("unexpected error building issuer: %v", err)
	}
	return iss
}

func TestNew_EmptySecretFails(t *testing.T) {
	_, err := token.New(config.AuthConfig{Secret: "", TokenTTL: 3600})
	if !errors.Is(err, token.ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}

func TestIssue_RoundTrip(t *testing.T) {
	iss := newTestIssuer(t, 3600)

	signed, err := iss.Issue(map[string]any{"member_id": "u1", "role": "member"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := iss.Verify(signed)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims["member_id"] != "u1" || claims["role"] != "member" {
		t.Fatalf("caller claims not preserved: %+v", claims)
	}
	if claims["iss"] != "library-service" {
		t.Fatalf("expected issuer claim, got %v", claims["iss"])
	}
	for _, k := range []string{"iat", "exp", "jti"} {
		if _, ok := claims[k]; !ok {
			t.Fatalf("missing standard claim %q in %+v", k, claims)
		}
	}

	// exp must reflect the configured default window.
	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("exp claim has unexpected type %T", claims["exp"])
	}
	want := time.Now().Add(time.Hour).Unix()
	if diff := int64(exp) - want; diff < -5 || diff > 5 {
		t.Fatalf("exp %d too far from expected %d", int64(exp), want)
	}
}

func TestIssue_OverrideExpiryWins(t *testing.T) {
	iss := newTestIssuer(t, 60) // short default

	signed, err := iss.Issue(map[string]any{"member_id": "u1"}, &token.Options{ExpiresIn: time.Hour})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	claims, err := iss.Verify(signed)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	exp := int64(claims["exp"].(float64))
	want := time.Now().Add(time.Hour).Unix()
	if diff := exp - want; diff < -5 || diff > 5 {
		t.Fatalf("override expiry not applied: exp=%d want~%d", exp, want)
	}
}

func TestIssue_OverrideAudienceAndSubject(t *testing.T) {
	iss := newTestIssuer(t, 3600)

	signed, err := iss.Issue(nil, &token.Options{Audience: "mobile", Subject: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	claims, err := iss.Verify(signed)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims["aud"] != "mobile" || claims["sub"] != "u1" {
		t.Fatalf("override options not merged: %+v", claims)
	}
	// Unspecified defaults pass through unchanged.
	if claims["iss"] != "library-service" {
		t.Fatalf("default issuer lost during merge: %+v", claims)
	}
}

func TestIssue_NonPositiveOverrideFallsBack(t *testing.T) {
	iss := newTestIssuer(t, 3600)

	signed, err := iss.Issue(map[string]any{"member_id": "u1"}, &token.Options{ExpiresIn: -time.Minute})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Negative override falls through to the default, so this token is valid.
	if _, err := iss.Verify(signed); err != nil {
		t.Fatalf("non-positive override should fall back to default TTL, got %v", err)
	}
}

func TestVerify_RejectsTamperedToken(t *testing.T) {
	iss := newTestIssuer(t, 3600)

	signed, err := iss.Issue(map[string]any{"member_id": "u1"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := iss.Verify(signed + "x"); !errors.Is(err, token.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestVerify_WrongSecretFails(t *testing.T) {
	iss := newTestIssuer(t, 3600)
	signed, err := iss.Issue(map[string]any{"member_id": "u1"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stranger, err := token.New(config.AuthConfig{Secret: "different-secret", TokenTTL: 3600})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := stranger.Verify(signed); !errors.Is(err, token.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken under wrong secret, got %v", err)
	}
}
